package wordjson

import (
	"io"

	"github.com/rs/zerolog"
)

// diagLog is the package's optional diagnostic logger. It is never
// consulted for parse errors - those are reported exclusively through a
// Document's own error state - only for allocator/pool instrumentation
// such as scratch-buffer growth under DynamicAllocation. The default value
// (zerolog.Nop()) discards everything, so SetLogger is opt-in.
var diagLog = zerolog.Nop()

// SetLogger installs a diagnostic logger that writes to w. Call it once
// at startup; it is not safe to call concurrently with active parses.
func SetLogger(w io.Writer) {
	diagLog = zerolog.New(w).With().Timestamp().Logger()
}

func logBufferGrowth(buffer string, oldCap, newCap int) {
	diagLog.Debug().
		Str("buffer", buffer).
		Int("old_cap", oldCap).
		Int("new_cap", newCap).
		Msg("dynamic allocation scratch buffer grew")
}
