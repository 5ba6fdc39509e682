package wordjson

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffDocuments serializes a and b in pretty form (one element per line)
// and returns a line-level textual diff of the two, along with whether
// they differ at all. It is
// meant for test failure output and interactive debugging, not for
// anything a parse or serialize call depends on.
func DiffDocuments(a, b *Document) (string, bool) {
	return DiffText(serializeForDiff(a), serializeForDiff(b))
}

func serializeForDiff(d *Document) string {
	if !d.IsValid() {
		return d.GetErrorMessageAsString()
	}
	sink := NewBufferSink()
	Serialize(d.Root(), sink, FormatOptions{Style: Pretty})
	return sink.String()
}

// DiffText diffs two arbitrary strings at line granularity and renders the
// result as a human-readable report: removed lines prefixed '-', added
// lines prefixed '+', unchanged lines left bare. When standard output is a
// terminal (per go-isatty), removed/added lines are colored red/green via
// fatih/color; otherwise (a log file, a CI artifact) the report gets the
// same prefixes with no escape codes.
func DiffText(want, got string) (string, bool) {
	dmp := diffmatchpatch.New()
	wantChars, gotChars, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffMain(wantChars, gotChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	colorize := isatty.IsTerminal(os.Stdout.Fd())
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	var b strings.Builder
	changed := false
	for _, d := range diffs {
		for _, line := range splitKeepingEmpty(d.Text) {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				changed = true
				writePrefixedLine(&b, "-", line, removed, colorize)
			case diffmatchpatch.DiffInsert:
				changed = true
				writePrefixedLine(&b, "+", line, added, colorize)
			default:
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}
	return b.String(), changed
}

func writePrefixedLine(b *strings.Builder, prefix, line string, c *color.Color, colorize bool) {
	if colorize {
		b.WriteString(c.Sprintf("%s %s", prefix, line))
	} else {
		b.WriteString(prefix)
		b.WriteByte(' ')
		b.WriteString(line)
	}
	b.WriteByte('\n')
}

func splitKeepingEmpty(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
