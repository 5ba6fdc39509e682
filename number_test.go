package wordjson

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDecimalInt32Bounds(t *testing.T) {
	v, ok := parseDecimalInt32([]byte("2147483647"))
	require.True(t, ok)
	require.Equal(t, int32(2147483647), v)

	v, ok = parseDecimalInt32([]byte("-2147483648"))
	require.True(t, ok)
	require.Equal(t, int32(-2147483648), v)

	_, ok = parseDecimalInt32([]byte("2147483648"))
	require.False(t, ok)
}

func TestParseJSONFloatSaturatesOnExponentOverflow(t *testing.T) {
	f, ok := parseJSONFloat([]byte("1e400"))
	require.True(t, ok)
	require.True(t, math.IsInf(f, 1))

	f, ok = parseJSONFloat([]byte("1e-400"))
	require.True(t, ok)
	require.Equal(t, 0.0, f)
}

func TestParseJSONFloatOrdinaryValue(t *testing.T) {
	f, ok := parseJSONFloat([]byte("3.5"))
	require.True(t, ok)
	require.Equal(t, 3.5, f)
}

func TestParseNumberFallsBackToDoubleOnInt32Overflow(t *testing.T) {
	doc := mustParse(t, "[2147483648]")
	v := doc.Root().AsArray().GetElement(0)
	require.True(t, v.IsDouble())
	require.Equal(t, 2147483648.0, v.GetDoubleValue())
}

func TestParseNumberNegativeZero(t *testing.T) {
	doc := mustParse(t, "[-0]")
	v := doc.Root().AsArray().GetElement(0)
	require.True(t, v.IsInteger())
	require.Equal(t, int32(0), v.GetIntegerValue())
}

// TestIntegerInlineIndirectBoundaryRoundTrips exercises the full band
// around the inline/indirect threshold - including magnitudes that were
// silently corrupted when integerInlineMin/Max disagreed with the
// sign-extend width implied by integerInlineBits - to make sure every
// value straddling ±2^27 still decodes to exactly the value it was
// parsed from, regardless of whether it ends up inline or indirect.
func TestIntegerInlineIndirectBoundaryRoundTrips(t *testing.T) {
	values := []int32{
		67108864,    // 2^26, well inside the inline range
		100000000,   // inside the inline range
		134217727,   // 2^27 - 1, the last value still encoded inline
		134217728,   // 2^27, the first value requiring indirection
		268435455,   // previously (incorrectly) treated as the inline boundary
		268435456,   // well past the boundary, requires indirection
		-67108864,
		-100000000,
		-134217728,  // -2^27, the last value still encoded inline
		-134217729,  // the first negative value requiring indirection
		-268435456,
	}
	for _, v := range values {
		input := "[" + strconv.Itoa(int(v)) + "]"
		doc := mustParse(t, input)
		got := doc.Root().AsArray().GetElement(0)
		require.True(t, got.IsInteger(), "value %d", v)
		require.Equal(t, v, got.GetIntegerValue(), "value %d", v)
	}
}
