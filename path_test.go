package wordjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPathWalksObjectsAndArrays(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":[1,2,{"c":"hi"}]}}`)
	v, ok := doc.Path("a.b.2.c")
	require.True(t, ok)
	require.Equal(t, "hi", v.AsString())
}

func TestGetPathMissingKeyFails(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, ok := doc.Path("a.b")
	require.False(t, ok)
}

func TestGetPathOutOfRangeIndexFails(t *testing.T) {
	doc := mustParse(t, `[1,2,3]`)
	_, ok := doc.Path("5")
	require.False(t, ok)
}

func TestEscapePathSegmentEscapesDotsAndBackslashes(t *testing.T) {
	require.Equal(t, `a\.b`, EscapePathSegment("a.b"))
	require.Equal(t, `a\\b`, EscapePathSegment(`a\b`))
	require.Equal(t, "plain", EscapePathSegment("plain"))
}

func TestBuildEscapedPathRoundTripsThroughSplit(t *testing.T) {
	path := BuildEscapedPath("first.part", "second")
	segments := splitPath(path)
	require.Equal(t, []string{"first.part", "second"}, segments)
}

func TestGetPathEmptyPathReturnsRoot(t *testing.T) {
	doc := mustParse(t, `[1,2,3]`)
	v, ok := doc.Path("")
	require.True(t, ok)
	require.True(t, v.IsArray())
	require.Equal(t, 3, v.GetLength())
}
