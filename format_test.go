package wordjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func serializeCompact(t *testing.T, v Value) string {
	t.Helper()
	sink := NewBufferSink()
	Serialize(v, sink, FormatOptions{Style: Compact})
	return sink.String()
}

func TestSerializeRoundTripsThroughCompact(t *testing.T) {
	inputs := []string{
		`[]`,
		`{}`,
		`[1,2,3]`,
		`{"a":1,"b":[true,false,null]}`,
		`["hello world"]`,
		`[-17,3.5,1.0e10]`,
	}
	for _, input := range inputs {
		doc := mustParse(t, input)
		out := serializeCompact(t, doc.Root())
		reparsed := ParseString(out, SingleAllocation())
		require.True(t, reparsed.IsValid(), "re-parsing %q failed: %s", out, reparsed.GetErrorMessageAsString())
		require.Equal(t, doc.Root().GetType(), reparsed.Root().GetType())
	}
}

func TestSerializeTrueEmitsTrue(t *testing.T) {
	doc := mustParse(t, `[true,false]`)
	out := serializeCompact(t, doc.Root())
	require.Equal(t, `[true,false]`, out)
}

func TestSerializeEscapesFullSet(t *testing.T) {
	doc := mustParse(t, `["a\tb\nc\"d\\e\rf"]`)
	out := serializeCompact(t, doc.Root())
	require.Equal(t, `["a\tb\nc\"d\\e\rf"]`, out)
}

func TestSerializeCompactHasNoExtraWhitespace(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	out := serializeCompact(t, doc.Root())
	require.Equal(t, `{"a":1,"b":2}`, out)
}

func TestSerializePrettyIndentsPerDepth(t *testing.T) {
	doc := mustParse(t, `{"a":[1,2]}`)
	sink := NewBufferSink()
	Serialize(doc.Root(), sink, FormatOptions{Style: Pretty})
	require.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", sink.String())
}

func TestSerializeEmptyContainersHaveNoInteriorNewline(t *testing.T) {
	doc := mustParse(t, `{"a":[],"b":{}}`)
	sink := NewBufferSink()
	Serialize(doc.Root(), sink, FormatOptions{Style: Pretty})
	require.Equal(t, "{\n  \"a\": [],\n  \"b\": {}\n}", sink.String())
}
