package wordjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootOnInvalidDocumentPanics(t *testing.T) {
	doc := ParseString("not json", SingleAllocation())
	require.False(t, doc.IsValid())
	require.Panics(t, func() {
		doc.Root()
	})
}

func TestGetErrorMessageAsStringFormatsPosition(t *testing.T) {
	doc := ParseString("[1,]", SingleAllocation())
	require.False(t, doc.IsValid())
	msg := doc.GetErrorMessageAsString()
	require.Contains(t, msg, "1:4:")
}

func TestValidDocumentHasNoErrorMessage(t *testing.T) {
	doc := mustParse(t, `[1]`)
	require.Equal(t, "", doc.GetErrorMessageAsString())
	require.Equal(t, ErrNoError, doc.GetErrorCode())
	require.Equal(t, 0, doc.GetErrorLine())
	require.Equal(t, 0, doc.GetErrorColumn())
}

func TestParseBytesRetainsBufferForStringValues(t *testing.T) {
	buf := []byte(`["hello"]`)
	doc := ParseBytes(buf, SingleAllocation())
	require.True(t, doc.IsValid())
	require.Equal(t, "hello", doc.Root().AsArray().GetElement(0).AsString())
}
