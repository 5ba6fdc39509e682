package wordjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyPatchAddsField(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	patched, err := ApplyPatch(doc, []byte(`[{"op":"add","path":"/b","value":2}]`), SingleAllocation())
	require.NoError(t, err)
	require.True(t, patched.IsValid())
	obj := patched.Root().AsObject()
	require.Equal(t, int32(1), obj.GetValueOfKey("a").GetIntegerValue())
	require.Equal(t, int32(2), obj.GetValueOfKey("b").GetIntegerValue())
}

func TestApplyPatchRemoveField(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	patched, err := ApplyPatch(doc, []byte(`[{"op":"remove","path":"/a"}]`), SingleAllocation())
	require.NoError(t, err)
	require.True(t, patched.IsValid())
	obj := patched.Root().AsObject()
	require.Equal(t, 1, obj.GetLength())
	require.True(t, obj.GetValueOfKey("a").IsNull())
}

func TestApplyPatchLeavesOriginalDocumentUntouched(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := ApplyPatch(doc, []byte(`[{"op":"replace","path":"/a","value":99}]`), SingleAllocation())
	require.NoError(t, err)
	require.Equal(t, int32(1), doc.Root().AsObject().GetValueOfKey("a").GetIntegerValue())
}

func TestApplyPatchInvalidPatchDocumentErrors(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	_, err := ApplyPatch(doc, []byte(`not a patch`), SingleAllocation())
	require.Error(t, err)
}
