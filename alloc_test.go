package wordjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleAllocationIntoExistingMemory(t *testing.T) {
	buf := make([]uint32, 2)
	doc := ParseString("[]", SingleAllocationInto(buf))
	require.True(t, doc.IsValid())
	require.True(t, doc.Root().IsArray())
	require.Equal(t, 0, doc.Root().GetLength())
}

func TestDynamicAllocationDiscardsStackButKeepsAST(t *testing.T) {
	doc := ParseString(`[[1,2],[3,4,5]]`, DynamicAllocation())
	require.True(t, doc.IsValid())
	arr := doc.Root().AsArray()
	require.Equal(t, 2, arr.GetLength())
	require.Equal(t, 2, arr.GetElement(0).AsArray().GetLength())
	require.Equal(t, 3, arr.GetElement(1).AsArray().GetLength())
}

func TestReverseRange(t *testing.T) {
	buf := []uint32{1, 2, 3, 4, 5}
	reverseRange(buf, 1, 3)
	require.Equal(t, []uint32{1, 4, 3, 2, 5}, buf)
}

func TestFlatAllocatorShiftAndReserveRestoresSourceOrder(t *testing.T) {
	a := newFlatAllocator(make([]uint32, 8), false)
	require.True(t, a.pushWord(10))
	require.True(t, a.pushWord(20))
	require.True(t, a.pushWord(30))

	header, body, ok := a.shiftAndReserve(3)
	require.True(t, ok)
	a.setWord(header, 3)
	require.Equal(t, uint32(3), a.wordAt(header))
	require.Equal(t, []uint32{10, 20, 30}, a.slice(body, 3))
}
