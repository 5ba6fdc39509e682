package wordjson

import "sync"

// AllocationStrategy selects how parse-time scratch memory and the final
// AST word buffer are acquired (spec §4.B). It is a closed, tagged
// variant: the concrete strategy is chosen once at Document construction
// and creates one allocator for the parse. The allocator reaches its
// concrete implementation through the allocatorImpl interface, so each
// allocator operation in the parsing loop is an interface call.
type AllocationStrategy interface {
	newAllocator(inputWordBudget int) allocator
}

// allocator is the word-addressable scratch region used both as the
// top-down parse stack and the bottom-up AST (spec §4.B's push_word,
// reserve, shift_stack_range_to_ast, emit_ast_word, finalize).
type allocator struct {
	impl allocatorImpl
}

type allocatorImpl interface {
	pushWord(w uint32) bool
	stackDepth() int
	emitWord(w uint32) (offset uint32, ok bool)
	// shiftAndReserve reserves one header word then moves the top n
	// stack words into the AST region immediately after it, restoring
	// source order. Returns the offset of the header word and of the
	// first shifted body word.
	shiftAndReserve(n int) (headerOffset, bodyOffset uint32, ok bool)
	wordAt(offset uint32) uint32
	setWord(offset uint32, w uint32)
	slice(offset uint32, n int) []uint32
	finalize() (ast []uint32, rootWord uint32, ok bool)
}

func (a allocator) pushWord(w uint32) bool                 { return a.impl.pushWord(w) }
func (a allocator) stackDepth() int                         { return a.impl.stackDepth() }
func (a allocator) emitWord(w uint32) (uint32, bool)        { return a.impl.emitWord(w) }
func (a allocator) shiftAndReserve(n int) (uint32, uint32, bool) {
	return a.impl.shiftAndReserve(n)
}
func (a allocator) wordAt(offset uint32) uint32             { return a.impl.wordAt(offset) }
func (a allocator) setWord(offset uint32, w uint32)         { a.impl.setWord(offset, w) }
func (a allocator) slice(offset uint32, n int) []uint32     { return a.impl.slice(offset, n) }
func (a allocator) finalize() ([]uint32, uint32, bool)       { return a.impl.finalize() }

// --- single / bounded allocation -------------------------------------------
//
// Both variants co-locate the parse stack and the AST in one buffer: the
// stack grows down from the high end, the AST grows up from the low end,
// and container installation transiently lets the two regions touch. Single
// allocation permits that touch (bottom <= top); bounded allocation
// forbids it outright (bottom < top strictly), which is exactly why the
// bounded variant needs strictly more memory than single for the same
// input (spec §4.B, §9) - see DESIGN.md for how this invariant was derived
// from the allocator_tests in original_source/tests/test.cpp.
type flatAllocator struct {
	buf    []uint32
	bottom int
	top    int
	strict bool
}

func newFlatAllocator(buf []uint32, strict bool) *flatAllocator {
	return &flatAllocator{buf: buf, bottom: 0, top: len(buf), strict: strict}
}

func (a *flatAllocator) inBounds() bool {
	if a.strict {
		return a.bottom < a.top
	}
	return a.bottom <= a.top
}

func (a *flatAllocator) pushWord(w uint32) bool {
	if a.top == 0 {
		return false
	}
	a.top--
	a.buf[a.top] = w
	return a.inBounds()
}

func (a *flatAllocator) stackDepth() int {
	return len(a.buf) - a.top
}

func (a *flatAllocator) emitWord(w uint32) (uint32, bool) {
	if a.bottom >= len(a.buf) {
		return 0, false
	}
	off := a.bottom
	a.buf[a.bottom] = w
	a.bottom++
	return uint32(off), a.inBounds()
}

// reverseRange reverses buf[start:start+n] in place.
func reverseRange(buf []uint32, start, n int) {
	for i, j := start, start+n-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

func (a *flatAllocator) shiftAndReserve(n int) (headerOffset, bodyOffset uint32, ok bool) {
	if a.bottom+1+n > len(a.buf) || a.top+n > len(a.buf) {
		return 0, 0, false
	}
	headerOffset = uint32(a.bottom)
	a.bottom++
	srcStart := a.top
	// The most-recently-pushed word sits at the lowest stack index, so the
	// range [srcStart, srcStart+n) lists elements in reverse source order.
	// Reversing it in place first, then copying ascending (always safe
	// since bodyOffset <= srcStart), lands elements in source order even
	// when the two ranges transiently overlap or coincide.
	reverseRange(a.buf, srcStart, n)
	bodyOffset = uint32(a.bottom)
	copy(a.buf[int(bodyOffset):int(bodyOffset)+n], a.buf[srcStart:srcStart+n])
	a.bottom += n
	a.top += n
	return headerOffset, bodyOffset, a.inBounds()
}

func (a *flatAllocator) wordAt(offset uint32) uint32 { return a.buf[offset] }
func (a *flatAllocator) setWord(offset uint32, w uint32) { a.buf[offset] = w }
func (a *flatAllocator) slice(offset uint32, n int) []uint32 { return a.buf[offset : int(offset)+n] }

func (a *flatAllocator) finalize() ([]uint32, uint32, bool) {
	if a.top != len(a.buf)-1 {
		// The structural parser always leaves exactly the root word on the
		// stack by the time it calls finalize; anything else is a bug.
		return a.buf[:a.bottom], 0, false
	}
	root := a.buf[a.top]
	for i := a.top; i < len(a.buf); i++ {
		a.buf[i] = 0
	}
	return a.buf[:a.bottom], root, true
}

type singleStrategy struct{ buf []uint32 }

// SingleAllocation allocates one word buffer sized to the input's byte
// length (an input byte produces at most one AST word) and uses it both as
// the parse stack and the final AST, letting the two regions transiently
// overlap during container installation.
func SingleAllocation() AllocationStrategy { return singleStrategy{} }

// SingleAllocationInto uses a caller-supplied word buffer instead of
// allocating one. If the buffer is too small, parsing fails with
// ErrOutOfMemory.
func SingleAllocationInto(buf []uint32) AllocationStrategy { return singleStrategy{buf: buf} }

func (s singleStrategy) newAllocator(inputWordBudget int) allocator {
	buf := s.buf
	if buf == nil {
		if inputWordBudget < 1 {
			inputWordBudget = 1
		}
		buf = make([]uint32, inputWordBudget)
	}
	return allocator{impl: newFlatAllocator(buf, false)}
}

type boundedStrategy struct{ buf []uint32 }

// BoundedAllocation uses a caller-supplied, fixed-size word buffer with
// single_allocation's semantics except that it disallows the stack and AST
// regions from ever touching; this means it needs strictly more memory
// than single_allocation for the same input.
func BoundedAllocation(buf []uint32) AllocationStrategy { return boundedStrategy{buf: buf} }

func (s boundedStrategy) newAllocator(int) allocator {
	return allocator{impl: newFlatAllocator(s.buf, true)}
}

// --- dynamic allocation -----------------------------------------------------
//
// Two independently growable buffers: an AST buffer and a stack buffer.
// The stack buffer is taken from a sync.Pool of []uint32 scratch slices
// (grounded on the teacher's smallBufferPool/mediumBufferPool/largeBufferPool
// in njson_get.go) so repeated ParseBytes calls under DynamicAllocation reuse
// stack memory; the AST buffer is a fresh slice for every parse and is never
// pooled.

var dynamicScratchPool = sync.Pool{
	New: func() interface{} {
		buf := make([]uint32, 0, 256)
		return &buf
	},
}

type dynamicAllocator struct {
	ast       []uint32
	stack     []uint32
	stackPool *[]uint32
}

func newDynamicAllocator() *dynamicAllocator {
	pooled := dynamicScratchPool.Get().(*[]uint32)
	return &dynamicAllocator{stack: (*pooled)[:0], stackPool: pooled}
}

func (a *dynamicAllocator) pushWord(w uint32) bool {
	oldCap := cap(a.stack)
	a.stack = append(a.stack, w)
	if cap(a.stack) != oldCap {
		logBufferGrowth("stack", oldCap, cap(a.stack))
	}
	return true
}

func (a *dynamicAllocator) stackDepth() int { return len(a.stack) }

func (a *dynamicAllocator) emitWord(w uint32) (uint32, bool) {
	oldCap := cap(a.ast)
	off := len(a.ast)
	a.ast = append(a.ast, w)
	if cap(a.ast) != oldCap {
		logBufferGrowth("ast", oldCap, cap(a.ast))
	}
	return uint32(off), true
}

func (a *dynamicAllocator) shiftAndReserve(n int) (headerOffset, bodyOffset uint32, ok bool) {
	oldCap := cap(a.ast)
	headerOffset = uint32(len(a.ast))
	a.ast = append(a.ast, 0)
	start := len(a.stack) - n
	bodyOffset = uint32(len(a.ast))
	a.ast = append(a.ast, a.stack[start:]...)
	a.stack = a.stack[:start]
	if cap(a.ast) != oldCap {
		logBufferGrowth("ast", oldCap, cap(a.ast))
	}
	return headerOffset, bodyOffset, true
}

func (a *dynamicAllocator) wordAt(offset uint32) uint32      { return a.ast[offset] }
func (a *dynamicAllocator) setWord(offset uint32, w uint32)  { a.ast[offset] = w }
func (a *dynamicAllocator) slice(offset uint32, n int) []uint32 {
	return a.ast[offset : int(offset)+n]
}

func (a *dynamicAllocator) finalize() ([]uint32, uint32, bool) {
	ok := len(a.stack) == 1
	var root uint32
	if ok {
		root = a.stack[0]
	}
	*a.stackPool = a.stack[:0]
	dynamicScratchPool.Put(a.stackPool)
	return a.ast, root, ok
}

type dynamicStrategy struct{}

// DynamicAllocation allocates two independently growable buffers - an AST
// buffer and a stack buffer. The stack buffer comes from pooled scratch
// space and is returned to the pool once parsing completes; the AST buffer
// is freshly allocated and is the only one retained by the Document.
func DynamicAllocation() AllocationStrategy { return dynamicStrategy{} }

func (dynamicStrategy) newAllocator(int) allocator {
	return allocator{impl: newDynamicAllocator()}
}
