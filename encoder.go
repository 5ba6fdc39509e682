package wordjson

import (
	"bytes"
	"math"
	"sort"
)

// pushInteger encodes a signed 32-bit integer as a tagged word and pushes
// it onto the parse stack. Values that fit in the inline range are encoded
// directly in the tag word; larger magnitudes (up to the full int32 range)
// are written to one indirect AST word and referenced by offset (tag.go).
func (p *parser) pushInteger(v int32) bool {
	if v >= integerInlineMin && v <= integerInlineMax {
		payload := uint32(v) & integerInlineMask
		if !p.alloc.pushWord(makeWord(TypeInteger, payload)) {
			p.fail(ErrOutOfMemory, 0, false)
			return false
		}
		return true
	}
	off, ok := p.alloc.emitWord(uint32(v))
	if !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	if !p.alloc.pushWord(makeWord(TypeInteger, integerIndirectFlag|off)) {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	return true
}

// decodeInteger reverses pushInteger given a tagged INTEGER word.
func decodeInteger(alloc allocator, word uint32) int32 {
	payload := wordPayload(word)
	if payload&integerIndirectFlag != 0 {
		off := payload &^ integerIndirectFlag
		return int32(alloc.wordAt(off))
	}
	return signExtend(payload&integerInlineMask, integerInlineBits)
}

// pushDouble encodes a binary64 value as two indirect AST words (low,
// high) and pushes a tagged DOUBLE word referencing their offset.
func (p *parser) pushDouble(f float64) bool {
	bits := math.Float64bits(f)
	lo, ok := p.alloc.emitWord(uint32(bits))
	if !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	if _, ok := p.alloc.emitWord(uint32(bits >> 32)); !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	if !p.alloc.pushWord(makeWord(TypeDouble, lo)) {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	return true
}

func decodeDouble(alloc allocator, word uint32) float64 {
	off := wordPayload(word)
	lo := uint64(alloc.wordAt(off))
	hi := uint64(alloc.wordAt(off + 1))
	return math.Float64frombits(lo | hi<<32)
}

// pushLiteral pushes a tagged word with no payload (NULL, TRUE, or FALSE).
func (p *parser) pushLiteral(t Type) bool {
	if !p.alloc.pushWord(makeWord(t, 0)) {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	return true
}

// installString records a decoded string's byte range as two indirect AST
// words and pushes a tagged STRING word referencing their offset.
func (p *parser) installString(start, end int) bool {
	lo, ok := p.alloc.emitWord(uint32(start))
	if !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	if _, ok := p.alloc.emitWord(uint32(end)); !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	if !p.alloc.pushWord(makeWord(TypeString, lo)) {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	return true
}

func decodeStringRange(alloc allocator, word uint32) (int, int) {
	off := wordPayload(word)
	return int(alloc.wordAt(off)), int(alloc.wordAt(off + 1))
}

// installArray moves the n most recently pushed stack words into the AST,
// in source order, behind a one-word element-count header, and pushes a
// tagged ARRAY word referencing the header.
func (p *parser) installArray(n int) bool {
	header, _, ok := p.alloc.shiftAndReserve(n)
	if !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	p.alloc.setWord(header, uint32(n))
	if !p.alloc.pushWord(makeWord(TypeArray, header)) {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	return true
}

// objectEntryStride is the word count of one installed object entry:
// key-start, key-end, original source position, value. The source
// position isn't part of the literal key/value pair a sorted lookup index
// strictly needs; it exists so an object's source-order iteration (spec
// invariant §3.4) can be reconstructed after the entries are sorted into
// lookup order - see DESIGN.md.
const objectEntryStride = 4

// installObject moves the objectEntryStride*entries most recently pushed
// stack words into the AST behind a one-word entry-count header, stably
// sorts the entries by (key length, then key bytes) to build a
// binary-searchable index, and pushes a tagged OBJECT word referencing
// the header. Stability preserves source order among duplicate keys
// (spec §4.F, §8).
func (p *parser) installObject(entries int) bool {
	header, body, ok := p.alloc.shiftAndReserve(objectEntryStride * entries)
	if !ok {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	p.alloc.setWord(header, uint32(entries))
	if entries > 1 {
		group := p.alloc.slice(body, objectEntryStride*entries)
		sort.Stable(objectEntrySlice{words: group, input: p.data})
	}
	if !p.alloc.pushWord(makeWord(TypeObject, header)) {
		p.fail(ErrOutOfMemory, 0, false)
		return false
	}
	return true
}

// objectEntrySlice sorts groups of objectEntryStride consecutive words -
// key-start, key-end, original position, value - by key length then key
// bytes, treating each group as a single sortable element.
type objectEntrySlice struct {
	words []uint32
	input []byte
}

func (s objectEntrySlice) Len() int { return len(s.words) / objectEntryStride }

func (s objectEntrySlice) key(i int) []byte {
	start := s.words[objectEntryStride*i]
	end := s.words[objectEntryStride*i+1]
	return s.input[start:end]
}

func (s objectEntrySlice) Less(i, j int) bool {
	ki, kj := s.key(i), s.key(j)
	if len(ki) != len(kj) {
		return len(ki) < len(kj)
	}
	return bytes.Compare(ki, kj) < 0
}

func (s objectEntrySlice) Swap(i, j int) {
	a, b := objectEntryStride*i, objectEntryStride*j
	for k := 0; k < objectEntryStride; k++ {
		s.words[a+k], s.words[b+k] = s.words[b+k], s.words[a+k]
	}
}
