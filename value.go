package wordjson

import "sort"

// Value is a lightweight, freely copyable view over one tagged AST word.
// It borrows from its Document and must not outlive it (spec §3).
type Value struct {
	doc  *Document
	word uint32
}

func (v Value) GetType() Type { return wordType(v.word) }

func (v Value) IsNull() bool   { return v.GetType() == TypeNull }
func (v Value) IsTrue() bool   { return v.GetType() == TypeTrue }
func (v Value) IsFalse() bool  { return v.GetType() == TypeFalse }
func (v Value) IsBool() bool   { return v.IsTrue() || v.IsFalse() }
func (v Value) IsInteger() bool { return v.GetType() == TypeInteger }
func (v Value) IsDouble() bool  { return v.GetType() == TypeDouble }
func (v Value) IsNumber() bool  { return v.IsInteger() || v.IsDouble() }
func (v Value) IsString() bool  { return v.GetType() == TypeString }
func (v Value) IsArray() bool   { return v.GetType() == TypeArray }
func (v Value) IsObject() bool  { return v.GetType() == TypeObject }

// Bool returns the boolean value of a TRUE/FALSE value. Calling it on any
// other type panics - callers branch on GetType first.
func (v Value) Bool() bool {
	switch v.GetType() {
	case TypeTrue:
		return true
	case TypeFalse:
		return false
	default:
		panic("wordjson: value is not a boolean")
	}
}

// GetIntegerValue returns the exact int32 value of an INTEGER value. It
// panics on any other type.
func (v Value) GetIntegerValue() int32 {
	if v.GetType() != TypeInteger {
		panic("wordjson: value is not an integer")
	}
	return decodeInteger(v.doc.alloc, v.word)
}

// GetDoubleValue returns the exact float64 value of a DOUBLE value. It
// panics on any other type.
func (v Value) GetDoubleValue() float64 {
	if v.GetType() != TypeDouble {
		panic("wordjson: value is not a double")
	}
	return decodeDouble(v.doc.alloc, v.word)
}

// GetNumberValue returns a value's numeric reading, widening an INTEGER
// to float64. It panics if the value is not a number.
func (v Value) GetNumberValue() float64 {
	switch v.GetType() {
	case TypeInteger:
		return float64(v.GetIntegerValue())
	case TypeDouble:
		return v.GetDoubleValue()
	default:
		panic("wordjson: value is not a number")
	}
}

// GetInt53Value reports whether the value is integer-valued (an INTEGER,
// or a DOUBLE with no fractional part) and lies in [-2^53, 2^53],
// returning the exact value in that case.
func (v Value) GetInt53Value() (int64, bool) {
	switch v.GetType() {
	case TypeInteger:
		return int64(v.GetIntegerValue()), true
	case TypeDouble:
		f := v.GetDoubleValue()
		i := int64(f)
		if float64(i) != f {
			return 0, false
		}
		const limit = int64(1) << 53
		if i < -limit || i > limit {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsString returns the decoded byte range of a STRING value as a string,
// borrowed directly from the input view with no copy. It panics on any
// other type.
func (v Value) AsString() string {
	if v.GetType() != TypeString {
		panic("wordjson: value is not a string")
	}
	start, end := decodeStringRange(v.doc.alloc, v.word)
	return bytesToString(v.doc.input.slice(start, end))
}

// GetLength returns the element count (ARRAY), entry count (OBJECT), or
// byte length (STRING). It panics for any other type.
func (v Value) GetLength() int {
	switch v.GetType() {
	case TypeArray, TypeObject:
		return int(v.doc.alloc.wordAt(wordPayload(v.word)))
	case TypeString:
		start, end := decodeStringRange(v.doc.alloc, v.word)
		return end - start
	default:
		panic("wordjson: value has no length")
	}
}

// AsArray returns an Array view over an ARRAY value. It panics on any
// other type.
func (v Value) AsArray() Array {
	if v.GetType() != TypeArray {
		panic("wordjson: value is not an array")
	}
	return Array{doc: v.doc, header: wordPayload(v.word)}
}

// AsObject returns an Object view over an OBJECT value. It panics on any
// other type.
func (v Value) AsObject() Object {
	if v.GetType() != TypeObject {
		panic("wordjson: value is not an object")
	}
	return Object{doc: v.doc, header: wordPayload(v.word)}
}

// Array is a read-only, indexed view over an ARRAY value. Elements are in
// source order (spec §5, "Arrays preserve source order everywhere").
type Array struct {
	doc    *Document
	header uint32
}

func (a Array) GetLength() int { return int(a.doc.alloc.wordAt(a.header)) }

// GetElement returns the i'th element in source order. It panics if i is
// out of range.
func (a Array) GetElement(i int) Value {
	n := a.GetLength()
	if i < 0 || i >= n {
		panic("wordjson: array index out of range")
	}
	word := a.doc.alloc.wordAt(a.header + 1 + uint32(i))
	return Value{doc: a.doc, word: word}
}

// ArrayIterator yields an Array's elements in source order, lazily and
// restartably (spec §4.G).
type ArrayIterator struct {
	arr Array
	i   int
}

func (a Array) Iterate() *ArrayIterator { return &ArrayIterator{arr: a} }

func (it *ArrayIterator) Next() (Value, bool) {
	if it.i >= it.arr.GetLength() {
		return Value{}, false
	}
	v := it.arr.GetElement(it.i)
	it.i++
	return v, true
}

// Object is a read-only view over an OBJECT value. GetKey/GetValue index
// entries in the sorted lookup order (key length, then key bytes); Iterate
// yields entries in source order instead (spec invariants §3.3-3.4).
type Object struct {
	doc    *Document
	header uint32
}

func (o Object) GetLength() int { return int(o.doc.alloc.wordAt(o.header)) }

func (o Object) entryWords(i int) []uint32 {
	base := o.header + 1 + uint32(objectEntryStride*i)
	return o.doc.alloc.slice(base, objectEntryStride)
}

// GetKey returns the key of the i'th entry in sorted order. It panics if i
// is out of range.
func (o Object) GetKey(i int) string {
	n := o.GetLength()
	if i < 0 || i >= n {
		panic("wordjson: object index out of range")
	}
	w := o.entryWords(i)
	return bytesToString(o.doc.input.slice(int(w[0]), int(w[1])))
}

// GetValue returns the value of the i'th entry in sorted order. It panics
// if i is out of range.
func (o Object) GetValue(i int) Value {
	n := o.GetLength()
	if i < 0 || i >= n {
		panic("wordjson: object index out of range")
	}
	w := o.entryWords(i)
	return Value{doc: o.doc, word: w[3]}
}

// FindKey returns the index of an entry whose key equals k, using the
// sorted (length, bytes) index for O(log n) lookup, or GetLength() if no
// such entry exists. If duplicate keys are present, which matching index
// is returned is unspecified (spec §4.F).
func (o Object) FindKey(k string) int {
	n := o.GetLength()
	kb := stringToBytes(k)
	i := sort.Search(n, func(i int) bool {
		w := o.entryWords(i)
		key := o.doc.input.slice(int(w[0]), int(w[1]))
		if len(key) != len(kb) {
			return len(key) >= len(kb)
		}
		return bytesToString(key) >= k
	})
	if i < n && o.GetKey(i) == k {
		return i
	}
	return n
}

// GetValueOfKey returns the value associated with k, or a synthetic NULL
// value if k is absent (spec §4.F - a missing key is not an error).
func (o Object) GetValueOfKey(k string) Value {
	i := o.FindKey(k)
	if i == o.GetLength() {
		return Value{doc: o.doc, word: makeWord(TypeNull, 0)}
	}
	return o.GetValue(i)
}

// ObjectEntry is one (key, value) pair yielded by ObjectIterator.
type ObjectEntry struct {
	Key   string
	Value Value
}

// ObjectIterator yields an Object's entries in source order, lazily and
// restartably. It resolves source order from each entry's stored original
// position (spec invariant §3.4) with a single O(n log n) sort performed
// on construction, not at install time.
type ObjectIterator struct {
	obj   Object
	order []int
	i     int
}

func (o Object) Iterate() *ObjectIterator {
	n := o.GetLength()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return o.entryWords(order[a])[2] < o.entryWords(order[b])[2]
	})
	return &ObjectIterator{obj: o, order: order}
}

func (it *ObjectIterator) Next() (ObjectEntry, bool) {
	if it.i >= len(it.order) {
		return ObjectEntry{}, false
	}
	slot := it.order[it.i]
	it.i++
	return ObjectEntry{Key: it.obj.GetKey(slot), Value: it.obj.GetValue(slot)}, true
}
