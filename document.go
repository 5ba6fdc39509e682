package wordjson

import "fmt"

// Document is the result of parsing one JSON text: either a read-only AST
// reachable from Root(), or a terminal parse error (spec §4.F, §6).
// A Document is immutable once constructed; there is no mutation API.
type Document struct {
	input inputView
	alloc allocator
	ast   []uint32
	root  uint32
	err   *parseError
}

// ParseBytes parses buf as a JSON document using the given allocation
// strategy, decoding strings in place into buf. buf is retained by the
// returned Document and must not be modified afterward.
func ParseBytes(buf []byte, strategy AllocationStrategy) *Document {
	if strategy == nil {
		strategy = SingleAllocation()
	}
	alloc := strategy.newAllocator(len(buf))
	p := newParser(buf, alloc)
	p.run()

	doc := &Document{input: newInputView(buf), alloc: alloc, err: p.err}
	if p.err != nil {
		return doc
	}
	ast, root, ok := alloc.finalize()
	doc.ast = ast
	doc.root = root
	if !ok && doc.err == nil {
		doc.err = &parseError{code: ErrOutOfMemory, line: p.line, column: p.col}
	}
	return doc
}

// ParseString parses s as a JSON document. It copies s into a fresh byte
// slice since the decoder mutates the buffer in place and Go strings are
// immutable.
func ParseString(s string, strategy AllocationStrategy) *Document {
	buf := make([]byte, len(s))
	copy(buf, s)
	return ParseBytes(buf, strategy)
}

// IsValid reports whether parsing succeeded.
func (d *Document) IsValid() bool { return d.err == nil }

// GetErrorLine returns the 1-based line of the parse error, or 0 if the
// document is valid.
func (d *Document) GetErrorLine() int {
	if d.err == nil {
		return 0
	}
	return d.err.line
}

// GetErrorColumn returns the 1-based column of the parse error, or 0 if
// the document is valid.
func (d *Document) GetErrorColumn() int {
	if d.err == nil {
		return 0
	}
	return d.err.column
}

// GetErrorCode returns the parse error's code, or ErrNoError if valid.
func (d *Document) GetErrorCode() ErrorCode {
	if d.err == nil {
		return ErrNoError
	}
	return d.err.code
}

// GetErrorMessage returns the human-readable description of the parse
// error, without position information.
func (d *Document) GetErrorMessage() string {
	if d.err == nil {
		return errorText[ErrNoError]
	}
	return d.err.message()
}

// GetErrorMessageAsString returns a one-line "line:column: message"
// summary of the parse error, or "" if the document is valid.
func (d *Document) GetErrorMessageAsString() string {
	if d.err == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d: %s", d.err.line, d.err.column, d.err.message())
}

// Root returns the document's root value. Calling it on an invalid
// Document panics, mirroring the "uninitialized document" guard on the
// original taxonomy's zero-initialized-document behavior - callers must
// check IsValid first.
func (d *Document) Root() Value {
	if d.err != nil {
		panic(uninitializedDocumentMessage)
	}
	return Value{doc: d, word: d.root}
}
