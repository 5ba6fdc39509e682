package wordjson

import (
	"bufio"
	"bytes"
	"io"
)

// Sink is the serializer's output trait: anything exposing append-byte and
// append-bytes can receive serialized JSON (spec §9, "polymorphic output
// sink"). The two reference implementations below mirror the originally
// specified pair: a growable in-memory buffer and a buffered file/stream
// writer.
type Sink interface {
	AppendByte(b byte)
	AppendBytes(b []byte)
}

// BufferSink is a Sink backed by a growable in-memory byte buffer.
type BufferSink struct {
	buf bytes.Buffer
}

func NewBufferSink() *BufferSink { return &BufferSink{} }

func (s *BufferSink) AppendByte(b byte)       { s.buf.WriteByte(b) }
func (s *BufferSink) AppendBytes(b []byte)    { s.buf.Write(b) }
func (s *BufferSink) Bytes() []byte           { return s.buf.Bytes() }
func (s *BufferSink) String() string          { return s.buf.String() }

// WriterSink is a Sink backed by a buffered io.Writer, for streaming
// serialized output directly to a file or socket without materializing
// the whole document in memory first.
type WriterSink struct {
	w   *bufio.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) AppendByte(b byte) {
	if s.err != nil {
		return
	}
	s.err = s.w.WriteByte(b)
}

func (s *WriterSink) AppendBytes(b []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}

// Flush flushes any buffered output and returns the first write error
// encountered, if any.
func (s *WriterSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}
