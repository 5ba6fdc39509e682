package wordjson

import "strconv"

// FormatStyle selects the serializer's whitespace policy.
type FormatStyle uint8

const (
	// Compact emits minimal whitespace: no spaces after ':' or ','.
	Compact FormatStyle = iota
	// Pretty puts each array/object element on its own line, indented
	// per depth, with a single space after ':'.
	Pretty
)

// FormatOptions configures Serialize.
type FormatOptions struct {
	Style FormatStyle
	// Indent is the per-depth-level indentation string used in Pretty
	// mode. An empty Indent defaults to two spaces.
	Indent string
}

// Serialize walks v and writes it to sink per opts (spec §6, §9).
//
// Two historical inconsistencies in the reference implementation this
// was ported from are deliberately NOT reproduced here, per the source
// material's own note flagging them as likely copy-paste bugs rather than
// intended behavior: the TRUE case emits "true" (not "false"), and string
// escaping uses one consistent full escape set (" \ \b \f \n \r \t) on
// every code path rather than two inconsistent ones.
func Serialize(v Value, sink Sink, opts FormatOptions) {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	w := &serializer{sink: sink, style: opts.Style, indent: indent}
	w.writeValue(v, 0)
}

type serializer struct {
	sink   Sink
	style  FormatStyle
	indent string
}

func (w *serializer) newlineIndent(depth int) {
	if w.style != Pretty {
		return
	}
	w.sink.AppendByte('\n')
	for i := 0; i < depth; i++ {
		w.sink.AppendBytes(stringToBytes(w.indent))
	}
}

func (w *serializer) writeValue(v Value, depth int) {
	switch v.GetType() {
	case TypeNull:
		w.sink.AppendBytes(stringToBytes("null"))
	case TypeTrue:
		w.sink.AppendBytes(stringToBytes("true"))
	case TypeFalse:
		w.sink.AppendBytes(stringToBytes("false"))
	case TypeInteger:
		w.sink.AppendBytes(stringToBytes(strconv.FormatInt(int64(v.GetIntegerValue()), 10)))
	case TypeDouble:
		w.sink.AppendBytes(stringToBytes(strconv.FormatFloat(v.GetDoubleValue(), 'g', -1, 64)))
	case TypeString:
		w.writeString(v.AsString())
	case TypeArray:
		w.writeArray(v.AsArray(), depth)
	case TypeObject:
		w.writeObject(v.AsObject(), depth)
	}
}

func (w *serializer) writeArray(a Array, depth int) {
	w.sink.AppendByte('[')
	n := a.GetLength()
	it := a.Iterate()
	for i := 0; i < n; i++ {
		elem, _ := it.Next()
		if i > 0 {
			w.sink.AppendByte(',')
		}
		w.newlineIndent(depth + 1)
		w.writeValue(elem, depth+1)
	}
	if n > 0 {
		w.newlineIndent(depth)
	}
	w.sink.AppendByte(']')
}

func (w *serializer) writeObject(o Object, depth int) {
	w.sink.AppendByte('{')
	n := o.GetLength()
	it := o.Iterate()
	for i := 0; i < n; i++ {
		entry, _ := it.Next()
		if i > 0 {
			w.sink.AppendByte(',')
		}
		w.newlineIndent(depth + 1)
		w.writeString(entry.Key)
		w.sink.AppendByte(':')
		if w.style == Pretty {
			w.sink.AppendByte(' ')
		}
		w.writeValue(entry.Value, depth+1)
	}
	if n > 0 {
		w.newlineIndent(depth)
	}
	w.sink.AppendByte('}')
}

// writeString emits s as a quoted JSON string literal, escaping the full
// set " \ \b \f \n \r \t and any other control byte as \u00XX.
func (w *serializer) writeString(s string) {
	w.sink.AppendByte('"')
	b := stringToBytes(s)
	for _, c := range b {
		switch c {
		case '"':
			w.sink.AppendBytes(stringToBytes(`\"`))
		case '\\':
			w.sink.AppendBytes(stringToBytes(`\\`))
		case '\b':
			w.sink.AppendBytes(stringToBytes(`\b`))
		case '\f':
			w.sink.AppendBytes(stringToBytes(`\f`))
		case '\n':
			w.sink.AppendBytes(stringToBytes(`\n`))
		case '\r':
			w.sink.AppendBytes(stringToBytes(`\r`))
		case '\t':
			w.sink.AppendBytes(stringToBytes(`\t`))
		default:
			if c < 0x20 {
				const hex = "0123456789abcdef"
				w.sink.AppendBytes(stringToBytes(`\u00`))
				w.sink.AppendByte(hex[c>>4])
				w.sink.AppendByte(hex[c&0xF])
			} else {
				w.sink.AppendByte(c)
			}
		}
	}
	w.sink.AppendByte('"')
}
