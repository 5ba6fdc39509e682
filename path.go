package wordjson

import (
	"strconv"
	"strings"
)

// EscapePathSegment escapes the two characters with special meaning in
// dotted paths, '.' and '\', so a literal key containing them can be
// placed in a path unambiguously. Adapted from the
// teacher's path-escaping helper, which served a mutation-path API; here
// it serves GetPath's read-only walk instead.
func EscapePathSegment(seg string) string {
	needsEscape := false
	for i := 0; i < len(seg); i++ {
		if shouldEscapePathChar(seg[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return seg
	}

	var b strings.Builder
	b.Grow(len(seg) * 2)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if shouldEscapePathChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// BuildEscapedPath joins literal segments with '.' after escaping each.
func BuildEscapedPath(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = EscapePathSegment(s)
	}
	return strings.Join(escaped, ".")
}

func shouldEscapePathChar(c byte) bool {
	return c == '\\' || c == '.'
}

// splitPath divides path on unescaped '.' characters, unescaping each
// resulting segment so GetPath receives the literal key/index text.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segments []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '.':
			segments = append(segments, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	segments = append(segments, cur.String())
	return segments
}

// GetPath walks a dotted path of object keys and array indices starting
// at root, returning the value found and true, or the zero Value and
// false if the path does not resolve - a missing object key or
// out-of-range array index ends the walk without error, mirroring the
// navigator's own "missing key returns NULL, not an error" contract
// (spec §4.F).
func GetPath(root Value, path string) (Value, bool) {
	v := root
	for _, seg := range splitPath(path) {
		switch v.GetType() {
		case TypeObject:
			obj := v.AsObject()
			i := obj.FindKey(seg)
			if i == obj.GetLength() {
				return Value{}, false
			}
			v = obj.GetValue(i)
		case TypeArray:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return Value{}, false
			}
			arr := v.AsArray()
			if idx < 0 || idx >= arr.GetLength() {
				return Value{}, false
			}
			v = arr.GetElement(idx)
		default:
			return Value{}, false
		}
	}
	return v, true
}

// Path is a convenience wrapper over GetPath for a Document's root.
func (d *Document) Path(path string) (Value, bool) {
	return GetPath(d.Root(), path)
}
