package wordjson

import "fmt"

// ErrorCode identifies the kind of parse failure recorded on a Document.
// The zero value, ErrNoError, means "no error" (or "not yet parsed").
type ErrorCode int

const (
	ErrNoError ErrorCode = iota
	ErrOutOfMemory
	ErrUnexpectedEnd
	ErrMissingRootElement
	ErrBadRoot
	ErrExpectedComma
	ErrMissingObjectKey
	ErrExpectedColon
	ErrExpectedEndOfInput
	ErrUnexpectedComma
	ErrExpectedValue
	ErrExpectedNull
	ErrExpectedFalse
	ErrExpectedTrue
	ErrInvalidNumber
	ErrMissingExponent
	ErrIllegalCodepoint
	ErrInvalidUnicodeEscape
	ErrUnexpectedEndOfUTF16
	ErrExpectedU
	ErrInvalidUTF16TrailSurrogate
	ErrUnknownEscape
	ErrInvalidUTF8
)

var errorText = [...]string{
	ErrNoError:                    "no error",
	ErrOutOfMemory:                "out of memory",
	ErrUnexpectedEnd:              "unexpected end of input",
	ErrMissingRootElement:         "missing root element",
	ErrBadRoot:                    "document root must be object or array",
	ErrExpectedComma:              "expected ,",
	ErrMissingObjectKey:           "missing object key",
	ErrExpectedColon:              "expected :",
	ErrExpectedEndOfInput:         "expected end of input",
	ErrUnexpectedComma:            "unexpected comma",
	ErrExpectedValue:              "expected value",
	ErrExpectedNull:               "expected 'null'",
	ErrExpectedFalse:              "expected 'false'",
	ErrExpectedTrue:               "expected 'true'",
	ErrInvalidNumber:              "invalid number",
	ErrMissingExponent:            "missing exponent",
	ErrIllegalCodepoint:           "illegal unprintable codepoint in string",
	ErrInvalidUnicodeEscape:       "invalid character in unicode escape",
	ErrUnexpectedEndOfUTF16:       "unexpected end of input during UTF-16 surrogate pair",
	ErrExpectedU:                  "expected \\u",
	ErrInvalidUTF16TrailSurrogate: "invalid UTF-16 trail surrogate",
	ErrUnknownEscape:              "unknown escape",
	ErrInvalidUTF8:                "invalid UTF-8",
}

// Text returns the human-readable description of the error code, with no
// line/column/argument information attached.
func (e ErrorCode) Text() string {
	if int(e) < 0 || int(e) >= len(errorText) {
		return "unknown error"
	}
	return errorText[e]
}

// parseError is the terminal failure state of a Document. Only the first
// error encountered during a parse is ever recorded.
type parseError struct {
	code     ErrorCode
	line     int
	column   int
	hasArg   bool
	argument int
}

func (e *parseError) message() string {
	if e == nil || e.code == ErrNoError {
		return errorText[ErrNoError]
	}
	if e.hasArg {
		return fmt.Sprintf("%s: %d", e.code.Text(), e.argument)
	}
	return e.code.Text()
}

const uninitializedDocumentMessage = "uninitialized document"
