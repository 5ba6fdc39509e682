package wordjson

import "strconv"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseDecimalInt32 parses a decimal literal (optionally signed) as a
// signed 32-bit integer. It fails (ok=false) if the literal's magnitude
// does not fit in 32 bits - the caller then falls back to DOUBLE, per
// spec §4.C.
func parseDecimalInt32(lit []byte) (int32, bool) {
	v, err := strconv.ParseInt(bytesToString(lit), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// parseJSONFloat parses a numeric literal as a binary64 value. Exponent
// overflow is not an error here: strconv.ParseFloat reports ErrRange but
// still returns the correctly saturated ±Inf, which is accepted. Exponent
// underflow needs no special case: strconv.ParseFloat returns 0 with no
// error.
func parseJSONFloat(lit []byte) (float64, bool) {
	f, err := strconv.ParseFloat(bytesToString(lit), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// parseNumber lexes a number token starting at p.pos (p.data[p.pos] is '-'
// or a digit) per the grammar
//
//	-? (0 | [1-9][0-9]*) ( \. [0-9]+ )? ( [eE] [+-]? [0-9]+ )?
//
// and pushes the resulting INTEGER or DOUBLE tagged word onto the parse
// stack. A leading zero followed immediately by another digit (e.g. "01")
// is not rejected here: the lexer simply stops after the lone "0", and the
// structural parser's own comma-or-close check then reports
// ErrExpectedComma on the unexpected extra digit - this is spec §4.C's
// documented EXPECTED_COMMA behavior for leading zeros.
func (p *parser) parseNumber() bool {
	start := p.pos
	if p.data[p.pos] == '-' {
		p.advance()
		if p.pos >= len(p.data) {
			p.fail(ErrUnexpectedEnd, 0, false)
			return false
		}
		if !isDigit(p.data[p.pos]) {
			p.fail(ErrInvalidNumber, 0, false)
			return false
		}
	}

	if p.data[p.pos] == '0' {
		p.advance()
	} else {
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.advance()
		}
	}

	isDouble := false

	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		isDouble = true
		p.advance()
		if p.pos >= len(p.data) {
			p.fail(ErrUnexpectedEnd, 0, false)
			return false
		}
		if !isDigit(p.data[p.pos]) {
			p.fail(ErrInvalidNumber, 0, false)
			return false
		}
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.advance()
		}
	}

	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		isDouble = true
		p.advance()
		if p.pos >= len(p.data) {
			p.fail(ErrUnexpectedEnd, 0, false)
			return false
		}
		if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
			p.advance()
			if p.pos >= len(p.data) {
				p.fail(ErrUnexpectedEnd, 0, false)
				return false
			}
		}
		if !isDigit(p.data[p.pos]) {
			p.fail(ErrMissingExponent, 0, false)
			return false
		}
		for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
			p.advance()
		}
	}

	literal := p.data[start:p.pos]

	if !isDouble {
		if v, ok := parseDecimalInt32(literal); ok {
			return p.pushInteger(v)
		}
		// Magnitude doesn't fit int32: fall through to DOUBLE.
	}

	f, ok := parseJSONFloat(literal)
	if !ok {
		p.fail(ErrInvalidNumber, 0, false)
		return false
	}
	return p.pushDouble(f)
}
