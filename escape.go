package catgets

// Escape handling for catalog message values.
//
// A value may contain C-style character escapes (\n, \t, ...), octal
// escapes (a backslash followed by up to three octal digits), decimal
// escapes (\d followed by up to three decimal digits) and hex escapes
// (\x followed by hex digits).  Numeric escapes emit a single byte.

type escState int

const (
	escStart escState = iota
	escEscape
	escDecimal0
	escDecimal1
	escDecimal2
	escOctal1
	escOctal2
	escHex
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func hexValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// transformValue interprets the escape sequences in a raw catalog
// value and returns the final message text.
//
// The machine consumes one input byte per step except on the retain
// transitions: a byte that terminates a numeric escape flushes the
// accumulated value and is then re-processed from the start state.
// End of input inside a numeric escape also flushes the accumulator;
// a trailing bare backslash is dropped.
func transformValue(raw string) string {
	out := make([]byte, 0, len(raw))
	state := escStart
	accum := 0
	for i := 0; i < len(raw); {
		c := raw[i]
		switch state {
		case escStart:
			if c == '\\' {
				accum = 0
				state = escEscape
			} else {
				out = append(out, c)
			}
			i++
		case escEscape:
			switch c {
			case 'b':
				out = append(out, '\b')
				state = escStart
			case 'e':
				out = append(out, 0x1b)
				state = escStart
			case 'f':
				out = append(out, '\f')
				state = escStart
			case 'n':
				out = append(out, '\n')
				state = escStart
			case 'r':
				out = append(out, '\r')
				state = escStart
			case 't':
				out = append(out, '\t')
				state = escStart
			case 'v':
				out = append(out, '\v')
				state = escStart
			case '\\':
				out = append(out, '\\')
				state = escStart
			case 'd':
				accum = 0
				state = escDecimal0
			case 'x':
				accum = 0
				state = escHex
			default:
				if isOctalDigit(c) {
					accum = int(c - '0')
					state = escOctal1
				} else {
					// Unknown escape: the backslash is
					// dropped and the byte kept as is.
					out = append(out, c)
					state = escStart
				}
			}
			i++
		case escDecimal0:
			if isDigit(c) {
				accum = int(c - '0')
				state = escDecimal1
				i++
			} else {
				out = append(out, byte(accum))
				state = escStart
			}
		case escDecimal1:
			if isDigit(c) {
				accum = accum*10 + int(c-'0')
				state = escDecimal2
				i++
			} else {
				out = append(out, byte(accum))
				state = escStart
			}
		case escDecimal2:
			if isDigit(c) {
				accum = accum*10 + int(c-'0')
				out = append(out, byte(accum))
				state = escStart
				i++
			} else {
				out = append(out, byte(accum))
				state = escStart
			}
		case escOctal1:
			if isOctalDigit(c) {
				accum = accum<<3 + int(c-'0')
				state = escOctal2
				i++
			} else {
				out = append(out, byte(accum))
				state = escStart
			}
		case escOctal2:
			if isOctalDigit(c) {
				accum = accum<<3 + int(c-'0')
				out = append(out, byte(accum))
				state = escStart
				i++
			} else {
				out = append(out, byte(accum))
				state = escStart
			}
		case escHex:
			if v, ok := hexValue(c); ok {
				accum = accum<<4 + v
				i++
			} else {
				out = append(out, byte(accum))
				state = escStart
			}
		}
	}
	switch state {
	case escDecimal0, escDecimal1, escDecimal2, escOctal1, escOctal2, escHex:
		out = append(out, byte(accum))
	}
	return string(out)
}
