// Package cook computes the cooked value of a template literal chunk from its
// raw source text.
package cook

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Cook processes the escape sequences of a raw template chunk and normalizes
// line terminators to "\n". It is total: malformed hexadecimal escapes
// produce U+FFFD. Escapes are evaluated as UTF-16 code units, so a pair of
// \u escapes forming a surrogate pair yields one astral character, and lone
// surrogates become U+FFFD.
func Cook(raw string) string {
	if !strings.ContainsAny(raw, "\\\r\u2028\u2029") {
		return raw
	}

	runes := []rune(raw)
	units := make([]uint16, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\\':
			i++
			if i >= len(runes) {
				break
			}

			var consumed int

			units, consumed = escape(units, runes[i:])
			i += consumed
		case isLineTerminator(ch):
			if ch == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}

			units = append(units, '\n')
		default:
			units = appendRune(units, ch)
		}
	}

	return string(utf16.Decode(units))
}

// escape appends the code units of the escape sequence starting at seq[0],
// the character after the backslash. It returns how many runes beyond seq[0]
// the sequence used.
func escape(units []uint16, seq []rune) ([]uint16, int) {
	switch ch := seq[0]; ch {
	case 'n':
		return append(units, '\n'), 0
	case 'r':
		return append(units, '\r'), 0
	case 't':
		return append(units, '\t'), 0
	case 'b':
		return append(units, '\b'), 0
	case 'f':
		return append(units, '\f'), 0
	case 'v':
		return append(units, '\v'), 0
	case '0':
		return append(units, 0), 0
	case 'x':
		cp, ok := hexValue(seq[1:], 2)

		return appendCodePoint(units, cp, ok), 2
	case 'u':
		if len(seq) > 1 && seq[1] == '{' {
			end := 2
			for end < len(seq) && hexDigit(seq[end]) >= 0 {
				end++
			}

			if end == len(seq) || seq[end] != '}' {
				return append(units, utf8.RuneError), end - 1
			}

			cp, ok := hexValue(seq[2:end], end-2)

			return appendCodePoint(units, cp, ok), end
		}

		cp, ok := hexValue(seq[1:], 4)

		return appendCodePoint(units, cp, ok), 4
	case '\r':
		// Line continuation; \r\n counts as one terminator.
		if len(seq) > 1 && seq[1] == '\n' {
			return units, 1
		}

		return units, 0
	case '\n', '\u2028', '\u2029':
		return units, 0
	default:
		return appendRune(units, ch), 0
	}
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}

// hexValue parses exactly n hexadecimal digits from the start of digits.
func hexValue(digits []rune, n int) (rune, bool) {
	if n == 0 || len(digits) < n {
		return 0, false
	}

	var v rune

	for _, d := range digits[:n] {
		h := hexDigit(d)
		if h < 0 || v > utf8.MaxRune {
			return 0, false
		}

		v = v<<4 | h
	}

	return v, v <= utf8.MaxRune
}

func hexDigit(d rune) rune {
	switch {
	case d >= '0' && d <= '9':
		return d - '0'
	case d >= 'a' && d <= 'f':
		return d - 'a' + 10
	case d >= 'A' && d <= 'F':
		return d - 'A' + 10
	default:
		return -1
	}
}

// appendCodePoint appends cp as UTF-16. Values in the surrogate range stay
// single code units so that escaped pairs combine when decoded.
func appendCodePoint(units []uint16, cp rune, ok bool) []uint16 {
	if !ok {
		return append(units, utf8.RuneError)
	}

	if cp <= 0xFFFF {
		return append(units, uint16(cp))
	}

	return appendRune(units, cp)
}

func appendRune(units []uint16, r rune) []uint16 {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
		return append(units, uint16(r1), uint16(r2))
	}

	return append(units, uint16(r))
}
