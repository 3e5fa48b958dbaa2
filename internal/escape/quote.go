// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of JSON strings and decoding of the
// components of JSON escape sequences.
package escape

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote encodes src as a JSON string, with escapes and enclosing double
// quotation marks. Every escape it emits is one that the jsonp grammar
// accepts, so a quoted string parses back to src.
func Quote(src mem.RO) string {
	var buf strings.Builder
	buf.Grow(src.Len() + 2)
	buf.WriteByte('"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r == '\\' || r == '"':
			buf.WriteByte('\\')
			buf.WriteByte(byte(r))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf.WriteByte('\\')
				buf.WriteByte(b)
			} else {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigit[r>>4])
				buf.WriteByte(hexDigit[r&15])
			}
		case r == utf8.RuneError:
			buf.WriteString(`\ufffd`)
		case r == '\u2028':
			buf.WriteString(`\u2028`)
		case r == '\u2029':
			buf.WriteString(`\u2029`)
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
