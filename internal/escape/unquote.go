// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// ParseHex decodes data as an unsigned hexadecimal value. Both upper- and
// lower-case digits are accepted.
func ParseHex(data mem.RO) (rune, error) {
	if data.Len() == 0 {
		return 0, fmt.Errorf("empty hex value")
	}
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// JoinRunes returns the string of the runes in rs. A high surrogate followed
// by a low surrogate is combined into the code point they encode in UTF-16.
// Any other surrogate is replaced by the Unicode replacement rune.
func JoinRunes(rs []rune) string {
	var buf strings.Builder
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if utf16.IsSurrogate(r) && i+1 < len(rs) {
			if d := utf16.DecodeRune(r, rs[i+1]); d != utf8.RuneError {
				buf.WriteRune(d)
				i++
				continue
			}
		}
		buf.WriteRune(r) // N.B. WriteRune replaces a lone surrogate
	}
	return buf.String()
}
