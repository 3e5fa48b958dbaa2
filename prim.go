// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"unicode"

	"github.com/creachadair/jcomb/input"
)

// Satisfy returns a parser that consumes a single rune for which pred reports
// true. If the next rune does not satisfy pred, it fails with "Unexpected"; at
// the end of input it fails with "No more input". Either way the failure is
// reported at the position of the rejected rune.
func Satisfy(pred func(rune) bool, label string) Parser[rune] {
	return New(label, func(c input.Cursor) Result[rune] {
		next, ch := c.Next()
		r, ok := ch.GetOK()
		if !ok {
			return Fail[rune](failAt(label, "No more input", c))
		} else if !pred(r) {
			return Fail[rune](unexpected(label, r, c))
		}
		return Success(r, next)
	})
}

// Char returns a parser that matches exactly the rune want.
// Its label is the rune itself.
func Char(want rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == want }, string(want))
}

// AnyOf returns a parser that matches any one of the runes in chars, trying
// them from left to right. AnyOf panics if chars is empty.
func AnyOf(chars string) Parser[rune] {
	var ps []Parser[rune]
	for _, r := range chars {
		ps = append(ps, Char(r))
	}
	return Choice(ps...).WithLabel("any of " + chars)
}

// String returns a parser that matches the runes of s in order and returns s.
// If the input does not match, the failure is that of the first rune that
// differs.
func String(s string) Parser[string] {
	var ps []Parser[rune]
	for _, r := range s {
		ps = append(ps, Char(r))
	}
	return Map(Sequence(ps...), func(rs []rune) string { return string(rs) }).named(s)
}

// EOF is a parser that succeeds at the end of input. The line break that ends
// the final line of input is consumed; any other rune causes a failure.
//
// Text that ends with a line break has an empty final line, so the break
// after the last non-empty line is not the end of input. Consume trailing
// whitespace (for example with Spaces) before EOF to accept such text.
var EOF = New("end of input", func(c input.Cursor) Result[struct{}] {
	next, ch := c.Next()
	if r, ok := ch.GetOK(); ok && (r != '\n' || !next.AtEnd()) {
		return Fail[struct{}](unexpected("end of input", r, c))
	}
	return Success(struct{}{}, next)
})

// NotFollowedBy returns a parser that consumes no input. It fails with
// "Unexpected" if the next rune satisfies pred, and succeeds otherwise,
// including at the end of input.
func NotFollowedBy(pred func(rune) bool, label string) Parser[struct{}] {
	return New(label, func(c input.Cursor) Result[struct{}] {
		if _, ch := c.Next(); ch.Present() && pred(ch.Get()) {
			return Fail[struct{}](unexpected(label, ch.Get(), c))
		}
		return Success(struct{}{}, c)
	})
}

var (
	// Whitespace matches a single whitespace rune, as defined by unicode.IsSpace.
	// The synthetic newline at the end of each input line is whitespace.
	Whitespace = Satisfy(unicode.IsSpace, "whitespace")

	// Spaces matches zero or more whitespace runes.
	Spaces = ManyChars(Whitespace)

	// Spaces1 matches one or more whitespace runes.
	Spaces1 = ManyChars1(Whitespace)
)
