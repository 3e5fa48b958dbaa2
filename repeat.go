// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"

	"github.com/creachadair/jcomb/input"
	"github.com/creachadair/mds/value"
)

// zeroOrMore runs p repeatedly from c until it fails, and returns the values
// collected along with the cursor before the failing attempt.
//
// A parser that succeeds without consuming input would repeat forever, so
// zeroOrMore panics if that happens.
func zeroOrMore[T any](p Parser[T], c input.Cursor) ([]T, input.Cursor) {
	out := []T{}
	for {
		r := p.run(c)
		if r.err != nil {
			return out, c
		} else if r.rest.Position() == c.Position() {
			panic(fmt.Sprintf("jcomb: repeated parser %q succeeded without consuming input at %v",
				p.label, c.Position()))
		}
		out = append(out, r.value)
		c = r.rest
	}
}

// Many returns a parser that matches p zero or more times, and returns the
// values in order. It always succeeds; the input consumed by a final failing
// attempt of p is not consumed by Many.
//
// The parser panics if p succeeds without consuming any input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return New("zero or many "+p.label, func(c input.Cursor) Result[[]T] {
		vs, rest := zeroOrMore(p, c)
		return Success(vs, rest)
	})
}

// Many1 is like Many, but p must match at least once. If the first attempt
// fails, Many1 reports that failure.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return New("many "+p.label, func(c input.Cursor) Result[[]T] {
		first := p.run(c)
		if first.err != nil {
			return failed[[]T](first)
		}
		vs, rest := zeroOrMore(p, first.rest)
		return Success(append([]T{first.value}, vs...), rest)
	})
}

// ManyChars is like Many, but collects the runes matched into a string.
func ManyChars(p Parser[rune]) Parser[string] {
	return Map(Many(p), func(rs []rune) string { return string(rs) })
}

// ManyChars1 is like Many1, but collects the runes matched into a string.
func ManyChars1(p Parser[rune]) Parser[string] {
	return Map(Many1(p), func(rs []rune) string { return string(rs) })
}

// Opt returns a parser that matches p zero or one times. If p succeeds, its
// value is present in the result; otherwise Opt succeeds with an absent value
// and consumes no input. Opt never fails.
func Opt[T any](p Parser[T]) Parser[value.Maybe[T]] {
	some := Map(p, value.Just[T])
	none := pure("absent", value.Absent[T]())
	return OrElse(some, none).named("optional " + p.label)
}

// SepBy1 returns a parser that matches one or more occurrences of p separated
// by sep, and returns the values of p in order. Every sep must be followed by
// a p; a separator with no following p is left unconsumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(AndThen(p, Many(Right(sep, p))), func(v Pair[T, []T]) []T {
		return append([]T{v.First}, v.Second...)
	})
}

// SepBy is like SepBy1, but succeeds with an empty slice if p does not match
// at all.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return OrElse(SepBy1(p, sep), pure("empty", []T{}))
}
