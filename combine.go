// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"

	"github.com/creachadair/jcomb/input"
)

// A Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Return returns a parser that consumes no input and always succeeds with x.
func Return[T any](x T) Parser[T] { return pure(fmt.Sprint(x), x) }

func pure[T any](label string, x T) Parser[T] {
	return New(label, func(c input.Cursor) Result[T] { return Success(x, c) })
}

// Map returns a parser that transforms the value of a successful parse by p
// with f. Failures from p are returned unaltered.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return New(p.label, func(c input.Cursor) Result[U] {
		r := p.run(c)
		if r.err != nil {
			return failed[U](r)
		}
		return Success(f(r.value), r.rest)
	})
}

// Bind returns a parser that runs p, and if p succeeds, passes its value to f
// to obtain the next parser, which continues on the input remaining after p.
// If p fails, f is not called and its failure is returned.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return New("unknown", func(c input.Cursor) Result[U] {
		r := p.run(c)
		if r.err != nil {
			return failed[U](r)
		}
		return f(r.value).run(r.rest)
	})
}

// AndThen returns a parser that runs p1 and then p2 on the remaining input,
// and returns both values. If either fails, the parser reports the failure of
// whichever ran first.
func AndThen[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return Bind(p1, func(a A) Parser[Pair[A, B]] {
		return Bind(p2, func(b B) Parser[Pair[A, B]] {
			return pure("", Pair[A, B]{First: a, Second: b})
		})
	}).named(p1.label + " andThen " + p2.label)
}

// Left is like AndThen, but keeps only the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(AndThen(p1, p2), func(p Pair[A, B]) A { return p.First })
}

// Right is like AndThen, but keeps only the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(AndThen(p1, p2), func(p Pair[A, B]) B { return p.Second })
}

// OrElse returns a parser that tries p1, and if it fails, tries p2 on the
// same input. If both fail, the failure of p2 is reported.
func OrElse[T any](p1, p2 Parser[T]) Parser[T] {
	return New(p1.label+" orElse "+p2.label, func(c input.Cursor) Result[T] {
		if r := p1.run(c); r.err == nil {
			return r
		}
		return p2.run(c)
	})
}

// Choice returns a parser that tries each of ps in order on the same input,
// and reports the first success. If all fail, the failure of the last is
// reported. Choice panics if ps is empty.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("jcomb: Choice requires at least one parser")
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = OrElse(out, p)
	}
	return out
}

// Apply returns a parser that runs fp and then xp, and applies the function
// produced by fp to the value produced by xp.
func Apply[T, U any](fp Parser[func(T) U], xp Parser[T]) Parser[U] {
	return Map(AndThen(fp, xp), func(p Pair[func(T) U, T]) U { return p.First(p.Second) })
}

// Lift2 returns a parser that runs xp and then yp, and combines their values
// with f.
func Lift2[A, B, C any](f func(A, B) C, xp Parser[A], yp Parser[B]) Parser[C] {
	curried := Map(xp, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	return Apply(curried, yp)
}

// Sequence returns a parser that runs each of ps in order, each on the input
// remaining after the one before, and returns their values in order. It
// stops at the first failure and reports it unaltered.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return New("sequence", func(c input.Cursor) Result[[]T] {
		out := make([]T, 0, len(ps))
		for _, p := range ps {
			r := p.run(c)
			if r.err != nil {
				return failed[[]T](r)
			}
			out = append(out, r.value)
			c = r.rest
		}
		return Success(out, c)
	})
}

// Between returns a parser that runs open, p, and close in order, and returns
// only the value of p.
func Between[A, T, B any](open Parser[A], p Parser[T], close Parser[B]) Parser[T] {
	return Left(Right(open, p), close)
}
