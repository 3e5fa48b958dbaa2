// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import "github.com/creachadair/jcomb/input"

// A Parser consumes a prefix of its input and reports a Result. A Parser is
// an immutable value: it is constructed once per grammar rule and may be run
// any number of times, including concurrently.
//
// The zero Parser is not valid; construct parsers with New or with the
// combinators of this package.
type Parser[T any] struct {
	run   func(input.Cursor) Result[T]
	label string
}

// New constructs a parser with the given label from a function that parses a
// prefix of its input. The function must not retain or modify shared state.
func New[T any](label string, run func(input.Cursor) Result[T]) Parser[T] {
	return Parser[T]{run: run, label: label}
}

// Parse runs p on the input at c.
func (p Parser[T]) Parse(c input.Cursor) Result[T] { return p.run(c) }

// Label returns the label of p.
func (p Parser[T]) Label() string { return p.label }

// WithLabel returns a copy of p with the given label. A failure reported by
// the new parser carries label in place of the label of the original failure,
// with its message and position unchanged. Successes are not affected.
func (p Parser[T]) WithLabel(label string) Parser[T] {
	return New(label, func(c input.Cursor) Result[T] {
		r := p.run(c)
		if r.err != nil {
			f := *r.err
			f.Label = label
			return Fail[T](&f)
		}
		return r
	})
}

// named returns a copy of p whose label is changed without rewriting the
// labels of its failures.
func (p Parser[T]) named(label string) Parser[T] { return Parser[T]{run: p.run, label: label} }

// Run parses text with p, starting at the beginning of the input.
// The result does not require p to consume all of text.
func Run[T any](p Parser[T], text string) Result[T] { return p.run(input.FromText(text)) }

// Lazy returns a parser that runs *p when it is invoked, rather than when it
// is constructed. This permits a grammar to refer to a rule that is not yet
// defined, as in recursive grammars:
//
//	var value jcomb.Parser[Node]
//	list := jcomb.Between(open, jcomb.SepBy(jcomb.Lazy("value", &value), comma), close)
//	value = jcomb.Choice(atom, list)
//
// Running the parser before *p has been assigned panics.
func Lazy[T any](label string, p *Parser[T]) Parser[T] {
	return New(label, func(c input.Cursor) Result[T] {
		if p.run == nil {
			panic("jcomb: unresolved forward reference to " + label)
		}
		return p.run(c)
	})
}
