// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb_test

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/input"
	"github.com/creachadair/mds/mtest"
)

var digit = jcomb.Satisfy(unicode.IsDigit, "digit")

func TestMapReturn(t *testing.T) {
	num := jcomb.Map(jcomb.ManyChars1(digit), func(s string) int {
		v, _ := strconv.Atoi(s)
		return v
	})
	checkResult(t, jcomb.Run(num, "123+"), 123, at(0, 3), nil)
	checkResult(t, jcomb.Run(num, "+"), 0, at(0, 0), &jcomb.Failure{
		Label: "digit", Message: "Unexpected '+'", Pos: at(0, 0), Line: "+",
	})

	ret := jcomb.Return(25)
	if got := ret.Label(); got != "25" {
		t.Errorf("Return label: got %q, want 25", got)
	}
	checkResult(t, jcomb.Run(ret, "abc"), 25, at(0, 0), nil)
	checkResult(t, jcomb.Run(ret, ""), 25, at(0, 0), nil)
}

func TestBind(t *testing.T) {
	// Read a count n, then exactly n letters.
	letter := jcomb.Satisfy(unicode.IsLetter, "letter")
	counted := jcomb.Bind(digit, func(r rune) jcomb.Parser[[]rune] {
		ps := make([]jcomb.Parser[rune], r-'0')
		for i := range ps {
			ps[i] = letter
		}
		return jcomb.Sequence(ps...)
	})
	if got := counted.Label(); got != "unknown" {
		t.Errorf("Label: got %q, want unknown", got)
	}
	checkResult(t, jcomb.Run(counted, "3abcd"), []rune("abc"), at(0, 4), nil)
	checkResult(t, jcomb.Run(counted, "0abcd"), []rune{}, at(0, 1), nil)
	checkResult(t, jcomb.Run(counted, "3ab1"), []rune(nil), at(0, 0), &jcomb.Failure{
		Label: "letter", Message: "Unexpected '1'", Pos: at(0, 3), Line: "3ab1",
	})

	called := false
	never := jcomb.Bind(digit, func(rune) jcomb.Parser[rune] {
		called = true
		return digit
	})
	if r := jcomb.Run(never, "x"); r.OK() {
		t.Errorf("Parse: got %v, want error", r.Value())
	}
	if called {
		t.Error("Bind called its continuation after a failure")
	}
}

func TestAndThen(t *testing.T) {
	ab := jcomb.AndThen(jcomb.Char('A'), jcomb.Char('B'))
	if got, want := ab.Label(), "A andThen B"; got != want {
		t.Errorf("Label: got %q, want %q", got, want)
	}
	checkResult(t, jcomb.Run(ab, "ABC"), jcomb.Pair[rune, rune]{First: 'A', Second: 'B'}, at(0, 2), nil)
	checkResult(t, jcomb.Run(ab, "ZBC"), jcomb.Pair[rune, rune]{}, at(0, 0), &jcomb.Failure{
		Label: "A", Message: "Unexpected 'Z'", Pos: at(0, 0), Line: "ZBC",
	})
	checkResult(t, jcomb.Run(ab, "AZC"), jcomb.Pair[rune, rune]{}, at(0, 0), &jcomb.Failure{
		Label: "B", Message: "Unexpected 'Z'", Pos: at(0, 1), Line: "AZC",
	})

	left := jcomb.Left(jcomb.Char('A'), jcomb.Char('B'))
	checkResult(t, jcomb.Run(left, "AB"), 'A', at(0, 2), nil)
	right := jcomb.Right(jcomb.Char('A'), jcomb.Char('B'))
	checkResult(t, jcomb.Run(right, "AB"), 'B', at(0, 2), nil)
	checkResult(t, jcomb.Run(right, "AC"), 0, at(0, 0), &jcomb.Failure{
		Label: "B", Message: "Unexpected 'C'", Pos: at(0, 1), Line: "AC",
	})
}

func TestOrElse(t *testing.T) {
	aOrB := jcomb.OrElse(jcomb.Char('A'), jcomb.Char('B'))
	if got, want := aOrB.Label(), "A orElse B"; got != want {
		t.Errorf("Label: got %q, want %q", got, want)
	}
	checkResult(t, jcomb.Run(aOrB, "AZZ"), 'A', at(0, 1), nil)
	checkResult(t, jcomb.Run(aOrB, "BZZ"), 'B', at(0, 1), nil)
	checkResult(t, jcomb.Run(aOrB, "CZZ"), 0, at(0, 0), &jcomb.Failure{
		Label: "B", Message: "Unexpected 'C'", Pos: at(0, 0), Line: "CZZ",
	})

	// The second alternative starts over from the original input, even when
	// the first consumed some of it before failing.
	abOrAc := jcomb.OrElse(jcomb.String("ab"), jcomb.String("ac"))
	checkResult(t, jcomb.Run(abOrAc, "ac"), "ac", at(0, 2), nil)
	checkResult(t, jcomb.Run(abOrAc, "ad"), "", at(0, 0), &jcomb.Failure{
		Label: "c", Message: "Unexpected 'd'", Pos: at(0, 1), Line: "ad",
	})
}

func TestChoice(t *testing.T) {
	abc := jcomb.Choice(jcomb.Char('A'), jcomb.Char('B'), jcomb.Char('C'))
	for _, in := range []string{"A", "B", "C"} {
		checkResult(t, jcomb.Run(abc, in), []rune(in)[0], at(0, 1), nil)
	}
	checkResult(t, jcomb.Run(abc, "D"), 0, at(0, 0), &jcomb.Failure{
		Label: "C", Message: "Unexpected 'D'", Pos: at(0, 0), Line: "D",
	})

	// Leftmost match wins, even if a later choice would consume more.
	short := jcomb.Choice(jcomb.String("a"), jcomb.String("ab"))
	checkResult(t, jcomb.Run(short, "ab"), "a", at(0, 1), nil)

	one := jcomb.Choice(jcomb.Char('Q'))
	checkResult(t, jcomb.Run(one, "Q"), 'Q', at(0, 1), nil)

	mtest.MustPanic(t, func() { jcomb.Choice[rune]() })
}

func TestApplyLift2(t *testing.T) {
	inc := jcomb.Return(func(r rune) int { return int(r-'0') + 1 })
	checkResult(t, jcomb.Run(jcomb.Apply(inc, digit), "4"), 5, at(0, 1), nil)

	add := func(a, b rune) int { return int(a-'0') + int(b-'0') }
	sum := jcomb.Lift2(add, digit, digit)
	checkResult(t, jcomb.Run(sum, "12"), 3, at(0, 2), nil)
	checkResult(t, jcomb.Run(sum, "1x"), 0, at(0, 0), &jcomb.Failure{
		Label: "digit", Message: "Unexpected 'x'", Pos: at(0, 1), Line: "1x",
	})
}

func TestSequence(t *testing.T) {
	abc := jcomb.Sequence(jcomb.Char('A'), jcomb.Char('B'), jcomb.Char('C'))
	checkResult(t, jcomb.Run(abc, "ABCD"), []rune("ABC"), at(0, 3), nil)
	checkResult(t, jcomb.Run(abc, "ABD"), []rune(nil), at(0, 0), &jcomb.Failure{
		Label: "C", Message: "Unexpected 'D'", Pos: at(0, 2), Line: "ABD",
	})
	checkResult(t, jcomb.Run(jcomb.Sequence[rune](), "ABC"), []rune{}, at(0, 0), nil)

	// A sequence may span lines, including the line break between them.
	span := jcomb.Sequence(jcomb.Char('A'), jcomb.Char('\n'), jcomb.Char('B'))
	checkResult(t, jcomb.Run(span, "A\r\nB"), []rune("A\nB"), at(1, 1), nil)
}

func TestWithLabel(t *testing.T) {
	p := jcomb.AndThen(jcomb.Char('A'), jcomb.Char('B')).WithLabel("AB")
	if got := p.Label(); got != "AB" {
		t.Errorf("Label: got %q, want AB", got)
	}
	checkResult(t, jcomb.Run(p, "AB"), jcomb.Pair[rune, rune]{First: 'A', Second: 'B'}, at(0, 2), nil)

	// The label is replaced, but the message and position are preserved.
	checkResult(t, jcomb.Run(p, "AC"), jcomb.Pair[rune, rune]{}, at(0, 0), &jcomb.Failure{
		Label: "AB", Message: "Unexpected 'C'", Pos: at(0, 1), Line: "AC",
	})

	// Relabelling does not affect the original parser.
	orig := jcomb.Char('A')
	_ = orig.WithLabel("other")
	if got := orig.Label(); got != "A" {
		t.Errorf("Original label: got %q, want A", got)
	}
}

// list ::= "(" [item {"," item}] ")"
// item ::= digit | list
type node struct {
	Digit rune
	List  []node
}

var item jcomb.Parser[node]

func init() {
	leaf := jcomb.Map(digit, func(r rune) node { return node{Digit: r} })
	list := jcomb.Map(jcomb.Between(
		jcomb.Char('('),
		jcomb.SepBy(jcomb.Lazy("item", &item), jcomb.Char(',')),
		jcomb.Char(')'),
	), func(ns []node) node { return node{List: ns} })
	item = jcomb.OrElse(leaf, list)
}

func TestLazy(t *testing.T) {
	checkResult(t, jcomb.Run(item, "(1,(2,()),3)"), node{List: []node{
		{Digit: '1'},
		{List: []node{{Digit: '2'}, {List: []node{}}}},
		{Digit: '3'},
	}}, at(0, 12), nil)

	checkResult(t, jcomb.Run(item, "(1,(2,x))"), node{}, at(0, 0), &jcomb.Failure{
		Label: ")", Message: "Unexpected ','", Pos: at(0, 2), Line: "(1,(2,x))",
	})

	var undefined jcomb.Parser[int]
	lazy := jcomb.Lazy("undefined", &undefined)
	if got := lazy.Label(); got != "undefined" {
		t.Errorf("Label: got %q, want undefined", got)
	}
	mtest.MustPanic(t, func() { jcomb.Run(lazy, "1") })
}

func TestParseIsPure(t *testing.T) {
	p := jcomb.Sequence(jcomb.Char('A'), jcomb.Char('B'))
	c := input.FromText("AB")
	r1 := p.Parse(c)
	r2 := p.Parse(c)
	if !r1.OK() || !r2.OK() {
		t.Fatalf("Parse failed: %v, %v", r1.Err(), r2.Err())
	}
	if string(r1.Value()) != string(r2.Value()) || r1.Rest().Position() != r2.Rest().Position() {
		t.Errorf("Parse is not repeatable: %v vs. %v", r1, r2)
	}
	if c.Position() != at(0, 0) {
		t.Errorf("Cursor moved to %v", c.Position())
	}
}
