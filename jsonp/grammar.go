// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonp implements a JSON parser built from the combinators of the
// jcomb package.
//
// Each rule of the grammar is exported as a parser that produces an
// ast.Value. The Value rule accepts any JSON value; the others accept only
// their own kind. Rules consume whitespace at structural boundaries inside
// arrays and objects, but not before or after a value. Use Parse to parse a
// complete document.
//
// A failure from a rule carries the label of the rule ("null", "bool",
// "quoted string", "number", "array", "object") along with the position and
// message of the innermost failure that ended the parse.
package jsonp

import (
	"strconv"
	"strings"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/internal/escape"
	"github.com/creachadair/mds/value"

	"go4.org/mem"
)

type parser = jcomb.Parser[ast.Value]

// anyValue is the forward reference through which arrays and objects parse
// their elements. It is assigned once the grammar is complete.
var anyValue parser

func init() { anyValue = Value }

var (
	// Null parses the constant null.
	Null = constant("null", ast.Null{}).WithLabel("null")

	// Bool parses the constants true and false.
	Bool = jcomb.OrElse(
		constant("true", ast.Bool(true)),
		constant("false", ast.Bool(false)),
	).WithLabel("bool")

	// String parses a quoted string, decoding escape sequences.
	String = jcomb.Map(quotedString, func(s string) ast.Value {
		return ast.String(s)
	}).WithLabel("quoted string")

	// Number parses a number: an optional minus sign, an integer part without
	// extra leading zeroes, an optional fraction, and an optional exponent.
	Number = jcomb.Map(
		jcomb.Sequence(numSign, numInt, numFrac, numExp),
		func(parts []string) ast.Value {
			// The grammar admits only valid syntax, so the only possible error is
			// a range error, for which ParseFloat returns a signed infinity.
			v, _ := strconv.ParseFloat(strings.Join(parts, ""), 64)
			return ast.Number(v)
		}).WithLabel("number")

	// Array parses a bracketed, comma-separated sequence of values.
	// A comma must be followed by a value.
	Array = jcomb.Map(
		jcomb.Between(token('['), jcomb.SepBy(element, token(',')), token(']')),
		func(vs []ast.Value) ast.Value { return ast.Array(vs) },
	).WithLabel("array")

	// Object parses a braced, comma-separated sequence of "key": value members.
	// If a key occurs more than once, the last occurrence wins.
	Object = jcomb.Map(
		jcomb.Between(token('{'), jcomb.SepBy(member, token(',')), token('}')),
		func(ms []jcomb.Pair[string, ast.Value]) ast.Value {
			obj := make(ast.Object, len(ms))
			for _, m := range ms {
				obj[m.First] = m.Second
			}
			return obj
		},
	).WithLabel("object")

	// Value parses any JSON value.
	Value = jcomb.Choice(Null, Bool, String, Number, Array, Object)
)

// constant parses the literal text and produces v.
func constant(text string, v ast.Value) parser {
	return jcomb.Map(jcomb.String(text), func(string) ast.Value { return v })
}

// ws matches insignificant whitespace between tokens. Only space, tab, and
// line breaks count; other Unicode spaces are not JSON whitespace.
var ws = jcomb.ManyChars(jcomb.AnyOf(" \t\n\r"))

// token parses the punctuation rune r and any whitespace following it.
func token(r rune) jcomb.Parser[rune] { return jcomb.Left(jcomb.Char(r), ws) }

var (
	// element is a value inside an array or object, with trailing whitespace.
	element = jcomb.Left(jcomb.Lazy("value", &anyValue), ws)

	// member is a "key": value pair of an object.
	member = jcomb.AndThen(
		jcomb.Left(jcomb.Left(quotedString, ws), token(':')),
		element,
	)
)

// Strings

var (
	quote = jcomb.Char('"').WithLabel("quote")

	unescapedChar = jcomb.Satisfy(func(r rune) bool {
		return r != '"' && r != '\\'
	}, "char")

	escapedChar = jcomb.Choice(
		escaped(`\"`, '"'),
		escaped(`\\`, '\\'),
		escaped(`\/`, '/'),
		escaped(`\b`, '\b'),
		escaped(`\f`, '\f'),
		escaped(`\n`, '\n'),
		escaped(`\r`, '\r'),
		escaped(`\t`, '\t'),
	).WithLabel("escaped char")

	hexDigit = jcomb.AnyOf("0123456789ABCDEFabcdef")

	// unicodeChar decodes \uXXXX to the code point XXXX. Surrogate halves are
	// combined when the string is assembled.
	unicodeChar = jcomb.Right(
		jcomb.String(`\u`),
		jcomb.Map(jcomb.Sequence(hexDigit, hexDigit, hexDigit, hexDigit), func(ds []rune) rune {
			r, err := escape.ParseHex(mem.S(string(ds)))
			if err != nil {
				panic(err) // unreachable: the digits were matched by hexDigit
			}
			return r
		}),
	)

	stringChar = jcomb.Choice(unescapedChar, escapedChar, unicodeChar)

	quotedString = jcomb.Map(
		jcomb.Between(quote, jcomb.Many(stringChar), quote),
		escape.JoinRunes,
	)
)

// escaped parses the two-character escape sequence seq and produces r.
func escaped(seq string, r rune) jcomb.Parser[rune] {
	return jcomb.Map(jcomb.String(seq), func(string) rune { return r })
}

// Numbers. Each part produces its source text, or "" if it is absent.

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

var (
	digit = jcomb.Satisfy(isDigit, "digit")

	numSign = jcomb.Map(jcomb.Opt(jcomb.Char('-')), func(m value.Maybe[rune]) string {
		if m.Present() {
			return "-"
		}
		return ""
	})

	// A zero integer part may not be followed by more digits.
	numZero = jcomb.Left(jcomb.String("0"), jcomb.NotFollowedBy(isDigit, "digit"))

	numNonZero = jcomb.Lift2(func(first rune, rest string) string {
		return string(first) + rest
	}, jcomb.Satisfy(func(r rune) bool { return '1' <= r && r <= '9' }, "1-9"), jcomb.ManyChars(digit))

	numInt = jcomb.OrElse(numZero, numNonZero)

	numFrac = optionalPart(jcomb.Char('.'), jcomb.ManyChars1(digit))

	numExp = optionalPart(jcomb.AnyOf("eE"), jcomb.Lift2(func(sign value.Maybe[rune], ds string) string {
		if s, ok := sign.GetOK(); ok {
			return string(s) + ds
		}
		return ds
	}, jcomb.Opt(jcomb.AnyOf("+-")), jcomb.ManyChars1(digit)))
)

// optionalPart parses lead followed by body and produces their combined
// text, or produces "" if lead does not match. Once lead has matched, body is
// required: a failure of body is a failure of the part.
func optionalPart(lead jcomb.Parser[rune], body jcomb.Parser[string]) jcomb.Parser[string] {
	absent := jcomb.Return("")
	return jcomb.Bind(jcomb.Opt(lead), func(m value.Maybe[rune]) jcomb.Parser[string] {
		r, ok := m.GetOK()
		if !ok {
			return absent
		}
		return jcomb.Map(body, func(s string) string { return string(r) + s })
	})
}
