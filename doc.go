// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jcomb implements a parser combinator engine with line and column
// accurate diagnostics.
//
// # Parsers
//
// A Parser[T] consumes a prefix of its input and reports a Result[T]: either
// a value of type T together with the remaining input, or a *Failure. Input
// is presented as an immutable input.Cursor, so a parser that fails never
// needs to undo anything: an alternative simply runs again from the cursor
// the first attempt started at.
//
// Construct parsers from primitives and combine them:
//
//	digit := jcomb.Satisfy(unicode.IsDigit, "digit")
//	num := jcomb.Map(jcomb.ManyChars1(digit), func(s string) int {
//	   v, _ := strconv.Atoi(s)
//	   return v
//	})
//	list := jcomb.Between(jcomb.Char('['), jcomb.SepBy(num, jcomb.Char(',')), jcomb.Char(']'))
//
// To parse a string, call Run:
//
//	r := jcomb.Run(list, "[1,2,3]")
//	if err := r.Err(); err != nil {
//	   log.Fatal(err.Report())
//	}
//	fmt.Println(r.Value()) // [1 2 3]
//
// # Combinators
//
// The combinators fall into a few groups:
//
//	Group       | Functions                              | Description
//	----------- | -------------------------------------- | ------------------------------
//	primitive   | Satisfy, Char, AnyOf, String, EOF      | match single runes or literals
//	sequencing  | Bind, AndThen, Left, Right, Sequence   | run parsers one after another
//	alternation | OrElse, Choice, Opt                    | try parsers on the same input
//	transform   | Map, Return, Apply, Lift2              | compute values from results
//	repetition  | Many, Many1, SepBy, SepBy1, Between    | match repeated structure
//	recursion   | Lazy                                   | refer to a rule defined later
//
// # Labels and diagnostics
//
// Every parser has a label. A failure carries the label of the parser that
// produced it, a message ("No more input" or "Unexpected 'c'"), and the
// position of the failure. Use WithLabel to give a composite rule a readable
// name in its failures:
//
//	null := jcomb.String("null").WithLabel("null")
//
// PrintResult and Failure.Report render a failure with the offending line and
// a caret under the failing column:
//
//	Line:0 Col:3 Error parsing null
//	nulp
//	   ^Unexpected 'p'
//
// # Termination
//
// Many and Many1 panic if the repeated parser succeeds without consuming any
// input, since such a repetition would never end. Recursion depth is bounded
// only by the stack.
package jcomb
