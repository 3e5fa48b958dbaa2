// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"

	"github.com/creachadair/jcomb/input"
)

// A Result is the outcome of running a parser. Exactly one of its variants is
// populated: a success carries a value and the remaining input, a failure
// carries a *Failure describing where and why the parse stopped.
//
// The zero Result is not valid; construct results with Success or Fail.
type Result[T any] struct {
	value T
	rest  input.Cursor
	err   *Failure
}

// Success returns a successful result with value v and remaining input rest.
func Success[T any](v T, rest input.Cursor) Result[T] { return Result[T]{value: v, rest: rest} }

// Fail returns a failed result carrying f, which must be non-nil.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		panic("jcomb: Fail with nil failure")
	}
	return Result[T]{err: f}
}

// OK reports whether r is a success.
func (r Result[T]) OK() bool { return r.err == nil }

// Value returns the value of a successful result, or the zero value of T if r
// is a failure.
func (r Result[T]) Value() T { return r.value }

// Rest returns the remaining input of a successful result. For a failure, it
// returns a zero cursor.
func (r Result[T]) Rest() input.Cursor { return r.rest }

// Err returns the failure of r, or nil if r is a success.
//
// Note that the concrete type is *Failure: check it against nil before
// converting it to an error.
func (r Result[T]) Err() *Failure { return r.err }

// Match calls ok with the value and remaining input if r is a success, or
// fail with the failure otherwise. Exactly one of the functions is called.
func (r Result[T]) Match(ok func(T, input.Cursor), fail func(*Failure)) {
	if r.err != nil {
		fail(r.err)
	} else {
		ok(r.value, r.rest)
	}
}

// String renders r for debugging.
func (r Result[T]) String() string {
	if r.err != nil {
		return "Failure: " + r.err.Error()
	}
	return fmt.Sprintf("Success: %v (rest at %v)", r.value, r.rest.Position())
}

// failed converts a failed result into a failure of another value type.
func failed[U, T any](r Result[T]) Result[U] { return Result[U]{err: r.err} }
