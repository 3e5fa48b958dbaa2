// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the values produced by parsing JSON text.
//
// A Value is exactly one of Null, Bool, Number, String, Array, or Object.
// The set is closed: no other package can add a Value type, so a type switch
// over these six cases is exhaustive.
package ast

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jcomb/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as canonical JSON text. Object members are
	// rendered in order of their keys, and no whitespace is inserted.
	JSON() string

	// String returns the same text as JSON.
	String() string

	isValue()
}

// Null represents the null constant.
type Null struct{}

func (Null) isValue()         {}
func (Null) JSON() string     { return "null" }
func (n Null) String() string { return n.JSON() }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue()         {}
func (b Bool) JSON() string   { return strconv.FormatBool(bool(b)) }
func (b Bool) String() string { return b.JSON() }

// A Number is a numeric value.
type Number float64

func (Number) isValue() {}

// JSON renders n in decimal. Integral values of moderate magnitude are
// rendered without a fraction or exponent. Infinities, which arise from
// parsing numbers too large to represent, are rendered as an out-of-range
// literal that parses back to the same infinity.
func (n Number) JSON() string {
	f := float64(n)
	if math.IsInf(f, 1) {
		return "1e999"
	} else if math.IsInf(f, -1) {
		return "-1e999"
	} else if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
func (n Number) String() string { return n.JSON() }

// A String is a string value, with escapes already decoded.
type String string

func (String) isValue()         {}
func (s String) JSON() string   { return escape.Quote(mem.S(string(s))) }
func (s String) String() string { return s.JSON() }

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}
func (a Array) String() string { return a.JSON() }

// An Object is a collection of key-value members with unique keys.
type Object map[string]Value

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Keys returns the keys of o in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escape.Quote(mem.S(key)))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}
func (o Object) String() string { return o.JSON() }
