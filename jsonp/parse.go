// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonp

import (
	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast"
	"github.com/tailscale/hujson"
)

// document is a complete input: a single value with optional surrounding
// whitespace, and nothing else.
var document = jcomb.Between(ws, jcomb.Left(Value, ws), jcomb.EOF)

// Parse parses text as a single JSON value. Whitespace (space, tab, and line
// breaks) is permitted before and after the value, but no other input. In
// case of error, the concrete type of the error is *jcomb.Failure.
func Parse(text string) (ast.Value, error) {
	r := jcomb.Run(document, text)
	if f := r.Err(); f != nil {
		return nil, f
	}
	return r.Value(), nil
}

// ParseLenient is like Parse, but also accepts JSON With Commas and Comments
// (JWCC): line and block comments, and trailing commas in arrays and objects.
// The extensions are replaced with whitespace before parsing, so the lines
// and columns of any failure refer to the original text.
func ParseLenient(text string) (ast.Value, error) {
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		// The input is not valid JWCC, so let the grammar report the problem.
		return Parse(text)
	}
	return Parse(string(std))
}
