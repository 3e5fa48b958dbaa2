// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"fmt"
	"strings"

	"github.com/creachadair/jcomb/input"
)

// Failure is the concrete type of errors reported by parsers.
type Failure struct {
	Label   string         // the label of the parser that failed
	Message string         // what went wrong
	Pos     input.Position // where it went wrong
	Line    string         // the text of the line containing Pos
}

// failAt constructs a failure at the current position of c.
func failAt(label, msg string, c input.Cursor) *Failure {
	return &Failure{
		Label:   label,
		Message: msg,
		Pos:     c.Position(),
		Line:    c.CurrentLine(),
	}
}

// unexpected constructs the failure for a rejected rune.
func unexpected(label string, r rune, c input.Cursor) *Failure {
	return failAt(label, fmt.Sprintf("Unexpected '%c'", r), c)
}

// Error satisfies the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("Line:%d Col:%d Error parsing %s: %s", f.Pos.Line, f.Pos.Column, f.Label, f.Message)
}

// Report renders a multi-line diagnostic for f, showing the offending line
// with a caret under the failing column:
//
//	Line:0 Col:3 Error parsing null
//	nulp
//	   ^Unexpected 'p'
func (f *Failure) Report() string {
	return fmt.Sprintf("Line:%d Col:%d Error parsing %s\n%s\n%s^%s",
		f.Pos.Line, f.Pos.Column, f.Label, f.Line, strings.Repeat(" ", f.Pos.Column), f.Message)
}

// PrintResult renders r for a human reader. A success renders its value with
// fmt.Sprint; a failure renders the Report of its failure.
func PrintResult[T any](r Result[T]) string {
	if r.err != nil {
		return r.err.Report()
	}
	return fmt.Sprint(r.value)
}
