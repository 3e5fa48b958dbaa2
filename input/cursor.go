// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package input implements an immutable line-indexed cursor over source text.
//
// A Cursor is a value: advancing it returns a new Cursor and leaves the
// original unchanged, so a parser can retry from any earlier cursor without
// undoing work. All cursors derived from the same text share its line storage.
package input

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/value"
)

// EndOfFile is the text reported by CurrentLine when the cursor is past the
// last line of its input.
const EndOfFile = "end of file"

// A Position describes the line number and column offset of a location in
// source text.
type Position struct {
	Line   int // line number, 0-based
	Column int // rune offset of column in line, 0-based
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// A line holds the text of a single input line and its decoded runes.
type line struct {
	text  string
	runes []rune
}

// A Cursor is a position within a sequence of input lines.
// The zero value is an empty input positioned at its end.
type Cursor struct {
	lines []line
	pos   Position
}

// FromText constructs a cursor at the beginning of text. Line breaks are
// normalized so that CRLF and LF both end a line. An empty text has no lines.
func FromText(text string) Cursor {
	if text == "" {
		return Cursor{}
	}
	parts := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]line, len(parts))
	for i, p := range parts {
		lines[i] = line{text: p, runes: []rune(p)}
	}
	return Cursor{lines: lines}
}

// Position reports the current position of c.
func (c Cursor) Position() Position { return c.pos }

// Lines returns a copy of the input lines of c, without line terminators.
func (c Cursor) Lines() []string {
	out := make([]string, len(c.lines))
	for i, ln := range c.lines {
		out[i] = ln.text
	}
	return out
}

// AtEnd reports whether c has no further input.
func (c Cursor) AtEnd() bool { return c.pos.Line >= len(c.lines) }

// CurrentLine returns the text of the line containing c, or EndOfFile if c is
// past the last line of input.
func (c Cursor) CurrentLine() string {
	if c.pos.Line < len(c.lines) {
		return c.lines[c.pos.Line].text
	}
	return EndOfFile
}

// Next returns the next rune of input along with a cursor advanced past it.
// At the end of each line, Next reports a synthetic '\n' and moves to the
// start of the following line. When no input remains, Next returns c
// unchanged and an absent rune.
func (c Cursor) Next() (Cursor, value.Maybe[rune]) {
	if c.AtEnd() {
		return c, value.Absent[rune]()
	}
	cur := c.lines[c.pos.Line].runes
	if c.pos.Column < len(cur) {
		next := c
		next.pos.Column++
		return next, value.Just(cur[c.pos.Column])
	}
	next := c
	next.pos = Position{Line: c.pos.Line + 1}
	return next, value.Just('\n')
}

// String renders a human-readable summary of c for debugging.
func (c Cursor) String() string {
	if c.AtEnd() {
		return fmt.Sprintf("%v (end of input)", c.pos)
	}
	rest := string(c.lines[c.pos.Line].runes[c.pos.Column:])
	const n = 8
	if r := []rune(rest); len(r) > n {
		rest = string(r[:n]) + "..."
	}
	return fmt.Sprintf("%v %q", c.pos, rest)
}
