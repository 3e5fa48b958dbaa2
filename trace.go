// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb

import (
	"github.com/creachadair/jcomb/input"
	"github.com/sirupsen/logrus"
)

// Trace returns a parser equivalent to p that logs each invocation of p to
// log at debug level, with the label of p and the position where it started.
// A second entry reports where p ended, or the failure it reported.
//
// Trace is meant for debugging grammars; it does not change the result of p.
func Trace[T any](p Parser[T], log logrus.FieldLogger) Parser[T] {
	return New(p.label, func(c input.Cursor) Result[T] {
		pos := c.Position()
		entry := log.WithFields(logrus.Fields{
			"label": p.label,
			"line":  pos.Line,
			"col":   pos.Column,
		})
		entry.Debug("parse")

		r := p.run(c)
		if r.err != nil {
			entry.WithFields(logrus.Fields{
				"ok":    false,
				"error": r.err.Message,
			}).Debug("parse failed")
		} else {
			end := r.rest.Position()
			entry.WithFields(logrus.Fields{
				"ok":       true,
				"end_line": end.Line,
				"end_col":  end.Column,
			}).Debug("parse done")
		}
		return r
	})
}
