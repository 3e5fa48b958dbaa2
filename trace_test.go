// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcomb_test

import (
	"testing"

	"github.com/creachadair/jcomb"
	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestTrace(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	p := jcomb.Trace(jcomb.String("ab"), log)
	if got := p.Label(); got != "ab" {
		t.Errorf("Label: got %q, want ab", got)
	}

	checkResult(t, jcomb.Run(p, "abc"), "ab", at(0, 2), nil)
	checkResult(t, jcomb.Run(p, "ax"), "", at(0, 0), &jcomb.Failure{
		Label: "b", Message: "Unexpected 'x'", Pos: at(0, 1), Line: "ax",
	})

	type entry struct {
		Msg    string
		Fields logrus.Fields
	}
	var got []entry
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.DebugLevel {
			t.Errorf("Entry %q has level %v, want debug", e.Message, e.Level)
		}
		got = append(got, entry{Msg: e.Message, Fields: e.Data})
	}
	want := []entry{
		{"parse", logrus.Fields{"label": "ab", "line": 0, "col": 0}},
		{"parse done", logrus.Fields{"label": "ab", "line": 0, "col": 0, "ok": true, "end_line": 0, "end_col": 2}},
		{"parse", logrus.Fields{"label": "ab", "line": 0, "col": 0}},
		{"parse failed", logrus.Fields{"label": "ab", "line": 0, "col": 0, "ok": false, "error": "Unexpected 'x'"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Trace entries (-want, +got):\n%s", diff)
	}
}

func TestTraceQuiet(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)

	p := jcomb.Trace(jcomb.Many(jcomb.Char('a')), log)
	checkResult(t, jcomb.Run(p, "aaa"), []rune("aaa"), at(0, 3), nil)
	if n := len(hook.AllEntries()); n != 0 {
		t.Errorf("Got %d log entries above debug level, want 0", n)
	}
}
