// Package testutil defines support code for unit tests.
package testutil

import (
	"math"
	"testing"

	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/jsonp"
	"github.com/google/go-cmp/cmp"
)

// EquateNumbers returns a cmp.Option that treats two ast.Number values as
// equal if they differ by no more than the given fraction of the larger
// magnitude. Infinities of the same sign are equal.
func EquateNumbers(fraction float64) cmp.Option {
	return cmp.Comparer(func(a, b ast.Number) bool {
		x, y := float64(a), float64(b)
		if x == y {
			return true
		}
		return math.Abs(x-y) <= fraction*math.Max(math.Abs(x), math.Abs(y))
	})
}

// MustParse parses text as a JSON document, and fails t if it is not valid.
func MustParse(t testing.TB, text string) ast.Value {
	t.Helper()
	v, err := jsonp.Parse(text)
	if err != nil {
		t.Fatalf("Parse %q: unexpected error: %v", text, err)
	}
	return v
}
