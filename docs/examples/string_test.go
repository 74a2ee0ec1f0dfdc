//go:build examples

// Package examples demonstrates how to use the arbit property-based testing
// library. These examples show various testing patterns and how the
// shrinking mechanism helps find minimal counterexamples when properties
// fail.
package examples

import (
	"testing"

	"github.com/arbitlab/arbit/arbitrary"
	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/prop"
)

// Test_String_FalsaRegra demonstrates a property-based test that is
// designed to fail. This test verifies a false property: "all generated
// strings are empty". This example shows how the shrinking mechanism will
// find a minimal counterexample when the property fails.
func Test_String_FalsaRegra(t *testing.T) {
	s := arbitrary.StringsOfLengthRange(gen.AlphabetAlphaNum, 0, 32)

	prop.ForAll(t, prop.Default(), s)(func(t *testing.T, s string) {
		if s != "" {
			t.Fatalf("expected empty string, got %q", s)
		}
	})
}
