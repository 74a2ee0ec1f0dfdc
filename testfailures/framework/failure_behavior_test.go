//go:build demo
// +build demo

// Package framework contains tests that verify the framework's behavior
// when properties fail intentionally. These tests ensure that the framework
// correctly handles failures, shrinking, and parallel execution paths.
package framework

import (
	"testing"

	"github.com/arbitlab/arbit/arbitrary"
	"github.com/arbitlab/arbit/prop"
)

// TestForAll_SequentialFailureCodePath tests the sequential failure code path.
// This test verifies that the framework correctly handles failures in sequential mode.
func TestForAll_SequentialFailureCodePath(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    1,
		MaxShrink:   2,
		ShrinkStrat: "bfs",
		Parallelism: 1,
	}

	a := arbitrary.Constant(42)

	t.Run("failure_test", func(st *testing.T) {
		// This will trigger the failure path in runSequential
		prop.ForAll(st, config, a)(func(t *testing.T, val int) {
			t.Errorf("This should fail: got %d", val)
		})
	})
}

// TestForAll_SequentialFailureWithShrinking tests sequential failure with shrinking.
// This test verifies that the framework correctly handles shrinking in sequential mode.
func TestForAll_SequentialFailureWithShrinking(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    1,
		MaxShrink:   3,
		ShrinkStrat: "bfs",
		Parallelism: 1,
	}

	a := arbitrary.FromGenerator(chainGenerator([]int{5, 1, 2}))

	prop.ForAll(t, config, a)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}

// TestForAll_SequentialFailureWithShrinkingAcceptance tests sequential failure
// with shrinking and acceptance behavior.
func TestForAll_SequentialFailureWithShrinkingAcceptance(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    1,
		MaxShrink:   5,
		ShrinkStrat: "bfs",
		Parallelism: 1,
	}

	a := arbitrary.FromGenerator(chainGenerator([]int{10, 9, 8, 7}))

	prop.ForAll(t, config, a)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}

// TestForAll_SequentialStopOnFirstFailureFalse tests sequential execution
// with StopOnFirstFailure set to false.
func TestForAll_SequentialStopOnFirstFailureFalse(t *testing.T) {
	config := prop.Config{
		Seed:               12345,
		Examples:           3,
		MaxShrink:          2,
		ShrinkStrat:        "bfs",
		Parallelism:        1,
		StopOnFirstFailure: false,
	}

	a := arbitrary.Constant(42)

	prop.ForAll(t, config, a)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}
