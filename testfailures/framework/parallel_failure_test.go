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

// TestForAll_ParallelFailure tests failure scenarios in runParallel.
// This test verifies that the framework correctly handles failures in parallel mode.
func TestForAll_ParallelFailure(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    3,
		MaxShrink:   5,
		ShrinkStrat: "bfs",
		Parallelism: 2,
	}

	a := arbitrary.Constant(42)

	// This should fail and trigger the parallel failure path
	prop.ForAll(t, config, a)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}

// TestForAll_ParallelFailureWithShrinking tests parallel failure with shrinking.
// This test verifies that the framework correctly handles shrinking in parallel mode.
func TestForAll_ParallelFailureWithShrinking(t *testing.T) {
	config := prop.Config{
		Seed:        12345,
		Examples:    2,
		MaxShrink:   3,
		ShrinkStrat: "bfs",
		Parallelism: 2,
	}

	a := arbitrary.FromGenerator(chainGenerator([]int{5, 1, 2}))

	// This should fail and trigger parallel shrinking
	prop.ForAll(t, config, a)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}

// TestForAll_ParallelStopOnFirstFailureFalse tests parallel execution
// with StopOnFirstFailure set to false.
func TestForAll_ParallelStopOnFirstFailureFalse(t *testing.T) {
	config := prop.Config{
		Seed:               12345,
		Examples:           3,
		MaxShrink:          2,
		ShrinkStrat:        "bfs",
		Parallelism:        2,
		StopOnFirstFailure: false,
	}

	a := arbitrary.Constant(42)

	prop.ForAll(t, config, a)(func(t *testing.T, val int) {
		t.Errorf("This should fail: got %d", val)
	})
}
