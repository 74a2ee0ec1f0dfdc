//go:build demo
// +build demo

package framework

import (
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// chain builds a Shrinkable whose shrink path walks values in order, one
// shrink candidate at a time, stopping once values is exhausted. It stands
// in for the teacher's hand-rolled accept/reject shrinker callback, reworked
// around the tree-based Shrinkable model.
func chain(values []int) shrink.Shrinkable[int] {
	if len(values) == 0 {
		return shrink.Unshrinkable(0)
	}
	v, rest := values[0], values[1:]
	return shrink.Of(v, func() []shrink.Shrinkable[int] {
		if len(rest) == 0 {
			return nil
		}
		return []shrink.Shrinkable[int]{chain(rest)}
	})
}

// chainGenerator wraps chain as a gen.Generator-shaped func so it can feed
// arbitrary.FromGenerator, ignoring the random source since the whole
// sequence is fixed in advance.
func chainGenerator(values []int) func(*rng.Source) shrink.Shrinkable[int] {
	return func(*rng.Source) shrink.Shrinkable[int] {
		return chain(values)
	}
}
