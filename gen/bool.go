package gen

import (
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Bool generates booleans uniformly, shrinking true toward false (the
// conventionally "smaller" counterexample).
func Bool() Generator[bool] {
	return func(src *rng.Source) shrink.Shrinkable[bool] {
		v := src.Bool(0.5)
		return boolShrinkNode(v)
	}
}

func boolShrinkNode(base bool) shrink.Shrinkable[bool] {
	return shrink.Of(base, func() []shrink.Shrinkable[bool] {
		if !base {
			return nil
		}
		return []shrink.Shrinkable[bool]{shrink.Unshrinkable(false)}
	})
}
