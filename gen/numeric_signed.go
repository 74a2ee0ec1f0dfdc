package gen

import (
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// signedInt is the constraint for the signed integer types this module
// generates values of.
type signedInt interface{ ~int | ~int32 | ~int64 }

// Int generates ints uniformly in [lo, hi] (inclusive) with integrated
// shrinking toward the target defined in shrinkTarget: 0 if 0 ∈ [lo,hi],
// else the bound nearest zero. Shrink candidates are the target itself,
// a bisection series toward it, and a unit step toward it — the teacher's
// closure-based heuristic rebuilt as a Shrinkable tree. Every candidate
// is strictly closer to the target than the value it shrinks.
func Int(lo, hi int) Generator[int] {
	return signedIntGen(lo, hi)
}

// Int64 generates int64s uniformly in [lo, hi] with the same shrink
// heuristic as Int.
func Int64(lo, hi int64) Generator[int64] {
	return signedIntGen(lo, hi)
}

func signedIntGen[T signedInt](lo, hi T) Generator[T] {
	if lo > hi {
		lo, hi = hi, lo
	}
	target := signedTarget(lo, hi)
	return func(src *rng.Source) shrink.Shrinkable[T] {
		v := lo + T(src.Int63n(int64(hi-lo)+1))
		return signedShrinkNode(v, lo, hi, target)
	}
}

func signedTarget[T signedInt](lo, hi T) T {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if lo > 0 {
		return lo
	}
	return hi
}

// signedShrinkNode builds the shrink tree for a single value: target,
// then a bisection series toward target, then a unit step — each only if
// distinct from base and in range, deduplicated within this node's
// children. The target itself has no children.
func signedShrinkNode[T signedInt](base, lo, hi, target T) shrink.Shrinkable[T] {
	return shrink.Of(base, func() []shrink.Shrinkable[T] {
		seen := map[T]struct{}{base: {}}
		var order []T
		push := func(x T) {
			if x < lo || x > hi {
				return
			}
			if _, dup := seen[x]; dup {
				return
			}
			seen[x] = struct{}{}
			order = append(order, x)
		}

		if base != target {
			push(target)
			next := signedMidpoint(base, target)
			push(next)
			series := next
			for i := 0; i < 8 && series != target; i++ {
				series = signedMidpoint(series, target)
				push(series)
			}
			push(signedStep(base, target))
		}

		out := make([]shrink.Shrinkable[T], len(order))
		for i, x := range order {
			out[i] = signedShrinkNode(x, lo, hi, target)
		}
		return out
	})
}

func signedMidpoint[T signedInt](a, b T) T {
	if a == b {
		return a
	}
	d := b - a
	step := d / 2
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return a + step
}

func signedStep[T signedInt](a, b T) T {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}
