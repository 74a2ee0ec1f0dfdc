package gen

import (
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

type unsignedInt interface{ ~uint | ~uint32 | ~uint64 }

// Uint generates uints uniformly in [lo, hi] shrinking toward 0, the only
// possible target for an unsigned type.
func Uint(lo, hi uint) Generator[uint] { return unsignedIntGen(lo, hi) }

// Uint64 generates uint64s uniformly in [lo, hi] shrinking toward 0.
func Uint64(lo, hi uint64) Generator[uint64] { return unsignedIntGen(lo, hi) }

func unsignedIntGen[T unsignedInt](lo, hi T) Generator[T] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(src *rng.Source) shrink.Shrinkable[T] {
		span := uint64(hi - lo)
		v := lo
		if span > 0 {
			v = lo + T(src.Int63n(int64(span)+1))
		}
		return unsignedShrinkNode(v, lo, hi)
	}
}

func unsignedShrinkNode[T unsignedInt](base, lo, hi T) shrink.Shrinkable[T] {
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

		if base != 0 {
			push(0)
			next := base / 2
			push(next)
			series := next
			for i := 0; i < 8 && series > 0; i++ {
				series /= 2
				push(series)
			}
			push(base - 1)
		}
		push(lo)

		out := make([]shrink.Shrinkable[T], len(order))
		for i, x := range order {
			out[i] = unsignedShrinkNode(x, lo, hi)
		}
		return out
	})
}
