package gen

import (
	"math/big"

	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// BigInt generates arbitrary-precision integers uniformly in [lo,hi]
// (inclusive), drawn with big.Int.Rand over the span hi-lo+1. Shrinking
// mirrors the signed-int heuristic: toward 0 (or the bound nearest 0),
// via the target itself, halving, then a unit step; every candidate is
// strictly closer to the target than the value it shrinks.
func BigInt(lo, hi *big.Int) Generator[*big.Int] {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	target := bigTarget(lo, hi)
	return func(src *rng.Source) shrink.Shrinkable[*big.Int] {
		v := bigUniform(src, lo, span)
		return bigShrinkNode(v, lo, hi, target)
	}
}

func bigUniform(src *rng.Source, lo, span *big.Int) *big.Int {
	if span.Sign() <= 0 {
		return new(big.Int).Set(lo)
	}
	n := new(big.Int).Rand(src.Rand(), span)
	return new(big.Int).Add(lo, n)
}

func bigTarget(lo, hi *big.Int) *big.Int {
	zero := big.NewInt(0)
	if lo.Sign() <= 0 && hi.Sign() >= 0 {
		return zero
	}
	if lo.Sign() > 0 {
		return lo
	}
	return hi
}

func bigMidpoint(a, b *big.Int) *big.Int {
	if a.Cmp(b) == 0 {
		return new(big.Int).Set(a)
	}
	sum := new(big.Int).Add(a, b)
	return sum.Quo(sum, big.NewInt(2))
}

func bigStep(a, b *big.Int) *big.Int {
	if a.Cmp(b) == 0 {
		return new(big.Int).Set(a)
	}
	if b.Cmp(a) > 0 {
		return new(big.Int).Add(a, big.NewInt(1))
	}
	return new(big.Int).Sub(a, big.NewInt(1))
}

func bigShrinkNode(base, lo, hi, target *big.Int) shrink.Shrinkable[*big.Int] {
	return shrink.Of(base, func() []shrink.Shrinkable[*big.Int] {
		seen := map[string]struct{}{base.String(): {}}
		var order []*big.Int
		push := func(x *big.Int) {
			if x.Cmp(lo) < 0 || x.Cmp(hi) > 0 {
				return
			}
			k := x.String()
			if _, dup := seen[k]; dup {
				return
			}
			seen[k] = struct{}{}
			order = append(order, x)
		}

		if base.Cmp(target) != 0 {
			push(target)
			next := bigMidpoint(base, target)
			push(next)
			series := next
			for i := 0; i < 8 && series.Cmp(target) != 0; i++ {
				series = bigMidpoint(series, target)
				push(series)
			}
			push(bigStep(base, target))
		}

		out := make([]shrink.Shrinkable[*big.Int], len(order))
		for i, x := range order {
			out[i] = bigShrinkNode(x, lo, hi, target)
		}
		return out
	})
}
