package gen

import (
	"math"

	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Float64 generates float64 values uniformly in [lo, hi], optionally
// injecting NaN/±Inf with low probability when allowSpecials is set.
// Shrinking: NaN heads toward 0/±1/bounds; ±Inf heads toward the nearer
// finite bound then 0; finite values shrink toward 0 (or the bound
// nearest 0) via the target itself, bisection, then Nextafter, then a
// sign flip of a negative value, then any bound closer to the target than
// the value — mirroring the teacher's float64ShrinkInit heuristic rebuilt
// as a tree.
func Float64(lo, hi float64, allowSpecials bool) Generator[float64] {
	return func(src *rng.Source) shrink.Shrinkable[float64] {
		v := uniformF64(src, lo, hi)
		if allowSpecials && src.Intn(50) == 0 {
			v = math.NaN()
		} else if allowSpecials && src.Intn(50) == 1 {
			if src.Bool(0.5) {
				v = math.Inf(1)
			} else {
				v = math.Inf(-1)
			}
		}
		return f64ShrinkNode(v, lo, hi, allowSpecials)
	}
}

// FloatScale rounds every drawn and shrunk value to s decimal places,
// except when the [lo,hi] interval is narrower than one scale step (10^-s),
// in which case the endpoints override scale and values are returned
// unrounded inside [lo,hi].
func FloatScale(g Generator[float64], lo, hi float64, s int) Generator[float64] {
	step := math.Pow(10, -float64(s))
	narrow := (hi - lo) < step
	return Map(g, func(v float64) float64 {
		if narrow || !isFiniteF(v) {
			return v
		}
		return roundScale(v, s)
	})
}

func roundScale(v float64, s int) float64 {
	mul := math.Pow(10, float64(s))
	return math.Round(v*mul) / mul
}

func isFiniteF(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func f64key(x float64) uint64 { return math.Float64bits(x) }

func uniformF64(src *rng.Source, lo, hi float64) float64 {
	if isFiniteF(lo) && isFiniteF(hi) && hi >= lo {
		if lo == hi {
			return lo
		}
		return lo + src.Float64()*(hi-lo)
	}
	return -100 + src.Float64()*200
}

func f64Target(lo, hi float64) float64 {
	if isFiniteF(lo) && isFiniteF(hi) && lo <= 0 && 0 <= hi {
		return 0
	}
	if !isFiniteF(lo) && !isFiniteF(hi) {
		return 0
	}
	if math.Abs(lo) < math.Abs(hi) {
		return lo
	}
	return hi
}

func f64Midpoint(a, b float64) float64 {
	if a == b {
		return a
	}
	return a + (b-a)/2
}

func f64ShrinkNode(base, lo, hi float64, allowSpecials bool) shrink.Shrinkable[float64] {
	return shrink.Of(base, func() []shrink.Shrinkable[float64] {
		seen := map[uint64]struct{}{f64key(base): {}}
		var order []float64
		push := func(x float64) {
			if math.IsNaN(x) && !allowSpecials {
				return
			}
			if math.IsInf(x, 0) && !allowSpecials {
				return
			}
			if isFiniteF(x) && isFiniteF(lo) && isFiniteF(hi) && (x < lo || x > hi) {
				return
			}
			k := f64key(x)
			if _, dup := seen[k]; dup {
				return
			}
			seen[k] = struct{}{}
			order = append(order, x)
		}

		switch {
		case math.IsNaN(base):
			push(0)
			push(1)
			push(-1)
			if allowSpecials {
				push(math.Inf(1))
				push(math.Inf(-1))
			}
			if isFiniteF(lo) {
				push(lo)
			}
			if isFiniteF(hi) {
				push(hi)
			}
		case math.IsInf(base, 0):
			if math.IsInf(base, 1) && isFiniteF(hi) {
				push(hi)
			}
			if math.IsInf(base, -1) && isFiniteF(lo) {
				push(lo)
			}
			push(0)
		default:
			target := f64Target(lo, hi)
			if base != target {
				push(target)
				next := f64Midpoint(base, target)
				push(next)
				series := next
				for i := 0; i < 8 && series != target; i++ {
					series = f64Midpoint(series, target)
					push(series)
				}
				push(math.Nextafter(base, target))
			}
			if target == 0 && base < 0 {
				push(-base)
			}
			if isFiniteF(lo) && math.Abs(lo-target) < math.Abs(base-target) {
				push(lo)
			}
			if isFiniteF(hi) && math.Abs(hi-target) < math.Abs(base-target) {
				push(hi)
			}
		}

		out := make([]shrink.Shrinkable[float64], len(order))
		for i, x := range order {
			out[i] = f64ShrinkNode(x, lo, hi, allowSpecials)
		}
		return out
	})
}
