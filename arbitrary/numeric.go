package arbitrary

import (
	"math"
	"math/big"

	"github.com/arbitlab/arbit/gen"
)

// defaultIntBound is used when the caller does not constrain a numeric
// range at all; it keeps unbounded int/long arbitraries within a
// magnitude that stays interesting without drowning in overflow-prone
// extremes on every draw.
const defaultIntBound = 1_000_000_000

// intEdgeCases returns the standard edge-case table for a bounded int
// range: math.MinInt32/MaxInt32 when in range, 0 when in range, and the
// range's own endpoints — §6 of the edge-case table.
func intEdgeCases(lo, hi int) []int {
	seen := map[int]struct{}{}
	var out []int
	push := func(v int) {
		if v < lo || v > hi {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	push(lo)
	push(hi)
	push(0)
	push(math.MinInt32)
	push(math.MaxInt32)
	return out
}

// Ints generates ints uniformly in [lo,hi], prepending the applicable
// edge cases ahead of the random stream.
func Ints(lo, hi int) Arbitrary[int] {
	return FromBoth(
		func(int) gen.Generator[int] {
			return gen.WithSamples(gen.Int(lo, hi), intEdgeCases(lo, hi)...)
		},
		func() gen.Exhaustive[int] { return intExhaustive(lo, hi) },
	)
}

// IntsUnbounded generates ints across a wide, practically-unbounded
// range centered on zero.
func IntsUnbounded() Arbitrary[int] {
	return Ints(-defaultIntBound, defaultIntBound)
}

func intExhaustive(lo, hi int) gen.Exhaustive[int] {
	count := hi - lo + 1
	return gen.NewExhaustiveRange(lo, hi, count)
}

func int64EdgeCases(lo, hi int64) []int64 {
	seen := map[int64]struct{}{}
	var out []int64
	push := func(v int64) {
		if v < lo || v > hi {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	push(lo)
	push(hi)
	push(0)
	push(math.MinInt64)
	push(math.MaxInt64)
	return out
}

// Longs generates int64 values uniformly in [lo,hi], with edge cases
// prepended.
func Longs(lo, hi int64) Arbitrary[int64] {
	return New(func(int) gen.Generator[int64] {
		return gen.WithSamples(gen.Int64(lo, hi), int64EdgeCases(lo, hi)...)
	})
}

// LongsUnbounded generates int64 across a wide range centered on zero.
func LongsUnbounded() Arbitrary[int64] {
	return Longs(-defaultIntBound, defaultIntBound)
}

// Bytes generates bytes in the caller-given range [lo,hi].
func Bytes(lo, hi byte) Arbitrary[byte] {
	return Map(Ints(int(lo), int(hi)), func(v int) byte { return byte(v) })
}

// Bools generates booleans, shrinking true toward false.
func Bools() Arbitrary[bool] {
	return New(func(int) gen.Generator[bool] { return gen.Bool() })
}

// Shorts generates int16-range ints.
func Shorts(lo, hi int16) Arbitrary[int16] {
	return Map(Ints(int(lo), int(hi)), func(v int) int16 { return int16(v) })
}

// float32EdgeCases returns the standard edge-case table for a bounded
// float32 range: the range's own endpoints, 0, ±0.01, and ±MaxFloat32 —
// §3 of the edge-case table ("doubles (unbounded): 0.0, +0.01, −0.01,
// +MAX, −MAX"), applied to the float32 family.
func float32EdgeCases(lo, hi float32) []float32 {
	seen := map[float32]struct{}{}
	var out []float32
	push := func(v float32) {
		if v < lo || v > hi {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	push(lo)
	push(hi)
	push(0)
	push(0.01)
	push(-0.01)
	push(math.MaxFloat32)
	push(-math.MaxFloat32)
	return out
}

// Floats generates float32 values in [lo,hi], with edge cases prepended.
func Floats(lo, hi float32, allowSpecials bool) Arbitrary[float32] {
	return New(func(int) gen.Generator[float32] {
		return gen.WithSamples(gen.Float32(lo, hi, allowSpecials), float32EdgeCases(lo, hi)...)
	})
}

// doubleEdgeCases returns the standard edge-case table for a bounded
// float64 range: the range's own endpoints, 0, ±0.01, and ±MaxFloat64 —
// §3 of the edge-case table ("doubles (unbounded): 0.0, +0.01, −0.01,
// +MAX, −MAX").
func doubleEdgeCases(lo, hi float64) []float64 {
	seen := map[float64]struct{}{}
	var out []float64
	push := func(v float64) {
		if v < lo || v > hi {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	push(lo)
	push(hi)
	push(0)
	push(0.01)
	push(-0.01)
	push(math.MaxFloat64)
	push(-math.MaxFloat64)
	return out
}

// Doubles generates float64 values in [lo,hi], with edge cases prepended.
func Doubles(lo, hi float64, allowSpecials bool) Arbitrary[float64] {
	return New(func(int) gen.Generator[float64] {
		return gen.WithSamples(gen.Float64(lo, hi, allowSpecials), doubleEdgeCases(lo, hi)...)
	})
}

// DoublesOfScale rounds every drawn/shrunk value to s decimal places,
// with the edge-case table prepended ahead of the random stream. The
// edge cases pass through the same rounding as random draws; only when
// [lo,hi] is narrower than one scale step are values left unrounded (see
// gen.FloatScale).
func DoublesOfScale(lo, hi float64, allowSpecials bool, scale int) Arbitrary[float64] {
	return New(func(int) gen.Generator[float64] {
		sampled := gen.WithSamples(gen.Float64(lo, hi, allowSpecials), doubleEdgeCases(lo, hi)...)
		return gen.FloatScale(sampled, lo, hi, scale)
	})
}

// bigIntEdgeCases returns the standard edge-case table for a bounded
// big.Int range: the range's own endpoints, −10..−1, 0, and 1..10 — §3 of
// the edge-case table ("bigIntegers: endpoints, −10..−1, 0, 1..10").
func bigIntEdgeCases(lo, hi *big.Int) []*big.Int {
	seen := map[string]struct{}{}
	var out []*big.Int
	push := func(v int64) {
		b := big.NewInt(v)
		if b.Cmp(lo) < 0 || b.Cmp(hi) > 0 {
			return
		}
		key := b.String()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	pushBig := func(v *big.Int) {
		if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
			return
		}
		key := v.String()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, new(big.Int).Set(v))
	}
	pushBig(lo)
	pushBig(hi)
	for i := int64(-10); i <= 10; i++ {
		push(i)
	}
	return out
}

// BigIntegers generates arbitrary-precision integers uniformly within
// [lo,hi] (see gen.BigInt), with the bigInteger edge-case
// table (endpoints, −10..−1, 0, 1..10) prepended ahead of the random
// stream.
func BigIntegers(lo, hi *big.Int) Arbitrary[*big.Int] {
	return New(func(int) gen.Generator[*big.Int] {
		return gen.WithSamples(gen.BigInt(lo, hi), bigIntEdgeCases(lo, hi)...)
	})
}
