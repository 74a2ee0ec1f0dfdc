package arbitrary

import (
	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/internal/errkind"
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Of returns a uniform choice among the given values; exhaustive.
func Of[T any](values ...T) Arbitrary[T] {
	if len(values) == 0 {
		panic(errkind.New(errkind.NoPositiveFrequencies, "Of: no values given"))
	}
	return Arbitrary[T]{
		genFn: func(int) gen.Generator[T] {
			return func(src *rng.Source) shrink.Shrinkable[T] {
				idx := src.Intn(len(values))
				return ofShrinkNode(values, idx)
			}
		},
		exFn: func() (gen.Exhaustive[T], bool) { return gen.Of(values...), true },
	}
}

// ofShrinkNode shrinks toward earlier-listed values, matching oneOf's
// "shrinks first toward earlier-listed" bias (§4.5).
func ofShrinkNode[T any](values []T, idx int) shrink.Shrinkable[T] {
	return shrink.Of(values[idx], func() []shrink.Shrinkable[T] {
		var out []shrink.Shrinkable[T]
		for i := 0; i < idx; i++ {
			out = append(out, shrink.Unshrinkable(values[i]))
		}
		return out
	})
}

// Samples cycles through the given values forever in insertion order,
// deterministically — the k-th draw equals values[k mod len(values)].
// Not random even though it returns a generator.
func Samples[T any](values ...T) Arbitrary[T] {
	if len(values) == 0 {
		panic(errkind.New(errkind.NoPositiveFrequencies, "Samples: no values given"))
	}
	return New(func(int) gen.Generator[T] {
		i := 0
		return func(*rng.Source) shrink.Shrinkable[T] {
			v := values[i%len(values)]
			i++
			return shrink.Unshrinkable(v)
		}
	})
}

// Randoms generates fresh child rng.Source instances, split from the
// source the driver is threading through the run.
func Randoms() Arbitrary[*rng.Source] {
	return New(func(int) gen.Generator[*rng.Source] {
		return func(src *rng.Source) shrink.Shrinkable[*rng.Source] {
			return shrink.Unshrinkable(src.Split())
		}
	})
}

// Constant always returns the same value, unshrinkable.
func Constant[T any](v T) Arbitrary[T] {
	return Arbitrary[T]{
		genFn: func(int) gen.Generator[T] {
			return func(*rng.Source) shrink.Shrinkable[T] { return shrink.Unshrinkable(v) }
		},
		exFn: func() (gen.Exhaustive[T], bool) { return gen.Of(v), true },
	}
}

// Create calls f fresh on every draw; the result is unshrinkable.
func Create[T any](f func() T) Arbitrary[T] {
	return New(func(int) gen.Generator[T] {
		return func(*rng.Source) shrink.Shrinkable[T] { return shrink.Unshrinkable(f()) }
	})
}

// RandomValue is a user escape hatch: f draws directly from the source
// and returns an unshrinkable value.
func RandomValue[T any](f func(*rng.Source) T) Arbitrary[T] {
	return New(func(int) gen.Generator[T] {
		return func(src *rng.Source) shrink.Shrinkable[T] { return shrink.Unshrinkable(f(src)) }
	})
}

// FromGenerator is a user escape hatch that hands back a full Shrinkable,
// letting the caller define its own shrink tree.
func FromGenerator[T any](f func(*rng.Source) shrink.Shrinkable[T]) Arbitrary[T] {
	return New(func(int) gen.Generator[T] { return gen.Generator[T](f) })
}

// OneOf chooses uniformly among the supplied arbitraries, then draws from
// the chosen one. Shrinks first toward the earlier-listed arbitraries: a
// value's shrink candidates start with one draw from each of
// arbitraries[0..idx), in list order, followed by the chosen arbitrary's
// own shrinks.
func OneOf[T any](arbs ...Arbitrary[T]) Arbitrary[T] {
	if len(arbs) == 0 {
		panic(errkind.New(errkind.NoPositiveFrequencies, "OneOf: no arbitraries given"))
	}
	weights := make([]int, len(arbs))
	for i := range weights {
		weights[i] = 1
	}
	return FrequencyOf(zipWeights(weights, arbs)...)
}

// WeightedArb pairs a non-negative weight with an Arbitrary, for
// FrequencyOf.
type WeightedArb[T any] struct {
	Weight int
	Arb    Arbitrary[T]
}

func zipWeights[T any](weights []int, arbs []Arbitrary[T]) []WeightedArb[T] {
	out := make([]WeightedArb[T], len(arbs))
	for i := range arbs {
		out[i] = WeightedArb[T]{Weight: weights[i], Arb: arbs[i]}
	}
	return out
}

// WeightedVal pairs a non-negative weight with a value, for Frequency.
type WeightedVal[T any] struct {
	Weight int
	Value  T
}

// Frequency chooses among the given values with probability proportional
// to weight; at least one weight must be positive, else
// NoPositiveFrequencies.
func Frequency[T any](choices ...WeightedVal[T]) Arbitrary[T] {
	total := 0
	for _, c := range choices {
		if c.Weight < 0 {
			continue
		}
		total += c.Weight
	}
	if total <= 0 {
		panic(errkind.New(errkind.NoPositiveFrequencies, "Frequency: no positive weights"))
	}
	return New(func(int) gen.Generator[T] {
		return func(src *rng.Source) shrink.Shrinkable[T] {
			pick := src.Intn(total)
			idx := frequencyIndex(choices, pick)
			return frequencyShrinkNode(choices, idx)
		}
	})
}

func frequencyIndex[T any](choices []WeightedVal[T], pick int) int {
	acc := 0
	for i, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		acc += c.Weight
		if pick < acc {
			return i
		}
	}
	return len(choices) - 1
}

func frequencyShrinkNode[T any](choices []WeightedVal[T], idx int) shrink.Shrinkable[T] {
	return shrink.Of(choices[idx].Value, func() []shrink.Shrinkable[T] {
		var out []shrink.Shrinkable[T]
		for i := 0; i < idx; i++ {
			if choices[i].Weight > 0 {
				out = append(out, shrink.Unshrinkable(choices[i].Value))
			}
		}
		return out
	})
}

// FrequencyOf is Frequency but choosing among Arbitraries instead of bare
// values.
func FrequencyOf[T any](choices ...WeightedArb[T]) Arbitrary[T] {
	total := 0
	for _, c := range choices {
		if c.Weight < 0 {
			continue
		}
		total += c.Weight
	}
	if total <= 0 {
		panic(errkind.New(errkind.NoPositiveFrequencies, "FrequencyOf: no positive weights"))
	}
	return New(func(genSize int) gen.Generator[T] {
		gens := make([]gen.Generator[T], len(choices))
		for i, c := range choices {
			if c.Weight > 0 {
				gens[i] = c.Arb.genFn(genSize)
			}
		}
		return func(src *rng.Source) shrink.Shrinkable[T] {
			pick := src.Intn(total)
			idx := frequencyOfIndex(choices, pick)
			chosen := gens[idx](src)
			return frequencyOfShrinkNode(choices, idx, chosen)
		}
	})
}

func frequencyOfIndex[T any](choices []WeightedArb[T], pick int) int {
	acc := 0
	for i, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		acc += c.Weight
		if pick < acc {
			return i
		}
	}
	return len(choices) - 1
}

func frequencyOfShrinkNode[T any](choices []WeightedArb[T], idx int, chosen shrink.Shrinkable[T]) shrink.Shrinkable[T] {
	return shrink.Of(chosen.Value(), func() []shrink.Shrinkable[T] {
		var out []shrink.Shrinkable[T]
		for i := 0; i < idx; i++ {
			if choices[i].Weight > 0 {
				src := rng.Seeded(int64(i) + 1)
				out = append(out, choices[i].Arb.Generator(DefaultGenSize)(src))
			}
		}
		return append(out, shrink.ShrinksOf(chosen)...)
	})
}

// Shuffle generates permutations of the given values; every n!
// permutation is reachable with positive probability via a Fisher-Yates
// draw. Shrinks toward the identity ordering by swapping adjacent pairs
// back into place, one step at a time.
func Shuffle[T any](values ...T) Arbitrary[[]T] {
	return New(func(int) gen.Generator[[]T] {
		return func(src *rng.Source) shrink.Shrinkable[[]T] {
			perm := append([]T{}, values...)
			for i := len(perm) - 1; i > 0; i-- {
				j := src.Intn(i + 1)
				perm[i], perm[j] = perm[j], perm[i]
			}
			return shuffleShrinkNode(perm, values)
		}
	})
}

func shuffleShrinkNode[T any](perm, identity []T) shrink.Shrinkable[[]T] {
	return shrink.Of(append([]T{}, perm...), func() []shrink.Shrinkable[[]T] {
		var out []shrink.Shrinkable[[]T]
		for i := 0; i+1 < len(perm); i++ {
			if equalAt(perm, identity, i) && equalAt(perm, identity, i+1) {
				continue
			}
			cand := append([]T{}, perm...)
			cand[i], cand[i+1] = cand[i+1], cand[i]
			if closerToIdentity(cand, identity, perm) {
				out = append(out, shuffleShrinkNode(cand, identity))
			}
		}
		return out
	})
}

func equalAt[T any](a, b []T, i int) bool {
	return any(a[i]) == any(b[i])
}

func closerToIdentity[T any](cand, identity, base []T) bool {
	candMismatch, baseMismatch := 0, 0
	for i := range identity {
		if any(cand[i]) != any(identity[i]) {
			candMismatch++
		}
		if any(base[i]) != any(identity[i]) {
			baseMismatch++
		}
	}
	return candMismatch < baseMismatch
}

// Lazy defers arbitrary construction: every call to Generator()/Exhaustive()
// invokes supplier anew, so any state captured inside the supplied
// arbitrary (e.g. a Samples round-robin counter) restarts.
func Lazy[T any](supplier func() Arbitrary[T]) Arbitrary[T] {
	return Arbitrary[T]{
		genFn: func(genSize int) gen.Generator[T] { return supplier().genFn(genSize) },
		exFn:  func() (gen.Exhaustive[T], bool) { return supplier().Exhaustive() },
	}
}

// Recursive applies step exactly depth times to base. depth==0 yields
// base unchanged.
func Recursive[T any](base Arbitrary[T], step func(Arbitrary[T]) Arbitrary[T], depth int) Arbitrary[T] {
	cur := base
	for i := 0; i < depth; i++ {
		cur = step(cur)
	}
	return cur
}
