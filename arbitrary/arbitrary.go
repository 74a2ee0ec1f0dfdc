// Package arbitrary is the declarative value-space layer (Arbitrary[T])
// built on top of gen.Generator/gen.Exhaustive. An Arbitrary is immutable
// after construction: every combinator below returns a new instance. It
// may be held indefinitely and sampled repeatedly; it produces a fresh
// gen.Generator[T] on every call to Generator(genSize), and optionally a
// gen.Exhaustive[T] when the space is known to be finite.
package arbitrary

import (
	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/internal/errkind"
)

// DefaultGenSize is used when the caller has no specific tries count to
// hint with (mirrors the teacher's implicit default range magnitude).
const DefaultGenSize = 1000

// Arbitrary is a declarative description of a value space.
type Arbitrary[T any] struct {
	genFn func(genSize int) gen.Generator[T]
	exFn  func() (gen.Exhaustive[T], bool)
}

// Generator asks the arbitrary for a fresh RandomGenerator at the given
// genSize hint (typically the configured number of tries).
func (a Arbitrary[T]) Generator(genSize int) gen.Generator[T] {
	if a.genFn == nil {
		panic(errkind.New(errkind.ExhaustiveNotAvailable, "arbitrary has no generator configured"))
	}
	return a.genFn(genSize)
}

// Exhaustive returns a finite enumeration of the space and true, or
// (zero, false) if this arbitrary cannot be enumerated.
func (a Arbitrary[T]) Exhaustive() (gen.Exhaustive[T], bool) {
	if a.exFn == nil {
		var zero gen.Exhaustive[T]
		return zero, false
	}
	return a.exFn()
}

// MustExhaustive returns the exhaustive enumeration or panics with
// ExhaustiveNotAvailable.
func (a Arbitrary[T]) MustExhaustive() gen.Exhaustive[T] {
	e, ok := a.Exhaustive()
	if !ok {
		panic(errkind.New(errkind.ExhaustiveNotAvailable, "arbitrary cannot be enumerated exhaustively"))
	}
	return e
}

// New builds an Arbitrary from a function producing a RandomGenerator at
// each requested genSize; it has no exhaustive form.
func New[T any](f func(genSize int) gen.Generator[T]) Arbitrary[T] {
	return Arbitrary[T]{genFn: f}
}

// FromBoth builds an Arbitrary with both a random and an exhaustive form.
func FromBoth[T any](g func(genSize int) gen.Generator[T], e func() gen.Exhaustive[T]) Arbitrary[T] {
	return Arbitrary[T]{
		genFn: g,
		exFn:  func() (gen.Exhaustive[T], bool) { return e(), true },
	}
}

// Filter keeps only values satisfying pred, retrying the underlying draw
// up to 10,000 times per draw (see gen.Filter); the exhaustive form, if
// present, is filtered lazily and its maxCount kept as an upper bound.
func (a Arbitrary[T]) Filter(pred func(T) bool) Arbitrary[T] {
	out := Arbitrary[T]{
		genFn: func(genSize int) gen.Generator[T] {
			return gen.Filter(a.genFn(genSize), pred)
		},
	}
	if a.exFn != nil {
		out.exFn = func() (gen.Exhaustive[T], bool) {
			e, ok := a.exFn()
			if !ok {
				var zero gen.Exhaustive[T]
				return zero, false
			}
			return gen.FilterExhaustive(e, pred), true
		}
	}
	return out
}

// FixGenSize freezes the genSize hint passed to the underlying generator,
// ignoring whatever the driver later requests.
func (a Arbitrary[T]) FixGenSize(genSize int) Arbitrary[T] {
	fixed := a.genFn
	return Arbitrary[T]{
		genFn: func(int) gen.Generator[T] { return fixed(genSize) },
		exFn:  a.exFn,
	}
}

// Map transforms every value (and its whole shrink tree) through f. The
// exhaustive form, if present, is preserved with its count unchanged.
func Map[A, B any](a Arbitrary[A], f func(A) B) Arbitrary[B] {
	out := Arbitrary[B]{
		genFn: func(genSize int) gen.Generator[B] {
			return gen.Map(a.genFn(genSize), f)
		},
	}
	if a.exFn != nil {
		out.exFn = func() (gen.Exhaustive[B], bool) {
			e, ok := a.exFn()
			if !ok {
				var zero gen.Exhaustive[B]
				return zero, false
			}
			return gen.MapExhaustive(e, f), true
		}
	}
	return out
}

// FlatMap draws an A, then builds and draws from f(A). The shrink tree of
// the result threads through both the B-level shrinks and shrinks of A
// re-applied through f, per gen.FlatMap. The result is only exhaustive if
// both a and every f(A) are exhaustive (checked lazily via one probe
// draw), matching §4.4.
func FlatMap[A, B any](a Arbitrary[A], f func(A) Arbitrary[B]) Arbitrary[B] {
	return Arbitrary[B]{
		genFn: func(genSize int) gen.Generator[B] {
			ga := a.genFn(genSize)
			return gen.FlatMap(ga, func(av A) gen.Generator[B] {
				return f(av).genFn(genSize)
			})
		},
		exFn: func() (gen.Exhaustive[B], bool) {
			var zero gen.Exhaustive[B]
			ea, ok := a.Exhaustive()
			if !ok {
				return zero, false
			}
			for av := range ea.Values() {
				if _, ok := f(av).Exhaustive(); !ok {
					return zero, false
				}
				break
			}
			result := gen.FlatMapExhaustive(ea, func(av A) gen.Exhaustive[B] {
				inner, ok := f(av).Exhaustive()
				if !ok {
					return gen.Of[B]()
				}
				return inner
			})
			return result, true
		},
	}
}
