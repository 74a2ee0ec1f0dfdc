// Package gen provides RandomGenerator[T], the function from a RandomSource
// to a Shrinkable[T], plus the handful of combinators (map/filter/flatMap/
// injectNull/unique/withSamples) that thread shrinking through composition.
// Stateless with respect to T except through the source; see arbitrary for
// the declarative Arbitrary[T] layer built on top of this package.
package gen

import (
	"iter"

	"github.com/arbitlab/arbit/internal/errkind"
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Size is a [Min,Max] pair. No generator in this package takes a Size;
// size-bounded generators (SliceOf, String, ...) take explicit bounds.
type Size struct {
	Min int
	Max int
}

// maxFilterTries and maxUniqueTries bound the local-recovery retry loops
// of Filter and Unique; exceeding either surfaces to the driver.
const (
	maxFilterTries = 10_000
	maxUniqueTries = 10_000
)

// Generator produces a stream of Shrinkable[T] from a RandomSource. It is
// cheap to rebuild and safe to call repeatedly; combinators that need
// per-instance state (Unique, WithSamples) close over that state so it is
// scoped to one built Generator, not to the type overall.
type Generator[T any] func(src *rng.Source) shrink.Shrinkable[T]

// Next draws a single Shrinkable[T].
func (g Generator[T]) Next(src *rng.Source) shrink.Shrinkable[T] { return g(src) }

// Stream returns an infinite lazy sequence of draws from g against src.
// The caller (typically the property driver) may stop ranging over it at
// any point; no cleanup is required since generators hold no resources.
func (g Generator[T]) Stream(src *rng.Source) iter.Seq[shrink.Shrinkable[T]] {
	return func(yield func(shrink.Shrinkable[T]) bool) {
		for {
			if !yield(g(src)) {
				return
			}
		}
	}
}

// Map transforms every drawn value (and, recursively, every node of its
// shrink tree) through f.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return func(src *rng.Source) shrink.Shrinkable[B] {
		a := g(src)
		return shrink.Map(a, f)
	}
}

// Filter keeps only values satisfying pred, retrying up to 10,000 times
// per draw. Exceeding the cap panics with a *errkind.Error of kind
// TooManyFilterMisses; callers that want a recoverable form should use
// FilterErr.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return func(src *rng.Source) shrink.Shrinkable[T] {
		s, err := FilterErr(g, pred)(src)
		if err != nil {
			panic(err)
		}
		return s
	}
}

// FilterErr is the error-returning form of Filter.
func FilterErr[T any](g Generator[T], pred func(T) bool) func(*rng.Source) (shrink.Shrinkable[T], error) {
	return func(src *rng.Source) (shrink.Shrinkable[T], error) {
		for tries := 0; tries < maxFilterTries; tries++ {
			candidate := g(src)
			if filtered, ok := shrink.Filter(candidate, pred); ok {
				return filtered, nil
			}
		}
		var zero shrink.Shrinkable[T]
		return zero, errkind.New(errkind.TooManyFilterMisses, "filter rejected %d consecutive draws", maxFilterTries)
	}
}

// FlatMap draws a T, then draws a U from f(T), sharing the same source.
// The shrink tree of the result includes both direct shrinks of the drawn
// U and shrinks obtained by shrinking T and re-applying f (so shrinking
// can cross the dependency boundary instead of getting stuck in the
// U-only subtree).
func FlatMap[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return func(src *rng.Source) shrink.Shrinkable[B] {
		a := g(src)
		child := src.Split()
		b := f(a.Value())(child)
		return flatMapNode(a, f, b, child)
	}
}

func flatMapNode[A, B any](a shrink.Shrinkable[A], f func(A) Generator[B], b shrink.Shrinkable[B], src *rng.Source) shrink.Shrinkable[B] {
	return shrink.Of(b.Value(), func() []shrink.Shrinkable[B] {
		out := make([]shrink.Shrinkable[B], 0, 8)
		// direct shrinks of the dependent value
		for _, bc := range shrink.ShrinksOf(b) {
			out = append(out, bc)
		}
		// shrinks obtained by shrinking the driving value and re-flat-mapping
		for _, ac := range shrink.ShrinksOf(a) {
			rebuilt := f(ac.Value())(src)
			out = append(out, flatMapNode(ac, f, rebuilt, src))
		}
		return out
	})
}

// InjectNull wraps g so that, with probability p, the generator emits the
// absent value (nil) instead of delegating to g. towardNull controls the
// shrink bias: when true, a present value shrinks toward nil (used by
// Optional()); when false (the default for a bare InjectNull), nil is
// treated as a corner case and its own shrink children move away from nil
// back toward g's ordinary shrink target, since null was never the point
// of the arbitrary.
func InjectNull[T any](g Generator[T], p float64, towardNull bool) Generator[*T] {
	return func(src *rng.Source) shrink.Shrinkable[*T] {
		if src.Bool(p) {
			if towardNull {
				return shrink.Unshrinkable[*T](nil)
			}
			// Null is a corner case: its children step back toward a present
			// value drawn fresh, rather than exploring further absence.
			return shrink.Of[*T](nil, func() []shrink.Shrinkable[*T] {
				present := g(src)
				return []shrink.Shrinkable[*T]{injectPresent(present, towardNull)}
			})
		}
		present := g(src)
		return injectPresent(present, towardNull)
	}
}

func injectPresent[T any](s shrink.Shrinkable[T], towardNull bool) shrink.Shrinkable[*T] {
	v := s.Value()
	return *(shrinkPtr(&v, s, towardNull))
}

func shrinkPtr[T any](v *T, s shrink.Shrinkable[T], towardNull bool) *shrink.Shrinkable[*T] {
	node := shrink.Of[*T](v, func() []shrink.Shrinkable[*T] {
		children := shrink.ShrinksOf(s)
		out := make([]shrink.Shrinkable[*T], 0, len(children)+1)
		if towardNull {
			out = append(out, shrink.Unshrinkable[*T](nil))
		}
		for _, c := range children {
			cv := c.Value()
			out = append(out, *shrinkPtr(&cv, c, towardNull))
		}
		return out
	})
	return &node
}

// Unique wraps g to remember the values drawn by this particular Generator
// instance, retrying on collision up to 10,000 times before failing with
// TooManyUniqueMisses. The remembered set is scoped to the closure
// returned here, not to the type T in general.
func Unique[T comparable](g Generator[T]) Generator[T] {
	seen := make(map[T]struct{})
	return func(src *rng.Source) shrink.Shrinkable[T] {
		for tries := 0; tries < maxUniqueTries; tries++ {
			candidate := g(src)
			if _, dup := seen[candidate.Value()]; !dup {
				seen[candidate.Value()] = struct{}{}
				return candidate
			}
		}
		panic(errkind.New(errkind.TooManyUniqueMisses, "could not draw a fresh value after %d tries", maxUniqueTries))
	}
}

// WithSamples wraps g so that the first len(samples) draws made against
// this Generator instance return the samples in order, as unshrinkable
// values; subsequent draws delegate to g.
func WithSamples[T any](g Generator[T], samples ...T) Generator[T] {
	idx := 0
	return func(src *rng.Source) shrink.Shrinkable[T] {
		if idx < len(samples) {
			v := samples[idx]
			idx++
			return shrink.Unshrinkable(v)
		}
		return g(src)
	}
}
