// Package shrink holds the Shrinkable value/tree type and the minimisation
// loop (Shrinker) that walks it. A Shrinkable pairs a value with a lazily
// computed sequence of "smaller" candidates; the subtree rooted at any
// candidate satisfies the same invariant. Lazy shrink sequences are
// memoised at most once per node.
package shrink

// Shrinkable is a value paired with a lazy tree of smaller candidates.
type Shrinkable[T any] struct {
	val T
	// gen produces the immediate children the first time Shrinks() is
	// called; nil means "no children" (equivalent to Unshrinkable).
	gen      func() []Shrinkable[T]
	computed bool
	cached   []Shrinkable[T]
}

// Of builds a Shrinkable from a value and a children-producing closure.
// Shrinks invokes the closure at most once per Shrinkable variable and
// memoises the result there; a copy taken before that call computes the
// children again.
func Of[T any](v T, children func() []Shrinkable[T]) Shrinkable[T] {
	return Shrinkable[T]{val: v, gen: children}
}

// Unshrinkable wraps a value with an empty shrink sequence.
func Unshrinkable[T any](v T) Shrinkable[T] {
	return Shrinkable[T]{val: v}
}

// Value returns the wrapped value.
func (s Shrinkable[T]) Value() T { return s.val }

// Shrinks returns the immediate shrink candidates, computing them on first
// access and memoising the result for subsequent calls on this node.
func (s *Shrinkable[T]) Shrinks() []Shrinkable[T] {
	if s.computed {
		return s.cached
	}
	s.computed = true
	if s.gen != nil {
		s.cached = s.gen()
	}
	return s.cached
}

// ShrinksOf is a convenience for read-only access on a value received by
// value rather than by pointer (e.g. out of a slice). It calls Shrinks on
// a local copy, so the result is not memoised into the caller's node.
func ShrinksOf[T any](s Shrinkable[T]) []Shrinkable[T] {
	local := s
	return local.Shrinks()
}

// Map applies f to the value and, recursively, to every node of the shrink
// tree. The resulting tree has the exact same shape as the source tree.
func Map[A, B any](s Shrinkable[A], f func(A) B) Shrinkable[B] {
	return Of(f(s.val), func() []Shrinkable[B] {
		src := ShrinksOf(s)
		out := make([]Shrinkable[B], len(src))
		for i, child := range src {
			out[i] = Map(child, f)
		}
		return out
	})
}

// Filter keeps only nodes whose value satisfies pred. If the root value
// fails pred, Filter reports ok=false and the caller (typically a
// generator's retry loop) must draw again. Within a surviving node,
// children are lazily filtered the same way; a child that fails pred is
// itself replaced by its own filtered grandchildren (so shrinking does
// not dead-end on a single rejected candidate).
func Filter[T any](s Shrinkable[T], pred func(T) bool) (Shrinkable[T], bool) {
	if !pred(s.val) {
		var zero Shrinkable[T]
		return zero, false
	}
	return Of(s.val, func() []Shrinkable[T] {
		return filterChildren(ShrinksOf(s), pred)
	}), true
}

// filterChildren flattens a level of the tree: a rejected child is
// replaced by the filtered results of its own children, recursively.
func filterChildren[T any](nodes []Shrinkable[T], pred func(T) bool) []Shrinkable[T] {
	out := make([]Shrinkable[T], 0, len(nodes))
	for _, n := range nodes {
		if filtered, ok := Filter(n, pred); ok {
			out = append(out, filtered)
		} else {
			out = append(out, filterChildren(ShrinksOf(n), pred)...)
		}
	}
	return out
}
