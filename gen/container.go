package gen

import (
	"github.com/arbitlab/arbit/internal/errkind"
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// SliceOf generates []T with length in [lo,hi] drawn from elem. Shrinking
// tries, in order: the empty slice (if lo==0), removing large blocks
// (halves, quarters, ...), removing a single element right-to-left, and
// finally shrinking individual elements in place — the same three-tier
// strategy the teacher used (gen/slice.go), rebuilt as a tree so every
// branch stays explorable instead of being forgotten on rebase.
func SliceOf[T any](elem Generator[T], lo, hi int) Generator[[]T] {
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return func(src *rng.Source) shrink.Shrinkable[[]T] {
		n := lo
		if hi > lo {
			n += src.Intn(hi - lo + 1)
		}
		elems := make([]shrink.Shrinkable[T], n)
		for i := range elems {
			elems[i] = elem(src)
		}
		return sliceShrinkNode(elems, lo)
	}
}

// ArrayOf generates []T of exact length n. It cannot shrink length; only
// individual elements shrink in place.
func ArrayOf[T any](elem Generator[T], n int) Generator[[]T] {
	if n < 0 {
		n = 0
	}
	return func(src *rng.Source) shrink.Shrinkable[[]T] {
		elems := make([]shrink.Shrinkable[T], n)
		for i := range elems {
			elems[i] = elem(src)
		}
		return arrayShrinkNode(elems)
	}
}

func sliceShrinkNode[T any](elems []shrink.Shrinkable[T], minLen int) shrink.Shrinkable[[]T] {
	values := valuesOf(elems)
	return shrink.Of(values, func() []shrink.Shrinkable[[]T] {
		var out []shrink.Shrinkable[[]T]
		L := len(elems)

		if minLen == 0 && L > 0 {
			out = append(out, shrink.Unshrinkable[[]T](nil))
		}

		// remove large contiguous blocks, halving the chunk size
		for chunk := L / 2; chunk >= 1; chunk /= 2 {
			for i := 0; i+chunk <= L; i += chunk {
				if L-chunk < minLen {
					continue
				}
				remaining := append(append([]shrink.Shrinkable[T]{}, elems[:i]...), elems[i+chunk:]...)
				out = append(out, sliceShrinkNode(remaining, minLen))
			}
		}

		// remove a single element, right to left
		if L-1 >= minLen {
			for i := L - 1; i >= 0; i-- {
				remaining := append(append([]shrink.Shrinkable[T]{}, elems[:i]...), elems[i+1:]...)
				out = append(out, sliceShrinkNode(remaining, minLen))
			}
		}

		// shrink each element in place, right to left
		for i := L - 1; i >= 0; i-- {
			children := shrink.ShrinksOf(elems[i])
			for _, c := range children {
				candidate := append([]shrink.Shrinkable[T]{}, elems...)
				candidate[i] = c
				out = append(out, sliceShrinkNode(candidate, minLen))
				break // one step per position per node, matching the teacher's pacing
			}
		}

		return out
	})
}

func arrayShrinkNode[T any](elems []shrink.Shrinkable[T]) shrink.Shrinkable[[]T] {
	values := valuesOf(elems)
	return shrink.Of(values, func() []shrink.Shrinkable[[]T] {
		var out []shrink.Shrinkable[[]T]
		for i := len(elems) - 1; i >= 0; i-- {
			children := shrink.ShrinksOf(elems[i])
			for _, c := range children {
				candidate := append([]shrink.Shrinkable[T]{}, elems...)
				candidate[i] = c
				out = append(out, arrayShrinkNode(candidate))
				break
			}
		}
		return out
	})
}

func valuesOf[T any](elems []shrink.Shrinkable[T]) []T {
	out := make([]T, len(elems))
	for i, e := range elems {
		out[i] = e.Value()
	}
	return out
}

// SetOf generates a slice of `n` distinct (per eq) elements drawn from
// elem, retrying individual draws up to 10,000 times to fill the target
// size; if it cannot, it fails with SetSizeUnreachable. Shrinking reuses
// SliceOf's strategy but re-validates uniqueness on every candidate,
// dropping any candidate that collides instead of proposing it.
func SetOf[T any](elem Generator[T], lo, hi int, eq func(a, b T) bool) Generator[[]T] {
	return func(src *rng.Source) shrink.Shrinkable[[]T] {
		n := lo
		if hi > lo {
			n += src.Intn(hi - lo + 1)
		}
		var elems []shrink.Shrinkable[T]
		var values []T
		for tries := 0; len(elems) < n && tries < maxUniqueTries; tries++ {
			s := elem(src)
			if !containsEq(values, s.Value(), eq) {
				elems = append(elems, s)
				values = append(values, s.Value())
			}
		}
		if len(elems) < n {
			panic(errkind.New(errkind.SetSizeUnreachable, "could not fill a set of size %d after %d tries", n, maxUniqueTries))
		}
		root := sliceShrinkNode(elems, lo)
		filtered, ok := shrink.Filter(root, func(v []T) bool { return isDistinct(v, eq) })
		if !ok {
			return shrink.Unshrinkable(values)
		}
		return filtered
	}
}

func containsEq[T any](haystack []T, v T, eq func(a, b T) bool) bool {
	for _, h := range haystack {
		if eq(h, v) {
			return true
		}
	}
	return false
}

func isDistinct[T any](vs []T, eq func(a, b T) bool) bool {
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if eq(vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}
