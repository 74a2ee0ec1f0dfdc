package arbitrary

import (
	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/internal/errkind"
)

// sizeBound mirrors jqwik's ofMinSize/ofMaxSize/ofSize builder style: a
// container arbitrary carries an explicit [min,max] element-count range
// that combinators like List/Set/Array read when constructing the
// underlying gen combinator.
type sizeBound struct{ min, max int }

func defaultSize() sizeBound { return sizeBound{min: 0, max: 20} }

// List generates []T with a default size range of [0,20].
func List[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return listSized(elem, defaultSize())
}

// ListOfSize generates []T with exactly n elements.
func ListOfSize[T any](elem Arbitrary[T], n int) Arbitrary[[]T] {
	return listSized(elem, sizeBound{min: n, max: n})
}

// ListOfSizeRange generates []T with length in [min,max].
func ListOfSizeRange[T any](elem Arbitrary[T], min, max int) Arbitrary[[]T] {
	return listSized(elem, sizeBound{min: min, max: max})
}

func listSized[T any](elem Arbitrary[T], sz sizeBound) Arbitrary[[]T] {
	mustPositiveSize(sz.min, sz.max)
	return New(func(genSize int) gen.Generator[[]T] {
		return gen.SliceOf(elem.Generator(genSize), sz.min, sz.max)
	})
}

// Array generates []T of exactly n elements; unlike List, length itself
// never shrinks, only the individual elements do.
func Array[T any](elem Arbitrary[T], n int) Arbitrary[[]T] {
	return New(func(genSize int) gen.Generator[[]T] {
		return gen.ArrayOf(elem.Generator(genSize), n)
	})
}

// Set generates a slice of distinct (per eq) elements with a default
// size range of [0,20]; if the retry budget is exhausted before reaching
// the target size, the driver sees SetSizeUnreachable.
func Set[T any](elem Arbitrary[T], eq func(a, b T) bool) Arbitrary[[]T] {
	return setSized(elem, eq, defaultSize())
}

// SetOfSize generates a slice of exactly n distinct elements.
func SetOfSize[T any](elem Arbitrary[T], eq func(a, b T) bool, n int) Arbitrary[[]T] {
	return setSized(elem, eq, sizeBound{min: n, max: n})
}

func setSized[T any](elem Arbitrary[T], eq func(a, b T) bool, sz sizeBound) Arbitrary[[]T] {
	mustPositiveSize(sz.min, sz.max)
	return New(func(genSize int) gen.Generator[[]T] {
		return gen.SetOf(elem.Generator(genSize), sz.min, sz.max, eq)
	})
}

// Optional wraps elem so that, with the given probability (defaulting to
// 0.05 via OptionalDefault), the value is absent (nil). A present value
// offers nil as its first shrink candidate and an absent value does not
// shrink (towardNull=true — see gen.InjectNull), matching the spec's Open
// Question decision that a declared Optional() should treat null as the
// trivial case to shrink toward.
func Optional[T any](elem Arbitrary[T], nullProbability float64) Arbitrary[*T] {
	return New(func(genSize int) gen.Generator[*T] {
		return gen.InjectNull(elem.Generator(genSize), nullProbability, true)
	})
}

// OptionalDefault applies Optional with the conventional 5% null rate.
func OptionalDefault[T any](elem Arbitrary[T]) Arbitrary[*T] {
	return Optional(elem, 0.05)
}

// InjectNull wraps elem so that, with the given probability, the value is
// replaced by nil, treating nil as a corner case whose own children step
// back toward a freshly drawn present value rather than exploring further
// absence — the opposite shrink bias from Optional.
func InjectNull[T any](elem Arbitrary[T], nullProbability float64) Arbitrary[*T] {
	return New(func(genSize int) gen.Generator[*T] {
		return gen.InjectNull(elem.Generator(genSize), nullProbability, false)
	})
}

// mustPositiveSize panics with SetSizeUnreachable-style guidance when a
// caller asks for an impossible size range; kept separate from the
// runtime SetSizeUnreachable error kind (that one fires from inside the
// retry loop, this one fires at construction time).
func mustPositiveSize(min, max int) {
	if min < 0 || max < min {
		panic(errkind.New(errkind.SetSizeUnreachable, "invalid size range [%d,%d]", min, max))
	}
}
