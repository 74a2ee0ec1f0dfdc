package arbitrary

import "github.com/arbitlab/arbit/gen"

// Chars generates a single rune from the given alphabet (AlphabetAlphaNum
// if empty).
func Chars(alphabet string) Arbitrary[rune] {
	runes := []rune(alphabet)
	return New(func(int) gen.Generator[rune] { return gen.Char(runes) })
}

// CharRange generates a single rune uniformly in [lo,hi] (inclusive,
// inclusive of both code points).
func CharRange(lo, hi rune) Arbitrary[rune] {
	alphabet := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		alphabet = append(alphabet, r)
	}
	return New(func(int) gen.Generator[rune] { return gen.Char(alphabet) })
}

// Strings generates strings of length in [0,20] drawn from alphabet
// (AlphabetAlphaNum if empty).
func Strings(alphabet string) Arbitrary[string] {
	return stringSized(alphabet, 0, 20)
}

// StringsOfLength generates strings of exactly n characters.
func StringsOfLength(alphabet string, n int) Arbitrary[string] {
	return stringSized(alphabet, n, n)
}

// StringsOfLengthRange generates strings of length in [min,max].
func StringsOfLengthRange(alphabet string, min, max int) Arbitrary[string] {
	return stringSized(alphabet, min, max)
}

func stringSized(alphabet string, lo, hi int) Arbitrary[string] {
	return New(func(int) gen.Generator[string] { return gen.String(alphabet, lo, hi) })
}
