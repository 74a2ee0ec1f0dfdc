package gen

import (
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Common alphabets, pure ASCII to avoid multi-byte surprises, matching
// the teacher's gen/string.go shortcuts.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
	AlphabetPrintable = AlphabetASCII
)

// Char generates a single rune drawn uniformly from alphabet, shrinking
// toward the alphabet's first rune (e.g. 'a' or '0').
func Char(alphabet []rune) Generator[rune] {
	if len(alphabet) == 0 {
		alphabet = []rune(AlphabetAlphaNum)
	}
	return func(src *rng.Source) shrink.Shrinkable[rune] {
		r := alphabet[src.Intn(len(alphabet))]
		return charShrinkNode(r, alphabet[0])
	}
}

func charShrinkNode(base, target rune) shrink.Shrinkable[rune] {
	return shrink.Of(base, func() []shrink.Shrinkable[rune] {
		if base == target {
			return nil
		}
		return []shrink.Shrinkable[rune]{shrink.Unshrinkable(target)}
	})
}

// String generates strings of length in [lo,hi] from the given alphabet.
// Shrinking tries progressively shorter prefixes first (including the
// empty string if lo==0), then tames individual characters toward the
// alphabet's first rune, right to left — the same two-tier heuristic the
// teacher used in gen/string.go.
func String(alphabet string, lo, hi int) Generator[string] {
	if alphabet == "" {
		alphabet = AlphabetAlphaNum
	}
	runes := []rune(alphabet)
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return func(src *rng.Source) shrink.Shrinkable[string] {
		n := lo
		if hi > lo {
			n += src.Intn(hi - lo + 1)
		}
		b := make([]rune, n)
		for i := range b {
			b[i] = runes[src.Intn(len(runes))]
		}
		return stringShrinkNode(b, runes[0], lo)
	}
}

func stringShrinkNode(base []rune, target rune, minLen int) shrink.Shrinkable[string] {
	return shrink.Of(string(base), func() []shrink.Shrinkable[string] {
		var out []shrink.Shrinkable[string]
		L := len(base)

		for newLen := L - 1; newLen >= minLen; newLen-- {
			out = append(out, stringShrinkNode(base[:newLen], target, minLen))
		}

		for i := L - 1; i >= 0; i-- {
			if base[i] == target {
				continue
			}
			tamed := append([]rune{}, base...)
			tamed[i] = target
			out = append(out, stringShrinkNode(tamed, target, minLen))
		}

		return out
	})
}
