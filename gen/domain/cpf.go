// Package domain hosts worked example arbitraries built from the core
// combinators, kept from the teacher as a demonstration of composing a
// realistic domain value space (Brazilian CPF numbers) on top of the
// generator/shrink machinery.
package domain

import (
	"errors"
	"strings"
	"unicode"

	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// CPF generates valid CPF numbers; masked controls the format.
func CPF(masked bool) gen.Generator[string] {
	return func(src *rng.Source) shrink.Shrinkable[string] {
		root := randomRoot(src)
		return cpfShrinkNode(root, masked)
	}
}

// CPFAny generates CPF numbers with a 50/50 chance of being masked.
func CPFAny() gen.Generator[string] {
	return func(src *rng.Source) shrink.Shrinkable[string] {
		masked := src.Bool(0.5)
		return CPF(masked)(src)
	}
}

func randomRoot(src *rng.Source) [9]byte {
	var root [9]byte
	for {
		for i := range root {
			root[i] = byte(src.Intn(10))
		}
		if !allSameDigits(root[:]) {
			return root
		}
	}
}

// cpfShrinkNode builds the shrink tree for a CPF rooted at the given
// 9-digit root: unmasking first (if masked), then zeroing digits
// left-to-right, then decrementing digits right-to-left — the same
// priority order the teacher used, minus its dedup-by-closure-state,
// since the tree now deduplicates naturally by only ever proposing
// children derived from the current node's own root.
func cpfShrinkNode(root [9]byte, masked bool) shrink.Shrinkable[string] {
	cur := formatCPF(root, masked)
	return shrink.Of(cur, func() []shrink.Shrinkable[string] {
		var out []shrink.Shrinkable[string]
		if masked {
			out = append(out, cpfShrinkNode(root, false))
		}
		for i := range root {
			if root[i] == 0 {
				continue
			}
			cand := root
			cand[i] = 0
			if !allSameDigits(cand[:]) {
				out = append(out, cpfShrinkNode(cand, masked))
			}
		}
		for j := len(root) - 1; j >= 0; j-- {
			if root[j] == 0 {
				continue
			}
			cand := root
			cand[j]--
			if !allSameDigits(cand[:]) {
				out = append(out, cpfShrinkNode(cand, masked))
			}
		}
		return out
	})
}

func formatCPF(root [9]byte, masked bool) string {
	d1, d2 := computeCPFVerifiersBytes(root[:])
	raw := make([]byte, 0, 11)
	for _, n := range root {
		raw = append(raw, '0'+n)
	}
	raw = append(raw, d1, d2)
	if masked {
		return MaskCPF(string(raw))
	}
	return string(raw)
}

// ValidCPF checks if a string is a valid CPF number.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSame(b) {
		return false
	}
	d1, d2 := computeCPFVerifiers(b[:9])
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats a raw CPF string with dots and dashes.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("MaskCPF: needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF removes all non-digit characters from a CPF string.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

func allSame(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	for _, x := range b[1:] {
		if x != b[0] {
			return false
		}
	}
	return true
}

func allSameDigits(b []byte) bool { return allSame(b) }

func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiers: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]-'0') * (10 - i)
	}
	d1 = verifierDigit(sum)
	sum = 0
	for i := range 9 {
		sum += int(root[i]-'0') * (11 - i)
	}
	sum += int(d1-'0') * 2
	d2 = verifierDigit(sum)
	return
}

func computeCPFVerifiersBytes(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiersBytes: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	d1 = verifierDigit(sum)
	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	d2 = verifierDigit(sum)
	return
}

func verifierDigit(sum int) byte {
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte(11-rest) + '0'
}
