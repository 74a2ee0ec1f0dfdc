package arbitrary

import (
	"math/big"
	"testing"

	"github.com/arbitlab/arbit/rng"
)

func TestIntsStaysInRange(t *testing.T) {
	a := Ints(-10, 10)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(1)

	for i := 0; i < 200; i++ {
		v := g(src).Value()
		if v < -10 || v > 10 {
			t.Fatalf("Ints(-10, 10) produced %d out of range", v)
		}
	}
}

func TestIntsEdgeCasesIncludeBounds(t *testing.T) {
	edges := intEdgeCases(-5, 5)
	want := map[int]bool{-5: true, 5: true, 0: true}
	for v := range want {
		found := false
		for _, e := range edges {
			if e == v {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("intEdgeCases(-5, 5) missing edge case %d: %v", v, edges)
		}
	}
}

func TestIntsShrinksTowardZero(t *testing.T) {
	a := Ints(-100, 100)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(2)

	// The edge-case samples come first and are unshrinkable; shrink a
	// value from the random stream behind them.
	for range intEdgeCases(-100, 100) {
		g(src)
	}
	drawn := g(src)
	for {
		children := drawn.Shrinks()
		if len(children) == 0 {
			break
		}
		drawn = children[0]
	}
	if drawn.Value() != 0 {
		t.Errorf("fully shrunk Ints(-100, 100) = %d, want 0", drawn.Value())
	}
}

func TestIntsExhaustiveCoversSmallRange(t *testing.T) {
	a := Ints(1, 3)
	ex, ok := a.Exhaustive()
	if !ok {
		t.Fatal("Ints(1, 3) should expose an exhaustive enumeration")
	}
	seen := map[int]bool{}
	for v := range ex.Values() {
		seen[v] = true
	}
	for v := 1; v <= 3; v++ {
		if !seen[v] {
			t.Errorf("exhaustive enumeration of Ints(1, 3) missing %d", v)
		}
	}
}

func TestLongsStaysInRange(t *testing.T) {
	a := Longs(-1000, 1000)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(3)

	for i := 0; i < 100; i++ {
		v := g(src).Value()
		if v < -1000 || v > 1000 {
			t.Fatalf("Longs(-1000, 1000) produced %d out of range", v)
		}
	}
}

func TestBytesStaysInRange(t *testing.T) {
	a := Bytes(10, 20)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(4)

	for i := 0; i < 50; i++ {
		v := g(src).Value()
		if v < 10 || v > 20 {
			t.Fatalf("Bytes(10, 20) produced %d out of range", v)
		}
	}
}

func TestFloatsStaysInRange(t *testing.T) {
	a := Floats(-1, 1, false)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(5)

	for i := 0; i < 100; i++ {
		v := g(src).Value()
		if v < -1 || v > 1 {
			t.Fatalf("Floats(-1, 1) produced %v out of range", v)
		}
	}
}

func TestBigIntegersStaysInRange(t *testing.T) {
	lo, hi := big.NewInt(-1000000), big.NewInt(1000000)
	a := BigIntegers(lo, hi)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(6)

	for i := 0; i < 50; i++ {
		v := g(src).Value()
		if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
			t.Fatalf("BigIntegers produced %s out of [%s,%s]", v, lo, hi)
		}
	}
}

func TestBoolsProducesBothValues(t *testing.T) {
	a := Bools()
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(7)

	sawTrue, sawFalse := false, false
	for i := 0; i < 100; i++ {
		if g(src).Value() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	if !sawTrue || !sawFalse {
		t.Errorf("Bools() over 100 draws got true=%v false=%v, want both", sawTrue, sawFalse)
	}
}
