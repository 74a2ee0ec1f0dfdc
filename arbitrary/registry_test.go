package arbitrary

import (
	"reflect"
	"testing"

	"github.com/arbitlab/arbit/rng"
)

type point struct {
	X, Y int
	tag  string // unexported: assembled as the zero value, never registered
}

func TestRegisterAndDefaultFor(t *testing.T) {
	typ := reflect.TypeOf(0)
	Register(typ, func() Arbitrary[any] {
		return Map(Ints(1, 5), func(v int) any { return v })
	})

	a := DefaultFor(typ)
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(40)

	for i := 0; i < 20; i++ {
		v := g(src).Value().(int)
		if v < 1 || v > 5 {
			t.Fatalf("DefaultFor(int) produced %d out of registered range", v)
		}
	}
}

func TestDefaultForUnregisteredPanics(t *testing.T) {
	type unregisteredMarker struct{}
	defer func() {
		if recover() == nil {
			t.Fatal("DefaultFor should panic for an unregistered type")
		}
	}()
	DefaultFor(reflect.TypeOf(unregisteredMarker{}))
}

func TestForTypeAssemblesStructFromRegisteredFields(t *testing.T) {
	Register(reflect.TypeOf(0), func() Arbitrary[any] {
		return Map(Ints(0, 100), func(v int) any { return v })
	})

	a := ForType(reflect.TypeOf(point{}))
	g := a.Generator(DefaultGenSize)
	src := rng.Seeded(41)

	drawn := g(src).Value().(point)
	if drawn.X < 0 || drawn.X > 100 || drawn.Y < 0 || drawn.Y > 100 {
		t.Fatalf("ForType(point) produced out-of-range fields: %+v", drawn)
	}
	if drawn.tag != "" {
		t.Fatalf("ForType(point) should leave unexported fields at zero value, got %q", drawn.tag)
	}
}
