package arbitrary

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/arbitlab/arbit/gen"
	"github.com/arbitlab/arbit/rng"
	"github.com/arbitlab/arbit/shrink"
)

// Provider builds an Arbitrary[T] for some reflect.Type T, returned as an
// untyped Arbitrary[any] so a registry can hold providers for many
// different types side by side.
type Provider func() Arbitrary[any]

type registry struct {
	mu        sync.RWMutex
	providers map[reflect.Type][]Provider
}

var defaultRegistry = &registry{providers: map[reflect.Type][]Provider{}}

// Register adds a provider for typ under the default registry. Multiple
// providers registered for the same type are combined with OneOf by
// DefaultFor, matching jqwik's "merge, don't replace" registration
// semantics.
func Register(typ reflect.Type, p Provider) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.providers[typ] = append(defaultRegistry.providers[typ], p)
}

// DefaultFor looks up every provider registered for typ and combines them
// with OneOf; it panics if none are registered, since — unlike Filter's
// recoverable retry loop — an unregistered type is a construction-time
// programmer error, not a runtime data condition.
func DefaultFor(typ reflect.Type) Arbitrary[any] {
	defaultRegistry.mu.RLock()
	ps := append([]Provider{}, defaultRegistry.providers[typ]...)
	defaultRegistry.mu.RUnlock()
	if len(ps) == 0 {
		panic(fmt.Sprintf("arbitrary: no default provider registered for %s", typ))
	}
	built := make([]Arbitrary[any], len(ps))
	for i, p := range ps {
		built[i] = p()
	}
	return OneOf(built...)
}

// ForType builds an Arbitrary[any] for a struct type by reflectively
// walking its exported fields, resolving each field's value space via
// DefaultFor, and assembling instances through reflect.New — the
// reflective-construction counterpart to jqwik's Arbitraries.forType,
// modelled on gopter's use of reflect.ValueOf/reflect.Type to match
// constructor parameter types against registered generators.
func ForType(typ reflect.Type) Arbitrary[any] {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return DefaultFor(typ)
	}
	numField := typ.NumField()
	fieldArbs := make([]Arbitrary[any], numField)
	for i := 0; i < numField; i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			fieldArbs[i] = Constant[any](reflect.Zero(f.Type).Interface())
			continue
		}
		fieldArbs[i] = DefaultFor(f.Type)
	}
	return New(func(genSize int) gen.Generator[any] {
		fieldGens := make([]gen.Generator[any], numField)
		for i, fa := range fieldArbs {
			fieldGens[i] = fa.Generator(genSize)
		}
		return func(src *rng.Source) shrink.Shrinkable[any] {
			drawn := make([]shrink.Shrinkable[any], numField)
			for i, fg := range fieldGens {
				drawn[i] = fg(src)
			}
			return structShrinkNode(typ, drawn)
		}
	})
}

func structShrinkNode(typ reflect.Type, fields []shrink.Shrinkable[any]) shrink.Shrinkable[any] {
	return shrink.Of(assembleStruct(typ, fields), func() []shrink.Shrinkable[any] {
		var out []shrink.Shrinkable[any]
		for i := len(fields) - 1; i >= 0; i-- {
			for _, c := range shrink.ShrinksOf(fields[i]) {
				candidate := append([]shrink.Shrinkable[any]{}, fields...)
				candidate[i] = c
				out = append(out, structShrinkNode(typ, candidate))
				break
			}
		}
		return out
	})
}

func assembleStruct(typ reflect.Type, fields []shrink.Shrinkable[any]) any {
	out := reflect.New(typ).Elem()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		v := fields[i].Value()
		if v == nil {
			continue
		}
		out.Field(i).Set(reflect.ValueOf(v))
	}
	return out.Interface()
}
