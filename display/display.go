// Package display renders values for failure reports: the one
// "diagnostic rendering" the core is allowed to own. It mirrors the
// teacher's inline fmt.Sprintf("%#v", ...) calls (gen/slice.go,
// gen/array.go) and adds truncation for long collections so a failing
// 10,000-element slice doesn't flood a test log.
package display

import (
	"fmt"
	"reflect"
)

// MaxElements bounds how many elements of a slice, array, or map are
// rendered before the output is truncated with a "... (N more)" suffix.
const MaxElements = 20

// Render formats v the way a failure report should: %#v for scalars and
// small collections, truncated after MaxElements for large slices/arrays/
// maps.
func Render(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return renderSeq(rv)
	case reflect.Map:
		return renderMap(rv)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func renderSeq(rv reflect.Value) string {
	n := rv.Len()
	if n <= MaxElements {
		return fmt.Sprintf("%#v", rv.Interface())
	}
	shown := make([]any, MaxElements)
	for i := 0; i < MaxElements; i++ {
		shown[i] = rv.Index(i).Interface()
	}
	return fmt.Sprintf("%#v ... (%d more)", shown, n-MaxElements)
}

func renderMap(rv reflect.Value) string {
	n := rv.Len()
	if n <= MaxElements {
		return fmt.Sprintf("%#v", rv.Interface())
	}
	shown := map[string]any{}
	iter := rv.MapRange()
	for i := 0; i < MaxElements && iter.Next(); i++ {
		shown[fmt.Sprintf("%v", iter.Key().Interface())] = iter.Value().Interface()
	}
	return fmt.Sprintf("%#v ... (%d more)", shown, n-MaxElements)
}
