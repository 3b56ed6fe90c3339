package circulis

import (
	"fmt"
	"reflect"

	"github.com/kevin-panoptic-dev/circulis/canon"
)

// asElement converts a dynamically-typed value back into the container's
// element type. For a List[any] every value qualifies; for a concrete T
// the value's dynamic type must be assignable.
func asElement[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	if v == nil {
		// nil is storable only when T can hold it
		rt := reflect.TypeOf(zero)
		if rt == nil {
			return zero, true
		}
		switch rt.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
			return zero, true
		}
		return zero, false
	}
	return zero, false
}

// isNilValue reports whether v is nil, either as an untyped nil or as a
// nil pointer, slice, map, channel, function, or interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// toFloat converts a numeric value to float64. Booleans do not count as
// numeric here even though Go happily stores them next to numbers.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// truthy reports whether a value counts as "present": non-nil,
// non-zero, non-empty.
func truthy(v any) bool {
	if isNilValue(v) {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len() > 0
	}
	if seq, ok := v.(canon.Sequencer); ok {
		return len(seq.Elements()) > 0
	}
	return true
}

// sequenceElements extracts the elements of any sequence-like value: a
// List (of any element type), a Pair, a slice, or an array.
func sequenceElements(other any) ([]any, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil is not a sequence", ErrTypeMismatch)
	}
	if seq, ok := other.(canon.Sequencer); ok {
		return seq.Elements(), nil
	}
	rv := reflect.ValueOf(other)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T is not a sequence", ErrTypeMismatch, other)
}

// deepCopyValue copies v recursively. Slices, arrays, maps, and
// pointers are duplicated; values exposing CloneAny (such as List)
// clone themselves; everything else is returned as is.
func deepCopyValue(v any) any {
	if v == nil {
		return nil
	}
	if c, ok := v.(interface{ CloneAny() any }); ok {
		return c.CloneAny()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copyInto(rv.Index(i).Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copyInto(rv.Index(i).Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copyInto(iter.Value().Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(copyInto(rv.Elem().Interface(), rv.Type().Elem()))
		return out.Interface()
	}
	return v
}

// copyInto deep-copies v as a reflect.Value assignable to type t. A nil
// copy (a nil element inside a sequence or map) yields t's zero value;
// reflect.ValueOf(nil) would be the unusable zero reflect.Value.
func copyInto(v any, t reflect.Type) reflect.Value {
	c := deepCopyValue(v)
	if c == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(c)
}
