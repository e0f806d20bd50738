package core

import (
	"math"
	"reflect"
)

// Equaler is implemented by types that define their own equality.
// time.Time is the common example.
type Equaler[T any] interface {
	Equal(T) bool
}

// defaultEquals provides type-appropriate equality checking.
// Uses Equal for Equaler types, == for common scalars and reflect.DeepEqual
// for others. DeepEqual compares slices positionally and maps by entry, and
// treats a nil container as different from an empty one.
//
// A NaN float property equals NaN. NaN inside containers is never equal
// under DeepEqual; use WithEquals for such types.
func defaultEquals[T any](a, b T) bool {
	if ea, ok := any(a).(Equaler[T]); ok {
		if isAbsent(a) || isAbsent(b) {
			return isAbsent(a) && isAbsent(b)
		}
		return ea.Equal(b)
	}

	switch av := any(a).(type) {
	case int:
		return same(av, b)
	case int8:
		return same(av, b)
	case int16:
		return same(av, b)
	case int32:
		return same(av, b)
	case int64:
		return same(av, b)
	case uint:
		return same(av, b)
	case uint8:
		return same(av, b)
	case uint16:
		return same(av, b)
	case uint32:
		return same(av, b)
	case uint64:
		return same(av, b)
	case float32:
		return sameFloat(av, b)
	case float64:
		return sameFloat(av, b)
	case string:
		return same(av, b)
	case bool:
		return same(av, b)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// same compares a scalar with b, which may hold another dynamic type when T
// is an interface.
func same[V comparable](a V, b any) bool {
	bv, ok := b.(V)
	return ok && a == bv
}

// sameFloat is like same but treats NaN as equal to NaN.
func sameFloat[V float32 | float64](a V, b any) bool {
	bv, ok := b.(V)
	return ok && (a == bv || (math.IsNaN(float64(a)) && math.IsNaN(float64(bv))))
}

// isAbsent reports whether v holds no value: a nil slice, map, pointer,
// interface, channel or function.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	return !rv.IsValid() || isNilValue(rv)
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
