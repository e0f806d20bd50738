package core

import (
	"reflect"
	"time"

	"github.com/mohae/deepcopy"
)

// Cloner is implemented by types that know how to copy themselves.
// Clone methods are honoured at any depth, including for values held in
// map[string]any or []any.
type Cloner[T any] interface {
	Clone() T
}

var timeType = reflect.TypeOf(time.Time{})

// defaultClone returns a copy of v that shares no mutable storage with it.
// Scalars are copied by assignment. Slices, maps, pointers and aggregates of
// them are deep copied. Nil containers stay nil and empty ones stay empty.
//
// Values with unexported state and no Clone method are kept by assignment
// inside freshly copied containers. Pointer cycles and shared pointers are
// preserved.
func defaultClone[T any](v T) T {
	if isAbsent(v) {
		return v
	}
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	rv := reflect.ValueOf(any(v))
	if !holdsRefs(rv.Type(), map[reflect.Type]bool{}) {
		return v
	}
	c := &copier{pointers: make(map[uintptr]reflect.Value)}
	out, ok := c.copy(rv).Interface().(T)
	if !ok {
		return v
	}
	return out
}

// holdsRefs reports whether values of t may share storage on assignment.
func holdsRefs(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == timeType || seen[t] {
		return false
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Pointer:
		return true
	case reflect.Array:
		return holdsRefs(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsRefs(t.Field(i).Type, seen) {
				return true
			}
		}
	}
	return false
}

// copier deep copies a value graph. Subtrees deepcopy reproduces exactly are
// handed to it; the rest is walked here.
type copier struct {
	pointers map[uintptr]reflect.Value // original pointer -> copy
}

func (c *copier) copy(rv reflect.Value) reflect.Value {
	if !rv.IsValid() || isNilValue(rv) {
		return rv
	}
	if rv.Kind() == reflect.Interface {
		out := reflect.New(rv.Type()).Elem()
		out.Set(c.copy(rv.Elem()))
		return out
	}
	if cp, ok := callClone(rv); ok {
		return cp
	}
	if faithful(rv, map[uintptr]bool{}) {
		return reflect.ValueOf(deepcopy.Copy(rv.Interface()))
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if cp, ok := c.pointers[rv.Pointer()]; ok {
			return cp
		}
		cp := reflect.New(rv.Type().Elem())
		c.pointers[rv.Pointer()] = cp
		cp.Elem().Set(c.copy(rv.Elem()))
		return cp
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), c.copy(iter.Value()))
		}
		return out
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Cap())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(c.copy(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(c.copy(rv.Index(i)))
		}
		return out
	case reflect.Struct:
		if hasUnexported(rv.Type()) {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.NumField(); i++ {
			out.Field(i).Set(c.copy(rv.Field(i)))
		}
		return out
	}
	return rv
}

// faithful reports whether deepcopy reproduces rv exactly: no unexported
// struct state, no Clone methods it would bypass, and no pointer reached
// twice (deepcopy neither terminates on cycles nor keeps sharing).
func faithful(rv reflect.Value, seen map[uintptr]bool) bool {
	if !rv.IsValid() {
		return true
	}
	t := rv.Type()
	if t == timeType {
		return true
	}
	if t.Kind() != reflect.Interface && hasCloneMethod(t) {
		return false
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return faithful(rv.Elem(), seen)
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return true
		}
		if rv.Kind() != reflect.Slice || rv.Len() > 0 {
			p := rv.Pointer()
			if seen[p] {
				return false
			}
			seen[p] = true
		}
		switch rv.Kind() {
		case reflect.Pointer:
			return faithful(rv.Elem(), seen)
		case reflect.Map:
			iter := rv.MapRange()
			for iter.Next() {
				if !faithful(iter.Key(), seen) || !faithful(iter.Value(), seen) {
					return false
				}
			}
			return true
		}
		return elementsFaithful(rv, seen)
	case reflect.Array:
		return elementsFaithful(rv, seen)
	case reflect.Struct:
		if hasUnexported(t) {
			return false
		}
		for i := 0; i < rv.NumField(); i++ {
			if !faithful(rv.Field(i), seen) {
				return false
			}
		}
	}
	return true
}

func elementsFaithful(rv reflect.Value, seen map[uintptr]bool) bool {
	for i := 0; i < rv.Len(); i++ {
		if !faithful(rv.Index(i), seen) {
			return false
		}
	}
	return true
}

func hasUnexported(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

// hasCloneMethod reports whether t has a method Clone() t.
func hasCloneMethod(t reflect.Type) bool {
	m, ok := t.MethodByName("Clone")
	if !ok {
		return false
	}
	mt := m.Type // receiver is the first argument
	return mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0) == t
}

func callClone(rv reflect.Value) (reflect.Value, bool) {
	if !rv.CanInterface() || !hasCloneMethod(rv.Type()) {
		return reflect.Value{}, false
	}
	return rv.MethodByName("Clone").Call(nil)[0], true
}
