package core

import "fmt"

// Property is a change-tracked value container.
// It keeps the live value of a field and a snapshot of the value it was last
// committed at, and reports whether the two differ.
//
// The zero value is ready to use and equivalent to NewProperty[T]().
type Property[T any] struct {
	// initial is the committed baseline. It is always a private snapshot,
	// never aliased with current.
	initial T

	// current is the live value owned by the caller.
	current T

	// equal overrides equality checking. If nil, uses defaultEquals.
	equal func(T, T) bool

	// clone overrides snapshotting. If nil, uses defaultClone.
	clone func(T) T

	// trackAbsent reports an absent current value as a change when the
	// baseline is present.
	trackAbsent bool
}

// NewProperty creates a property whose current and initial values are both
// the zero value of T.
func NewProperty[T any](opts ...PropertyOption[T]) *Property[T] {
	p := &Property[T]{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPropertyOf creates a property with value already committed as its
// baseline. This is the shape of a field freshly read from the server.
func NewPropertyOf[T any](value T, opts ...PropertyOption[T]) *Property[T] {
	p := NewProperty(opts...)
	p.current = value
	p.SetValueAsInitial()
	return p
}

// Value returns the current value.
// For container types the returned value shares storage with the property,
// so in-place edits are visible to HasChanged.
func (p *Property[T]) Value() T {
	return p.current
}

// InitialValue returns the committed baseline.
func (p *Property[T]) InitialValue() T {
	return p.initial
}

// Set replaces the current value. The baseline is not touched.
func (p *Property[T]) Set(value T) {
	p.current = value
}

// Update replaces the current value with fn applied to it.
func (p *Property[T]) Update(fn func(T) T) {
	p.current = fn(p.current)
}

// SetValueAsInitial commits the current value as the new baseline.
// The baseline is a snapshot, so later in-place edits of the current value
// are still detected.
func (p *Property[T]) SetValueAsInitial() {
	p.initial = p.snapshot(p.current)
}

// Reset discards local edits by restoring the current value from the
// baseline.
func (p *Property[T]) Reset() {
	p.current = p.snapshot(p.initial)
}

// HasChanged reports whether the current value differs from the baseline.
func (p *Property[T]) HasChanged() bool {
	if !p.trackAbsent && isAbsent(p.current) {
		return false
	}
	return !p.equals(p.initial, p.current)
}

// Any returns the current value as an interface{}.
func (p *Property[T]) Any() any {
	return p.current
}

// String formats the current value, marking it when it differs from the
// baseline.
func (p *Property[T]) String() string {
	if p.HasChanged() {
		return fmt.Sprintf("%v (changed)", p.current)
	}
	return fmt.Sprintf("%v", p.current)
}

// equals checks if two values are equal using the configured equality function.
func (p *Property[T]) equals(a, b T) bool {
	if p.equal != nil {
		return p.equal(a, b)
	}
	return defaultEquals(a, b)
}

// snapshot copies v using the configured clone function.
func (p *Property[T]) snapshot(v T) T {
	if p.clone != nil {
		return p.clone(v)
	}
	return defaultClone(v)
}
