package core

// PropertyOption is a functional option for configuring properties.
type PropertyOption[T any] func(*Property[T])

// WithEquals sets a custom equality function.
// This is useful for custom types where reflect.DeepEqual is too expensive
// or has incorrect semantics, such as ignoring the order of a tag list.
//
// Example:
//
//	price := core.NewProperty(core.WithEquals(func(a, b float64) bool {
//	    return math.Abs(a-b) < 0.005
//	}))
func WithEquals[T any](fn func(a, b T) bool) PropertyOption[T] {
	return func(p *Property[T]) {
		p.equal = fn
	}
}

// WithClone sets a custom snapshot function used when committing and
// resetting. fn must return a value that shares no mutable storage with its
// argument.
func WithClone[T any](fn func(T) T) PropertyOption[T] {
	return func(p *Property[T]) {
		p.clone = fn
	}
}

// TrackAbsent reports an absent current value as a change when the baseline
// holds a value. By default clearing a field to nil is not a change, because
// an absent field is left out of update requests.
//
// Example:
//
//	attrs := core.NewProperty(core.TrackAbsent[map[string]string]())
func TrackAbsent[T any]() PropertyOption[T] {
	return func(p *Property[T]) {
		p.trackAbsent = true
	}
}
