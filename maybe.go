package foldz

// Maybe represents a value that may be absent. Reductions that have nothing to
// report over an empty sequence (Min, Max, First, Last, Mean) finalize to a
// Maybe rather than a sentinel element value, so "no elements seen" is always
// distinguishable from any real element.
//
// The zero Maybe is absent.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some returns a present Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// None returns an absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the held value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Present reports whether a value is held.
func (m Maybe[T]) Present() bool {
	return m.ok
}

// Or returns the held value, or fallback when absent.
func (m Maybe[T]) Or(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}
