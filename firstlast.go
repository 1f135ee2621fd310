package foldz

// First retains the first element seen and ignores the rest.
// Finalizing over an empty sequence yields an absent Maybe.
type First[T any] struct {
	state Maybe[T]
}

// NewFirst creates a First accumulator with no value seen yet.
func NewFirst[T any]() *First[T] {
	return &First[T]{}
}

// Accumulate implements the Accumulator interface.
func (f *First[T]) Accumulate(v T) {
	if !f.state.Present() {
		f.state = Some(v)
	}
}

// Finalize implements the Accumulator interface.
func (f *First[T]) Finalize() Maybe[T] {
	return f.state
}

// Last retains the most recent element seen, overwriting on every element.
// Finalizing over an empty sequence yields an absent Maybe.
type Last[T any] struct {
	state Maybe[T]
}

// NewLast creates a Last accumulator with no value seen yet.
func NewLast[T any]() *Last[T] {
	return &Last[T]{}
}

// Accumulate implements the Accumulator interface.
func (l *Last[T]) Accumulate(v T) {
	l.state = Some(v)
}

// Finalize implements the Accumulator interface.
func (l *Last[T]) Finalize() Maybe[T] {
	return l.state
}
