package foldz

// Count counts the elements it sees, ignoring their values.
// Finalizing over an empty sequence yields zero.
type Count[T any] struct {
	n int
}

// NewCount creates a Count accumulator starting at zero.
func NewCount[T any]() *Count[T] {
	return &Count[T]{}
}

// Accumulate implements the Accumulator interface.
func (c *Count[T]) Accumulate(T) {
	c.n++
}

// Finalize implements the Accumulator interface.
func (c *Count[T]) Finalize() int {
	return c.n
}

// Merge adds another Count's partial count to this one.
func (c *Count[T]) Merge(other *Count[T]) {
	c.n += other.n
}
