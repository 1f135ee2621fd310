package foldz

// Collect appends every element to a growing slice, preserving source order.
// Finalizing over an empty sequence yields an empty (non-nil) slice.
//
// Collect is the one built-in whose state grows with the source; everything
// else holds constant-size state.
type Collect[T any] struct {
	items []T
}

// NewCollect creates a Collect accumulator with an empty container.
func NewCollect[T any]() *Collect[T] {
	return &Collect[T]{items: []T{}}
}

// Accumulate implements the Accumulator interface.
func (c *Collect[T]) Accumulate(v T) {
	c.items = append(c.items, v)
}

// Finalize implements the Accumulator interface. Ownership of the returned
// slice transfers to the caller.
func (c *Collect[T]) Finalize() []T {
	return c.items
}

// Merge appends another Collect's elements after this one's. Unlike the
// numeric merges this is order-sensitive: it is only equivalent to a single
// pass when other accumulated the later split of the sequence.
func (c *Collect[T]) Merge(other *Collect[T]) {
	c.items = append(c.items, other.items...)
}
