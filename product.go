package foldz

// Product accumulates the running product of every element it sees.
// It starts at the multiplicative identity, so finalizing over an empty
// sequence yields one.
type Product[T Numeric] struct {
	total T
}

// NewProduct creates a Product accumulator in its identity state.
func NewProduct[T Numeric]() *Product[T] {
	return &Product[T]{total: 1}
}

// Accumulate implements the Accumulator interface.
func (p *Product[T]) Accumulate(v T) {
	p.total *= v
}

// Finalize implements the Accumulator interface.
func (p *Product[T]) Finalize() T {
	return p.total
}

// Merge folds another Product's partial total into this one.
func (p *Product[T]) Merge(other *Product[T]) {
	p.total *= other.total
}
