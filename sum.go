package foldz

// Sum accumulates the running total of every element it sees.
// It starts at the additive identity, so finalizing over an empty
// sequence yields zero.
//
// Example:
//
//	total := foldz.Reduce(slices.Values([]int{2, 5, 1, 8, 3}), foldz.NewSum[int]())
//	// total == 19
type Sum[T Numeric] struct {
	total T
}

// NewSum creates a Sum accumulator in its identity state.
func NewSum[T Numeric]() *Sum[T] {
	return &Sum[T]{}
}

// Accumulate implements the Accumulator interface.
func (s *Sum[T]) Accumulate(v T) {
	s.total += v
}

// Finalize implements the Accumulator interface.
func (s *Sum[T]) Finalize() T {
	return s.total
}

// Merge folds another Sum's partial total into this one. Summation is
// associative and commutative, so merging independently accumulated halves
// of a sequence equals a single pass over the whole.
func (s *Sum[T]) Merge(other *Sum[T]) {
	s.total += other.total
}
