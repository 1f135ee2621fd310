package foldz

import "cmp"

// Min retains the smallest element seen so far. Finalizing over an empty
// sequence yields an absent Maybe, never a default element.
//
// Elements that do not compare (IEEE NaN values compare unequal even to
// themselves) are skipped entirely, including as a candidate first value.
type Min[T cmp.Ordered] struct {
	state Maybe[T]
}

// NewMin creates a Min accumulator with no value seen yet.
func NewMin[T cmp.Ordered]() *Min[T] {
	return &Min[T]{}
}

// Accumulate implements the Accumulator interface.
func (m *Min[T]) Accumulate(v T) {
	if v != v { // NaN: comparison against anything is indeterminate
		return
	}
	if cur, ok := m.state.Get(); !ok || v < cur {
		m.state = Some(v)
	}
}

// Finalize implements the Accumulator interface.
func (m *Min[T]) Finalize() Maybe[T] {
	return m.state
}

// Merge folds another Min's partial state into this one, keeping the
// smaller of the two candidates.
func (m *Min[T]) Merge(other *Min[T]) {
	if v, ok := other.state.Get(); ok {
		m.Accumulate(v)
	}
}

// Max retains the largest element seen so far. Finalizing over an empty
// sequence yields an absent Maybe, never a default element.
//
// Elements that do not compare are skipped, as with Min.
type Max[T cmp.Ordered] struct {
	state Maybe[T]
}

// NewMax creates a Max accumulator with no value seen yet.
func NewMax[T cmp.Ordered]() *Max[T] {
	return &Max[T]{}
}

// Accumulate implements the Accumulator interface.
func (m *Max[T]) Accumulate(v T) {
	if v != v {
		return
	}
	if cur, ok := m.state.Get(); !ok || v > cur {
		m.state = Some(v)
	}
}

// Finalize implements the Accumulator interface.
func (m *Max[T]) Finalize() Maybe[T] {
	return m.state
}

// Merge folds another Max's partial state into this one, keeping the
// larger of the two candidates.
func (m *Max[T]) Merge(other *Max[T]) {
	if v, ok := other.state.Get(); ok {
		m.Accumulate(v)
	}
}

// MinMax holds the finalized output of an Extremes reduction. Either side
// is absent when no comparable element was seen.
type MinMax[T any] struct {
	Min Maybe[T]
	Max Maybe[T]
}

// Extremes tracks the smallest and largest element in a single reduction,
// delegating each element to an inner Min and Max.
//
// Example:
//
//	mm := foldz.Reduce(slices.Values([]int{5, 8}), foldz.NewExtremes[int]())
//	// mm.Min holds 5, mm.Max holds 8
type Extremes[T cmp.Ordered] struct {
	min Min[T]
	max Max[T]
}

// NewExtremes creates an Extremes accumulator with no value seen yet.
func NewExtremes[T cmp.Ordered]() *Extremes[T] {
	return &Extremes[T]{}
}

// Accumulate implements the Accumulator interface.
func (e *Extremes[T]) Accumulate(v T) {
	e.min.Accumulate(v)
	e.max.Accumulate(v)
}

// Finalize implements the Accumulator interface.
func (e *Extremes[T]) Finalize() MinMax[T] {
	return MinMax[T]{Min: e.min.Finalize(), Max: e.max.Finalize()}
}

// Merge folds another Extremes' partial state into this one.
func (e *Extremes[T]) Merge(other *Extremes[T]) {
	e.min.Merge(&other.min)
	e.max.Merge(&other.max)
}
