package foldz

// All reports whether every element satisfies a predicate. It starts true,
// so finalizing over an empty sequence yields true (vacuous truth).
//
// All cannot stop the traversal once its answer is fixed; the remaining
// elements are consumed and ignored. Bound the source upstream if that
// matters.
//
// Example:
//
//	even := func(n int) bool { return n%2 == 0 }
//	ok := foldz.Reduce(slices.Values([]int{2, 4, 6}), foldz.NewAll(even))
//	// ok == true
type All[T any] struct {
	pred   func(T) bool
	result bool
}

// NewAll creates an All accumulator over the given predicate.
func NewAll[T any](pred func(T) bool) *All[T] {
	return &All[T]{pred: pred, result: true}
}

// Accumulate implements the Accumulator interface.
func (a *All[T]) Accumulate(v T) {
	a.result = a.result && a.pred(v)
}

// Finalize implements the Accumulator interface.
func (a *All[T]) Finalize() bool {
	return a.result
}

// Merge ANDs another All's partial answer into this one.
func (a *All[T]) Merge(other *All[T]) {
	a.result = a.result && other.result
}

// Any reports whether at least one element satisfies a predicate. It starts
// false, so finalizing over an empty sequence yields false.
//
// Like All, Any keeps consuming after its answer is settled.
type Any[T any] struct {
	pred   func(T) bool
	result bool
}

// NewAny creates an Any accumulator over the given predicate.
func NewAny[T any](pred func(T) bool) *Any[T] {
	return &Any[T]{pred: pred}
}

// Accumulate implements the Accumulator interface.
func (a *Any[T]) Accumulate(v T) {
	a.result = a.result || a.pred(v)
}

// Finalize implements the Accumulator interface.
func (a *Any[T]) Finalize() bool {
	return a.result
}

// Merge ORs another Any's partial answer into this one.
func (a *Any[T]) Merge(other *Any[T]) {
	a.result = a.result || other.result
}
