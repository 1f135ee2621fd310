package foldz

// Mean computes the arithmetic mean of the elements as a float64, updating
// the running mean incrementally rather than summing first, which keeps the
// intermediate value in the range of the data. Finalizing over an empty
// sequence yields an absent Maybe; a mean of nothing is not zero.
type Mean[T Numeric] struct {
	mean  float64
	count int
}

// NewMean creates a Mean accumulator with no value seen yet.
func NewMean[T Numeric]() *Mean[T] {
	return &Mean[T]{}
}

// Accumulate implements the Accumulator interface.
func (m *Mean[T]) Accumulate(v T) {
	m.count++
	m.mean += (float64(v) - m.mean) / float64(m.count)
}

// Finalize implements the Accumulator interface.
func (m *Mean[T]) Finalize() Maybe[float64] {
	if m.count == 0 {
		return None[float64]()
	}
	return Some(m.mean)
}
