package foldz

// Fold adapts a seed value and a plain fold function into an accumulator.
// Use it for one-off reductions that don't warrant a named type.
//
// The function receives the current state and the next element and returns
// the new state. It must be total: every element value is acceptable.
//
// Example:
//
//	longest := foldz.Fold("", func(acc, s string) string {
//	    if len(s) > len(acc) {
//	        return s
//	    }
//	    return acc
//	})
//	result := foldz.Reduce(seq, longest)
func Fold[T, R any](seed R, fn func(R, T) R) *Folder[T, R] {
	return &Folder[T, R]{state: seed, fn: fn}
}

// Folder is the accumulator produced by Fold. The fn field is intentionally
// private so folders are only created through the adapter, keeping the
// seed-then-fold construction in one place.
type Folder[T, R any] struct {
	fn    func(R, T) R
	state R
}

// Accumulate implements the Accumulator interface.
func (f *Folder[T, R]) Accumulate(v T) {
	f.state = f.fn(f.state, v)
}

// Finalize implements the Accumulator interface.
func (f *Folder[T, R]) Finalize() R {
	return f.state
}
