package foldz

import "iter"

// Reduce performs the single-pass traversal: each element of seq is fed to
// acc exactly once, in source order, and the finalized result is returned
// when the sequence ends.
//
// The traversal is lazy with respect to the source; no element is buffered
// beyond the single Accumulate call. Accumulator state itself may grow
// (Collect). A sequence that never ends never finalizes; that is a caller
// error, not a detectable condition.
//
// Reduce adds nothing to the hot path: no recovery, no counters, no
// dispatch beyond what acc itself does. Use Reduction when you want a run
// instrumented.
func Reduce[T, R any](seq iter.Seq[T], acc Accumulator[T, R]) R {
	for v := range seq {
		acc.Accumulate(v)
	}
	return acc.Finalize()
}

// ReduceSlice reduces a slice without the caller reaching for slices.Values.
func ReduceSlice[T, R any](items []T, acc Accumulator[T, R]) R {
	for _, v := range items {
		acc.Accumulate(v)
	}
	return acc.Finalize()
}
