// Package foldz provides a lightweight, type-safe library for composing single-pass
// aggregations over sequences in Go.
//
// # Overview
//
// foldz lets you combine independent reductions (sum, min, max, count, collect, ...)
// so that a sequence is traversed exactly once, with every element feeding all of
// the combined reductions simultaneously. The final result is statically typed and
// destructurable, even when it nests several reductions.
//
// # Installation
//
//	go get github.com/zoobzio/foldz
//
// Requires Go 1.23+ for generic type constraints and iter.Seq.
//
// # Core Concepts
//
// The library is built around a single, uniform interface:
//
//	type Accumulator[T, R any] interface {
//	    Accumulate(T)
//	    Finalize() R
//	}
//
// Key components:
//   - Accumulators: Individual reductions created with constructor functions
//     (NewSum, NewMin, NewCollect, ...) or the Fold adapter
//   - Pair: Composes two accumulators into one, fanning each element out to both
//   - Reduce: The single-pass drive function binding a sequence to an accumulator
//   - Reduction: A named runner around Reduce with metrics, tracing, and events
//
// Design philosophy:
//   - Accumulators are cheap concrete structs (constructed per reduction, used once)
//   - Composition is structural (nested pairs), fixed before the traversal begins
//   - The hot path is direct method calls on concrete types wherever the caller
//     holds a concrete accumulator; only Pair routes through the interface
//
// # Accumulators
//
// Every built-in starts in its identity state and finalizes deterministically,
// including over an empty sequence:
//
//	sum := foldz.NewSum[int]()        // finalizes to 0 on empty input
//	cnt := foldz.NewCount[int]()      // finalizes to 0 on empty input
//	min := foldz.NewMin[int]()        // finalizes to an absent Maybe on empty input
//	all := foldz.NewAll(isEven)       // finalizes to true on empty input (vacuous)
//
// Reductions that may have nothing to report (Min, Max, First, Last, Mean) return
// a Maybe[T] rather than a magic default:
//
//	if v, ok := foldz.Reduce(seq, foldz.NewMin[int]()).Get(); ok {
//	    fmt.Println("min:", v)
//	}
//
// # Composition
//
// Pair combines two accumulators of any output types into one accumulator whose
// result is a Paired of both results. Nest pairs for wider shapes:
//
//	shape := foldz.NewPair[int](
//	    foldz.NewSum[int](),
//	    foldz.NewPair[int](foldz.NewMin[int](), foldz.NewMax[int]()),
//	)
//	r := foldz.Reduce(seq, shape)
//	// r.Left is the sum, r.Right.Left the min, r.Right.Right the max
//
// Children never observe each other's state, so pairing cannot change what either
// child would have produced alone, and the nesting shape is a presentation choice.
//
// # Driving a Reduction
//
// Reduce visits each element exactly once, in order, and finalizes when the
// sequence ends:
//
//	total := foldz.Reduce(slices.Values(nums), foldz.NewSum[int]())
//
// The traversal is lazy with respect to the source: nothing is buffered beyond
// the single Accumulate call, so any iter.Seq works, including generated ones.
// A sequence that never ends never finalizes; bound infinite sources upstream.
//
// # No Early Exit
//
// There is no short-circuit channel between an accumulator and the traversal.
// An Any accumulator keeps consuming after its answer is settled. This keeps the
// contract small; if you need to stop early, stop the source itself.
//
// # Observability
//
// The Reduction runner wraps Reduce with per-run metrics, a trace span, async
// completion events, and process-wide signals, in exchange for a per-element
// counter increment. The bare Reduce function carries none of that overhead.
//
// For more examples, see the examples directory.
package foldz

// Accumulator is the capability every reduction implements. An accumulator is
// constructed in its identity state, fed elements one at a time through
// Accumulate, and consumed exactly once by Finalize.
//
// Accumulator is the foundation of foldz - every built-in reduction, the Fold
// adapter, and the Pair combinator implement this interface. The uniform
// interface enables structural composition while maintaining type safety
// through Go generics.
//
// Contract:
//   - Accumulate must be total: every value of T is acceptable
//   - Finalize must be total: it returns a well-defined result even when no
//     element was ever accumulated
//   - Finalize consumes the accumulator; reusing it afterwards is undefined
//   - An accumulator instance belongs to one reduction and is not safe for
//     concurrent use
type Accumulator[T, R any] interface {
	Accumulate(T)
	Finalize() R
}

// Name is a type alias for reduction runner names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    OrderStatsName   Name = "order-stats"
//	    LatencyStatsName Name = "latency-stats"
//	)
//
//	stats := foldz.NewReduction[Order, OrderStats](OrderStatsName)
type Name = string

// Numeric constrains the element types Sum, Product, and Mean accept.
// Any type whose underlying type is a built-in integer or float qualifies.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
