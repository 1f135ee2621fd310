package foldz

// Paired holds the finalized outputs of a Pair's two children, in child
// order. Nested pairs produce nested Paired values, so a three-way shape
// finalizes to Paired[A, Paired[B, C]] (or the left-nested equivalent).
type Paired[A, B any] struct {
	Left  A
	Right B
}

// Pair composes two accumulators of any output types into one accumulator.
// Every element is forwarded to the left child first, then the right child,
// within the same traversal step. Children never observe each other's
// state, so pairing cannot change what either child would have produced
// alone, and nesting (A, (B, C)) versus ((A, B), C) is purely a
// presentation choice.
//
// Arbitrary arity is reached by nesting; there is no dedicated n-ary node.
//
// The children are held behind the Accumulator interface, which is the cost
// of pairing heterogeneous output types in Go: each element pays two
// interface method calls per pair node. Leaf accumulators used directly
// stay on concrete types with no dispatch.
//
// The shape is fixed at construction; only the children's state mutates
// during a traversal.
//
// Example:
//
//	shape := foldz.NewPair[int](foldz.NewSum[int](), foldz.NewCount[int]())
//	r := foldz.Reduce(seq, shape)
//	// r.Left is the sum, r.Right the count
type Pair[T, A, B any] struct {
	left  Accumulator[T, A]
	right Accumulator[T, B]
}

// NewPair creates a Pair over the two given children.
func NewPair[T, A, B any](left Accumulator[T, A], right Accumulator[T, B]) *Pair[T, A, B] {
	return &Pair[T, A, B]{left: left, right: right}
}

// Accumulate implements the Accumulator interface, fanning the element out
// to both children.
func (p *Pair[T, A, B]) Accumulate(v T) {
	p.left.Accumulate(v)
	p.right.Accumulate(v)
}

// Finalize implements the Accumulator interface, finalizing both children
// independently and preserving child order.
func (p *Pair[T, A, B]) Finalize() Paired[A, B] {
	return Paired[A, B]{Left: p.left.Finalize(), Right: p.right.Finalize()}
}
