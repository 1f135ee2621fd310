package foldz

import (
	"slices"
	"testing"
)

func TestPair_BothChildrenSeeEveryElement(t *testing.T) {
	input := []int{2, 5, 1, 8, 3}

	pair := Reduce(slices.Values(input), NewPair[int](NewSum[int](), NewCount[int]()))

	if pair.Left != 19 {
		t.Errorf("Expected sum 19, got %d", pair.Left)
	}
	if pair.Right != len(input) {
		t.Errorf("Expected count %d, got %d", len(input), pair.Right)
	}
}

func TestPair_NonInterference(t *testing.T) {
	input := []int{4, 2, 9, 7}

	aloneSum := ReduceSlice(input, NewSum[int]())
	aloneMin := ReduceSlice(input, NewMin[int]())

	pair := ReduceSlice(input, NewPair[int](NewSum[int](), NewMin[int]()))

	if pair.Left != aloneSum {
		t.Errorf("Expected paired sum %d to equal standalone sum, got %d", aloneSum, pair.Left)
	}
	if pair.Right != aloneMin {
		t.Errorf("Expected paired min %v to equal standalone min, got %v", aloneMin, pair.Right)
	}
}

func TestPair_NestingAssociativity(t *testing.T) {
	input := []int{2, 5, 1, 8, 3}

	// (Sum, (Min, Max))
	rightNested := ReduceSlice(input, NewPair[int](
		NewSum[int](),
		NewPair[int](NewMin[int](), NewMax[int]()),
	))

	// ((Sum, Min), Max)
	leftNested := ReduceSlice(input, NewPair[int](
		NewPair[int](NewSum[int](), NewMin[int]()),
		NewMax[int](),
	))

	if rightNested.Left != leftNested.Left.Left {
		t.Errorf("Expected equal sums, got %d and %d", rightNested.Left, leftNested.Left.Left)
	}
	if rightNested.Right.Left != leftNested.Left.Right {
		t.Errorf("Expected equal mins, got %v and %v", rightNested.Right.Left, leftNested.Left.Right)
	}
	if rightNested.Right.Right != leftNested.Right {
		t.Errorf("Expected equal maxes, got %v and %v", rightNested.Right.Right, leftNested.Right)
	}
}

func TestPair_PreservesChildOrder(t *testing.T) {
	pair := ReduceSlice([]int{1, 2, 3}, NewPair[int](NewFirst[int](), NewLast[int]()))

	if got, ok := pair.Left.Get(); !ok || got != 1 {
		t.Errorf("Expected left child to be First (1), got (%d, %t)", got, ok)
	}
	if got, ok := pair.Right.Get(); !ok || got != 3 {
		t.Errorf("Expected right child to be Last (3), got (%d, %t)", got, ok)
	}
}

func TestPair_HeterogeneousOutputs(t *testing.T) {
	pair := ReduceSlice([]int{2, 4}, NewPair[int](NewCollect[int](), NewAll(even)))

	if !slices.Equal(pair.Left, []int{2, 4}) {
		t.Errorf("Expected collected [2 4], got %v", pair.Left)
	}
	if !pair.Right {
		t.Error("Expected All(even) to be true")
	}
}

func TestPair_Empty(t *testing.T) {
	pair := ReduceSlice(nil, NewPair[int](NewSum[int](), NewMin[int]()))

	if pair.Left != 0 {
		t.Errorf("Expected sum identity 0, got %d", pair.Left)
	}
	if pair.Right.Present() {
		t.Error("Expected absent min over empty input")
	}
}
