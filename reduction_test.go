package foldz

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestReduction_NewReduction(t *testing.T) {
	red := NewReduction[int, int]("test-reduction")
	defer red.Close()

	if red.Name() != "test-reduction" {
		t.Errorf("Expected name 'test-reduction', got %s", red.Name())
	}

	if red.Metrics() == nil {
		t.Error("Expected metrics registry to be set")
	}

	if red.Tracer() == nil {
		t.Error("Expected tracer to be set")
	}
}

func TestReduction_Run_MatchesBareReduce(t *testing.T) {
	input := []int{2, 5, 1, 8, 3}

	red := NewReduction[int, Paired[int, int]]("stats")
	defer red.Close()

	got, err := red.Run(context.Background(), slices.Values(input),
		NewPair[int](NewSum[int](), NewCount[int]()))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := ReduceSlice(input, NewPair[int](NewSum[int](), NewCount[int]()))
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestReduction_Run_EmptySource(t *testing.T) {
	red := NewReduction[int, int]("empty")
	defer red.Close()

	got, err := red.Run(context.Background(), slices.Values([]int{}), NewSum[int]())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != 0 {
		t.Errorf("Expected identity 0, got %d", got)
	}
}

func TestReduction_Run_CountsElements(t *testing.T) {
	red := NewReduction[int, int]("counted")
	defer red.Close()

	if _, err := red.Run(context.Background(), slices.Values([]int{1, 2, 3}), NewSum[int]()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := red.Run(context.Background(), slices.Values([]int{4}), NewSum[int]()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	runs := red.Metrics().Counter(ReductionRunsTotal).Value()
	if runs != 2 {
		t.Errorf("Expected 2 runs, got %v", runs)
	}

	elements := red.Metrics().Counter(ReductionElementsTotal).Value()
	if elements != 4 {
		t.Errorf("Expected 4 elements, got %v", elements)
	}
}

func TestReduction_Run_RecoversPanic(t *testing.T) {
	red := NewReduction[int, int]("panicky")
	defer red.Close()

	exploding := Fold(0, func(acc, v int) int {
		if v == 3 {
			panic("boom")
		}
		return acc + v
	})

	result, err := red.Run(context.Background(), slices.Values([]int{1, 2, 3, 4}), exploding)

	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if result != 0 {
		t.Errorf("Expected zero value on error, got %d", result)
	}

	var redErr *Error[int]
	if errors.As(err, &redErr) {
		if len(redErr.Path) != 1 || redErr.Path[0] != "panicky" {
			t.Errorf("Expected error path [panicky], got %v", redErr.Path)
		}
		if redErr.InputData != 3 {
			t.Errorf("Expected offending element 3, got %d", redErr.InputData)
		}
	} else {
		t.Error("Expected error to be of type *foldz.Error[int]")
	}

	panics := red.Metrics().Counter(ReductionPanicsTotal).Value()
	if panics != 1 {
		t.Errorf("Expected 1 recovered panic, got %v", panics)
	}
}

func TestReduction_OnCompleted(t *testing.T) {
	red := NewReduction[int, int]("hooked")
	defer red.Close()

	events := make(chan ReductionEvent, 1)
	if err := red.OnCompleted(func(_ context.Context, e ReductionEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("Expected hook registration to succeed, got %v", err)
	}

	if _, err := red.Run(context.Background(), slices.Values([]int{1, 2, 3}), NewSum[int]()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case e := <-events:
		if !e.Success {
			t.Error("Expected success event")
		}
		if e.Elements != 3 {
			t.Errorf("Expected 3 elements in event, got %d", e.Elements)
		}
		if e.Name != "hooked" {
			t.Errorf("Expected event name 'hooked', got %s", e.Name)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected completion event, got none")
	}
}

func TestReduction_OnPanicked(t *testing.T) {
	red := NewReduction[int, int]("observed")
	defer red.Close()

	events := make(chan ReductionEvent, 1)
	if err := red.OnPanicked(func(_ context.Context, e ReductionEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("Expected hook registration to succeed, got %v", err)
	}

	exploding := Fold(0, func(int, int) int { panic("boom") })
	if _, err := red.Run(context.Background(), slices.Values([]int{1}), exploding); err == nil {
		t.Fatal("Expected error, got nil")
	}

	select {
	case e := <-events:
		if e.Success {
			t.Error("Expected failure event")
		}
		if e.Error == nil {
			t.Error("Expected event to carry the error")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected panic event, got none")
	}
}

func TestReduction_WithClock(t *testing.T) {
	clock := clockz.NewFakeClock()

	red := NewReduction[int, int]("timed").WithClock(clock)
	defer red.Close()

	events := make(chan ReductionEvent, 1)
	if err := red.OnCompleted(func(_ context.Context, e ReductionEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("Expected hook registration to succeed, got %v", err)
	}

	// Advance the fake clock from inside the source so the run observes
	// a deterministic duration.
	source := func(yield func(int) bool) {
		clock.Advance(250 * time.Millisecond)
		yield(1)
	}

	if _, err := red.Run(context.Background(), source, NewSum[int]()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case e := <-events:
		if e.Duration != 250*time.Millisecond {
			t.Errorf("Expected duration 250ms, got %v", e.Duration)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected completion event, got none")
	}
}

func TestReduction_DoesNotStopOnContextCancel(t *testing.T) {
	red := NewReduction[int, int]("uninterruptible")
	defer red.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := red.Run(ctx, slices.Values([]int{1, 2, 3}), NewCount[int]())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != 3 {
		t.Errorf("Expected all 3 elements consumed despite canceled context, got %d", got)
	}
}
