package foldz

import (
	"context"
	"errors"
	"iter"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Reduction runner observability.
const (
	ReductionRunsTotal     = metricz.Key("reduction.runs.total")
	ReductionElementsTotal = metricz.Key("reduction.elements.total")
	ReductionPanicsTotal   = metricz.Key("reduction.panics.total")
)

// Span names for Reduction runner.
const (
	ReductionRunSpan = tracez.Key("reduction.run")
)

// Span tags for Reduction runner.
const (
	ReductionTagRunner   = tracez.Tag("reduction.runner")
	ReductionTagElements = tracez.Tag("reduction.elements")
	ReductionTagSuccess  = tracez.Tag("reduction.success")
	ReductionTagError    = tracez.Tag("reduction.error")

	// Hook event keys.
	ReductionEventCompleted = hookz.Key("reduction.completed")
	ReductionEventPanicked  = hookz.Key("reduction.panicked")
)

// ReductionEvent represents the outcome of one reduction run. It is emitted
// via hookz when a run completes or recovers a panic, allowing external
// systems to track reduction activity without touching the hot path.
type ReductionEvent struct {
	Name      Name          // Runner name
	Elements  int           // Elements consumed during the run
	Success   bool          // Whether the run finalized normally
	Error     error         // Error if the run panicked
	Duration  time.Duration // Wall time of the run
	Timestamp time.Time     // When the event occurred
}

// Reduction is a named runner around Reduce. It performs the same
// single-pass traversal while recording metrics, a trace span, async
// completion events, and process-wide signals for each run.
//
// Use Reduction when a reduction is a long-lived, named part of your system
// (a stats pass in a job, an aggregation stage in a worker) and you want it
// observable. Use the bare Reduce function when you want zero overhead.
//
// The runner is stateless between runs apart from its observability
// components, so one Reduction may drive many runs, sequentially or
// concurrently, each with its own accumulator.
//
// The context is used for tracing, signals, and hook delivery only.
// Cancellation does not interrupt a traversal: there is no early-exit
// channel between the runner and an accumulator, so a run always consumes
// its source to the end. Bound the source upstream if you need to stop.
//
// # Observability
//
// Metrics:
//   - reduction.runs.total: Counter of runs started
//   - reduction.elements.total: Counter of elements consumed across runs
//   - reduction.panics.total: Counter of runs that recovered a panic
//
// Traces:
//   - reduction.run: Span for the whole traversal including finalization
//
// Events (via hooks):
//   - reduction.completed: Fired when a run finalizes normally
//   - reduction.panicked: Fired when a run recovers a panic
//
// Example:
//
//	stats := foldz.NewReduction[float64, foldz.Paired[float64, int]]("latency-stats")
//	stats.OnCompleted(func(_ context.Context, e foldz.ReductionEvent) error {
//	    log.Printf("reduced %d samples in %v", e.Elements, e.Duration)
//	    return nil
//	})
//
//	result, err := stats.Run(ctx, samples,
//	    foldz.NewPair[float64](foldz.NewSum[float64](), foldz.NewCount[float64]()),
//	)
type Reduction[T, R any] struct {
	name  Name
	clock clockz.Clock
	mu    sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[ReductionEvent]
}

// NewReduction creates a named Reduction runner for sequences of T reduced
// to results of R.
func NewReduction[T, R any](name Name) *Reduction[T, R] {
	// Initialize observability components
	registry := metricz.New()
	tracer := tracez.New()

	// Register metrics
	registry.Counter(ReductionRunsTotal)
	registry.Counter(ReductionElementsTotal)
	registry.Counter(ReductionPanicsTotal)

	return &Reduction[T, R]{
		name:    name,
		metrics: registry,
		tracer:  tracer,
		hooks:   hookz.New[ReductionEvent](),
	}
}

// Run drives acc over seq exactly as Reduce does, instrumented. Each
// element is visited once, in order; the result is finalized when the
// source ends. A panic in the accumulator, a predicate, or the source is
// recovered and returned as a *Error[T] carrying the element in flight.
func (r *Reduction[T, R]) Run(ctx context.Context, seq iter.Seq[T], acc Accumulator[T, R]) (R, error) {
	clock := r.getClock()
	start := clock.Now()

	// Start span for the whole traversal
	ctx, span := r.tracer.StartSpan(ctx, ReductionRunSpan)
	defer span.Finish()
	span.SetTag(ReductionTagRunner, string(r.name))

	r.metrics.Counter(ReductionRunsTotal).Inc()

	elements := 0
	result, err := r.traverse(seq, acc, &elements)
	duration := clock.Now().Sub(start)
	span.SetTag(ReductionTagElements, strconv.Itoa(elements))

	if err != nil {
		r.metrics.Counter(ReductionPanicsTotal).Inc()
		span.SetTag(ReductionTagSuccess, "false")
		span.SetTag(ReductionTagError, err.Error())

		var redErr *Error[T]
		if errors.As(err, &redErr) {
			redErr.Duration = duration
		}

		capitan.Error(ctx, SignalReductionPanicked,
			FieldName.Field(string(r.name)),
			FieldError.Field(err.Error()),
			FieldElements.Field(elements),
			FieldDuration.Field(duration.Seconds()),
			FieldTimestamp.Field(float64(time.Now().Unix())),
		)

		// Emit panicked event
		_ = r.hooks.Emit(ctx, ReductionEventPanicked, ReductionEvent{ //nolint:errcheck
			Name:      r.name,
			Elements:  elements,
			Success:   false,
			Error:     err,
			Duration:  duration,
			Timestamp: time.Now(),
		})

		return result, err
	}

	span.SetTag(ReductionTagSuccess, "true")

	capitan.Emit(ctx, SignalReductionCompleted,
		FieldName.Field(string(r.name)),
		FieldElements.Field(elements),
		FieldDuration.Field(duration.Seconds()),
		FieldTimestamp.Field(float64(time.Now().Unix())),
	)

	// Emit completed event
	_ = r.hooks.Emit(ctx, ReductionEventCompleted, ReductionEvent{ //nolint:errcheck
		Name:      r.name,
		Elements:  elements,
		Success:   true,
		Error:     nil,
		Duration:  duration,
		Timestamp: time.Now(),
	})

	return result, nil
}

// traverse is the instrumented inner loop. current tracks the element in
// flight so the recovery path can report it.
func (r *Reduction[T, R]) traverse(seq iter.Seq[T], acc Accumulator[T, R], elements *int) (result R, err error) {
	var current T
	defer recoverFromPanic(&result, &err, r.name, &current)

	counter := r.metrics.Counter(ReductionElementsTotal)
	for v := range seq {
		current = v
		acc.Accumulate(v)
		*elements++
		counter.Inc()
	}
	return acc.Finalize(), nil
}

// WithClock sets a custom clock for testing.
func (r *Reduction[T, R]) WithClock(clock clockz.Clock) *Reduction[T, R] {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = clock
	return r
}

// getClock returns the clock to use.
func (r *Reduction[T, R]) getClock() clockz.Clock {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.clock == nil {
		return clockz.RealClock
	}
	return r.clock
}

// Name returns the name of this runner.
func (r *Reduction[T, R]) Name() Name {
	return r.name
}

// Metrics returns the metrics registry for this runner.
func (r *Reduction[T, R]) Metrics() *metricz.Registry {
	return r.metrics
}

// Tracer returns the tracer for this runner.
func (r *Reduction[T, R]) Tracer() *tracez.Tracer {
	return r.tracer
}

// Close gracefully shuts down observability components.
func (r *Reduction[T, R]) Close() error {
	if r.tracer != nil {
		r.tracer.Close()
	}
	r.hooks.Close()
	return nil
}

// OnCompleted registers a handler for runs that finalize normally.
// The handler is called asynchronously after the run completes.
func (r *Reduction[T, R]) OnCompleted(handler func(context.Context, ReductionEvent) error) error {
	_, err := r.hooks.Hook(ReductionEventCompleted, handler)
	return err
}

// OnPanicked registers a handler for runs that recover a panic.
// The handler is called asynchronously after the run fails.
func (r *Reduction[T, R]) OnPanicked(handler func(context.Context, ReductionEvent) error) error {
	_, err := r.hooks.Hook(ReductionEventPanicked, handler)
	return err
}
