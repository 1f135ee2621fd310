package foldz

import "github.com/zoobzio/capitan"

// Signal definitions for reduction runner events.
// Signals follow the pattern: reduction.<event>.
var (
	SignalReductionCompleted = capitan.NewSignal(
		"reduction.completed",
		"Reduction runner finished a traversal and finalized its result",
	)
	SignalReductionPanicked = capitan.NewSignal(
		"reduction.panicked",
		"Reduction runner recovered a panic from an accumulator or source during a traversal",
	)
)

// Common field keys using capitan primitive types.
// All keys use primitive types to avoid custom struct serialization.
var (
	FieldName      = capitan.NewStringKey("name")       // Runner instance name
	FieldError     = capitan.NewStringKey("error")      // Error message
	FieldElements  = capitan.NewIntKey("elements")      // Elements consumed during the run
	FieldDuration  = capitan.NewFloat64Key("duration")  // Run duration in seconds
	FieldTimestamp = capitan.NewFloat64Key("timestamp") // Unix timestamp
)
