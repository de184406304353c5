package pipeline

import "errors"

var (
	// ErrQueueFull is returned when a submit could not hand its record to a
	// worker within the configured submit timeout.
	ErrQueueFull = errors.New("pipeline queue full")

	// ErrStopped is returned for submits arriving after the pipeline began
	// shutting down.
	ErrStopped = errors.New("pipeline stopped")

	// ErrStartupAlreadyComplete is returned when the end-of-startup signal is
	// raised more than once.
	ErrStartupAlreadyComplete = errors.New("startup already complete")
)
