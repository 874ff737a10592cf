package domain

import "time"

// StepEvent describes one action of a run.
type StepEvent struct {
	RunID    string
	Pipeline string
	// Index is the zero-based position of the action in the pipeline.
	Index  int
	Action Action
	// Duration is zero for OnStepStart.
	Duration time.Duration
	// Err is set only for OnStepFailure.
	Err *StepError
}

// LifecycleHooks defines callbacks for engine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnStepStart   func(*StepEvent)
	OnStepSuccess func(*StepEvent)
	OnStepFailure func(*StepEvent)
}
