package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventStep      EventType = "step"
	EventStepError EventType = "step_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine"`
}

// RunEvent is emitted when a runner (re)starts from the start state.
type RunEvent struct {
	EventBase
	StartState Value `json:"start_state"`
}

// StepEvent represents one advance of a machine.
// Output is Undefined and Err is set when the step failed.
type StepEvent struct {
	EventBase
	Index  int   `json:"index"`
	Input  Value `json:"input"`
	Output Value `json:"output"`
	Err    error `json:"-"`
}

// LifecycleHooks defines callbacks for runner observability.
type LifecycleHooks struct {
	OnRunStart  func(context.Context, *RunEvent)
	OnStep      func(context.Context, *StepEvent)
	OnStepError func(context.Context, *StepEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRunStart:  chain(h.OnRunStart, other.OnRunStart),
		OnStep:      chain(h.OnStep, other.OnStep),
		OnStepError: chain(h.OnStepError, other.OnStepError),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
