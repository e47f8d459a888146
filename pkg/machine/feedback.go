package machine

import (
	"fmt"

	"github.com/aretw0/transducer/pkg/domain"
)

// FeedbackMachine connects the output of a machine back to its own input.
//
// Each step evaluates the inner machine twice against the same state: first
// with Undefined as input to discover the output, then with that output as
// input to obtain the successor state. This is only meaningful when the inner
// machine's output depends on its state alone (for example, a loop closed
// through a Delay). The condition is not checked.
type FeedbackMachine struct {
	m Machine
}

// Feedback closes a loop around m. The external input is ignored.
func Feedback(m Machine) *FeedbackMachine {
	return &FeedbackMachine{m: m}
}

func (f *FeedbackMachine) Name() string { return "feedback" }

func (f *FeedbackMachine) Children() []Machine { return []Machine{f.m} }

// StartState is the inner machine's start state, unwrapped.
func (f *FeedbackMachine) StartState() domain.Value { return f.m.StartState() }

func (f *FeedbackMachine) NextValues(state, _ domain.Value) (domain.Value, domain.Value, error) {
	return feedbackStep("feedback", f.m, state,
		func(fb domain.Value) domain.Value { return fb })
}

// Feedback2Machine is Feedback where the inner machine receives the pair
// (external input, fed-back value) at every step.
type Feedback2Machine struct {
	m Machine
}

// Feedback2 closes a loop around m while passing the external input through.
func Feedback2(m Machine) *Feedback2Machine {
	return &Feedback2Machine{m: m}
}

func (f *Feedback2Machine) Name() string { return "feedback2" }

func (f *Feedback2Machine) Children() []Machine { return []Machine{f.m} }

func (f *Feedback2Machine) StartState() domain.Value { return f.m.StartState() }

func (f *Feedback2Machine) NextValues(state, input domain.Value) (domain.Value, domain.Value, error) {
	return feedbackStep("feedback2", f.m, state,
		func(fb domain.Value) domain.Value { return domain.PairOf(input, fb) })
}

// feedbackStep runs the probe and the real evaluation. wrap builds the inner
// machine's input from the fed-back value.
func feedbackStep(op string, m Machine, state domain.Value, wrap func(domain.Value) domain.Value) (domain.Value, domain.Value, error) {
	// 1. Probe: the successor state is discarded.
	_, out, err := m.NextValues(state, wrap(domain.Undefined))
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("%s probe: %w", op, err)
	}

	// 2. Real evaluation: the output is discarded.
	next, _, err := m.NextValues(state, wrap(out))
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("%s: %w", op, err)
	}

	return next, out, nil
}
