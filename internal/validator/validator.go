package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/aretw0/transducer/pkg/runner"
)

// DefaultSteps is the length of the dry run used by ValidateMachine.
const DefaultSteps = runner.DefaultRunLength

// ValidateMachine dry-runs m for steps steps and checks every feedback loop in
// the tree for self-consistency: the output found by the Undefined probe must
// equal the output of the real evaluation, and must become defined at least
// once. A loop whose inner machine reads its input to produce its output fails
// this check.
func ValidateMachine(m machine.Machine, steps int) error {
	if steps <= 0 {
		steps = DefaultSteps
	}

	var errors []string

	// 1. Whole-machine dry run
	if _, err := runner.Run(m, steps); err != nil {
		errors = append(errors, fmt.Sprintf("dry run: %v", err))
	}

	// 2. Crawl the tree for feedback loops
	type item struct {
		path string
		m    machine.Machine
	}
	queue := []item{{path: machine.NameOf(m), m: m}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		switch fb := current.m.(type) {
		case *machine.FeedbackMachine:
			if err := checkLoop(fb, fb.Children()[0], steps, func(o domain.Value) domain.Value { return o }); err != nil {
				errors = append(errors, fmt.Sprintf("%s: %v", current.path, err))
			}
		case *machine.Feedback2Machine:
			wrap := func(o domain.Value) domain.Value { return domain.PairOf(domain.Undefined, o) }
			if err := checkLoop(fb, fb.Children()[0], steps, wrap); err != nil {
				errors = append(errors, fmt.Sprintf("%s: %v", current.path, err))
			}
		}

		if c, ok := current.m.(machine.Composite); ok {
			for i, child := range c.Children() {
				queue = append(queue, item{
					path: fmt.Sprintf("%s[%d].%s", current.path, i, machine.NameOf(child)),
					m:    child,
				})
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}

// checkLoop steps loop on its own and compares, at every step, the probed
// output with the output of the inner machine fed with that probe.
func checkLoop(loop, inner machine.Machine, steps int, wrap func(domain.Value) domain.Value) error {
	state := loop.StartState()
	resolved := false
	for i := 0; i < steps; i++ {
		_, probed, err := inner.NextValues(state, wrap(domain.Undefined))
		if err != nil {
			return fmt.Errorf("step %d probe: %w", i, err)
		}
		_, actual, err := inner.NextValues(state, wrap(probed))
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if !actual.Equal(probed) {
			return fmt.Errorf("step %d: output depends on the fed-back input (probe %s, real %s)", i, probed, actual)
		}
		if !probed.IsUndefined() {
			resolved = true
		}

		next, _, err := loop.NextValues(state, domain.Undefined)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		state = next
	}
	if !resolved {
		return fmt.Errorf("loop never resolves: output undefined for %d steps", steps)
	}
	return nil
}
