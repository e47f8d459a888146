package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
)

// Runner owns the current state of a run over a single machine.
type Runner struct {
	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Handler receives every step result. Optional.
	Handler Handler

	machine machine.Machine
	name    string
	hooks   domain.LifecycleHooks
	ctx     context.Context

	state   domain.Value
	started bool
	steps   int
}

// New creates a Runner for m. The runner must be started before stepping.
func New(m machine.Machine, opts ...Option) *Runner {
	r := &Runner{
		machine: m,
		name:    machine.NameOf(m),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Machine returns the machine this runner drives.
func (r *Runner) Machine() machine.Machine { return r.machine }

// Start resets the current state to the machine's start state.
func (r *Runner) Start() {
	r.state = r.machine.StartState()
	r.started = true
	r.steps = 0
	if rs, ok := r.Handler.(interface{ Reset() }); ok {
		rs.Reset()
	}

	r.Logger.Debug("run started", "machine", r.name, "start_state", r.state)
	if r.hooks.OnRunStart != nil {
		r.hooks.OnRunStart(r.ctx, &domain.RunEvent{
			EventBase:  r.eventBase(domain.EventRunStart),
			StartState: r.state,
		})
	}
}

// Step advances the run by one input and returns the output.
// The step is committed only once the handler accepted it: on any failure,
// including a handler error, the current state is left untouched.
func (r *Runner) Step(input domain.Value) (domain.Value, error) {
	if !r.started {
		return domain.Undefined, domain.ErrNotStarted
	}

	index := r.steps
	next, output, err := r.machine.NextValues(r.state, input)
	if err != nil {
		err = fmt.Errorf("step %d: %w", index, err)
		r.Logger.Warn("step failed", "machine", r.name, "index", index, "input", input, "error", err)
		if r.hooks.OnStepError != nil {
			r.hooks.OnStepError(r.ctx, &domain.StepEvent{
				EventBase: r.eventBase(domain.EventStepError),
				Index:     index,
				Input:     input,
				Err:       err,
			})
		}
		return domain.Undefined, err
	}

	event := &domain.StepEvent{
		EventBase: r.eventBase(domain.EventStep),
		Index:     index,
		Input:     input,
		Output:    output,
	}
	if r.Handler != nil {
		if err := r.Handler.Emit(r.ctx, event); err != nil {
			return domain.Undefined, fmt.Errorf("emit step %d: %w", index, err)
		}
	}

	r.state = next
	r.steps++

	r.Logger.Debug("step", "machine", r.name, "index", index, "input", input, "output", output)
	if r.hooks.OnStep != nil {
		r.hooks.OnStep(r.ctx, event)
	}

	return output, nil
}

// Transduce starts a fresh run and steps once per input, collecting outputs in order.
// If a step fails, or the runner's context is cancelled between steps, the
// outputs produced so far are returned with the error.
func (r *Runner) Transduce(inputs []domain.Value) ([]domain.Value, error) {
	r.Start()

	outputs := make([]domain.Value, 0, len(inputs))
	for _, in := range inputs {
		if err := r.ctx.Err(); err != nil {
			return outputs, fmt.Errorf("interrupted before step %d: %w", r.steps, err)
		}
		out, err := r.Step(in)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, out)
	}

	if r.Handler != nil {
		if err := r.Handler.Flush(r.ctx); err != nil {
			return outputs, fmt.Errorf("flush: %w", err)
		}
	}
	return outputs, nil
}

// Run transduces n Undefined inputs. It suits machines that generate their own
// sequence, such as counters.
func (r *Runner) Run(n int) ([]domain.Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLength, n)
	}
	return r.Transduce(make([]domain.Value, n))
}

// State returns the current state and whether the runner has been started.
func (r *Runner) State() (domain.Value, bool) {
	return r.state, r.started
}

// Steps returns the number of successful steps since the last Start.
func (r *Runner) Steps() int { return r.steps }

func (r *Runner) eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Machine:   r.name,
	}
}

// Transduce runs m over inputs with a throwaway Runner.
func Transduce(m machine.Machine, inputs []domain.Value, opts ...Option) ([]domain.Value, error) {
	return New(m, opts...).Transduce(inputs)
}

// Run runs m for n steps with a throwaway Runner.
func Run(m machine.Machine, n int, opts ...Option) ([]domain.Value, error) {
	return New(m, opts...).Run(n)
}
