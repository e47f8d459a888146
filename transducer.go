package transducer

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/transducer/internal/compiler"
	"github.com/aretw0/transducer/internal/validator"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/aretw0/transducer/pkg/registry"
	"github.com/aretw0/transducer/pkg/runner"
)

// Engine is the high-level entry point for the library.
// It loads (or receives) a machine and runs it with a consistent set of
// logging, hooks and output options.
type Engine struct {
	machine  machine.Machine
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	handler  runner.Handler
	logger   *slog.Logger

	Name        string
	Description string
	steps       int
	inputs      []domain.Value
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithMachine injects a machine built in Go, bypassing definition files.
func WithMachine(m machine.Machine) Option {
	return func(e *Engine) {
		e.machine = m
	}
}

// WithRegistry sets the machine kinds available to definition files.
// Use compiler kinds plus your own leaves by cloning DefaultRegistry.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithHandler sets where step outputs are emitted while running.
func WithHandler(h runner.Handler) Option {
	return func(e *Engine) {
		e.handler = h
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// DefaultRegistry returns a fresh registry with every built-in machine kind.
func DefaultRegistry() *registry.Registry {
	return compiler.DefaultRegistry()
}

// New initializes an Engine.
// By default it compiles the definition file at path.
// If WithMachine is provided, path can be empty and no file is read.
func New(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{steps: runner.DefaultRunLength}

	// Apply Options first to check if a machine is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.machine == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no machine is provided")
		}

		prog, err := compiler.NewParser(eng.registry).Load(path)
		if err != nil {
			return nil, err
		}

		eng.machine = prog.Machine
		eng.Name = prog.Name
		eng.Description = prog.Description
		eng.inputs = prog.Inputs
		if prog.Steps > 0 {
			eng.steps = prog.Steps
		}
	} else if path != "" {
		eng.Name = filepath.Base(path)
	}

	if eng.Name == "" {
		eng.Name = machine.NameOf(eng.machine)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("program", eng.Name)

	return eng, nil
}

// Machine returns the compiled (or injected) machine.
func (e *Engine) Machine() machine.Machine { return e.machine }

// Steps returns the default run length (definition "steps", else 10).
func (e *Engine) Steps() int { return e.steps }

// Inputs returns the default inputs declared by the definition, if any.
func (e *Engine) Inputs() []domain.Value { return e.inputs }

// NewRunner creates a runner wired with the engine's logger, hooks and handler.
// Extra options are applied last and may override them.
func (e *Engine) NewRunner(extra ...runner.Option) *runner.Runner {
	opts := []runner.Option{
		runner.WithLogger(e.logger),
		runner.WithLifecycleHooks(e.hooks),
		runner.WithName(e.Name),
	}
	if e.handler != nil {
		opts = append(opts, runner.WithHandler(e.handler))
	}
	return runner.New(e.machine, append(opts, extra...)...)
}

// Run runs the machine for n steps with Undefined inputs.
func (e *Engine) Run(n int) ([]domain.Value, error) {
	return e.NewRunner().Run(n)
}

// Transduce runs the machine over inputs. A nil slice means the definition's inputs.
func (e *Engine) Transduce(inputs []domain.Value) ([]domain.Value, error) {
	if inputs == nil {
		inputs = e.inputs
	}
	return e.NewRunner().Transduce(inputs)
}

// Validate dry-runs the machine and checks its feedback loops.
func (e *Engine) Validate() error {
	return validator.ValidateMachine(e.machine, e.steps)
}
