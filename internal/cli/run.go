package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/observability"
	"github.com/aretw0/transducer/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// Execute handles the 'run' command: Undefined inputs for a number of steps.
func Execute(opts RunOptions) error {
	if opts.Watch {
		if opts.Metrics {
			return fmt.Errorf("--watch and --metrics cannot be used together")
		}
		return RunWatch(opts)
	}

	sm := runner.NewSignalManager(context.Background())
	defer sm.Stop()
	return execute(sm.Context(), opts, false)
}

// ExecuteTransduce handles the 'transduce' command: explicit inputs.
func ExecuteTransduce(opts RunOptions) error {
	sm := runner.NewSignalManager(context.Background())
	defer sm.Stop()
	return execute(sm.Context(), opts, true)
}

// execute loads the definition, runs it once and prints the results.
func execute(ctx context.Context, opts RunOptions, withInputs bool) error {
	logger := createLogger(opts.GlobalOptions, opts.stderr())

	// 1. Output & Metrics
	handler, err := createHandler(opts, opts.stdout())
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	var hooks []domain.LifecycleHooks
	if opts.Metrics {
		reg = prometheus.NewRegistry()
		hooks = append(hooks, observability.NewMetrics(reg).Hooks())
	}

	// 2. Engine
	engine, err := createEngine(opts.Path, opts.Debug, logger, handler, hooks...)
	if err != nil {
		return err
	}
	r := engine.NewRunner(runner.WithContext(ctx))

	// 3. Run
	if withInputs {
		inputs, err := readInputs(opts)
		if err != nil {
			return err
		}
		if inputs == nil {
			inputs = engine.Inputs()
		}
		_, err = r.Transduce(inputs)
		if err = handleExecutionError(opts, r, err); err != nil {
			return err
		}
	} else {
		steps := opts.Steps
		if steps < 0 {
			steps = engine.Steps()
		}
		_, err = r.Run(steps)
		if err = handleExecutionError(opts, r, err); err != nil {
			return err
		}
	}

	// 4. Metrics
	if reg != nil {
		return observability.WriteText(opts.stdout(), reg)
	}
	return nil
}

// handleExecutionError turns an interruption into a clean exit after
// reporting how far the run got.
func handleExecutionError(opts RunOptions, r *runner.Runner, err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		// Buffered modes still print what was produced.
		if r.Handler != nil {
			if ferr := r.Handler.Flush(context.Background()); ferr != nil {
				return ferr
			}
		}
		printSystemMessage(opts.stderr(), "Interrupted after %d steps.", r.Steps())
		return nil
	}
	return err
}
