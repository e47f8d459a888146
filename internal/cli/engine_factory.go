package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/runner"
)

// createEngine loads the definition at path with standard CLI conventions.
func createEngine(path string, debug bool, logger *slog.Logger, handler runner.Handler, hooks ...domain.LifecycleHooks) (*transducer.Engine, error) {
	// 1. Logger & Hooks
	engineOpts := []transducer.Option{transducer.WithLogger(logger)}
	if debug {
		engineOpts = append(engineOpts, transducer.WithLifecycleHooks(createDebugHooks(logger)))
	}
	for _, h := range hooks {
		engineOpts = append(engineOpts, transducer.WithLifecycleHooks(h))
	}

	// 2. Output
	if handler != nil {
		engineOpts = append(engineOpts, transducer.WithHandler(handler))
	}

	// 3. Initialize
	engine, err := transducer.New(path, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error loading definition: %w", err)
	}

	return engine, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.Debug("Run Start", "machine", e.Machine, "start_state", e.StartState)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step", "index", e.Index, "input", e.Input, "output", e.Output)
		},
		OnStepError: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step Failed", "index", e.Index, "input", e.Input, "err", e.Err)
		},
	}
}
