package runner

import (
	"context"
	"log/slog"

	"github.com/aretw0/transducer/pkg/domain"
)

// DefaultRunLength is the number of steps Run performs when callers have no preference.
const DefaultRunLength = 10

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
// Calling it more than once merges the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.hooks = r.hooks.Merge(hooks)
	}
}

// WithHandler configures where step outputs are emitted as they are produced.
func WithHandler(handler Handler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithContext sets the context handed to hooks and handlers.
func WithContext(ctx context.Context) Option {
	return func(r *Runner) {
		r.ctx = ctx
	}
}

// WithName overrides the machine label used in logs and events.
func WithName(name string) Option {
	return func(r *Runner) {
		r.name = name
	}
}
