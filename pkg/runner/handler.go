package runner

import (
	"context"

	"github.com/aretw0/transducer/pkg/domain"
)

// Handler defines the strategy for presenting step results as they are produced.
// This allows switching between Text (CLI) and JSON (structured) modes.
type Handler interface {
	// Emit presents the result of one successful step.
	Emit(ctx context.Context, event *domain.StepEvent) error

	// Flush is called once a transduction completes without error.
	Flush(ctx context.Context) error
}

// ValueRenderer transforms a value before it is written.
// This allows colored terminal output without coupling this package to a TUI library.
type ValueRenderer func(domain.Value) string
