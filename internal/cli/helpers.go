package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/transducer/internal/logging"
	"github.com/aretw0/transducer/internal/presentation/tui"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/runner"
	"gopkg.in/yaml.v3"
)

// createLogger configures the application logger.
// In debug mode, it writes to stderr (to keep stdout for machine outputs).
func createLogger(opts GlobalOptions, w io.Writer) *slog.Logger {
	if !opts.Debug {
		return logging.NewNop()
	}
	return logging.New(w, opts.LogFormat, slog.LevelDebug)
}

// createHandler builds the step handler for the requested output mode,
// wrapped with the emission filters.
func createHandler(opts RunOptions, w io.Writer) (runner.Handler, error) {
	var h runner.Handler
	switch opts.Output {
	case "", OutputText:
		f := tui.NewFormatter(w, opts.NoColor)
		h = runner.NewTextHandler(w,
			runner.WithTextHandlerRenderer(f.Value),
			runner.WithTextHandlerInputs(opts.ShowInputs),
		)
	case OutputJSON:
		h = runner.NewJSONHandler(w, false)
	case OutputJSONL:
		h = runner.NewJSONHandler(w, true)
	case OutputTable:
		h = tui.NewTableHandler(w)
	default:
		return nil, fmt.Errorf("unknown output mode %q", opts.Output)
	}

	var filters []runner.Interceptor
	if opts.SkipUndefined {
		filters = append(filters, runner.SkipUndefined())
	}
	if opts.Every > 1 {
		filters = append(filters, runner.Every(opts.Every))
	}
	if len(filters) > 0 {
		h = runner.Intercept(h, runner.MultiInterceptor(filters...))
	}
	return h, nil
}

// readInputs collects transduce inputs from --input values or --inputs-file.
// It returns nil when neither is given, so the definition's inputs apply.
func readInputs(opts RunOptions) ([]domain.Value, error) {
	if len(opts.Inputs) > 0 && opts.InputsFile != "" {
		return nil, fmt.Errorf("--input and --inputs-file cannot be used together")
	}
	if len(opts.Inputs) > 0 {
		return runner.ParseInputs(opts.Inputs)
	}
	if opts.InputsFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(opts.InputsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read inputs: %w", err)
	}
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse inputs: %w", err)
	}

	values := make([]domain.Value, 0, len(raw))
	for i, item := range raw {
		var v domain.Value
		if s, ok := item.(string); ok {
			v, err = runner.ParseInput(s)
		} else {
			v, err = domain.FromAny(item)
		}
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
