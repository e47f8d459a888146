package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/transducer/internal/logging"
	"github.com/aretw0/transducer/internal/presentation/graph"
	"github.com/aretw0/transducer/internal/presentation/tui"
	"github.com/aretw0/transducer/internal/validator"
)

// Graph prints the Mermaid flowchart of the definition at path.
func Graph(path string, w io.Writer) error {
	engine, err := createEngine(path, false, logging.NewNop(), nil)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, graph.GenerateMermaid(engine.Machine()))
	return err
}

// Describe prints a markdown outline of the definition at path. Markdown is
// rendered with glamour when w is a terminal and color is allowed.
func Describe(path string, w io.Writer, noColor bool) error {
	engine, err := createEngine(path, false, logging.NewNop(), nil)
	if err != nil {
		return err
	}

	md := tui.Describe(engine.Name, engine.Description, engine.Machine())
	if !noColor && tui.IsTerminal(w) {
		if rendered, err := tui.NewRenderer()(md); err == nil {
			md = rendered
		}
	}
	_, err = fmt.Fprint(w, md)
	return err
}

// Validate loads the definition at path and dry-runs it, checking its feedback loops.
// steps <= 0 uses the definition's default run length.
func Validate(path string, steps int, w io.Writer) error {
	engine, err := createEngine(path, false, logging.NewNop(), nil)
	if err != nil {
		return err
	}

	if steps <= 0 {
		steps = engine.Steps()
	}
	if err := validator.ValidateMachine(engine.Machine(), steps); err != nil {
		return err
	}

	fmt.Fprintf(w, "Definition '%s' is valid! ✅\n", engine.Name)
	return nil
}
