package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/transducer/pkg/domain"
)

// TextHandler writes one output per line.
type TextHandler struct {
	Writer    io.Writer
	Renderer  ValueRenderer
	ShowInput bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the value renderer.
func WithTextHandlerRenderer(renderer ValueRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerInputs prefixes every line with the step index and its input.
func WithTextHandlerInputs(show bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.ShowInput = show
	}
}

// NewTextHandler creates a handler for plain text output.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Emit(_ context.Context, event *domain.StepEvent) error {
	out := h.render(event.Output)
	if h.ShowInput {
		_, err := fmt.Fprintf(h.Writer, "%d\t%s\t%s\n", event.Index, h.render(event.Input), out)
		return err
	}
	_, err := fmt.Fprintln(h.Writer, out)
	return err
}

func (h *TextHandler) Flush(context.Context) error { return nil }

func (h *TextHandler) render(v domain.Value) string {
	if h.Renderer != nil {
		return h.Renderer(v)
	}
	return v.String()
}
