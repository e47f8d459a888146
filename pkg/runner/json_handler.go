package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/transducer/pkg/domain"
)

// JSONHandler writes step results as JSON.
//
// In lines mode every step is encoded as its own object as soon as it happens.
// Otherwise outputs are buffered and written as a single array on Flush.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
	Lines   bool

	buffered []domain.Value
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer, lines bool) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		Lines:   lines,
	}
}

type stepLine struct {
	Index  int          `json:"index"`
	Input  domain.Value `json:"input"`
	Output domain.Value `json:"output"`
}

func (h *JSONHandler) Emit(_ context.Context, event *domain.StepEvent) error {
	if h.Lines {
		return h.Encoder.Encode(stepLine{Index: event.Index, Input: event.Input, Output: event.Output})
	}
	h.buffered = append(h.buffered, event.Output)
	return nil
}

func (h *JSONHandler) Flush(context.Context) error {
	if h.Lines {
		return nil
	}
	out := h.buffered
	h.buffered = nil
	if out == nil {
		out = []domain.Value{}
	}
	return h.Encoder.Encode(out)
}

// Reset drops outputs buffered by an unfinished run.
func (h *JSONHandler) Reset() {
	h.buffered = nil
}
