package tui

import (
	"io"
	"os"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Formatter renders values for terminal output.
// Undefined values are dimmed and pairs are tinted when color is enabled.
type Formatter struct {
	out   *termenv.Output
	color bool
}

// NewFormatter builds a formatter for w. Color is only used when w is a
// terminal and noColor is false.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	color := !noColor && IsTerminal(w)
	profile := termenv.Ascii
	if color {
		profile = termenv.EnvColorProfile()
	}
	return &Formatter{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		color: color,
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Color reports whether the formatter emits ANSI sequences.
func (f *Formatter) Color() bool { return f.color }

// Value renders a single value.
func (f *Formatter) Value(v domain.Value) string {
	if !f.color {
		return v.String()
	}
	switch v.Kind() {
	case domain.KindUndefined:
		return f.out.String(v.String()).Faint().String()
	case domain.KindPair:
		return f.out.String(v.String()).Foreground(f.out.Color("#a78bfa")).String()
	default:
		return f.out.String(v.String()).Bold().String()
	}
}

// Error renders an error message in red.
func (f *Formatter) Error(msg string) string {
	if !f.color {
		return msg
	}
	return f.out.String(msg).Foreground(f.out.Color("#f87171")).String()
}
