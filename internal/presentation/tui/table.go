package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	purple = lipgloss.Color("99")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

// TableHandler collects step results and prints them as a table once the run
// completes. It satisfies runner.Handler.
type TableHandler struct {
	Writer io.Writer
	rows   [][]string
}

// NewTableHandler creates a table handler writing to w.
func NewTableHandler(w io.Writer) *TableHandler {
	return &TableHandler{Writer: w}
}

func (h *TableHandler) Emit(_ context.Context, event *domain.StepEvent) error {
	h.rows = append(h.rows, []string{
		strconv.Itoa(event.Index),
		event.Input.String(),
		event.Output.String(),
	})
	return nil
}

func (h *TableHandler) Flush(context.Context) error {
	rows := h.rows
	h.rows = nil
	_, err := fmt.Fprintln(h.Writer, Table([]string{"step", "input", "output"}, rows))
	return err
}

// Reset drops rows of an unfinished run.
func (h *TableHandler) Reset() {
	h.rows = nil
}

// Table renders rows with rounded borders and a highlighted header.
func Table(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(purple).
		Bold(true).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddStyle := cellStyle.Foreground(dim)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return cellStyle
			default:
				return oddStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}
