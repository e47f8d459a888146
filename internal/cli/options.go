package cli

import (
	"io"
	"os"
)

// Output modes for step results.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
	OutputTable = "table"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	Debug     bool
	LogFormat string // "text" or "json"
	NoColor   bool
}

// RunOptions contains all the configuration for the run and transduce commands.
type RunOptions struct {
	GlobalOptions

	Path  string
	Steps int // Negative means the definition's default

	// Inputs are raw textual values; InputsFile is a YAML/JSON list.
	// Both are only used by transduce.
	Inputs     []string
	InputsFile string

	Output        string
	ShowInputs    bool
	SkipUndefined bool
	Every         int
	Metrics       bool
	Watch         bool

	Stdout io.Writer
	Stderr io.Writer
}

func (o RunOptions) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o RunOptions) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}
