package compiler

import (
	"errors"
	"fmt"
)

// ErrUnknownMachine is returned when a definition names a kind that is not registered.
var ErrUnknownMachine = errors.New("unknown machine kind")

// ErrInvalidDefinition is matched by every DefinitionError.
var ErrInvalidDefinition = errors.New("invalid definition")

// DefinitionError points at the node of a definition that could not be compiled.
type DefinitionError struct {
	Path   string // Location of the node, e.g. machine.cascade[0].feedback
	Reason string // Human-readable reason for failure
	Err    error  // Underlying cause, if any
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// Is lets errors.Is match any DefinitionError against ErrInvalidDefinition.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

func invalid(path, reason string, err error) error {
	return &DefinitionError{Path: path, Reason: reason, Err: err}
}
