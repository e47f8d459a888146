package machine

import (
	"fmt"

	"github.com/aretw0/transducer/pkg/domain"
)

// Machine is the uniform interface shared by primitive and composite transducers.
type Machine interface {
	// StartState returns the fixed initial state of this machine.
	StartState() domain.Value

	// NextValues computes the successor state and the output for one input.
	// It must be pure: the same (state, input) always yields the same result,
	// and state is never modified.
	NextValues(state, input domain.Value) (next domain.Value, output domain.Value, err error)
}

// Named is implemented by machines that carry a short label for logs and diagrams.
type Named interface {
	Name() string
}

// Composite is implemented by combinators to expose their constituents, in order.
// It exists for introspection only.
type Composite interface {
	Children() []Machine
}

// NameOf returns the label of m, falling back to its Go type.
func NameOf(m Machine) string {
	if n, ok := m.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", m)
}

// NextStateFunc computes the new state of a leaf machine. For leaves the new
// state is also the output.
type NextStateFunc func(state, input domain.Value) (domain.Value, error)

// Leaf is a user-defined primitive machine whose output equals its new state.
type Leaf struct {
	Label string
	Start domain.Value
	Next  NextStateFunc
}

// Func builds a Leaf.
func Func(label string, start domain.Value, next NextStateFunc) *Leaf {
	return &Leaf{Label: label, Start: start, Next: next}
}

func (l *Leaf) Name() string { return l.Label }

func (l *Leaf) StartState() domain.Value { return l.Start }

func (l *Leaf) NextValues(state, input domain.Value) (domain.Value, domain.Value, error) {
	next, err := l.Next(state, input)
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("%s: %w", l.Label, err)
	}
	return next, next, nil
}

// splitState unpacks the pair state of a two-child combinator.
func splitState(op string, state domain.Value) (domain.Value, domain.Value, error) {
	s1, s2, err := state.Pair()
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("%s state: %w", op, err)
	}
	return s1, s2, nil
}
