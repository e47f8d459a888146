package machine

import (
	"fmt"

	"github.com/aretw0/transducer/pkg/domain"
)

// CascadeMachine chains two machines in series.
type CascadeMachine struct {
	m1, m2 Machine
	start  domain.Value
}

// Cascade feeds the output of m1 into m2 and emits m2's output.
func Cascade(m1, m2 Machine) *CascadeMachine {
	return &CascadeMachine{
		m1:    m1,
		m2:    m2,
		start: domain.PairOf(m1.StartState(), m2.StartState()),
	}
}

// Chain cascades any number of machines, nesting to the right:
// Chain(a, b, c) is Cascade(a, Cascade(b, c)). A single machine is returned as is.
func Chain(first Machine, rest ...Machine) Machine {
	if len(rest) == 0 {
		return first
	}
	return Cascade(first, Chain(rest[0], rest[1:]...))
}

func (c *CascadeMachine) Name() string { return "cascade" }

func (c *CascadeMachine) Children() []Machine { return []Machine{c.m1, c.m2} }

func (c *CascadeMachine) StartState() domain.Value { return c.start }

func (c *CascadeMachine) NextValues(state, input domain.Value) (domain.Value, domain.Value, error) {
	s1, s2, err := splitState("cascade", state)
	if err != nil {
		return domain.Undefined, domain.Undefined, err
	}

	// m2 depends on o1, so the order here is fixed.
	newS1, o1, err := c.m1.NextValues(s1, input)
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("cascade[0]: %w", err)
	}
	newS2, o2, err := c.m2.NextValues(s2, o1)
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("cascade[1]: %w", err)
	}

	return domain.PairOf(newS1, newS2), o2, nil
}
