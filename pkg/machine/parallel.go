package machine

import (
	"fmt"

	"github.com/aretw0/transducer/pkg/domain"
)

// ParallelMachine runs two machines side by side on the same input.
type ParallelMachine struct {
	m1, m2 Machine
	start  domain.Value
}

// Parallel combines m1 and m2. Its output is the pair (o1, o2).
func Parallel(m1, m2 Machine) *ParallelMachine {
	return &ParallelMachine{
		m1:    m1,
		m2:    m2,
		start: domain.PairOf(m1.StartState(), m2.StartState()),
	}
}

func (p *ParallelMachine) Name() string { return "parallel" }

func (p *ParallelMachine) Children() []Machine { return []Machine{p.m1, p.m2} }

func (p *ParallelMachine) StartState() domain.Value { return p.start }

func (p *ParallelMachine) NextValues(state, input domain.Value) (domain.Value, domain.Value, error) {
	s1, s2, err := splitState("parallel", state)
	if err != nil {
		return domain.Undefined, domain.Undefined, err
	}

	newS1, o1, err := p.m1.NextValues(s1, input)
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("parallel[0]: %w", err)
	}
	newS2, o2, err := p.m2.NextValues(s2, input)
	if err != nil {
		return domain.Undefined, domain.Undefined, fmt.Errorf("parallel[1]: %w", err)
	}

	return domain.PairOf(newS1, newS2), domain.PairOf(o1, o2), nil
}
