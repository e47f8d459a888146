package dsl

import "github.com/aretw0/transducer/pkg/machine"

// Builder accumulates a composition one combinator at a time.
// Each method wraps the current machine and returns the builder.
type Builder struct {
	m machine.Machine
}

// From starts a composition with m.
func From(m machine.Machine) *Builder {
	return &Builder{m: m}
}

// Then cascades the current machine into next.
func (b *Builder) Then(next ...machine.Machine) *Builder {
	for _, n := range next {
		b.m = machine.Cascade(b.m, n)
	}
	return b
}

// Beside runs other in parallel with the current machine.
func (b *Builder) Beside(other machine.Machine) *Builder {
	b.m = machine.Parallel(b.m, other)
	return b
}

// Loop closes a feedback loop around the current machine.
func (b *Builder) Loop() *Builder {
	b.m = machine.Feedback(b.m)
	return b
}

// LoopWithInput closes a Feedback2 loop: the current machine sees (input, feedback).
func (b *Builder) LoopWithInput() *Builder {
	b.m = machine.Feedback2(b.m)
	return b
}

// Build returns the composed machine.
func (b *Builder) Build() machine.Machine {
	return b.m
}
