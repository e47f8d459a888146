package machine

import "github.com/aretw0/transducer/pkg/domain"

// DelayMachine outputs its previous input; on the first step it outputs v0.
type DelayMachine struct {
	start domain.Value
}

// Delay creates an identity-with-lag machine primed with v0.
func Delay(v0 domain.Value) *DelayMachine {
	return &DelayMachine{start: v0}
}

func (d *DelayMachine) Name() string { return "delay" }

func (d *DelayMachine) StartState() domain.Value { return d.start }

// NextValues stores the input and emits the stored value.
func (d *DelayMachine) NextValues(state, input domain.Value) (domain.Value, domain.Value, error) {
	return input, state, nil
}
