package validator_test

import (
	"testing"

	"github.com/aretw0/transducer/internal/compiler"
	"github.com/aretw0/transducer/internal/validator"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eager reads its input to produce its output: 0 while the input is unknown,
// input+1 afterwards.
func eager() machine.Machine {
	return machine.Func("eager", domain.Undefined, func(_, in domain.Value) (domain.Value, error) {
		if in.IsUndefined() {
			return domain.Int(0), nil
		}
		return domain.SafeAdd(in, domain.Int(1))
	})
}

func TestValidateMachine_Valid(t *testing.T) {
	tests := []struct {
		name string
		m    machine.Machine
	}{
		{"plain delay", machine.Delay(domain.Int(0))},
		{"counter", machine.Counter(domain.Int(1), domain.Int(1))},
		{"factorial", machine.Cascade(
			machine.Counter(domain.Int(2), domain.Int(1)),
			machine.Feedback2(machine.Cascade(machine.Multiplier(), machine.Delay(domain.Int(1)))),
		)},
		{"running sum", machine.Feedback2(machine.Cascade(machine.Adder(), machine.Delay(domain.Int(0))))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, validator.ValidateMachine(tt.m, 0))
		})
	}
}

func TestValidateMachine_CompiledDefinition(t *testing.T) {
	prog, err := compiler.NewParser(nil).Parse([]byte(`
machine:
  cascade:
    - feedback:
        cascade:
          - parallel: [{delay: 1}, {cascade: [{delay: 1}, {delay: 0}]}]
          - adder
    - delay: 1
`))
	require.NoError(t, err)

	assert.NoError(t, validator.ValidateMachine(prog.Machine, 20))
}

func TestValidateMachine_InputDependentLoop(t *testing.T) {
	m := machine.Cascade(machine.Wire(), machine.Feedback(machine.Cascade(machine.Wire(), eager())))

	err := validator.ValidateMachine(m, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 1 errors")
	assert.Contains(t, err.Error(), "cascade[1].feedback")
	assert.Contains(t, err.Error(), "output depends on the fed-back input (probe 0, real 1)")
}

func TestValidateMachine_UnresolvedLoop(t *testing.T) {
	m := machine.Feedback(machine.Cascade(machine.Increment(domain.Int(1)), machine.Delay(domain.Undefined)))

	err := validator.ValidateMachine(m, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop never resolves: output undefined for 3 steps")
}

func TestValidateMachine_DryRunFailure(t *testing.T) {
	m := machine.Cascade(machine.Constant(domain.Int(3)), machine.Adder())

	err := validator.ValidateMachine(m, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dry run")
	assert.ErrorContains(t, err, "split: shape mismatch: want pair, got scalar")
}
