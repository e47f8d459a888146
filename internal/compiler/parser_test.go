package compiler_test

import (
	"errors"
	"testing"

	"github.com/aretw0/transducer/internal/compiler"
	"github.com/aretw0/transducer/internal/testutils"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/aretw0/transducer/pkg/registry"
	"github.com/aretw0/transducer/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fibonacciYAML = `
name: fibonacci
description: Fibonacci numbers from a delayed feedback loop.
steps: 10
machine:
  cascade:
    - feedback:
        cascade:
          - parallel:
              - delay: 1
              - cascade:
                  - delay: 1
                  - delay: 0
          - adder
    - delay: 1
`

func parse(t *testing.T, doc string) *compiler.Program {
	t.Helper()
	prog, err := compiler.NewParser(nil).Parse([]byte(testutils.Dedent(doc)))
	require.NoError(t, err)
	return prog
}

func TestParse_Fibonacci(t *testing.T) {
	prog := parse(t, fibonacciYAML)

	assert.Equal(t, "fibonacci", prog.Name)
	assert.Equal(t, 10, prog.Steps)

	out, err := runner.Run(prog.Machine, prog.Steps)
	require.NoError(t, err)
	assert.Equal(t, domain.Ints(1, 1, 2, 3, 5, 8, 13, 21, 34, 55), out)
}

func TestParse_MatchesHandBuiltMachine(t *testing.T) {
	prog := parse(t, `
		machine:
		  cascade:
		    - counter: {init: 2, step: 1}
		    - feedback2:
		        cascade: [multiplier, {delay: 1}]
	`)

	handBuilt := machine.Cascade(
		machine.Counter(domain.Int(2), domain.Int(1)),
		machine.Feedback2(machine.Cascade(machine.Multiplier(), machine.Delay(domain.Int(1)))),
	)

	got, err := runner.Run(prog.Machine, 6)
	require.NoError(t, err)
	want, err := runner.Run(handBuilt, 6)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, domain.Ints(1, 2, 6, 24, 120, 720), got)
	assert.True(t, handBuilt.StartState().Equal(prog.Machine.StartState()))
}

func TestParse_Leaves(t *testing.T) {
	tests := []struct {
		name   string
		node   string
		inputs []domain.Value
		want   []domain.Value
	}{
		{"wire", "wire", domain.Ints(4), domain.Ints(4)},
		{"empty args", "{wire: {}}", domain.Ints(4), domain.Ints(4)},
		{"increment", "{increment: 2}", domain.Ints(1, 2), domain.Ints(3, 4)},
		{"gain", "{gain: -1.5}", domain.Ints(2), []domain.Value{domain.Scalar(-3)}},
		{"constant pair", "{constant: [1, null]}", domain.Ints(9), []domain.Value{domain.PairOf(domain.Int(1), domain.Undefined)}},
		{"delay undefined", "{delay: undefined}", domain.Ints(1), []domain.Value{domain.Undefined}},
		{"delay text pair", `{delay: "(1, 2)"}`, domain.Ints(1), []domain.Value{domain.PairOf(domain.Int(1), domain.Int(2))}},
		{"counter defaults", "counter", domain.Ints(7, 7, 7), domain.Ints(0, 1, 2)},
		{"multiplier", "multiplier", []domain.Value{domain.PairOf(domain.Int(3), domain.Int(4))}, domain.Ints(12)},
		{"cascade of three", "{cascade: [{increment: 1}, {gain: 2}, {increment: 1}]}", domain.Ints(1), domain.Ints(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, "machine: "+tt.node)
			out, err := runner.Transduce(prog.Machine, tt.inputs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParse_Inputs(t *testing.T) {
	prog := parse(t, `
		steps: 3
		inputs: [1, [2, 3], null, "(4, undefined)"]
		machine: wire
	`)

	assert.Equal(t, []domain.Value{
		domain.Int(1),
		domain.PairOf(domain.Int(2), domain.Int(3)),
		domain.Undefined,
		domain.PairOf(domain.Int(4), domain.Undefined),
	}, prog.Inputs)
}

func TestParse_JSON(t *testing.T) {
	prog := parse(t, `{"machine": {"feedback": {"cascade": [{"increment": 1}, {"delay": 1}]}}, "steps": 3}`)

	out, err := runner.Run(prog.Machine, prog.Steps)
	require.NoError(t, err)
	assert.Equal(t, domain.Ints(1, 2, 3), out)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		path     string
		sentinel error
	}{
		{"unknown kind", "machine: {cascade: [wire, teleport]}", "machine.cascade[1]", compiler.ErrUnknownMachine},
		{"missing machine", "name: nothing", "machine", nil},
		{"negative steps", "steps: -2\nmachine: wire", "steps", domain.ErrInvalidLength},
		{"parallel arity", "machine: {parallel: [wire]}", "machine.parallel", nil},
		{"cascade arity", "machine: {cascade: [wire]}", "machine.cascade", nil},
		{"cascade not a list", "machine: {cascade: wire}", "machine.cascade", nil},
		{"two keys", "machine: {delay: 1, wire: {}}", "machine", nil},
		{"leaf with args", "machine: {adder: 3}", "machine.adder", nil},
		{"gain needs number", "machine: {gain: [1, 2]}", "machine.gain", domain.ErrShapeMismatch},
		{"bad value", "machine: {delay: {a: 1}}", "machine.delay", domain.ErrShapeMismatch},
		{"empty feedback", "machine: {feedback: }", "machine.feedback", nil},
		{"counter bad step", "machine: {counter: {step: nope}}", "machine.counter.step", nil},
		{"counter unknown arg", "machine: {counter: {start: 1}}", "machine.counter", nil},
		{"bad input", "inputs: [{x: 1}]\nmachine: wire", "inputs[0]", domain.ErrShapeMismatch},
		{"nested unknown", "machine: {feedback2: {cascade: [adder, {delay: 0}, loop]}}", "machine.feedback2.cascade[2]", compiler.ErrUnknownMachine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.NewParser(nil).Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, compiler.ErrInvalidDefinition)

			var defErr *compiler.DefinitionError
			require.True(t, errors.As(err, &defErr), "got %T: %v", err, err)
			assert.Equal(t, tt.path, defErr.Path)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestParse_DecodeErrors(t *testing.T) {
	_, err := compiler.NewParser(nil).Parse([]byte("machine: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse definition")

	_, err = compiler.NewParser(nil).Parse([]byte("machine: wire\nextra: true"))
	assert.ErrorContains(t, err, "failed to decode definition")

	_, err = compiler.NewParser(nil).Parse([]byte(""))
	assert.ErrorIs(t, err, compiler.ErrInvalidDefinition)
}

func TestParser_CustomRegistry(t *testing.T) {
	reg := compiler.DefaultRegistry()
	reg.Register("square", func(path string, _ any, _ registry.BuildFunc) (machine.Machine, error) {
		return machine.Func("square", domain.Undefined, func(_, in domain.Value) (domain.Value, error) {
			return domain.SafeMul(in, in)
		}), nil
	})

	prog, err := compiler.NewParser(reg).Parse([]byte("machine: {cascade: [{increment: 1}, square]}"))
	require.NoError(t, err)

	out, err := runner.Transduce(prog.Machine, domain.Ints(1, 2))
	require.NoError(t, err)
	assert.Equal(t, domain.Ints(4, 9), out)

	// The default registry is untouched.
	_, err = compiler.NewParser(nil).Parse([]byte("machine: square"))
	assert.ErrorIs(t, err, compiler.ErrUnknownMachine)
}

func TestParser_Load(t *testing.T) {
	path := testutils.WriteDefinition(t, "counter.yaml", `
		steps: 4
		machine:
		  counter: {init: 10, step: -1}
	`)

	prog, err := compiler.NewParser(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "counter", prog.Name, "name defaults to the file name")

	out, err := runner.Run(prog.Machine, prog.Steps)
	require.NoError(t, err)
	assert.Equal(t, domain.Ints(10, 9, 8, 7), out)

	_, err = compiler.NewParser(nil).Load(path + ".missing")
	assert.ErrorContains(t, err, "failed to read definition")

	bad := testutils.WriteDefinition(t, "bad.yaml", "machine: nope")
	_, err = compiler.NewParser(nil).Load(bad)
	assert.ErrorContains(t, err, "bad.yaml: machine")
	assert.ErrorIs(t, err, compiler.ErrUnknownMachine)
}
