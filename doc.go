/*
Package transducer is a small algebra for building discrete-time state machines
by composing primitive machines with combinators.

A machine is a start state plus a pure transition function
NextValues(state, input) -> (next state, output). Primitive machines (Delay,
arithmetic leaves, your own leaves) and composites (Cascade, Parallel, Feedback,
Feedback2) share that interface, so compositions nest freely. Composite state is
a pair of the children's states, threaded without ever being inspected.

# Concept

Feedback is what makes self-reference possible. On every step the inner machine
is evaluated twice against the same state: once with the Undefined sentinel as
input, to discover the output, and once with that output fed back as input, to
obtain the next state. Arithmetic leaves propagate Undefined instead of failing,
so the probe is always safe.

# Usage

Build machines in Go and run them with pkg/runner:

	fib := machine.Cascade(
		machine.Feedback(machine.Cascade(
			machine.Parallel(machine.Delay(domain.Int(1)),
				machine.Cascade(machine.Delay(domain.Int(1)), machine.Delay(domain.Int(0)))),
			machine.Adder(),
		)),
		machine.Delay(domain.Int(1)),
	)

	outputs, err := runner.Run(fib, 10) // 1 1 2 3 5 8 13 21 34 55

Or describe them in YAML and load them through the Engine:

	eng, err := transducer.New("fibonacci.yaml")
	if err != nil {
		log.Fatal(err)
	}
	outputs, err := eng.Run(eng.Steps())

# Packages

  - pkg/domain: Value (Undefined | Scalar | Pair), SafeAdd, SafeMul, SplitValue, errors.
  - pkg/machine: the Machine interface, primitives and combinators.
  - pkg/runner: the Runner session (Start, Step, Transduce, Run).
  - pkg/observability: Prometheus metrics fed by runner hooks.
  - pkg/dsl: a fluent builder for compositions.
  - pkg/registry: machine kinds available to definition files.
*/
package transducer
