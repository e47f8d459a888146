/*
Package machine implements the transducer combinator algebra.

Every machine, primitive or composite, satisfies the same two-method Machine
interface: a fixed start state and a pure transition function. Composites hold
their constituents behind that interface and only ever thread opaque state
values between them.

# Primitives

  - Delay: identity with a one-step lag.
  - Leaf / Func: user-defined machines built from a next-state function.
  - Adder, Multiplier, Increment, Gain, Wire, Constant: small arithmetic leaves.

# Combinators

  - Cascade: output of the first machine feeds the second.
  - Parallel: both machines see the same input; outputs are paired.
  - Feedback: output is fed back as the machine's own input.
  - Feedback2: like Feedback, but the inner machine sees (input, feedback).

Example, a counter that yields 1, 2, 3, ...:

	counter := machine.Feedback(machine.Cascade(machine.Increment(1), machine.Delay(domain.Int(1))))
	outputs, err := runner.Run(counter, 5)

Machines carry no run-time state of their own; pkg/runner owns the current state
of a run.
*/
package machine
