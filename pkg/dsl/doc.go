/*
Package dsl provides a fluent builder for composing machines.

It reads left to right, in the order signals flow, instead of nesting
constructor calls:

	counter := dsl.From(machine.Increment(domain.Int(1))).
		Then(machine.Delay(domain.Int(1))).
		Loop().
		Build()

	factorial := dsl.From(machine.Counter(domain.Int(2), domain.Int(1))).
		Then(dsl.From(machine.Multiplier()).Then(machine.Delay(domain.Int(1))).LoopWithInput().Build()).
		Build()

Then nests to the left: From(a).Then(b, c) is Cascade(Cascade(a, b), c), which
produces the same outputs as Cascade(a, Cascade(b, c)).
*/
package dsl
