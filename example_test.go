package transducer_test

import (
	"fmt"
	"log"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/dsl"
	"github.com/aretw0/transducer/pkg/machine"
)

// ExampleNew_fibonacci builds the Fibonacci generator in Go: a loop whose
// output is the sum of its two previous outputs, closed through delays.
func ExampleNew_fibonacci() {
	// 1. The two previous values, side by side
	lags := machine.Parallel(
		machine.Delay(domain.Int(1)),
		machine.Cascade(machine.Delay(domain.Int(1)), machine.Delay(domain.Int(0))),
	)

	// 2. Sum them and feed the result back
	fib := dsl.From(lags).Then(machine.Adder()).Loop().Then(machine.Delay(domain.Int(1))).Build()

	engine, err := transducer.New("", transducer.WithMachine(fib))
	if err != nil {
		log.Fatal(err)
	}

	out, err := engine.Run(10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: [1 1 2 3 5 8 13 21 34 55]
}

// ExampleNew_factorial pairs a counter with a loop that multiplies each count
// into a running product.
func ExampleNew_factorial() {
	fact := machine.Cascade(
		machine.Counter(domain.Int(2), domain.Int(1)),
		machine.Feedback2(machine.Cascade(machine.Multiplier(), machine.Delay(domain.Int(1)))),
	)

	engine, err := transducer.New("", transducer.WithMachine(fact))
	if err != nil {
		log.Fatal(err)
	}

	out, err := engine.Run(6)
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range out {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 2 6 24 120 720
}
