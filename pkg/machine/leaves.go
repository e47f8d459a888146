package machine

import (
	"github.com/aretw0/transducer/pkg/domain"
)

// Adder outputs the sum of a pair input. Undefined halves give Undefined.
func Adder() *Leaf {
	return Func("adder", domain.Undefined, func(_, input domain.Value) (domain.Value, error) {
		a, b, err := domain.SplitValue(input)
		if err != nil {
			return domain.Undefined, err
		}
		return domain.SafeAdd(a, b)
	})
}

// Multiplier outputs the product of a pair input. Undefined halves give Undefined.
func Multiplier() *Leaf {
	return Func("multiplier", domain.Undefined, func(_, input domain.Value) (domain.Value, error) {
		a, b, err := domain.SplitValue(input)
		if err != nil {
			return domain.Undefined, err
		}
		return domain.SafeMul(a, b)
	})
}

// Increment outputs input + k.
func Increment(k domain.Value) *Leaf {
	return Func("increment", domain.Undefined, func(_, input domain.Value) (domain.Value, error) {
		return domain.SafeAdd(input, k)
	})
}

// Gain outputs input * k.
func Gain(k domain.Value) *Leaf {
	return Func("gain", domain.Undefined, func(_, input domain.Value) (domain.Value, error) {
		return domain.SafeMul(input, k)
	})
}

// Wire passes its input straight through.
func Wire() *Leaf {
	return Func("wire", domain.Undefined, func(_, input domain.Value) (domain.Value, error) {
		return input, nil
	})
}

// Constant always outputs v.
func Constant(v domain.Value) *Leaf {
	return Func("constant", v, func(_, _ domain.Value) (domain.Value, error) {
		return v, nil
	})
}

// Counter yields init, init+step, init+2*step, ... regardless of its input.
func Counter(init, step domain.Value) *FeedbackMachine {
	return Feedback(Cascade(Increment(step), Delay(init)))
}
