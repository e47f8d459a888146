package domain

// SplitValue decomposes a pair-shaped value. Undefined splits into two
// Undefined halves so that probing a pair-consuming machine stays well defined.
func SplitValue(v Value) (Value, Value, error) {
	switch v.kind {
	case KindUndefined:
		return Undefined, Undefined, nil
	case KindPair:
		return v.pair[0], v.pair[1], nil
	default:
		return Undefined, Undefined, mismatch("split", KindPair, v)
	}
}

// SafeAdd returns a+b, or Undefined when either operand is Undefined.
func SafeAdd(a, b Value) (Value, error) {
	return safeArith("add", a, b, func(x, y float64) float64 { return x + y })
}

// SafeMul returns a*b, or Undefined when either operand is Undefined.
func SafeMul(a, b Value) (Value, error) {
	return safeArith("mul", a, b, func(x, y float64) float64 { return x * y })
}

func safeArith(op string, a, b Value, fn func(x, y float64) float64) (Value, error) {
	if a.IsUndefined() || b.IsUndefined() {
		return Undefined, nil
	}
	if !a.IsScalar() {
		return Undefined, mismatch(op, KindScalar, a)
	}
	if !b.IsScalar() {
		return Undefined, mismatch(op, KindScalar, b)
	}
	return Scalar(fn(a.num, b.num)), nil
}
