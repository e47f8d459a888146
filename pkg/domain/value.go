package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindUndefined Kind = iota // Not yet known (zero value)
	KindScalar                // A number
	KindPair                  // Two nested values
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindScalar:
		return "scalar"
	case KindPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Value is the single data shape used for inputs, outputs and states.
//
// It is a tagged union: Undefined, Scalar(number) or Pair(Value, Value).
// The zero Value is Undefined. Values are immutable; a Pair shares its halves
// but nothing ever writes through them.
type Value struct {
	kind Kind
	num  float64
	pair *[2]Value
}

// Undefined is the sentinel for "value not yet known".
var Undefined = Value{}

// Scalar builds a numeric value.
func Scalar(f float64) Value {
	return Value{kind: KindScalar, num: f}
}

// Int builds a numeric value from an int.
func Int(i int) Value {
	return Scalar(float64(i))
}

// PairOf builds a pair of two values.
func PairOf(a, b Value) Value {
	return Value{kind: KindPair, pair: &[2]Value{a, b}}
}

// Ints builds a slice of scalars, handy for literal input sequences.
func Ints(xs ...int) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}
	return out
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the Undefined sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsScalar reports whether v holds a number.
func (v Value) IsScalar() bool { return v.kind == KindScalar }

// IsPair reports whether v holds a pair.
func (v Value) IsPair() bool { return v.kind == KindPair }

// Float returns the number held by v.
func (v Value) Float() (float64, error) {
	if v.kind != KindScalar {
		return 0, mismatch("float", KindScalar, v)
	}
	return v.num, nil
}

// Pair returns both halves of v.
func (v Value) Pair() (Value, Value, error) {
	if v.kind != KindPair {
		return Undefined, Undefined, mismatch("pair", KindPair, v)
	}
	return v.pair[0], v.pair[1], nil
}

// Equal reports deep structural equality. NaN scalars are equal to each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.num == other.num || (math.IsNaN(v.num) && math.IsNaN(other.num))
	case KindPair:
		return v.pair[0].Equal(other.pair[0]) && v.pair[1].Equal(other.pair[1])
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindPair:
		return "(" + v.pair[0].String() + ", " + v.pair[1].String() + ")"
	default:
		return "undefined"
	}
}

// MarshalJSON encodes Undefined as null, a Scalar as a number and a Pair as a
// two-element array. JSON has no infinities or NaN, so those scalars are
// written as the strings "+Inf", "-Inf" and "NaN", which ParseValue reads back.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindScalar:
		if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
			return json.Marshal(v.String())
		}
		return json.Marshal(v.num)
	case KindPair:
		return json.Marshal([2]Value{v.pair[0], v.pair[1]})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromAny converts loosely typed decoded data (JSON, YAML, mapstructure) into a Value.
// nil and the string "undefined" become Undefined, numbers become Scalars and
// two-element slices become Pairs.
func FromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Undefined, nil
	case Value:
		return x, nil
	case string:
		return ParseValue(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Undefined, fmt.Errorf("invalid number %q: %w", x, err)
		}
		return Scalar(f), nil
	case int:
		return Int(x), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := strconv.ParseFloat(fmt.Sprint(x), 64)
		if err != nil {
			return Undefined, err
		}
		return Scalar(f), nil
	case []Value:
		if len(x) != 2 {
			return Undefined, fmt.Errorf("pair needs 2 elements, got %d: %w", len(x), ErrShapeMismatch)
		}
		return PairOf(x[0], x[1]), nil
	case []any:
		if len(x) != 2 {
			return Undefined, fmt.Errorf("pair needs 2 elements, got %d: %w", len(x), ErrShapeMismatch)
		}
		a, err := FromAny(x[0])
		if err != nil {
			return Undefined, err
		}
		b, err := FromAny(x[1])
		if err != nil {
			return Undefined, err
		}
		return PairOf(a, b), nil
	default:
		return Undefined, fmt.Errorf("cannot use %T as a value: %w", raw, ErrShapeMismatch)
	}
}

// ParseValue reads the textual forms produced by String: "undefined", a number,
// or "(a, b)" with nested values. JSON forms ("null", "[1, 2]") are accepted too.
func ParseValue(s string) (Value, error) {
	p := &valueParser{src: s}
	v, err := p.parse()
	if err != nil {
		return Undefined, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Undefined, fmt.Errorf("unexpected %q at offset %d in %q", p.src[p.pos:], p.pos, s)
	}
	return v, nil
}

type valueParser struct {
	src string
	pos int
}

func (p *valueParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *valueParser) parse() (Value, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return Undefined, fmt.Errorf("empty value in %q", p.src)
	}

	switch open := p.src[p.pos]; open {
	case '(', '[':
		closer := byte(')')
		if open == '[' {
			closer = ']'
		}
		p.pos++
		a, err := p.parse()
		if err != nil {
			return Undefined, err
		}
		if err := p.expect(','); err != nil {
			return Undefined, err
		}
		b, err := p.parse()
		if err != nil {
			return Undefined, err
		}
		if err := p.expect(closer); err != nil {
			return Undefined, err
		}
		return PairOf(a, b), nil
	}

	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(",)] \t", rune(p.src[p.pos])) {
		p.pos++
	}
	tok := p.src[start:p.pos]
	switch strings.ToLower(tok) {
	case "undefined", "null", "none", "~":
		return Undefined, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return Undefined, fmt.Errorf("invalid value %q", tok)
	}
	return Scalar(f), nil
}

func (p *valueParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return fmt.Errorf("expected %q at offset %d in %q", c, p.pos, p.src)
	}
	p.pos++
	return nil
}
