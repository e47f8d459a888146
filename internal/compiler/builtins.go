package compiler

import (
	"fmt"

	"github.com/aretw0/transducer/internal/dto"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/aretw0/transducer/pkg/registry"
	"github.com/mitchellh/mapstructure"
)

// DefaultRegistry returns a registry holding every built-in machine kind.
func DefaultRegistry() *registry.Registry {
	reg := registry.NewRegistry()

	// Primitives
	reg.Register("delay", func(path string, args any, _ registry.BuildFunc) (machine.Machine, error) {
		v, err := valueArg(path, args)
		if err != nil {
			return nil, err
		}
		return machine.Delay(v), nil
	})
	reg.Register("adder", leaf(machine.Adder))
	reg.Register("multiplier", leaf(machine.Multiplier))
	reg.Register("wire", leaf(machine.Wire))
	reg.Register("increment", scalarLeaf(machine.Increment))
	reg.Register("gain", scalarLeaf(machine.Gain))
	reg.Register("constant", func(path string, args any, _ registry.BuildFunc) (machine.Machine, error) {
		v, err := valueArg(path, args)
		if err != nil {
			return nil, err
		}
		return machine.Constant(v), nil
	})
	reg.Register("counter", buildCounter)

	// Combinators
	reg.Register("cascade", func(path string, args any, build registry.BuildFunc) (machine.Machine, error) {
		children, err := buildList(path, args, build, 2, -1)
		if err != nil {
			return nil, err
		}
		return machine.Chain(children[0], children[1:]...), nil
	})
	reg.Register("parallel", func(path string, args any, build registry.BuildFunc) (machine.Machine, error) {
		children, err := buildList(path, args, build, 2, 2)
		if err != nil {
			return nil, err
		}
		return machine.Parallel(children[0], children[1]), nil
	})
	reg.Register("feedback", func(path string, args any, build registry.BuildFunc) (machine.Machine, error) {
		inner, err := buildInner(path, args, build)
		if err != nil {
			return nil, err
		}
		return machine.Feedback(inner), nil
	})
	reg.Register("feedback2", func(path string, args any, build registry.BuildFunc) (machine.Machine, error) {
		inner, err := buildInner(path, args, build)
		if err != nil {
			return nil, err
		}
		return machine.Feedback2(inner), nil
	})

	return reg
}

// leaf wraps an argument-less constructor. An empty mapping is accepted as "no arguments".
func leaf[M machine.Machine](fn func() M) registry.Constructor {
	return func(path string, args any, _ registry.BuildFunc) (machine.Machine, error) {
		if m, ok := args.(map[string]any); args != nil && (!ok || len(m) != 0) {
			return nil, invalid(path, "takes no arguments", nil)
		}
		return fn(), nil
	}
}

// scalarLeaf wraps a constructor taking one number.
func scalarLeaf[M machine.Machine](fn func(domain.Value) M) registry.Constructor {
	return func(path string, args any, _ registry.BuildFunc) (machine.Machine, error) {
		v, err := valueArg(path, args)
		if err != nil {
			return nil, err
		}
		if !v.IsScalar() {
			return nil, invalid(path, fmt.Sprintf("needs a number, got %s", v.Kind()), domain.ErrShapeMismatch)
		}
		return fn(v), nil
	}
}

func valueArg(path string, args any) (domain.Value, error) {
	v, err := domain.FromAny(args)
	if err != nil {
		return domain.Undefined, invalid(path, "invalid value", err)
	}
	return v, nil
}

func buildCounter(path string, args any, _ registry.BuildFunc) (machine.Machine, error) {
	var counter dto.CounterArgs
	if args != nil {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &counter,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(args); err != nil {
			return nil, invalid(path, "invalid counter arguments", err)
		}
	}

	start, step := domain.Int(0), domain.Int(1)
	if counter.Init != nil {
		v, err := valueArg(path+".init", counter.Init)
		if err != nil {
			return nil, err
		}
		start = v
	}
	if counter.Step != nil {
		v, err := valueArg(path+".step", counter.Step)
		if err != nil {
			return nil, err
		}
		step = v
	}
	return machine.Counter(start, step), nil
}

func buildInner(path string, args any, build registry.BuildFunc) (machine.Machine, error) {
	if args == nil {
		return nil, invalid(path, "missing inner machine", nil)
	}
	return build(path, args)
}

// buildList compiles a sequence of child nodes. hi < 0 means unbounded.
func buildList(path string, args any, build registry.BuildFunc, lo, hi int) ([]machine.Machine, error) {
	items, ok := args.([]any)
	if !ok {
		return nil, invalid(path, fmt.Sprintf("expects a list of machines, got %T", args), nil)
	}
	if len(items) < lo || (hi >= 0 && len(items) > hi) {
		want := fmt.Sprintf("at least %d", lo)
		if hi == lo {
			want = fmt.Sprintf("exactly %d", lo)
		}
		return nil, invalid(path, fmt.Sprintf("expects %s machines, got %d", want, len(items)), nil)
	}

	children := make([]machine.Machine, 0, len(items))
	for i, item := range items {
		m, err := build(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		children = append(children, m)
	}
	return children, nil
}
