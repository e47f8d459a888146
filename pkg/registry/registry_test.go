package registry_test

import (
	"errors"
	"testing"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/aretw0/transducer/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v domain.Value) registry.Constructor {
	return func(string, any, registry.BuildFunc) (machine.Machine, error) {
		return machine.Constant(v), nil
	}
}

func TestRegistry_RegisterAndBuild(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("one", constant(domain.Int(1)))

	m, err := reg.Build("one", "machine.one", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Int(1), m.StartState())

	_, err = reg.Build("two", "machine.two", nil, nil)
	assert.ErrorContains(t, err, "machine kind not found: two")
	assert.ErrorIs(t, err, registry.ErrKindNotFound)
}

func TestRegistry_Overwrite(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("k", constant(domain.Int(1)))
	reg.Register("k", constant(domain.Int(2)))

	m, err := reg.Build("k", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Int(2), m.StartState())
}

func TestRegistry_BuildPassesArguments(t *testing.T) {
	reg := registry.NewRegistry()
	var gotPath string
	var gotArgs any
	reg.Register("spy", func(path string, args any, build registry.BuildFunc) (machine.Machine, error) {
		gotPath, gotArgs = path, args
		return build(path+".inner", "wire")
	})

	inner := machine.Wire()
	build := func(path string, node any) (machine.Machine, error) {
		if path != "root.spy.inner" || node != "wire" {
			return nil, errors.New("unexpected node")
		}
		return inner, nil
	}

	m, err := reg.Build("spy", "root.spy", 42, build)
	require.NoError(t, err)
	assert.Same(t, inner, m)
	assert.Equal(t, "root.spy", gotPath)
	assert.Equal(t, 42, gotArgs)
}

func TestRegistry_NamesAndClone(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("b", constant(domain.Undefined))
	reg.Register("a", constant(domain.Undefined))

	clone := reg.Clone()
	clone.Register("c", constant(domain.Undefined))

	assert.Equal(t, []string{"a", "b"}, reg.Names())
	assert.Equal(t, []string{"a", "b", "c"}, clone.Names())

	_, ok := reg.Lookup("c")
	assert.False(t, ok)
}
