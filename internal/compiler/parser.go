package compiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/transducer/internal/dto"
	"github.com/aretw0/transducer/pkg/domain"
	"github.com/aretw0/transducer/pkg/machine"
	"github.com/aretw0/transducer/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// rootPath is the path of the machine tree inside a definition.
const rootPath = "machine"

// Program is a compiled definition: a machine plus its default run configuration.
type Program struct {
	Name        string
	Description string
	Steps       int
	Inputs      []domain.Value
	Machine     machine.Machine
}

// Parser is responsible for converting definition documents into machines.
type Parser struct {
	registry *registry.Registry
}

// NewParser creates a parser. A nil registry means DefaultRegistry.
func NewParser(reg *registry.Registry) *Parser {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Parser{registry: reg}
}

// Load reads and parses a definition file. JSON files are read by the same
// YAML decoder, since JSON is valid YAML.
func (p *Parser) Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	prog, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if prog.Name == "" {
		prog.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return prog, nil
}

// Parse decodes a YAML or JSON definition and compiles its machine tree.
func (p *Parser) Parse(data []byte) (*Program, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if raw == nil {
		return nil, invalid(rootPath, "empty definition", nil)
	}

	var def dto.Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}

	if def.Machine == nil {
		return nil, invalid(rootPath, "missing machine", nil)
	}
	if def.Steps < 0 {
		return nil, invalid("steps", fmt.Sprintf("must not be negative (got %d)", def.Steps), domain.ErrInvalidLength)
	}

	inputs := make([]domain.Value, 0, len(def.Inputs))
	for i, in := range def.Inputs {
		v, err := domain.FromAny(in)
		if err != nil {
			return nil, invalid(fmt.Sprintf("inputs[%d]", i), "invalid value", err)
		}
		inputs = append(inputs, v)
	}

	m, err := p.Compile(def.Machine)
	if err != nil {
		return nil, err
	}

	return &Program{
		Name:        def.Name,
		Description: def.Description,
		Steps:       def.Steps,
		Inputs:      inputs,
		Machine:     m,
	}, nil
}

// Compile turns a raw machine tree (as decoded from YAML) into a Machine.
func (p *Parser) Compile(node any) (machine.Machine, error) {
	return p.build(rootPath, node)
}

// build compiles one node. A node is either a bare kind name ("adder") or a
// single-key mapping from kind to arguments ({delay: 1}).
func (p *Parser) build(path string, node any) (machine.Machine, error) {
	var kind string
	var args any

	switch n := node.(type) {
	case string:
		kind = n
	case map[string]any:
		if len(n) != 1 {
			return nil, invalid(path, fmt.Sprintf("a machine node needs exactly one kind key, got %d", len(n)), nil)
		}
		for k, v := range n {
			kind, args = k, v
		}
	default:
		return nil, invalid(path, fmt.Sprintf("unexpected %T where a machine was expected", node), nil)
	}

	m, err := p.registry.Build(kind, path+"."+kind, args, p.build)
	if errors.Is(err, registry.ErrKindNotFound) {
		return nil, invalid(path, fmt.Sprintf("%q", kind), ErrUnknownMachine)
	}
	return m, err
}
