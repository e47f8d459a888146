package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/transducer/pkg/machine"
)

// ErrKindNotFound is returned by Build for names that were never registered.
var ErrKindNotFound = errors.New("machine kind not found")

// BuildFunc compiles a nested machine node located at path.
type BuildFunc func(path string, node any) (machine.Machine, error)

// Constructor builds a machine of one kind from its raw definition arguments.
// Combinators use build to compile their constituents.
type Constructor func(path string, args any, build BuildFunc) (machine.Machine, error)

// Registry manages the machine kinds available to definition files.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Constructor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Constructor),
	}
}

// Register adds a machine kind to the registry.
// If a kind with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[name] = fn
}

// Lookup returns the constructor registered under name.
func (r *Registry) Lookup(name string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.kinds[name]
	return fn, ok
}

// Build looks up a kind by name and constructs it.
// Returns ErrKindNotFound if the kind is not registered.
func (r *Registry) Build(name, path string, args any, build BuildFunc) (machine.Machine, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKindNotFound, name)
	}
	return fn(path, args, build)
}

// Names lists the registered kinds in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy, so callers can extend a shared registry safely.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewRegistry()
	for name, fn := range r.kinds {
		c.kinds[name] = fn
	}
	return c
}
