package schema

import (
	"fmt"
	"sync"
)

// Registry manages named schemas of one record type so a process compiles
// each schema once and shares the result. The cache lives on the Registry,
// not in package state, and is guarded for concurrent use.
type Registry[R any] struct {
	mu      sync.RWMutex
	schemas map[string]*Schema[R]
}

// NewRegistry creates an empty registry.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{schemas: make(map[string]*Schema[R])}
}

// Register adds s under name. Registering the same name twice is an error
// wrapping ErrSchema.
func (r *Registry[R]) Register(name string, s *Schema[R]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("%w: schema %q already registered", ErrSchema, name)
	}
	r.schemas[name] = s
	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry[R]) Lookup(name string) (*Schema[R], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}
