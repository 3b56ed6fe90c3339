// Package registry provides a small append-only, name-indexed registry
// safe for concurrent use. Entries can be registered and looked up but
// never replaced or removed, so a name resolves to the same value for
// the life of the process.
package registry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicate is returned when a name is registered twice.
var ErrDuplicate = errors.New("registry: duplicate name")

// ErrEmptyName is returned when a registration has no name.
var ErrEmptyName = errors.New("registry: empty name")

// Registry maps names to values of type T, preserving registration
// order.
type Registry[T any] struct {
	mu    sync.RWMutex
	data  map[string]T
	order []string
}

// New creates an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{data: make(map[string]T)}
}

// Register stores value under name. Registering an empty name fails
// with ErrEmptyName; registering a name twice fails with ErrDuplicate.
func (r *Registry[T]) Register(name string, value T) error {
	if name == "" {
		return ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.data[name] = value
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the value registered under name and whether it exists.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[name]
	return v, ok
}

// Names returns the registered names in registration order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
