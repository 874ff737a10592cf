package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/actionflow/pkg/domain"
)

var (
	// ErrDuplicateNode is returned when a class is registered twice.
	// The first registration stays in place.
	ErrDuplicateNode = errors.New("node already registered")
	// ErrRegistrySealed is returned when Register is called after Seal.
	ErrRegistrySealed = errors.New("registry is sealed")
	// ErrInvalidRegistration is returned for an empty class or a nil factory.
	ErrInvalidRegistration = errors.New("invalid node registration")
)

// Registry maps node classes to the factories that build them.
// It is populated at startup and read afterwards; reads are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]domain.Factory
	sealed    bool
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]domain.Factory),
	}
}

// Register adds a factory for class.
// If the class is already registered, the first registration wins and ErrDuplicateNode is returned.
func (r *Registry) Register(class string, factory domain.Factory) error {
	if class == "" || factory == nil {
		return fmt.Errorf("%w: class %q", ErrInvalidRegistration, class)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %s", ErrRegistrySealed, class)
	}
	if _, exists := r.factories[class]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, class)
	}
	r.factories[class] = factory
	return nil
}

// MustRegister is like Register but panics on error.
// It is meant for startup code where a bad registration is a programming error.
func (r *Registry) MustRegister(class string, factory domain.Factory) {
	if err := r.Register(class, factory); err != nil {
		panic(err)
	}
}

// Seal stops further registrations.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Resolve builds a fresh Node for class.
// It returns a *domain.NotFoundError when the class has no registration.
func (r *Registry) Resolve(class string) (domain.Node, error) {
	r.mu.RLock()
	factory, ok := r.factories[class]
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.NotFoundError{Class: class}
	}

	node := factory()
	if node == nil {
		return nil, fmt.Errorf("factory for %s returned a nil node", class)
	}
	return node, nil
}

// Has reports whether class is registered.
func (r *Registry) Has(class string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[class]
	return ok
}

// Names returns the registered classes in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
