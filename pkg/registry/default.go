package registry

import "github.com/aretw0/actionflow/pkg/domain"

// Default is the process-wide registry used when no other one is configured.
// Populate it from main (or a setup function) before the first pipeline runs.
var Default = New()

// Register adds a factory to the Default registry.
func Register(class string, factory domain.Factory) error {
	return Default.Register(class, factory)
}

// MustRegister adds a factory to the Default registry and panics on error.
func MustRegister(class string, factory domain.Factory) {
	Default.MustRegister(class, factory)
}

// Resolve builds a Node from the Default registry.
func Resolve(class string) (domain.Node, error) {
	return Default.Resolve(class)
}
