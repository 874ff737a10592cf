package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/actionflow/pkg/domain"
)

// ErrInvalidPipeline is wrapped by every error Build returns.
var ErrInvalidPipeline = errors.New("invalid pipeline")

// Builder manages the pipeline construction.
type Builder struct {
	name    string
	order   []string
	actions map[string]*ActionBuilder
}

// New creates a new pipeline builder.
func New(name string) *Builder {
	return &Builder{
		name:    name,
		actions: make(map[string]*ActionBuilder),
	}
}

// Add appends a new action to the pipeline.
// If an action with that name already exists, it returns the existing builder and keeps its position.
func (b *Builder) Add(name string) *ActionBuilder {
	if ab, ok := b.actions[name]; ok {
		return ab
	}
	ab := &ActionBuilder{
		action:  domain.Action{Name: name},
		builder: b,
	}
	b.actions[name] = ab
	b.order = append(b.order, name)
	return ab
}

// Build compiles the actions, in the order they were added, into a Pipeline.
func (b *Builder) Build() (domain.Pipeline, error) {
	p := domain.Pipeline{
		Name:    b.name,
		Actions: make([]domain.Action, 0, len(b.order)),
	}

	var errs []error
	for i, name := range b.order {
		a := b.actions[name].action
		if name == "" {
			errs = append(errs, fmt.Errorf("action %d: missing name", i+1))
		}
		if a.Class == "" {
			errs = append(errs, fmt.Errorf("action %d (%s): missing class", i+1, name))
		}
		p.Actions = append(p.Actions, a)
	}
	if len(errs) > 0 {
		return domain.Pipeline{}, fmt.Errorf("%w: %w", ErrInvalidPipeline, errors.Join(errs...))
	}
	return p, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() domain.Pipeline {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
