package dsl

import "github.com/aretw0/actionflow/pkg/domain"

// ActionBuilder provides a fluent API for configuring an action.
type ActionBuilder struct {
	action  domain.Action
	builder *Builder
}

// Class sets the registered node class the action runs.
func (a *ActionBuilder) Class(class string) *ActionBuilder {
	a.action.Class = class
	return a
}

// Input sets the context key the node reads.
func (a *ActionBuilder) Input(key string) *ActionBuilder {
	a.action.InputID = key
	return a
}

// Output sets the context key the node writes.
func (a *ActionBuilder) Output(key string) *ActionBuilder {
	a.action.OutputID = key
	return a
}

// Then starts the next action, so a pipeline can be written as a single chain.
func (a *ActionBuilder) Then(name string) *ActionBuilder {
	return a.builder.Add(name)
}

// Action returns the action as configured so far.
func (a *ActionBuilder) Action() domain.Action {
	return a.action
}
