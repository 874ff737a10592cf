package domain

// Action is one declared pipeline step.
type Action struct {
	// Class is the registry identifier of the node to run.
	Class string `json:"class" yaml:"class" mapstructure:"class"`
	// InputID is the context key the node reads from. Empty when not declared.
	InputID string `json:"inputId,omitempty" yaml:"inputId,omitempty" mapstructure:"inputId"`
	// OutputID is the context key the node writes to. Empty when not declared.
	OutputID string `json:"outputId,omitempty" yaml:"outputId,omitempty" mapstructure:"outputId"`
	// Name identifies the action in diagnostics and observer messages.
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// String returns the display name of the action.
func (a Action) String() string {
	return a.Name
}

// Pipeline is an ordered sequence of Actions. It owns no Nodes;
// those are resolved from the registry on every step.
type Pipeline struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Actions []Action `json:"actions" yaml:"actions" mapstructure:"actions"`
}

// Len returns the number of actions.
func (p Pipeline) Len() int {
	return len(p.Actions)
}

// Classes returns the node class of every action, in order.
func (p Pipeline) Classes() []string {
	classes := make([]string, len(p.Actions))
	for i, a := range p.Actions {
		classes[i] = a.Class
	}
	return classes
}
