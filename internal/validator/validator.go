package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/actionflow/pkg/domain"
)

// ValidatePipeline checks that every action names a class known to the caller.
// All problems are reported together.
func ValidatePipeline(p domain.Pipeline, known func(class string) bool) error {
	var errs []error
	for i, a := range p.Actions {
		if a.Class == "" {
			errs = append(errs, fmt.Errorf("action %d (%s): missing class", i+1, a.Name))
			continue
		}
		if !known(a.Class) {
			errs = append(errs, fmt.Errorf("action %d (%s): %w", i+1, a.Name, &domain.NotFoundError{Class: a.Class}))
		}
	}
	return errors.Join(errs...)
}

// Warning is a finding that does not stop a pipeline from running.
type Warning struct {
	Index  int
	Action string
	Key    string
}

func (w Warning) String() string {
	return fmt.Sprintf("action %d (%s) reads %q, which no earlier action writes", w.Index+1, w.Action, w.Key)
}

// UnboundInputs lists actions whose input key is not written by an earlier action of p.
// Such keys must be seeded into the context before the run, or the reading node will see them as absent.
func UnboundInputs(p domain.Pipeline) []Warning {
	written := make(map[string]bool)
	var warnings []Warning
	for i, a := range p.Actions {
		if a.InputID != "" && !written[a.InputID] {
			warnings = append(warnings, Warning{Index: i, Action: a.Name, Key: a.InputID})
		}
		if a.OutputID != "" {
			written[a.OutputID] = true
		}
	}
	return warnings
}
