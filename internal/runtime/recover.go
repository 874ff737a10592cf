package runtime

import (
	"errors"
	"fmt"

	"github.com/aretw0/actionflow/pkg/domain"
)

// recoverStep turns a panic raised inside a step into a StepError.
// It must be deferred directly by the step function.
func recoverStep(stepErr **domain.StepError, index int, action domain.Action) {
	r := recover()
	if r == nil {
		return
	}

	msg := panicMessage(r)
	err, ok := r.(error)
	if !ok {
		err = errors.New(msg)
	}
	*stepErr = &domain.StepError{
		Index:   index,
		Action:  action,
		Message: msg,
		Panic:   true,
		Err:     err,
	}
}

func newStepError(index int, action domain.Action, err error) *domain.StepError {
	msg := safeText(err.Error)
	if msg == "" {
		msg = domain.UnknownErrorMessage
	}
	return &domain.StepError{
		Index:   index,
		Action:  action,
		Message: msg,
		Err:     err,
	}
}

// panicMessage extracts the textual payload of a recovered value.
func panicMessage(r any) string {
	var msg string
	switch v := r.(type) {
	case string:
		msg = v
	case error:
		msg = safeText(v.Error)
	case fmt.Stringer:
		msg = safeText(v.String)
	}
	if msg == "" {
		return domain.UnknownErrorMessage
	}
	return msg
}

// safeText calls a node-supplied Error or String method. Those run inside the executor's
// recover boundary, so a panic there yields an empty message instead of escaping it.
func safeText(text func() string) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	return text()
}
