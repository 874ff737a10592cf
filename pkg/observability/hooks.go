package observability

import (
	"log/slog"

	"github.com/aretw0/actionflow/pkg/domain"
)

// Chain merges hooks so every non-nil callback runs, in argument order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var start, success, failure []func(*domain.StepEvent)
	for _, h := range hooks {
		if h.OnStepStart != nil {
			start = append(start, h.OnStepStart)
		}
		if h.OnStepSuccess != nil {
			success = append(success, h.OnStepSuccess)
		}
		if h.OnStepFailure != nil {
			failure = append(failure, h.OnStepFailure)
		}
	}
	return domain.LifecycleHooks{
		OnStepStart:   fanOut(start),
		OnStepSuccess: fanOut(success),
		OnStepFailure: fanOut(failure),
	}
}

func fanOut(fns []func(*domain.StepEvent)) func(*domain.StepEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(e *domain.StepEvent) {
		for _, fn := range fns {
			fn(e)
		}
	}
}

// LoggingHooks logs step starts at debug level, successes at info and failures at error.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepStart: func(e *domain.StepEvent) {
			logger.Debug("step_start", stepAttrs(e)...)
		},
		OnStepSuccess: func(e *domain.StepEvent) {
			logger.Info("step_success", append(stepAttrs(e), "duration", e.Duration)...)
		},
		OnStepFailure: func(e *domain.StepEvent) {
			attrs := append(stepAttrs(e), "duration", e.Duration)
			if e.Err != nil {
				attrs = append(attrs, "err", e.Err.Message, "panic", e.Err.Panic)
			}
			logger.Error("step_failure", attrs...)
		},
	}
}

func stepAttrs(e *domain.StepEvent) []any {
	return []any{
		"run_id", e.RunID,
		"step", e.Index + 1,
		"action", e.Action.Name,
		"class", e.Action.Class,
	}
}
