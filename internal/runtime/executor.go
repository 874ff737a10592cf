package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/google/uuid"
)

// Resolver builds the Node registered for a class.
// *registry.Registry satisfies it.
type Resolver interface {
	Resolve(class string) (domain.Node, error)
}

// Observer receives a human-readable message from the executor.
type Observer func(message string)

// Executor drives pipelines one action at a time.
// It holds no per-run state, so a single Executor may serve independent runs concurrently
// as long as each run has its own Context.
type Executor struct {
	resolver Resolver
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	newRunID func() string
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Executor) {
		e.hooks = hooks
	}
}

// NewExecutor creates an executor that resolves nodes through resolver.
func NewExecutor(resolver Resolver, opts ...Option) *Executor {
	e := &Executor{
		resolver: resolver,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result summarizes a finished run.
type Result struct {
	RunID string
	// Context is the context the run wrote to. It keeps every mutation, including
	// those made by a failing action before it failed.
	Context *domain.Context
	// Completed counts the actions that succeeded.
	Completed int
	Total     int
	// Err is nil when every action succeeded.
	Err *domain.StepError
}

// OK reports whether every action succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// StepMessage is the text handed to the onStep observer for a completed action.
func StepMessage(a domain.Action) string {
	return fmt.Sprintf("action %s executed", a.Name)
}

// Execute runs p against a fresh Context.
func (e *Executor) Execute(p domain.Pipeline, onError, onStep Observer) Result {
	return e.ExecuteWithInput(p, domain.NewContext(), onError, onStep)
}

// ExecuteWithInput runs p against c, which lets callers chain pipelines over one Context.
// A nil c is replaced by a fresh Context.
//
// Actions run in order. The first failing action, whether its class is unknown, it returned
// an error or it panicked, is reported once through onError and ends the run.
// onStep fires after every successful action. Both observers may be nil.
func (e *Executor) ExecuteWithInput(p domain.Pipeline, c *domain.Context, onError, onStep Observer) Result {
	if c == nil {
		c = domain.NewContext()
	}

	res := Result{
		RunID:   e.newRunID(),
		Context: c,
		Total:   len(p.Actions),
	}
	logger := e.logger.With("run_id", res.RunID)
	if p.Name != "" {
		logger = logger.With("pipeline", p.Name)
	}
	logger.Debug("pipeline started", "actions", res.Total)
	start := time.Now()

	for i, action := range p.Actions {
		event := &domain.StepEvent{
			RunID:    res.RunID,
			Pipeline: p.Name,
			Index:    i,
			Action:   action,
		}
		fire(e.hooks.OnStepStart, event)

		stepStart := time.Now()
		stepErr := e.runStep(i, action, c)
		event.Duration = time.Since(stepStart)

		if stepErr != nil {
			res.Err = stepErr
			event.Err = stepErr
			logger.Warn("action failed",
				"step", i+1,
				"action", action.Name,
				"class", action.Class,
				"panic", stepErr.Panic,
				"err", stepErr.Message,
			)
			fire(e.hooks.OnStepFailure, event)
			if onError != nil {
				onError(stepErr.Message)
			}
			logger.Debug("pipeline stopped", "completed", res.Completed, "duration", time.Since(start))
			return res
		}

		res.Completed++
		logger.Debug("action executed", "step", i+1, "action", action.Name, "class", action.Class, "duration", event.Duration)
		fire(e.hooks.OnStepSuccess, event)
		if onStep != nil {
			onStep(StepMessage(action))
		}
	}

	logger.Debug("pipeline completed", "completed", res.Completed, "duration", time.Since(start))
	return res
}

// runStep resolves and invokes the node of a single action.
// The recover boundary covers exactly this step: construction and execution of one node.
func (e *Executor) runStep(index int, action domain.Action, c *domain.Context) (stepErr *domain.StepError) {
	defer recoverStep(&stepErr, index, action)

	node, err := e.resolver.Resolve(action.Class)
	if err != nil {
		return newStepError(index, action, err)
	}

	if err := node.Execute(c, action.InputID, action.OutputID); err != nil {
		return newStepError(index, action, err)
	}
	return nil
}

func fire(hook func(*domain.StepEvent), event *domain.StepEvent) {
	if hook != nil {
		hook(event)
	}
}
