package actionflow

import (
	_ "embed"
	"io"
	"log/slog"

	"github.com/aretw0/actionflow/internal/runtime"
	"github.com/aretw0/actionflow/internal/validator"
	"github.com/aretw0/actionflow/pkg/document"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/aretw0/actionflow/pkg/registry"
)

// Version is the released version of actionflow.
//
//go:embed VERSION
var Version string

// Observer receives a human-readable message from the engine. A nil Observer is ignored.
type Observer = runtime.Observer

// Result summarizes a finished run.
type Result = runtime.Result

// Engine is the high-level entry point for the actionflow library.
// It wraps the internal executor and provides a simplified API for consumers.
type Engine struct {
	executor *runtime.Executor
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry sets the registry nodes are resolved from (default: registry.Default).
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = registry.Default
	}
	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.executor = runtime.NewExecutor(
		eng.registry,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng
}

// Registry returns the registry the engine resolves nodes from.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Execute runs p against a fresh context.
func (e *Engine) Execute(p domain.Pipeline, onError, onStep Observer) Result {
	return e.executor.Execute(p, onError, onStep)
}

// ExecuteWithInput runs p against c, so several pipelines can be chained over one context.
func (e *Engine) ExecuteWithInput(p domain.Pipeline, c *domain.Context, onError, onStep Observer) Result {
	return e.executor.ExecuteWithInput(p, c, onError, onStep)
}

// RunDocument parses data and executes the resulting pipeline against a fresh context.
// Parse failures are returned as errors; step failures are reported through onError and the Result.
func (e *Engine) RunDocument(data []byte, format document.Format, onError, onStep Observer) (Result, error) {
	p, err := document.Parse(data, format)
	if err != nil {
		return Result{}, err
	}
	return e.Execute(p, onError, onStep), nil
}

// Validate checks that every action of p names a registered class.
func (e *Engine) Validate(p domain.Pipeline) error {
	return validator.ValidatePipeline(p, e.registry.Has)
}
