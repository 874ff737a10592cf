package runtime_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/actionflow/internal/runtime"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_LifecycleHooks(t *testing.T) {
	var ran []string
	reg := newTestRegistry(t, &ran)

	var started, succeeded []string
	var failed []*domain.StepEvent
	hooks := domain.LifecycleHooks{
		OnStepStart: func(e *domain.StepEvent) {
			started = append(started, e.Action.Name)
		},
		OnStepSuccess: func(e *domain.StepEvent) {
			succeeded = append(succeeded, e.Action.Name)
		},
		OnStepFailure: func(e *domain.StepEvent) {
			failed = append(failed, e)
		},
	}
	exec := runtime.NewExecutor(reg, runtime.WithLifecycleHooks(hooks))

	p := domain.Pipeline{Name: "hooked", Actions: []domain.Action{
		{Class: "Mark", OutputID: "a", Name: "a"},
		{Class: "Panic", Name: "boom"},
		{Class: "Mark", OutputID: "c", Name: "c"},
	}}
	res := exec.Execute(p, nil, nil)

	assert.Equal(t, []string{"a", "boom"}, started)
	assert.Equal(t, []string{"a"}, succeeded)
	require.Len(t, failed, 1)
	assert.Equal(t, "hooked", failed[0].Pipeline)
	assert.Equal(t, 1, failed[0].Index)
	assert.Equal(t, res.RunID, failed[0].RunID)
	assert.Same(t, res.Err, failed[0].Err)
}

func TestExecutor_HooksFireBeforeObservers(t *testing.T) {
	var ran []string
	var order []string
	hooks := domain.LifecycleHooks{
		OnStepSuccess: func(*domain.StepEvent) { order = append(order, "hook") },
	}
	exec := runtime.NewExecutor(newTestRegistry(t, &ran), runtime.WithLifecycleHooks(hooks))

	exec.Execute(domain.Pipeline{Actions: marks(1)}, nil, func(string) { order = append(order, "observer") })
	assert.Equal(t, []string{"hook", "observer"}, order)
}

func TestExecutor_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var ran []string
	exec := runtime.NewExecutor(newTestRegistry(t, &ran), runtime.WithLogger(logger))
	res := exec.Execute(domain.Pipeline{Name: "logged", Actions: []domain.Action{
		{Class: "Mark", OutputID: "a", Name: "a"},
		{Class: "Fail", Name: "bad"},
	}}, nil, nil)

	out := buf.String()
	assert.Contains(t, out, "pipeline started")
	assert.Contains(t, out, "action executed")
	assert.Contains(t, out, "action failed")
	assert.Contains(t, out, "run_id="+res.RunID)
	assert.Contains(t, out, "pipeline=logged")
	assert.Contains(t, out, `err="bad input"`)
}

func TestExecutor_NilLoggerKeepsDefault(t *testing.T) {
	var ran []string
	exec := runtime.NewExecutor(newTestRegistry(t, &ran), runtime.WithLogger(nil))
	assert.NotPanics(t, func() {
		exec.Execute(domain.Pipeline{Actions: marks(1)}, nil, nil)
	})
}
