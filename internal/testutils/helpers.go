package testutils

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/actionflow/pkg/nodes"
	"github.com/aretw0/actionflow/pkg/registry"
	"github.com/stretchr/testify/require"
)

// Recorder collects the messages passed to the onStep and onError observers.
type Recorder struct {
	Steps  []string
	Errors []string
}

// OnStep records a success message.
func (r *Recorder) OnStep(msg string) { r.Steps = append(r.Steps, msg) }

// OnError records a failure message.
func (r *Recorder) OnError(msg string) { r.Errors = append(r.Errors, msg) }

// NewBuiltinRegistry returns a sealed registry holding the built-in nodes, printing to out.
// It fails the test immediately on error.
func NewBuiltinRegistry(t *testing.T, out io.Writer) *registry.Registry {
	t.Helper()

	reg := registry.New()
	require.NoError(t, nodes.Register(reg, nodes.WithOutput(out)), "Failed to register built-in nodes")
	reg.Seal()
	return reg
}

// WriteFile writes content to name inside a fresh temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", name)
	return path
}
