package nodes_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/actionflow/internal/runtime"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/aretw0/actionflow/pkg/nodes"
	"github.com/aretw0/actionflow/pkg/registry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...nodes.Option) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, nodes.Register(r, opts...))
	return r
}

func run(t *testing.T, r *registry.Registry, c *domain.Context, class, in, out string) error {
	t.Helper()
	node, err := r.Resolve(class)
	require.NoError(t, err)
	return node.Execute(c, in, out)
}

func TestRegister_AllClasses(t *testing.T) {
	r := setup(t)
	assert.ElementsMatch(t, []string{
		nodes.ClassGetInput, nodes.ClassPrintInput, nodes.ClassUpper, nodes.ClassLower,
		nodes.ClassTitle, nodes.ClassCopy, nodes.ClassEnv, nodes.ClassUUID, nodes.ClassFail,
	}, r.Names())

	err := nodes.Register(r)
	assert.ErrorIs(t, err, registry.ErrDuplicateNode)
}

func TestGetInputThenPrint(t *testing.T) {
	var out bytes.Buffer
	r := setup(t, nodes.WithOutput(&out))

	p := domain.Pipeline{Actions: []domain.Action{
		{Class: nodes.ClassGetInput, OutputID: "x", Name: "A"},
		{Class: nodes.ClassPrintInput, InputID: "x", Name: "B"},
	}}
	var steps []string
	res := runtime.NewExecutor(r).Execute(p, func(msg string) { t.Errorf("unexpected error: %s", msg) }, func(msg string) { steps = append(steps, msg) })

	require.True(t, res.OK())
	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, []string{"action A executed", "action B executed"}, steps)
}

func TestPrintInput_Missing(t *testing.T) {
	r := setup(t, nodes.WithOutput(&bytes.Buffer{}))
	err := run(t, r, domain.NewContext(), nodes.ClassPrintInput, "nope", "")
	assert.EqualError(t, err, `input "nope" is missing`)
}

func TestCaseNodes(t *testing.T) {
	r := setup(t)
	tests := []struct {
		class string
		in    string
		want  string
	}{
		{nodes.ClassUpper, "hello wörld", "HELLO WÖRLD"},
		{nodes.ClassLower, "HeLLo", "hello"},
		{nodes.ClassTitle, "hello world", "Hello World"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			c := domain.NewContext()
			c.Set("in", tt.in)
			require.NoError(t, run(t, r, c, tt.class, "in", "out"))
			got, ok := domain.Get[string](c, "out")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	c := domain.NewContext()
	c.Set("in", 12)
	err := run(t, r, c, nodes.ClassUpper, "in", "out")
	assert.EqualError(t, err, `input "in" is not a string`)
}

func TestCopyNode(t *testing.T) {
	r := setup(t)
	c := domain.NewContext()
	c.Set("src", []int{1, 2})

	require.NoError(t, run(t, r, c, nodes.ClassCopy, "src", "dst"))
	dst, ok := domain.Get[[]int](c, "dst")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, dst)

	assert.Error(t, run(t, r, c, nodes.ClassCopy, "absent", "dst"))
}

func TestEnvNode(t *testing.T) {
	env := map[string]string{"GREETING": "hi"}
	r := setup(t, nodes.WithLookupEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	c := domain.NewContext()

	require.NoError(t, run(t, r, c, nodes.ClassEnv, "GREETING", "g"))
	g, _ := domain.Get[string](c, "g")
	assert.Equal(t, "hi", g)

	assert.EqualError(t, run(t, r, c, nodes.ClassEnv, "MISSING", "m"), `environment variable "MISSING" is not set`)
}

func TestUUIDNode(t *testing.T) {
	r := setup(t)
	c := domain.NewContext()
	require.NoError(t, run(t, r, c, nodes.ClassUUID, "", "id"))

	id, ok := domain.Get[string](c, "id")
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestFailNode(t *testing.T) {
	r := setup(t)
	var errs []string
	res := runtime.NewExecutor(r).Execute(domain.Pipeline{Actions: []domain.Action{
		{Class: nodes.ClassFail, Name: "boom"},
	}}, func(msg string) { errs = append(errs, msg) }, nil)

	assert.False(t, res.OK())
	assert.Equal(t, []string{nodes.FailMessage}, errs)
}
