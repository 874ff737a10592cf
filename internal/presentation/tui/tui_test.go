package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/actionflow/internal/presentation/tui"
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	p := domain.Pipeline{
		Name: "greet",
		Actions: []domain.Action{
			{Class: "GetInputNode", OutputID: "greeting", Name: "get"},
			{Class: "Missing", InputID: "a|b", Name: "odd"},
		},
	}
	md := tui.Describe(p, func(class string) bool { return class == "GetInputNode" })

	assert.Contains(t, md, "# greet")
	assert.Contains(t, md, "2 action(s)")
	assert.Contains(t, md, "| 1 | get | GetInputNode | - | greeting |")
	assert.Contains(t, md, `| 2 | odd | Missing (unregistered) | a\|b | - |`)
}

func TestDescribe_Empty(t *testing.T) {
	md := tui.Describe(domain.Pipeline{}, nil)
	assert.Contains(t, md, "# pipeline")
	assert.NotContains(t, md, "| # |")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer(80)
	require.NoError(t, err)

	out, err := render("# Title\n\nbody text")
	require.NoError(t, err)
	assert.Contains(t, out, "body text")
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPrinter(&buf)

	p.Step("action get executed")
	p.Error("node X not found")
	p.Info("done")

	assert.Equal(t, "✓ action get executed\n✗ node X not found\ndone\n", buf.String())
	assert.False(t, tui.IsTerminal(&buf))
}

func TestPrinter_Colored(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPrinterWithProfile(&buf, termenv.TrueColor)

	p.Step("action get executed")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "action get executed")
}

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	tui.NewPrinter(&buf).Banner()
	assert.Contains(t, buf.String(), `\__,_|`)
}
