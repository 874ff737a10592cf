package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// wordWrap <= 0 keeps glamour's default width.
func NewRenderer(wordWrap int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// Describe renders p as a markdown document: a heading and one table row per action.
// Classes missing from known are flagged; a nil known skips the check.
func Describe(p domain.Pipeline, known func(class string) bool) string {
	var b strings.Builder

	title := p.Name
	if title == "" {
		title = "pipeline"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "%d action(s)\n\n", p.Len())

	if p.Len() == 0 {
		return b.String()
	}

	b.WriteString("| # | Name | Class | Input | Output |\n")
	b.WriteString("|---|------|-------|-------|--------|\n")
	for i, a := range p.Actions {
		class := cell(a.Class)
		if known != nil && !known(a.Class) {
			class += " (unregistered)"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", i+1, cell(a.Name), class, cell(a.InputID), cell(a.OutputID))
	}
	return b.String()
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
