// Package nodes provides the built-in node classes shipped with actionflow.
package nodes

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in node classes.
const (
	ClassGetInput   = "GetInputNode"
	ClassPrintInput = "PrintInputNode"
	ClassUpper      = "UpperNode"
	ClassLower      = "LowerNode"
	ClassTitle      = "TitleNode"
	ClassCopy       = "CopyNode"
	ClassEnv        = "EnvNode"
	ClassUUID       = "UUIDNode"
	ClassFail       = "FailNode"
)

// Greeting is the value GetInputNode writes.
const Greeting = "hello"

// FailMessage is the panic payload of FailNode.
const FailMessage = "fail node triggered"

// Registrar is the part of a registry the built-ins need.
type Registrar interface {
	Register(class string, factory domain.Factory) error
}

type config struct {
	output    io.Writer
	lookupEnv func(string) (string, bool)
}

// Option configures the built-in nodes.
type Option func(*config)

// WithOutput sets where PrintInputNode writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithLookupEnv replaces os.LookupEnv for EnvNode.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(c *config) {
		c.lookupEnv = fn
	}
}

// Register adds every built-in node class to r.
func Register(r Registrar, opts ...Option) error {
	cfg := &config{
		output:    os.Stdout,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	factories := []struct {
		class   string
		factory domain.Factory
	}{
		{ClassGetInput, func() domain.Node { return getInputNode{} }},
		{ClassPrintInput, func() domain.Node { return &printInputNode{out: cfg.output} }},
		{ClassUpper, func() domain.Node { return caseNode{caser: cases.Upper(language.Und)} }},
		{ClassLower, func() domain.Node { return caseNode{caser: cases.Lower(language.Und)} }},
		{ClassTitle, func() domain.Node { return caseNode{caser: cases.Title(language.Und)} }},
		{ClassCopy, func() domain.Node { return copyNode{} }},
		{ClassEnv, func() domain.Node { return envNode{lookup: cfg.lookupEnv} }},
		{ClassUUID, func() domain.Node { return uuidNode{} }},
		{ClassFail, func() domain.Node { return failNode{} }},
	}
	for _, f := range factories {
		if err := r.Register(f.class, f.factory); err != nil {
			return fmt.Errorf("failed to register %s: %w", f.class, err)
		}
	}
	return nil
}

// getInputNode writes Greeting to the output key.
type getInputNode struct{}

func (getInputNode) Execute(c *domain.Context, _, outputKey string) error {
	c.Set(outputKey, Greeting)
	return nil
}

// printInputNode writes the input value, one per line.
type printInputNode struct {
	out io.Writer
}

func (n *printInputNode) Execute(c *domain.Context, inputKey, _ string) error {
	v, ok := c.Lookup(inputKey)
	if !ok {
		return fmt.Errorf("input %q is missing", inputKey)
	}
	_, err := fmt.Fprintln(n.out, v)
	return err
}

// caseNode maps a string input through a Unicode-aware caser.
type caseNode struct {
	caser cases.Caser
}

func (n caseNode) Execute(c *domain.Context, inputKey, outputKey string) error {
	s, ok := domain.Get[string](c, inputKey)
	if !ok {
		return fmt.Errorf("input %q is not a string", inputKey)
	}
	c.Set(outputKey, n.caser.String(s))
	return nil
}

type copyNode struct{}

func (copyNode) Execute(c *domain.Context, inputKey, outputKey string) error {
	v, ok := c.Lookup(inputKey)
	if !ok {
		return fmt.Errorf("input %q is missing", inputKey)
	}
	c.Set(outputKey, v)
	return nil
}

// envNode reads the environment variable named by the input key.
type envNode struct {
	lookup func(string) (string, bool)
}

func (n envNode) Execute(c *domain.Context, inputKey, outputKey string) error {
	v, ok := n.lookup(inputKey)
	if !ok {
		return fmt.Errorf("environment variable %q is not set", inputKey)
	}
	c.Set(outputKey, v)
	return nil
}

type uuidNode struct{}

func (uuidNode) Execute(c *domain.Context, _, outputKey string) error {
	c.Set(outputKey, uuid.NewString())
	return nil
}

// failNode always panics. It is useful to exercise failure handling in documents.
type failNode struct{}

func (failNode) Execute(*domain.Context, string, string) error {
	panic(FailMessage)
}
