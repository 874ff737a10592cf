package domain

// Node is a pluggable unit of work.
// It reads from the Context under inputKey, computes, and writes under outputKey.
// A Node fails by returning an error or by panicking; the executor treats both as a step failure.
type Node interface {
	Execute(c *Context, inputKey, outputKey string) error
}

// NodeFunc adapts an ordinary function to the Node interface.
type NodeFunc func(c *Context, inputKey, outputKey string) error

// Execute calls f(c, inputKey, outputKey).
func (f NodeFunc) Execute(c *Context, inputKey, outputKey string) error {
	return f(c, inputKey, outputKey)
}

// Factory builds a fresh Node instance. It is called once per action invocation,
// so no instance is shared between steps.
type Factory func() Node
