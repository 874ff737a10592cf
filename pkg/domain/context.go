package domain

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Context holds the values nodes exchange during a pipeline run.
// Each value keeps its dynamic Go type, which is checked again on every read.
//
// A Context is not safe for concurrent use. One executor drives one Context at a time.
//
// A nil *Context reads as empty: Lookup, Len, Keys, Snapshot, Get and Delete accept it.
// Set needs a Context to write into and panics on a nil receiver; create one with NewContext.
type Context struct {
	values map[string]any
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set inserts or overwrites the value stored at key. It panics when c is nil.
func (c *Context) Set(key string, value any) {
	if c == nil {
		panic("domain: Set on a nil *Context")
	}
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Lookup returns the raw value stored at key.
func (c *Context) Lookup(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]
	return v, ok
}

// Delete removes key from the Context. Deleting a missing key is a no-op.
func (c *Context) Delete(key string) {
	if c == nil {
		return
	}
	delete(c.values, key)
}

// Len returns the number of stored keys.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Keys returns the stored keys in sorted order.
func (c *Context) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.values))
}

// Snapshot returns a shallow copy of the stored values.
func (c *Context) Snapshot() map[string]any {
	if c == nil {
		return nil
	}
	return maps.Clone(c.values)
}

// Get returns the value stored at key as T.
// The second result is false when the key is missing or the stored value is not a T;
// values are never converted.
//
// For a concrete T the stored dynamic type must be exactly T. An interface T is an
// intentional extension of that rule: Get narrows to any stored value implementing it,
// so Get[any] accepts every value and Get[fmt.Stringer] accepts every Stringer.
func Get[T any](c *Context, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	raw, ok := c.values[key]
	if !ok {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// MustGet is like Get but panics when the value is absent or has another type.
// Nodes use it to state a type assumption; the executor reports the panic as a step failure.
func MustGet[T any](c *Context, key string) T {
	v, ok := Get[T](c, key)
	if !ok {
		if raw, found := c.Lookup(key); found {
			panic(fmt.Sprintf("context key %q holds %T, expected %v", key, raw, reflect.TypeFor[T]()))
		}
		panic(fmt.Sprintf("context key %q is missing", key))
	}
	return v
}
