/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing actionflow pipelines.

It allows developers to define pipelines using a fluent builder instead of relying on external
XML, YAML or JSON documents. This is particularly useful for generated pipelines, unit testing,
and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/actionflow/pkg/dsl"
	)

	func main() {
		b := dsl.New("greet")

		b.Add("get").
			Class("GetInputNode").
			Output("greeting")

		b.Add("print").
			Class("PrintInputNode").
			Input("greeting")

		// The resulting pipeline can be passed to Engine.Execute
		p, err := b.Build()
		// ...
	}
*/
package dsl
