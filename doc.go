/*
Package actionflow is a minimal declarative pipeline runner.

A pipeline document lists named actions. Each action names a node class plus an input key and
an output key in a shared, type-erased context. At run time the engine resolves every action's
node through a registry, runs it, and stops at the first failure. A failing node, even one that
panics, never takes the host process down.

# Concept

Nodes are plain Go values implementing domain.Node. They are contributed by registering a class
name and a factory before the first run, so the engine never knows their concrete types. Nodes
exchange data through domain.Context; reads are checked against the stored run-time type and a
mismatch is reported as absent, never converted.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/actionflow"
		"github.com/aretw0/actionflow/pkg/document"
		"github.com/aretw0/actionflow/pkg/nodes"
		"github.com/aretw0/actionflow/pkg/registry"
	)

	func main() {
		reg := registry.New()
		if err := nodes.Register(reg); err != nil {
			log.Fatal(err)
		}
		reg.Seal()

		p, err := document.ParseFile("pipeline.xml")
		if err != nil {
			log.Fatal(err)
		}

		eng := actionflow.New(actionflow.WithRegistry(reg))
		res := eng.Execute(p,
			func(msg string) { fmt.Println("error:", msg) },
			func(msg string) { fmt.Println(msg) },
		)
		if !res.OK() {
			log.Fatalf("stopped at step %d", res.Err.Index+1)
		}
	}
*/
package actionflow
