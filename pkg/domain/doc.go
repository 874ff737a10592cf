/*
Package domain contains the core domain models of the actionflow engine.

It defines the building blocks of a pipeline run: the type-erased Context nodes use to
exchange values, the Node capability, and the Action and Pipeline value objects parsed from
declarative documents. This package is kept pure and free of external dependencies like I/O
or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Context: String-keyed store of arbitrary values, read back through Get with a run-time type check.
  - Node: A pluggable unit of work executed against the Context with an input and an output key.
  - Action: One declared pipeline step (node class, input key, output key, display name).
  - Pipeline: An ordered, read-only sequence of Actions.
  - LifecycleHooks: Optional callbacks fired around every step for observability.
*/
package domain
