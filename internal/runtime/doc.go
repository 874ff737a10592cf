// Package runtime contains the sequential pipeline executor.
//
// The executor resolves each action's node through a Resolver, runs it against the shared
// domain.Context inside a per-step recover boundary, and stops at the first failure.
// Mutations already applied to the Context are kept; there is no rollback.
package runtime
