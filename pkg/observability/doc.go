/*
Package observability provides lifecycle hooks for monitoring the actionflow executor.

It includes structured logging of every step, Prometheus metrics, and Chain to combine
several domain.LifecycleHooks into one.
*/
package observability
