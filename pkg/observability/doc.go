/*
Package observability provides lifecycle hooks for monitoring Derelict sessions.

It includes Prometheus metrics for scene visits, granted items and guard
attempts, a structured logging hook set and a helper to chain several hook
sets into one.
*/
package observability
