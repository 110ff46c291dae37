/*
Package observability turns generator lifecycle events into logs and metrics.

Hooks are plain domain.LifecycleHooks values, so they can be combined and
passed to algoviz.WithLifecycleHooks.
*/
package observability
