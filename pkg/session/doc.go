/*
Package session serialises access to linked list sessions.

A session's "current list" outlives a single request, so every read-modify-write
of it runs under a per-session lock: an in-process mutex, optionally combined
with a ports.DistributedLocker when several replicas share one store.
*/
package session
