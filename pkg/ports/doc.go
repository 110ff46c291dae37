/*
Package ports defines the driven ports (interfaces) of algoviz.

The step generators themselves are pure; the only state that outlives a call is
the linked list "current list" of a session. These interfaces decouple its
persistence and coordination from concrete backends.

# Key Interfaces

  - ListStore: persists and loads a session's linked list state.
  - DistributedLocker: serialises access to a session across replicas.
*/
package ports
