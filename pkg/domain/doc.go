/*
Package domain contains the core data model of the algoviz step generators.

It defines the Step record replayed by animation front ends, the snapshot payloads
carried by each step family, the linked-list session state and the sentinel errors
shared by every layer. The package is pure: no I/O, no persistence, no transport.

# Key Entities

  - Step: A self-contained snapshot plus description of algorithm progress.
    It is a tagged union: Kind selects exactly one payload (Array, Tree, List, Stack).
  - TreeNode / ListNode: Structural nodes embedded (by value) in step snapshots.
  - ListState: The "current list" of a linked-list session, owned by the caller.
  - Input: The decoded request data handed to a generator.
*/
package domain
