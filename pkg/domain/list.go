package domain

import "time"

// ListNode is a singly linked list node.
// Ids are positional: after every structural change they are renumbered 0..n-1
// and Next points at ID+1 (nil for the tail). They are not stable identities.
type ListNode struct {
	ID    int  `json:"id"`
	Value int  `json:"value"`
	Next  *int `json:"next"`
}

// ListSnapshot is the payload of linked list steps.
type ListSnapshot struct {
	Nodes     []ListNode `json:"nodes"`
	CurrentID *int       `json:"currentId"`
	Highlight []int      `json:"highlight"`
}

// Clone returns a deep copy of the snapshot.
func (l *ListSnapshot) Clone() *ListSnapshot {
	if l == nil {
		return nil
	}
	return &ListSnapshot{
		Nodes:     CloneListNodes(l.Nodes),
		CurrentID: cloneIntPtr(l.CurrentID),
		Highlight: cloneInts(l.Highlight),
	}
}

// CloneListNodes deep-copies a node slice, including the Next pointers.
func CloneListNodes(nodes []ListNode) []ListNode {
	if nodes == nil {
		return nil
	}
	out := make([]ListNode, len(nodes))
	for i, n := range nodes {
		out[i] = ListNode{ID: n.ID, Value: n.Value, Next: cloneIntPtr(n.Next)}
	}
	return out
}

// ListState is the "current list" of a linked list session.
// Operations read it, mutate a copy and store the result back.
type ListState struct {
	SessionID   string     `json:"session_id"`
	Nodes       []ListNode `json:"nodes"`
	Initialized bool       `json:"initialized"`
	// Version is incremented by every operation that changes Nodes.
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewListState creates an uninitialised list for a session.
// The first operation lazily fills it.
func NewListState(sessionID string) *ListState {
	return &ListState{SessionID: sessionID}
}

// Values returns the node values in list order.
func (s *ListState) Values() []int {
	out := make([]int, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = n.Value
	}
	return out
}

// Snapshot returns a deep copy of the state.
func (s *ListState) Snapshot() *ListState {
	if s == nil {
		return nil
	}
	out := *s
	out.Nodes = CloneListNodes(s.Nodes)
	return &out
}
