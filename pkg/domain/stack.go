package domain

// Stack animation types consumed by the renderer.
const (
	AnimationPush      = "push"
	AnimationPop       = "pop"
	AnimationHighlight = "highlight"
)

// StackAnimation describes the transition a renderer plays for a stack step.
// Push sets TargetIndex, pop sets SourceIndex, highlight sets Index.
type StackAnimation struct {
	Type        string `json:"type"`
	Value       int    `json:"value"`
	TargetIndex *int   `json:"targetIndex,omitempty"`
	SourceIndex *int   `json:"sourceIndex,omitempty"`
	Index       *int   `json:"index,omitempty"`
}

// StackState is the payload of stack steps. Items are bottom first.
type StackState struct {
	Items        []int           `json:"items"`
	Capacity     int             `json:"capacity"`
	ChangedIndex *int            `json:"changedIndex"`
	Animation    *StackAnimation `json:"animation,omitempty"`
}

// Clone returns a deep copy of the stack state.
func (s *StackState) Clone() *StackState {
	if s == nil {
		return nil
	}
	out := &StackState{
		Items:        cloneInts(s.Items),
		Capacity:     s.Capacity,
		ChangedIndex: cloneIntPtr(s.ChangedIndex),
	}
	if s.Animation != nil {
		a := *s.Animation
		a.TargetIndex = cloneIntPtr(s.Animation.TargetIndex)
		a.SourceIndex = cloneIntPtr(s.Animation.SourceIndex)
		a.Index = cloneIntPtr(s.Animation.Index)
		out.Animation = &a
	}
	return out
}
