package domain

import "slices"

// Kind discriminates the payload carried by a Step.
type Kind string

const (
	KindArray      Kind = "array"
	KindBinaryTree Kind = "binaryTree"
	KindLinkedList Kind = "linkedList"
	KindStack      Kind = "stack"
)

// Action names the operation a step performed.
type Action string

const (
	ActionInit         Action = "init"
	ActionCompare      Action = "compare"
	ActionSwap         Action = "swap"
	ActionMove         Action = "move"
	ActionPivot        Action = "pivot"
	ActionSelect       Action = "select"
	ActionSorted       Action = "sorted"
	ActionDistribute   Action = "distribute"
	ActionCollect      Action = "collect"
	ActionCounting     Action = "counting"
	ActionAccumulation Action = "accumulation"
	ActionPlacing      Action = "placing"
	ActionInsert       Action = "insert"
	ActionSkip         Action = "skip"
	ActionTraverse     Action = "traverse"
	ActionVisit        Action = "visit"
	ActionSearch       Action = "search"
	ActionFound        Action = "found"
	ActionNotFound     Action = "not_found"
	ActionRemove       Action = "remove"
	ActionState        Action = "state"
	ActionPush         Action = "push"
	ActionPop          Action = "pop"
	ActionPeek         Action = "peek"
	ActionError        Action = "error"
	ActionComplete     Action = "complete"
)

// Step is one discrete, self-contained snapshot of algorithm progress.
// Exactly one of Array, Tree, List or Stack is set, matching Kind.
// A renderer must be able to draw any step without replaying earlier ones.
type Step struct {
	Kind        Kind   `json:"kind"`
	Action      Action `json:"action"`
	Description string `json:"description"`

	Array *ArrayState   `json:"array,omitempty"`
	Tree  *TreeState    `json:"tree,omitempty"`
	List  *ListSnapshot `json:"list,omitempty"`
	Stack *StackState   `json:"stack,omitempty"`
}

// Failed reports whether the step is a no-op failure report.
func (s Step) Failed() bool {
	return s.Action == ActionError
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	out := s
	if s.Array != nil {
		out.Array = s.Array.Clone()
	}
	if s.Tree != nil {
		out.Tree = s.Tree.Clone()
	}
	if s.List != nil {
		out.List = s.List.Clone()
	}
	if s.Stack != nil {
		out.Stack = s.Stack.Clone()
	}
	return out
}

// CloneSteps deep-copies a step sequence.
func CloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}
	return out
}

// AllFailed reports whether a sequence carries no usable progress:
// it is empty or every step is an error report.
func AllFailed(steps []Step) bool {
	for _, s := range steps {
		if !s.Failed() {
			return false
		}
	}
	return true
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	return slices.Clone(v)
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
