package linkedlist

import (
	"fmt"

	"github.com/aretw0/algoviz/pkg/domain"
)

// OperationInfo is the summary shown next to a linked list animation.
type OperationInfo struct {
	Operation  string `json:"operation"`
	Title      string `json:"title"`
	Complexity string `json:"complexity"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Length     int    `json:"length"`
	Values     []int  `json:"values"`
	Version    int    `json:"version"`
}

// Result is the outcome of HandleAction.
type Result struct {
	Steps []domain.Step `json:"steps"`
	Info  OperationInfo `json:"operationInfo"`
}

var titles = map[string]struct{ title, complexity string }{
	OpInit:       {"Initialise list", "O(n)"},
	OpSearch:     {"Search", "O(n)"},
	OpInsertHead: {"Insert at head", "O(1)"},
	OpInsertTail: {"Insert at tail", "O(n)"},
	OpInsertAt:   {"Insert at position", "O(n)"},
	OpRemoveHead: {"Remove head", "O(1)"},
	OpRemoveTail: {"Remove tail", "O(n)"},
	OpRemoveAt:   {"Remove at position", "O(n)"},
	OpReset:      {"Reset list", "O(n)"},
}

// HandleAction is the UI-facing wrapper around HandleOperation. It accepts the
// same names in any of the supported spellings and adds a summary of the
// operation and the resulting list.
func HandleAction(s *domain.ListState, action string, args Args) Result {
	if s == nil {
		s = domain.NewListState("")
	}
	steps := HandleOperation(s, action, args)

	info := OperationInfo{Operation: action, Title: action, Complexity: "-"}
	if canonical, ok := Canonical(action); ok {
		meta := titles[canonical]
		info.Operation = canonical
		info.Title = meta.title
		info.Complexity = meta.complexity
	}

	info.Success = !domain.AllFailed(steps)
	if len(steps) > 0 {
		info.Message = steps[len(steps)-1].Description
		if info.Success && steps[len(steps)-1].Action == domain.ActionState {
			info.Message = fmt.Sprintf("%s completed", info.Title)
		}
	}
	info.Length = len(s.Nodes)
	info.Values = s.Values()
	info.Version = s.Version
	return Result{Steps: steps, Info: info}
}
