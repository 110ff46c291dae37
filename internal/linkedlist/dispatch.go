package linkedlist

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Operation names accepted by HandleOperation.
const (
	OpInit       = "init"
	OpSearch     = "search"
	OpInsertHead = "insertHead"
	OpInsertTail = "insertTail"
	OpInsertAt   = "insertAt"
	OpRemoveHead = "removeHead"
	OpRemoveTail = "removeTail"
	OpRemoveAt   = "removeAt"
	OpReset      = "reset"
)

// Operations lists the supported operations in display order.
var Operations = []string{
	OpInit, OpSearch, OpInsertHead, OpInsertTail, OpInsertAt,
	OpRemoveHead, OpRemoveTail, OpRemoveAt, OpReset,
}

// Args carries the arguments of one operation.
type Args struct {
	Value    *int
	Position *int
	// Values seeds OpInit when HasValues is set.
	Values    []int
	HasValues bool
}

// ArgsFromInput extracts operation arguments from decoded request data.
func ArgsFromInput(in domain.Input) Args {
	return Args{Value: in.Value, Position: in.Position, Values: in.Values, HasValues: in.HasValues}
}

// Canonical maps an operation name in camelCase, kebab-case or snake_case
// ("insertHead", "insert-head", "insert_head") to its canonical form.
// It returns false for unknown names.
func Canonical(name string) (string, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for _, op := range Operations {
		if strings.ToLower(op) == key {
			return op, true
		}
	}
	return "", false
}

// HandleOperation runs op against the session list and returns its steps.
// Failures (unknown operation, missing or invalid argument, empty list)
// are reported as a single error step and leave the list unchanged.
// A nil state runs against a scratch list.
func HandleOperation(s *domain.ListState, op string, args Args) []domain.Step {
	if s == nil {
		s = domain.NewListState("")
	}

	canonical, ok := Canonical(op)
	if !ok {
		ensure(s)
		return failure(fmt.Sprintf("Unsupported linked list operation: %q", op), s.Nodes)
	}

	switch canonical {
	case OpInit:
		return Init(s, args.Values, args.HasValues)
	case OpReset:
		return Reset(s)
	case OpRemoveHead:
		return RemoveHead(s)
	case OpRemoveTail:
		return RemoveTail(s)
	}

	needsValue := canonical == OpSearch || canonical == OpInsertHead || canonical == OpInsertTail || canonical == OpInsertAt
	needsPosition := canonical == OpInsertAt || canonical == OpRemoveAt
	if needsValue && args.Value == nil {
		ensure(s)
		return failure(fmt.Sprintf("Operation %s requires a value", canonical), s.Nodes)
	}
	if needsPosition && args.Position == nil {
		ensure(s)
		return failure(fmt.Sprintf("Operation %s requires a position", canonical), s.Nodes)
	}

	switch canonical {
	case OpSearch:
		return Search(s, *args.Value)
	case OpInsertHead:
		return InsertHead(s, *args.Value)
	case OpInsertTail:
		return InsertTail(s, *args.Value)
	case OpInsertAt:
		return InsertAt(s, *args.Value, *args.Position)
	default:
		return RemoveAt(s, *args.Position)
	}
}
