package registry

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/internal/linkedlist"
	"github.com/aretw0/algoviz/internal/stack"
	"github.com/aretw0/algoviz/internal/tree"
	"github.com/aretw0/algoviz/pkg/domain"
)

// sortGenerator adapts a sorting function. A missing or empty array is
// replaced by the default array, documented by a leading init step.
func sortGenerator(sort func([]int) []domain.Step) Generator {
	return func(in domain.Input, _ *domain.ListState) []domain.Step {
		if len(in.Array) > 0 {
			return sort(in.Array)
		}
		values := domain.DefaultSortArray()
		reason := "No array given"
		if in.HasArray {
			reason = "The array is empty"
		}
		note := domain.Step{
			Kind:        domain.KindArray,
			Action:      domain.ActionInit,
			Description: fmt.Sprintf("%s, using the default array %s", reason, formatInts(values)),
			Array: &domain.ArrayState{
				Values:  append([]int{}, values...),
				Indices: [2]int{domain.NoIndex, domain.NoIndex},
				Sorted:  []int{},
			},
		}
		return append([]domain.Step{note}, sort(values)...)
	}
}

func treeGenerator(in domain.Input, _ *domain.ListState) []domain.Step {
	return tree.Generate(in.Values)
}

func stackGenerator(in domain.Input, _ *domain.ListState) []domain.Step {
	var values []int
	if in.HasValues {
		values = in.Values
		if values == nil {
			values = []int{}
		}
	}
	return stack.Generate(values, in.Capacity)
}

// linkedListGenerator runs one operation; a missing operation initialises the list.
func linkedListGenerator(in domain.Input, list *domain.ListState) []domain.Step {
	op := in.Operation
	if op == "" {
		op = linkedlist.OpInit
	}
	return linkedlist.HandleOperation(list, op, linkedlist.ArgsFromInput(in))
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
