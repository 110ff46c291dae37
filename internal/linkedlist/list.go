// Package linkedlist implements the linked list step generator.
//
// Every operation works on a caller-owned *domain.ListState (the session's
// "current list"): it reads the prior nodes, mutates a copy and stores the
// result back. Node ids are positional and renumbered 0..n-1 after every
// structural change; the steps taken before a change show the old ids, the
// steps after it show the renumbered ones.
//
// The package holds no state of its own. Callers sharing a ListState across
// goroutines must serialise access (see pkg/session).
package linkedlist

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/pkg/domain"
)

// renumber builds a list whose ids follow position and whose next pointers
// form a single chain ending in nil.
func renumber(values []int) []domain.ListNode {
	nodes := make([]domain.ListNode, len(values))
	for i, v := range values {
		nodes[i] = domain.ListNode{ID: i, Value: v}
		if i < len(values)-1 {
			nodes[i].Next = domain.IntPtr(i + 1)
		}
	}
	return nodes
}

func values(nodes []domain.ListNode) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value
	}
	return out
}

// ensure lazily initialises an untouched session with the default values.
func ensure(s *domain.ListState) {
	if s.Initialized {
		return
	}
	s.Nodes = renumber(domain.DefaultListValues())
	s.Initialized = true
}

// commit stores the new list back into the session.
func commit(s *domain.ListState, vals []int) {
	s.Nodes = renumber(vals)
	s.Initialized = true
	s.Version++
}

// Describe renders a list as "[6] -> [1] -> null".
func Describe(nodes []domain.ListNode) string {
	if len(nodes) == 0 {
		return "(empty)"
	}
	parts := make([]string, 0, len(nodes)+1)
	for _, n := range nodes {
		parts = append(parts, fmt.Sprintf("[%d]", n.Value))
	}
	parts = append(parts, "null")
	return strings.Join(parts, " -> ")
}

// builder accumulates the steps of one operation.
type builder struct {
	steps []domain.Step
}

func (b *builder) emit(action domain.Action, desc string, nodes []domain.ListNode, current *int, highlight ...int) {
	if highlight == nil {
		highlight = []int{}
	}
	b.steps = append(b.steps, domain.Step{
		Kind:        domain.KindLinkedList,
		Action:      action,
		Description: desc,
		List: &domain.ListSnapshot{
			Nodes:     domain.CloneListNodes(nodes),
			CurrentID: current,
			Highlight: append([]int{}, highlight...),
		},
	})
}

// announce emits the current-state narration step.
func (b *builder) announce(nodes []domain.ListNode) {
	b.emit(domain.ActionState, "Current list: "+Describe(nodes), nodes, nil)
}

// walk emits one step per node from the head up to, but excluding, stop.
func (b *builder) walk(nodes []domain.ListNode, stop int, purpose string) {
	for i := 0; i < stop && i < len(nodes); i++ {
		b.emit(domain.ActionVisit, fmt.Sprintf("%s: at node [%d] (position %d)", purpose, nodes[i].Value, i), nodes, domain.IntPtr(i), i)
	}
}

func failure(desc string, nodes []domain.ListNode) []domain.Step {
	b := &builder{}
	b.emit(domain.ActionError, desc, nodes, nil)
	return b.steps
}
