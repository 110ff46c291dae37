// Package stack generates the steps of a bounded stack demonstration:
// a sequence of pushes, two pops and a peek.
package stack

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Pops and peeks performed after the pushes.
const (
	demoPops  = 2
	demoPeeks = 1
)

// Stack is a bounded LIFO stack. Items are stored bottom first.
type Stack struct {
	items    []int
	capacity int
}

// New returns an empty stack holding at most capacity items.
func New(capacity int) *Stack {
	return &Stack{capacity: capacity}
}

// Push adds v on top. It reports false when the stack is full.
func (s *Stack) Push(v int) bool {
	if len(s.items) >= s.capacity {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Peek returns the top item without removing it.
func (s *Stack) Peek() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items.
func (s *Stack) Len() int { return len(s.items) }

func (s *Stack) state(changed *int, anim *domain.StackAnimation) *domain.StackState {
	items := slices.Clone(s.items)
	if items == nil {
		items = []int{}
	}
	return &domain.StackState{Items: items, Capacity: s.capacity, ChangedIndex: changed, Animation: anim}
}

// Generate runs the demonstration. Nil values selects the canned pushes
// (10, 20, 30, 40); a non-positive capacity selects the default of 8.
// Pushes beyond capacity are refused without a step.
func Generate(values []int, capacity int) []domain.Step {
	if values == nil {
		values = domain.DefaultStackPush()
	}
	if capacity <= 0 {
		capacity = domain.DefaultStackCapacity
	}

	s := New(capacity)
	steps := []domain.Step{{
		Kind:        domain.KindStack,
		Action:      domain.ActionInit,
		Description: fmt.Sprintf("Start with an empty stack of capacity %d", capacity),
		Stack:       s.state(nil, nil),
	}}
	emit := func(action domain.Action, desc string, changed int, anim *domain.StackAnimation) {
		steps = append(steps, domain.Step{
			Kind:        domain.KindStack,
			Action:      action,
			Description: desc,
			Stack:       s.state(domain.IntPtr(changed), anim),
		})
	}

	for _, v := range values {
		if !s.Push(v) {
			continue
		}
		top := s.Len() - 1
		emit(domain.ActionPush, fmt.Sprintf("Push %d onto the stack", v), top,
			&domain.StackAnimation{Type: domain.AnimationPush, Value: v, TargetIndex: domain.IntPtr(top)})
	}

	for range demoPops {
		from := s.Len() - 1
		v, ok := s.Pop()
		if !ok {
			break
		}
		emit(domain.ActionPop, fmt.Sprintf("Pop %d from the stack", v), from,
			&domain.StackAnimation{Type: domain.AnimationPop, Value: v, SourceIndex: domain.IntPtr(from)})
	}

	for range demoPeeks {
		v, ok := s.Peek()
		if !ok {
			break
		}
		top := s.Len() - 1
		emit(domain.ActionPeek, fmt.Sprintf("Peek: the top of the stack is %d", v), top,
			&domain.StackAnimation{Type: domain.AnimationHighlight, Value: v, Index: domain.IntPtr(top)})
	}

	steps = append(steps, domain.Step{
		Kind:        domain.KindStack,
		Action:      domain.ActionComplete,
		Description: fmt.Sprintf("Stack demonstration complete with %d item(s)", s.Len()),
		Stack:       s.state(nil, nil),
	})
	return steps
}
