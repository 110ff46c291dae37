package linkedlist

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Init replaces the list. Without explicit values the default list is used;
// explicit values (possibly none) are taken as given.
func Init(s *domain.ListState, vals []int, explicit bool) []domain.Step {
	if !explicit {
		vals = domain.DefaultListValues()
	}
	commit(s, slices.Clone(vals))

	b := &builder{}
	b.emit(domain.ActionInit, fmt.Sprintf("Initialise the list with %d node(s)", len(s.Nodes)), s.Nodes, nil)
	b.announce(s.Nodes)
	return b.steps
}

// Reset restores the default list.
func Reset(s *domain.ListState) []domain.Step {
	commit(s, slices.Clone(domain.DefaultListValues()))

	b := &builder{}
	b.emit(domain.ActionInit, "Reset the list to its default values", s.Nodes, nil)
	b.announce(s.Nodes)
	return b.steps
}

// Search scans the list for v, one step per visited node.
func Search(s *domain.ListState, v int) []domain.Step {
	ensure(s)
	nodes := s.Nodes
	if len(nodes) == 0 {
		return failure(fmt.Sprintf("The list is empty, %d cannot be found", v), nodes)
	}

	b := &builder{}
	b.announce(nodes)
	for i, n := range nodes {
		b.emit(domain.ActionSearch, fmt.Sprintf("Compare node [%d] at position %d with %d", n.Value, i, v), nodes, domain.IntPtr(i), i)
		if n.Value == v {
			b.emit(domain.ActionFound, fmt.Sprintf("Found %d at position %d", v, i), nodes, domain.IntPtr(i), i)
			return b.steps
		}
	}
	b.emit(domain.ActionNotFound, fmt.Sprintf("%d is not in the list", v), nodes, nil)
	return b.steps
}

// InsertHead links a new node before the head.
func InsertHead(s *domain.ListState, v int) []domain.Step {
	ensure(s)
	before := domain.CloneListNodes(s.Nodes)

	b := &builder{}
	b.announce(before)
	desc := fmt.Sprintf("Create node [%d] and make it the new head", v)
	if len(before) > 0 {
		desc = fmt.Sprintf("Create node [%d] and link it before the head [%d]", v, before[0].Value)
	}
	commit(s, append([]int{v}, values(before)...))
	b.emit(domain.ActionInsert, desc, s.Nodes, domain.IntPtr(0), 0)
	b.announce(s.Nodes)
	return b.steps
}

// InsertTail walks to the last node and links a new node after it.
func InsertTail(s *domain.ListState, v int) []domain.Step {
	ensure(s)
	before := domain.CloneListNodes(s.Nodes)

	b := &builder{}
	b.announce(before)
	b.walk(before, len(before), "Walk to the tail")
	commit(s, append(values(before), v))
	last := len(s.Nodes) - 1
	b.emit(domain.ActionInsert, fmt.Sprintf("Link node [%d] after the tail, it is now at position %d", v, last), s.Nodes, domain.IntPtr(last), last)
	b.announce(s.Nodes)
	return b.steps
}

// InsertAt inserts v so that it ends up at position pos (0..len).
func InsertAt(s *domain.ListState, v, pos int) []domain.Step {
	ensure(s)
	before := domain.CloneListNodes(s.Nodes)
	if pos < 0 || pos > len(before) {
		return failure(fmt.Sprintf("Invalid position %d: expected 0 to %d", pos, len(before)), before)
	}

	b := &builder{}
	b.announce(before)
	b.walk(before, pos, fmt.Sprintf("Walk to position %d", pos))
	vals := values(before)
	commit(s, slices.Insert(vals, pos, v))
	b.emit(domain.ActionInsert, fmt.Sprintf("Insert node [%d] at position %d", v, pos), s.Nodes, domain.IntPtr(pos), pos)
	b.announce(s.Nodes)
	return b.steps
}

// RemoveHead unlinks the head node.
func RemoveHead(s *domain.ListState) []domain.Step {
	ensure(s)
	before := domain.CloneListNodes(s.Nodes)
	if len(before) == 0 {
		return failure("The list is empty, there is no head to remove", before)
	}

	b := &builder{}
	b.announce(before)
	b.emit(domain.ActionRemove, fmt.Sprintf("Unlink the head [%d]", before[0].Value), before, domain.IntPtr(0), 0)
	commit(s, values(before)[1:])
	b.emit(domain.ActionRemove, removedDescription(before[0].Value, s.Nodes), s.Nodes, nil)
	b.announce(s.Nodes)
	return b.steps
}

// RemoveTail walks to the node before the tail and unlinks the tail.
func RemoveTail(s *domain.ListState) []domain.Step {
	ensure(s)
	before := domain.CloneListNodes(s.Nodes)
	if len(before) == 0 {
		return failure("The list is empty, there is no tail to remove", before)
	}

	last := len(before) - 1
	b := &builder{}
	b.announce(before)
	b.walk(before, last, "Walk to the tail")
	b.emit(domain.ActionRemove, fmt.Sprintf("Unlink the tail [%d]", before[last].Value), before, domain.IntPtr(last), last)
	commit(s, values(before)[:last])
	b.emit(domain.ActionRemove, removedDescription(before[last].Value, s.Nodes), s.Nodes, nil)
	b.announce(s.Nodes)
	return b.steps
}

// RemoveAt unlinks the node at position pos (0..len-1).
func RemoveAt(s *domain.ListState, pos int) []domain.Step {
	ensure(s)
	before := domain.CloneListNodes(s.Nodes)
	if len(before) == 0 {
		return failure("The list is empty, there is nothing to remove", before)
	}
	if pos < 0 || pos >= len(before) {
		return failure(fmt.Sprintf("Invalid position %d: expected 0 to %d", pos, len(before)-1), before)
	}

	b := &builder{}
	b.announce(before)
	b.walk(before, pos, fmt.Sprintf("Walk to position %d", pos))
	b.emit(domain.ActionRemove, fmt.Sprintf("Unlink node [%d] at position %d", before[pos].Value, pos), before, domain.IntPtr(pos), pos)
	commit(s, slices.Delete(values(before), pos, pos+1))
	b.emit(domain.ActionRemove, removedDescription(before[pos].Value, s.Nodes), s.Nodes, nil)
	b.announce(s.Nodes)
	return b.steps
}

func removedDescription(v int, after []domain.ListNode) string {
	return fmt.Sprintf("Removed [%d]; the remaining %d node(s) are renumbered", v, len(after))
}
