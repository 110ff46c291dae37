// Package tree implements the binary search tree step generator.
package tree

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Tree is a binary search tree whose nodes receive ids from a monotonic
// counter in insertion order. Equal values are dropped.
type Tree struct {
	Root   *domain.TreeNode
	nextID int
}

// Build inserts values in order into a new tree.
func Build(values []int) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds v and returns the new node together with the ids of the nodes
// walked from the root. It returns a nil node when v is already present.
func (t *Tree) Insert(v int) (*domain.TreeNode, []int) {
	var path []int
	if t.Root == nil {
		t.Root = t.newNode(v)
		return t.Root, []int{t.Root.ID}
	}
	cur := t.Root
	for {
		path = append(path, cur.ID)
		switch {
		case v < cur.Value:
			if cur.Left == nil {
				cur.Left = t.newNode(v)
				return cur.Left, append(path, cur.Left.ID)
			}
			cur = cur.Left
		case v > cur.Value:
			if cur.Right == nil {
				cur.Right = t.newNode(v)
				return cur.Right, append(path, cur.Right.ID)
			}
			cur = cur.Right
		default:
			return nil, path
		}
	}
}

func (t *Tree) newNode(v int) *domain.TreeNode {
	n := &domain.TreeNode{ID: t.nextID, Value: v}
	t.nextID++
	return n
}

// Find returns the node with the given id, or nil.
func (t *Tree) Find(id int) *domain.TreeNode {
	return find(t.Root, id)
}

func find(n *domain.TreeNode, id int) *domain.TreeNode {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	if l := find(n.Left, id); l != nil {
		return l
	}
	return find(n.Right, id)
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return t.nextID
}

// PreOrder visits root, left, right using an explicit stack.
// The right child is pushed first so the left subtree is processed first.
func (t *Tree) PreOrder() []*domain.TreeNode {
	var out []*domain.TreeNode
	if t.Root == nil {
		return out
	}
	stack := []*domain.TreeNode{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return out
}

// InOrder visits left, root, right using a stack and a current pointer.
func (t *Tree) InOrder() []*domain.TreeNode {
	var out []*domain.TreeNode
	var stack []*domain.TreeNode
	cur := t.Root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		cur = cur.Right
	}
	return out
}

// PostOrder visits left, right, root using two stacks.
func (t *Tree) PostOrder() []*domain.TreeNode {
	var out []*domain.TreeNode
	if t.Root == nil {
		return out
	}
	first := []*domain.TreeNode{t.Root}
	var second []*domain.TreeNode
	for len(first) > 0 {
		n := first[len(first)-1]
		first = first[:len(first)-1]
		second = append(second, n)
		if n.Left != nil {
			first = append(first, n.Left)
		}
		if n.Right != nil {
			first = append(first, n.Right)
		}
	}
	for i := len(second) - 1; i >= 0; i-- {
		out = append(out, second[i])
	}
	return out
}

func formatValues(nodes []*domain.TreeNode) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprint(n.Value)
	}
	return strings.Join(parts, " -> ")
}
