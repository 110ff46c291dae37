package tree

import (
	"fmt"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Generate builds a binary search tree from values and returns the steps of
// every insertion followed by preorder, inorder and postorder traversals.
// An empty input is replaced by domain.DefaultTreeValues.
func Generate(values []int) []domain.Step {
	var steps []domain.Step
	emit := func(action domain.Action, desc string, state *domain.TreeState) {
		steps = append(steps, domain.Step{
			Kind:        domain.KindBinaryTree,
			Action:      action,
			Description: desc,
			Tree:        state,
		})
	}

	if len(values) == 0 {
		values = domain.DefaultTreeValues()
		emit(domain.ActionInit, fmt.Sprintf("No values given, using the default values %v", values), &domain.TreeState{
			Highlight: []int{},
			Path:      []int{},
			Visited:   []int{},
		})
	}

	t := &Tree{}
	for _, v := range values {
		node, path := t.Insert(v)
		if node == nil {
			emit(domain.ActionSkip, fmt.Sprintf("%d is already in the tree, skipped", v), &domain.TreeState{
				Root:      t.Root.Clone(),
				Highlight: path,
				Path:      []int{},
				Visited:   []int{},
			})
			continue
		}
		emit(domain.ActionInsert, insertDescription(t, node, path), &domain.TreeState{
			Root:      t.Root.Clone(),
			CurrentID: domain.IntPtr(node.ID),
			Highlight: path,
			Path:      []int{},
			Visited:   []int{},
		})
	}

	traversals := []struct {
		kind  string
		title string
		order []*domain.TreeNode
	}{
		{domain.TraversalPreorder, "Preorder traversal (root, left, right)", t.PreOrder()},
		{domain.TraversalInorder, "Inorder traversal (left, root, right)", t.InOrder()},
		{domain.TraversalPostorder, "Postorder traversal (left, right, root)", t.PostOrder()},
	}
	for _, tr := range traversals {
		emit(domain.ActionTraverse, "Start "+tr.title, &domain.TreeState{
			Root:          t.Root.Clone(),
			Highlight:     []int{},
			Path:          []int{},
			Visited:       []int{},
			TraversalType: tr.kind,
		})
		path := []int{}
		visited := []int{}
		for _, n := range tr.order {
			path = append(path, n.ID)
			visited = append(visited, n.Value)
			emit(domain.ActionVisit, fmt.Sprintf("%s: visit %d", tr.kind, n.Value), &domain.TreeState{
				Root:          t.Root.Clone(),
				CurrentID:     domain.IntPtr(n.ID),
				Highlight:     []int{n.ID},
				Path:          append([]int{}, path...),
				Visited:       append([]int{}, visited...),
				TraversalType: tr.kind,
			})
		}
		emit(domain.ActionComplete, fmt.Sprintf("%s result: %s", tr.title, formatValues(tr.order)), &domain.TreeState{
			Root:          t.Root.Clone(),
			Highlight:     []int{},
			Path:          append([]int{}, path...),
			Visited:       append([]int{}, visited...),
			TraversalType: tr.kind,
		})
	}
	return steps
}

func insertDescription(t *Tree, node *domain.TreeNode, path []int) string {
	if len(path) < 2 {
		return fmt.Sprintf("Insert %d as the root", node.Value)
	}
	parent := t.Find(path[len(path)-2])
	side := "right"
	if node.Value < parent.Value {
		side = "left"
	}
	return fmt.Sprintf("Insert %d as the %s child of %d", node.Value, side, parent.Value)
}
