// Package graph renders tree and linked list steps as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Overlay marks nodes to style on top of the structure.
type Overlay struct {
	Visited []int
	Current *int
}

// Mermaid renders the structure of a tree or linked list step.
// It reports false for array and stack steps, which have no graph shape.
func Mermaid(step domain.Step) (string, bool) {
	switch {
	case step.Tree != nil:
		return TreeMermaid(step.Tree.Root, &Overlay{Visited: step.Tree.Highlight, Current: step.Tree.CurrentID}), true
	case step.List != nil:
		return ListMermaid(step.List.Nodes, &Overlay{Visited: step.List.Highlight, Current: step.List.CurrentID}), true
	}
	return "", false
}

// TreeMermaid renders a binary tree top-down. Missing children of an
// internal node become invisible placeholders so left and right stay apart.
func TreeMermaid(root *domain.TreeNode, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		sb.WriteString("    empty((\"empty\"))\n")
		return sb.String()
	}

	var placeholders []string
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		fmt.Fprintf(&sb, "    %s((\"%d\"))\n", nodeID(n.ID), n.Value)
		if n.Left == nil && n.Right == nil {
			return
		}
		for side, child := range [2]*domain.TreeNode{n.Left, n.Right} {
			if child == nil {
				ph := fmt.Sprintf("nil%d_%d", n.ID, side)
				placeholders = append(placeholders, ph)
				fmt.Fprintf(&sb, "    %s --> %s[ ]\n", nodeID(n.ID), ph)
				continue
			}
			fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(n.ID), nodeID(child.ID))
			walk(child)
		}
	}
	walk(root)

	if len(placeholders) > 0 {
		sb.WriteString("    classDef hidden display:none;\n")
		for _, ph := range placeholders {
			fmt.Fprintf(&sb, "    class %s hidden;\n", ph)
		}
	}
	writeOverlay(&sb, overlay)
	return sb.String()
}

// ListMermaid renders a singly linked list left to right, ending in null.
func ListMermaid(nodes []domain.ListNode, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, n := range nodes {
		fmt.Fprintf(&sb, "    %s[\"%d\"]\n", nodeID(n.ID), n.Value)
	}
	sb.WriteString("    null((\"null\"))\n")
	for _, n := range nodes {
		to := "null"
		if n.Next != nil {
			to = nodeID(*n.Next)
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(n.ID), to)
	}
	if len(nodes) == 0 {
		sb.WriteString("    head([\"head\"]) --> null\n")
	}
	writeOverlay(&sb, overlay)
	return sb.String()
}

func writeOverlay(sb *strings.Builder, overlay *Overlay) {
	if overlay == nil || (len(overlay.Visited) == 0 && overlay.Current == nil) {
		return
	}
	sb.WriteString("\n    %% Overlay Styles\n")
	// Black text keeps contrast on both light and dark themes.
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	seen := make(map[int]bool)
	for _, id := range overlay.Visited {
		if seen[id] || (overlay.Current != nil && *overlay.Current == id) {
			continue
		}
		seen[id] = true
		fmt.Fprintf(sb, "    class %s visited;\n", nodeID(id))
	}
	if overlay.Current != nil {
		fmt.Fprintf(sb, "    class %s current;\n", nodeID(*overlay.Current))
	}
}

func nodeID(id int) string {
	return fmt.Sprintf("n%d", id)
}
