// Package presentation formats steps for terminals.
package presentation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/algoviz/pkg/domain"
)

// State renders the payload of a step on one line.
//
// Arrays mark the active pair with brackets and sorted slots with '*'.
// Lists mark the current node with parentheses. Stacks read bottom to top.
func State(step domain.Step) string {
	switch {
	case step.Array != nil:
		return arrayState(step.Array)
	case step.Tree != nil:
		return treeState(step.Tree)
	case step.List != nil:
		return listState(step.List)
	case step.Stack != nil:
		return stackState(step.Stack)
	}
	return ""
}

func arrayState(a *domain.ArrayState) string {
	parts := make([]string, len(a.Values))
	for i, v := range a.Values {
		s := fmt.Sprint(v)
		if i == a.Indices[0] || i == a.Indices[1] {
			s = "[" + s + "]"
		}
		if slices.Contains(a.Sorted, i) {
			s += "*"
		}
		parts[i] = s
	}
	out := strings.Join(parts, " ")

	var extra []string
	if len(a.Range) == 2 {
		extra = append(extra, fmt.Sprintf("range %d..%d", a.Range[0], a.Range[1]))
	}
	if a.Pivot != nil {
		extra = append(extra, fmt.Sprintf("pivot %d", *a.Pivot))
	}
	if a.Held != nil {
		extra = append(extra, fmt.Sprintf("key %d", *a.Held))
	}
	if c := a.Counting; c != nil {
		extra = append(extra, fmt.Sprintf("%s counts %v", c.Phase, c.Counts))
	}
	if r := a.Radix; r != nil {
		extra = append(extra, fmt.Sprintf("digit %d buckets %v", r.Digit, r.Buckets))
	}
	if b := a.Bucket; b != nil {
		extra = append(extra, fmt.Sprintf("buckets %v", b.Buckets))
	}
	if len(extra) > 0 {
		out += "  (" + strings.Join(extra, ", ") + ")"
	}
	return out
}

func treeState(t *domain.TreeState) string {
	var inorder []string
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		s := fmt.Sprint(n.Value)
		if t.CurrentID != nil && *t.CurrentID == n.ID {
			s = "(" + s + ")"
		}
		inorder = append(inorder, s)
		walk(n.Right)
	}
	walk(t.Root)

	out := "tree " + strings.Join(inorder, " ")
	if len(inorder) == 0 {
		out = "tree (empty)"
	}
	if t.TraversalType != "" {
		out += fmt.Sprintf("  %s %v", t.TraversalType, t.Visited)
	}
	return out
}

func listState(l *domain.ListSnapshot) string {
	parts := make([]string, 0, len(l.Nodes)+1)
	for _, n := range l.Nodes {
		s := fmt.Sprintf("[%d]", n.Value)
		if l.CurrentID != nil && *l.CurrentID == n.ID {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	parts = append(parts, "null")
	return strings.Join(parts, " -> ")
}

func stackState(s *domain.StackState) string {
	parts := make([]string, len(s.Items))
	for i, v := range s.Items {
		parts[i] = fmt.Sprint(v)
		if s.ChangedIndex != nil && *s.ChangedIndex == i {
			parts[i] = "(" + parts[i] + ")"
		}
	}
	return fmt.Sprintf("| %s | %d/%d", strings.Join(parts, " "), len(s.Items), s.Capacity)
}

// Markdown renders a step as a small markdown document for the player.
func Markdown(step domain.Step, index, total int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### Step %d/%d: %s\n\n", index+1, total, step.Action)
	sb.WriteString(step.Description)
	sb.WriteString("\n\n")
	if state := State(step); state != "" {
		fmt.Fprintf(&sb, "```\n%s\n```\n", state)
	}
	return sb.String()
}
