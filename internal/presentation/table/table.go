// Package table prints step sequences as terminal tables.
package table

import (
	"fmt"
	"io"

	"github.com/aretw0/algoviz/internal/presentation"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Steps writes one row per step: index, action, description and state.
func Steps(w io.Writer, title string, steps []domain.Step) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	if title != "" {
		tbl.SetTitle(title)
	}
	tbl.AppendHeader(table.Row{"#", "Action", "Description", "State"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, WidthMax: 60},
	})
	for i, s := range steps {
		tbl.AppendRow(table.Row{i + 1, string(s.Action), s.Description, presentation.State(s)})
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("Total: %d steps", len(steps)), ""})
	tbl.Render()
}

// Algorithms writes the supported algorithm ids with their step kind.
func Algorithms(w io.Writer, ids []domain.AlgorithmID) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Algorithm", "Kind", "Input"})
	for _, id := range ids {
		kind, input := describe(id)
		tbl.AppendRow(table.Row{string(id), string(kind), input})
	}
	tbl.Render()
}

func describe(id domain.AlgorithmID) (domain.Kind, string) {
	switch {
	case id.IsSort():
		return domain.KindArray, "array"
	case id == domain.AlgorithmBinaryTree:
		return domain.KindBinaryTree, "values"
	case id == domain.AlgorithmLinkedList:
		return domain.KindLinkedList, "operation, value, position"
	default:
		return domain.KindStack, "values, capacity"
	}
}
