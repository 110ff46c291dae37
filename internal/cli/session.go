package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/internal/linkedlist"
	"github.com/jedib0t/go-pretty/v6/table"
)

// SessionList prints the stored sessions with their current list.
func SessionList(ctx context.Context, eng *algoviz.Engine, w io.Writer) error {
	ids, err := eng.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("error listing sessions: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "No active sessions found.")
		return nil
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Session", "Version", "Updated", "List"})
	for _, id := range ids {
		state, err := eng.Session(ctx, id)
		if err != nil {
			tbl.AppendRow(table.Row{id, "-", "-", "error: " + err.Error()})
			continue
		}
		updated := "-"
		if !state.UpdatedAt.IsZero() {
			updated = state.UpdatedAt.Format("2006-01-02 15:04:05")
		}
		tbl.AppendRow(table.Row{id, state.Version, updated, linkedlist.Describe(state.Nodes)})
	}
	tbl.Render()
	return nil
}

// SessionInspect prints a session's state as indented JSON.
func SessionInspect(ctx context.Context, eng *algoviz.Engine, sessionID string, w io.Writer) error {
	state, err := eng.Session(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("error loading session '%s': %w", sessionID, err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling state: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// SessionRemove deletes sessions, or every session when all is set.
func SessionRemove(ctx context.Context, eng *algoviz.Engine, ids []string, all bool, w io.Writer) error {
	if all {
		stored, err := eng.Sessions(ctx)
		if err != nil {
			return fmt.Errorf("error listing sessions: %w", err)
		}
		ids = stored
	}

	var failed []string
	for _, id := range ids {
		if err := eng.DeleteSession(ctx, id); err != nil {
			fmt.Fprintf(w, "Error removing '%s': %v\n", id, err)
			failed = append(failed, id)
			continue
		}
		fmt.Fprintf(w, "Removed session '%s'\n", id)
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to remove %s", strings.Join(failed, ", "))
	}
	return nil
}

// ListAction runs one linked list action on a session and prints the result.
func ListAction(ctx context.Context, eng *algoviz.Engine, sessionID, action string, data map[string]any, format string, w io.Writer) error {
	res, err := eng.LinkedListAction(ctx, sessionID, action, data)
	if err != nil {
		return err
	}
	if err := Render(w, res.Info.Title, res.Steps, format); err != nil {
		return err
	}
	if strings.ToLower(format) != FormatJSON {
		status := "ok"
		if !res.Info.Success {
			status = "failed"
		}
		printSystemMessage(w, "%s (%s, %s): %s", res.Info.Title, res.Info.Complexity, status, res.Info.Message)
	}
	return nil
}
