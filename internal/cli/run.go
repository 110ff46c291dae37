package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/algoviz/internal/presentation"
	"github.com/aretw0/algoviz/internal/presentation/graph"
	"github.com/aretw0/algoviz/internal/presentation/table"
	"github.com/aretw0/algoviz/internal/scenario"
	"github.com/aretw0/algoviz/pkg/domain"
)

// Output formats of the run command.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatMermaid  = "mermaid"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatJSON, FormatMarkdown, FormatMermaid}

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Algorithm string
	Data      map[string]any
	// Scenario, when set, replaces Algorithm and Data.
	Scenario  string
	SessionID string
	Format    string
}

// Generator is the engine surface used by the run command.
type Generator = scenario.Generator

// Run generates the requested steps and writes them to w in opts.Format.
func Run(ctx context.Context, gen Generator, opts RunOptions, w io.Writer) error {
	results, err := Collect(ctx, gen, opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := Render(w, r.Run.Label(), r.Steps, opts.Format); err != nil {
			return err
		}
	}
	return nil
}

// Collect runs either the scenario file or the single algorithm of opts.
func Collect(ctx context.Context, gen Generator, opts RunOptions) ([]scenario.Result, error) {
	sc := &scenario.Scenario{
		Session: opts.SessionID,
		Runs:    []scenario.Run{{Algorithm: domain.AlgorithmID(opts.Algorithm), Data: opts.Data}},
	}
	if opts.Scenario != "" {
		loaded, err := scenario.Load(opts.Scenario)
		if err != nil {
			return nil, err
		}
		sc = loaded
		if opts.SessionID != "" {
			sc.Session = opts.SessionID
		}
	}
	return sc.Execute(ctx, gen)
}

// Render writes steps in the given format.
func Render(w io.Writer, title string, steps []domain.Step, format string) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		table.Steps(w, title, steps)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"algorithm":  title,
			"steps":      steps,
			"totalSteps": len(steps),
		})
	case FormatMarkdown:
		fmt.Fprintf(w, "## %s\n\n", title)
		for i, s := range steps {
			fmt.Fprintln(w, presentation.Markdown(s, i, len(steps)))
		}
	case FormatMermaid:
		fmt.Fprintf(w, "## %s\n\n", title)
		drawn := 0
		for i, s := range steps {
			diagram, ok := graph.Mermaid(s)
			if !ok {
				continue
			}
			drawn++
			fmt.Fprintf(w, "### Step %d: %s\n\n%s\n\n```mermaid\n%s\n```\n\n", i+1, s.Action, s.Description, strings.TrimSpace(diagram))
		}
		if drawn == 0 {
			return fmt.Errorf("mermaid output is only available for tree and linked list steps")
		}
	default:
		return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}
