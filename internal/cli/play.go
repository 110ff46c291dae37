package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/internal/presentation/tui"
)

// PlayOptions configures the interactive player.
type PlayOptions struct {
	RunOptions
	Headless bool
	Quiet    bool
}

// Play generates the requested steps and replays them one by one.
// Input and output default to the process's stdin and stdout.
func Play(ctx context.Context, gen Generator, opts PlayOptions, in io.Reader, out io.Writer) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	results, err := Collect(ctx, gen, opts.RunOptions)
	if err != nil {
		return err
	}

	interactive := !opts.Headless && isTerminal(out)
	if interactive && !opts.Quiet {
		tui.PrintBanner(out)
	}

	for _, r := range results {
		if !opts.Quiet {
			printSystemMessage(out, "%s: %d steps", r.Run.Label(), len(r.Steps))
		}
		p := &algoviz.Player{
			Input:    in,
			Output:   out,
			Headless: opts.Headless,
		}
		if interactive {
			p.Renderer = tui.NewRenderer()
		}
		if err := p.Play(r.Steps); err != nil {
			return fmt.Errorf("error playing %s: %w", r.Run.Label(), err)
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
