package algoviz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/algoviz/internal/presentation"
	"github.com/aretw0/algoviz/pkg/domain"
)

// Player replays a step sequence over an io.Reader/io.Writer pair.
// Every step is rendered from its own snapshot, so the player can move
// backwards or jump anywhere without replaying earlier steps.
type Player struct {
	Input  io.Reader
	Output io.Writer
	// Headless prints every step once and never reads input.
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer transforms a step's markdown before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewPlayer creates a Player. Input and Output must be set before Play.
func NewPlayer() *Player {
	return &Player{}
}

// Play runs the replay loop. Commands: enter or "n" advances, "b" goes back,
// a number jumps to that step, "q" quits. It returns at the end of the
// sequence, on quit, or on EOF.
func (p *Player) Play(steps []domain.Step) error {
	if p.Output == nil {
		return errors.New("output writer must be set (use os.Stdout)")
	}
	if len(steps) == 0 {
		fmt.Fprintln(p.Output, "No steps to play.")
		return nil
	}

	if p.Headless {
		for i := range steps {
			p.show(steps, i)
		}
		return nil
	}
	if p.Input == nil {
		return errors.New("input reader must be set (use os.Stdin)")
	}

	lines := bufio.NewReader(p.Input)
	i := 0
	for {
		p.show(steps, i)
		fmt.Fprint(p.Output, "[enter/n] next  [b] back  [#] jump  [q] quit > ")

		text, err := lines.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && text != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.Output)
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		cmd := strings.ToLower(strings.TrimSpace(text))
		switch cmd {
		case "q", "quit", "exit":
			fmt.Fprintln(p.Output, "Bye!")
			return nil
		case "b", "back", "p", "prev":
			if i > 0 {
				i--
			}
		case "", "n", "next":
			if i == len(steps)-1 {
				fmt.Fprintln(p.Output, "End of steps.")
				return nil
			}
			i++
		default:
			n, convErr := strconv.Atoi(cmd)
			if convErr != nil || n < 1 || n > len(steps) {
				fmt.Fprintf(p.Output, "Unknown command %q\n", cmd)
				continue
			}
			i = n - 1
		}
	}
}

func (p *Player) show(steps []domain.Step, i int) {
	output := presentation.Markdown(steps[i], i, len(steps))
	if p.Renderer != nil {
		if rendered, err := p.Renderer(output); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(p.Output, strings.TrimSpace(output))
}
