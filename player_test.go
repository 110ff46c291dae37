package algoviz_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Headless(t *testing.T) {
	steps := stack.Generate(nil, 0)
	var out bytes.Buffer

	p := algoviz.NewPlayer()
	p.Output = &out
	p.Headless = true
	require.NoError(t, p.Play(steps))

	assert.Contains(t, out.String(), "### Step 1/9: init")
	assert.Contains(t, out.String(), "### Step 9/9: complete")
	assert.NotContains(t, out.String(), "[q] quit")
}

func TestPlayer_Navigation(t *testing.T) {
	steps := stack.Generate(nil, 0)
	var out bytes.Buffer

	p := &algoviz.Player{
		Input:  strings.NewReader("n\nb\n8\nq\n"),
		Output: &out,
	}
	require.NoError(t, p.Play(steps))

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "### Step 1/9"), "back returns to the first step")
	assert.Equal(t, 1, strings.Count(got, "### Step 2/9"))
	assert.Contains(t, got, "### Step 8/9: peek")
	assert.Contains(t, got, "Bye!")
}

func TestPlayer_EndOfSteps(t *testing.T) {
	steps := stack.Generate([]int{}, 0)
	var out bytes.Buffer

	p := &algoviz.Player{Input: strings.NewReader("\n\n\n"), Output: &out}
	require.NoError(t, p.Play(steps))
	assert.Contains(t, out.String(), "End of steps.")
}

func TestPlayer_EOFExits(t *testing.T) {
	steps := stack.Generate(nil, 0)
	var out bytes.Buffer

	p := &algoviz.Player{Input: strings.NewReader(""), Output: &out}
	require.NoError(t, p.Play(steps))
	assert.Contains(t, out.String(), "### Step 1/9")
	assert.NotContains(t, out.String(), "### Step 2/9")
}

func TestPlayer_UnknownCommand(t *testing.T) {
	steps := stack.Generate(nil, 0)
	var out bytes.Buffer

	p := &algoviz.Player{Input: strings.NewReader("42\nq\n"), Output: &out}
	require.NoError(t, p.Play(steps))
	assert.Contains(t, out.String(), `Unknown command "42"`)
}

func TestPlayer_Renderer(t *testing.T) {
	steps := stack.Generate([]int{}, 0)
	var out bytes.Buffer

	p := &algoviz.Player{
		Output:   &out,
		Headless: true,
		Renderer: func(s string) (string, error) {
			return strings.ToUpper(s), nil
		},
	}
	require.NoError(t, p.Play(steps))
	assert.Contains(t, out.String(), "### STEP 1/2: INIT")
}

func TestPlayer_RequiresIO(t *testing.T) {
	p := algoviz.NewPlayer()
	assert.Error(t, p.Play(stack.Generate(nil, 0)))

	p.Output = &bytes.Buffer{}
	assert.Error(t, p.Play(stack.Generate(nil, 0)), "interactive mode needs an input")

	assert.NoError(t, p.Play(nil))
}
