// Package scenario reads scripted runs of the generators from YAML or JSON files.
//
//	name: list demo
//	session: demo
//	runs:
//	  - algorithm: linkedList
//	    data: {operation: insertHead, value: 3}
//	  - algorithm: bubbleSort
//	    data: {array: [5, 1, 4]}
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/algoviz/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyScenario is returned when a scenario has no runs.
var ErrEmptyScenario = errors.New("scenario has no runs")

// Scenario is an ordered list of generator runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Session, when set, is the session linked list runs operate on.
	// Without it every linked list run starts from a scratch list.
	Session string `yaml:"session,omitempty"`
	Runs    []Run  `yaml:"runs"`
}

// Run is a single generator invocation.
type Run struct {
	Title     string             `yaml:"title,omitempty"`
	Algorithm domain.AlgorithmID `yaml:"algorithm"`
	Data      map[string]any     `yaml:"data,omitempty"`
}

// Label names the run for display.
func (r Run) Label() string {
	if r.Title != "" {
		return r.Title
	}
	if op, ok := r.Data["operation"].(string); ok && op != "" {
		return fmt.Sprintf("%s %s", r.Algorithm, op)
	}
	return string(r.Algorithm)
}

// Parse decodes a scenario. JSON documents are accepted as YAML.
func Parse(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate checks that every run names a supported algorithm.
func (s *Scenario) Validate() error {
	if len(s.Runs) == 0 {
		return ErrEmptyScenario
	}
	for i, r := range s.Runs {
		if !r.Algorithm.Known() {
			return fmt.Errorf("run %d: %w: %q", i+1, domain.ErrUnsupportedAlgorithm, r.Algorithm)
		}
	}
	return nil
}

// Generator is the engine surface a scenario needs.
type Generator interface {
	Generate(ctx context.Context, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error)
	GenerateSession(ctx context.Context, sessionID string, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error)
}

// Result pairs a run with the steps it produced.
type Result struct {
	Run   Run
	Steps []domain.Step
}

// Execute performs the runs in order and stops at the first error.
func (s *Scenario) Execute(ctx context.Context, gen Generator) ([]Result, error) {
	results := make([]Result, 0, len(s.Runs))
	for i, r := range s.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var (
			steps []domain.Step
			err   error
		)
		if s.Session != "" {
			steps, err = gen.GenerateSession(ctx, s.Session, r.Algorithm, r.Data)
		} else {
			steps, err = gen.Generate(ctx, r.Algorithm, r.Data)
		}
		if err != nil {
			return results, fmt.Errorf("run %d (%s): %w", i+1, r.Label(), err)
		}
		results = append(results, Result{Run: r, Steps: steps})
	}
	return results, nil
}
