package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/algoviz/pkg/domain"
)

// recorder accumulates steps for a single generation call.
// It owns the sorted-index set; every emitted step receives copies.
type recorder struct {
	steps  []domain.Step
	sorted []bool
}

func newRecorder(n int) *recorder {
	return &recorder{sorted: make([]bool, n)}
}

// emit appends a step built from the current array. mutate may decorate the
// payload; anything it attaches must already be owned by the step.
func (r *recorder) emit(action domain.Action, desc string, arr []int, i, j int, mutate func(*domain.ArrayState)) {
	state := &domain.ArrayState{
		Values:  slices.Clone(arr),
		Indices: [2]int{i, j},
		Sorted:  r.sortedIndices(),
	}
	if mutate != nil {
		mutate(state)
	}
	r.steps = append(r.steps, domain.Step{
		Kind:        domain.KindArray,
		Action:      action,
		Description: desc,
		Array:       state,
	})
}

func (r *recorder) markSorted(idx ...int) {
	for _, i := range idx {
		if i >= 0 && i < len(r.sorted) {
			r.sorted[i] = true
		}
	}
}

func (r *recorder) markAll() {
	for i := range r.sorted {
		r.sorted[i] = true
	}
}

func (r *recorder) sortedIndices() []int {
	out := []int{}
	for i, ok := range r.sorted {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// complete marks every index sorted and emits the closing step.
func (r *recorder) complete(name string, arr []int) []domain.Step {
	r.markAll()
	r.emit(domain.ActionComplete, fmt.Sprintf("%s complete: %s", name, formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)
	return r.steps
}

// trivial handles inputs that need no work: empty and single-element arrays.
// It returns nil when the input needs a real pass.
func trivial(name string, arr []int) []domain.Step {
	switch len(arr) {
	case 0:
		r := newRecorder(0)
		r.emit(domain.ActionComplete, fmt.Sprintf("%s: the array is empty, nothing to sort", name), arr, domain.NoIndex, domain.NoIndex, nil)
		return r.steps
	case 1:
		r := newRecorder(1)
		r.markAll()
		r.emit(domain.ActionComplete, fmt.Sprintf("%s: a single element [%d] is already sorted", name, arr[0]), arr, domain.NoIndex, domain.NoIndex, nil)
		return r.steps
	}
	return nil
}

func span(lo, hi int) func(*domain.ArrayState) {
	return func(s *domain.ArrayState) {
		s.Range = []int{lo, hi}
	}
}

func formatValues(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func minMax(v []int) (int, int) {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return lo, hi
}

// valueSpan returns hi-lo without overflowing for hi >= lo.
func valueSpan(lo, hi int) uint64 {
	return uint64(hi) - uint64(lo)
}
