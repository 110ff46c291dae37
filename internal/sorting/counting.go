package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// MaxCountingRange bounds the size of the counting table.
const MaxCountingRange = 1 << 16

// CountingFits reports whether the value range of values fits a counting
// table of at most MaxCountingRange counters.
func CountingFits(values []int) bool {
	if len(values) == 0 {
		return true
	}
	lo, hi := minMax(values)
	return valueSpan(lo, hi) < MaxCountingRange
}

// Counting generates the steps of counting sort. The step sequence walks the
// phases init, counting, accumulation, placing and complete in that order; the
// renderer keys its visuals off CountingState.Phase. Values are indexed
// relative to the minimum so negative inputs are supported.
//
// Inputs whose value range exceeds MaxCountingRange produce a single error
// step; the registry rejects them before they reach the generator.
func Counting(values []int) []domain.Step {
	const name = "Counting sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	n := len(arr)
	lo, hi := minMax(arr)
	if valueSpan(lo, hi) >= MaxCountingRange {
		return []domain.Step{{
			Kind:        domain.KindArray,
			Action:      domain.ActionError,
			Description: fmt.Sprintf("%s: value range [%d, %d] is too wide for a counting table", name, lo, hi),
			Array: &domain.ArrayState{
				Values:  arr,
				Indices: [2]int{domain.NoIndex, domain.NoIndex},
				Sorted:  []int{},
			},
		}}
	}
	counts := make([]int, hi-lo+1)
	output := make([]int, n)
	placed := []int{}
	r := newRecorder(n)

	phase := func(p string) func(*domain.ArrayState) {
		return func(s *domain.ArrayState) {
			s.Counting = &domain.CountingState{
				Phase:  p,
				Min:    lo,
				Max:    hi,
				Counts: slices.Clone(counts),
				Output: slices.Clone(output),
				Placed: slices.Clone(placed),
			}
		}
	}

	r.emit(domain.ActionInit, fmt.Sprintf("Values range from %d to %d: create %d counters", lo, hi, len(counts)), arr, domain.NoIndex, domain.NoIndex, phase(domain.PhaseInit))

	for i, v := range arr {
		counts[v-lo]++
		r.emit(domain.ActionCounting, fmt.Sprintf("Count %d: count[%d] = %d", v, v-lo, counts[v-lo]), arr, i, domain.NoIndex, phase(domain.PhaseCounting))
	}

	for k := 1; k < len(counts); k++ {
		counts[k] += counts[k-1]
		r.emit(domain.ActionAccumulation, fmt.Sprintf("Prefix sum: count[%d] = %d", k, counts[k]), arr, domain.NoIndex, domain.NoIndex, phase(domain.PhaseAccumulation))
	}

	for i := n - 1; i >= 0; i-- {
		v := arr[i]
		counts[v-lo]--
		pos := counts[v-lo]
		output[pos] = v
		placed = append(placed, pos)
		slices.Sort(placed)
		r.emit(domain.ActionPlacing, fmt.Sprintf("Place %d at output position %d", v, pos), arr, i, pos, phase(domain.PhasePlacing))
	}

	copy(arr, output)
	r.markAll()
	r.emit(domain.ActionComplete, fmt.Sprintf("%s complete: %s", name, formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, phase(domain.PhaseComplete))
	return r.steps
}
