package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Bubble generates the steps of bubble sort with early exit on a swap-free pass.
func Bubble(values []int) []domain.Step {
	const name = "Bubble sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	n := len(arr)
	r := newRecorder(n)
	r.emit(domain.ActionInit, fmt.Sprintf("Start bubble sort on %s", formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.emit(domain.ActionCompare, fmt.Sprintf("Compare %d and %d", arr[j], arr[j+1]), arr, j, j+1, nil)
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
				r.emit(domain.ActionSwap, fmt.Sprintf("%d > %d, swap them", arr[j+1], arr[j]), arr, j, j+1, nil)
			}
		}
		last := n - 1 - i
		r.markSorted(last)
		r.emit(domain.ActionSorted, fmt.Sprintf("%d has bubbled up to position %d", arr[last], last), arr, last, domain.NoIndex, nil)
		if !swapped {
			r.markAll()
			r.emit(domain.ActionSorted, "No swaps in this pass, the remaining elements are in order", arr, domain.NoIndex, domain.NoIndex, nil)
			break
		}
	}
	return r.complete(name, arr)
}
