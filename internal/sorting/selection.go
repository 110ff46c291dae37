package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Selection generates the steps of selection sort.
func Selection(values []int) []domain.Step {
	const name = "Selection sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	n := len(arr)
	r := newRecorder(n)
	r.emit(domain.ActionInit, fmt.Sprintf("Start selection sort on %s", formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			desc := fmt.Sprintf("Compare current minimum %d with %d", arr[minIdx], arr[j])
			if arr[j] < arr[minIdx] {
				desc += fmt.Sprintf(", %d is the new minimum", arr[j])
			}
			r.emit(domain.ActionCompare, desc, arr, minIdx, j, nil)
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
			r.emit(domain.ActionSwap, fmt.Sprintf("Swap minimum %d into position %d", arr[i], i), arr, i, minIdx, nil)
		}
		r.markSorted(i)
		r.emit(domain.ActionSorted, fmt.Sprintf("%d is fixed at position %d", arr[i], i), arr, i, domain.NoIndex, nil)
	}
	return r.complete(name, arr)
}
