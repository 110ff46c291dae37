package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Insertion generates the steps of insertion sort. The lifted key travels in
// ArrayState.Held while larger elements shift right.
func Insertion(values []int) []domain.Step {
	const name = "Insertion sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	n := len(arr)
	r := newRecorder(n)
	r.emit(domain.ActionInit, fmt.Sprintf("Start insertion sort on %s", formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)

	for i := 1; i < n; i++ {
		key := arr[i]
		held := func(s *domain.ArrayState) { s.Held = domain.IntPtr(key) }
		r.emit(domain.ActionSelect, fmt.Sprintf("Take %d from position %d", key, i), arr, i, domain.NoIndex, held)

		j := i - 1
		for j >= 0 {
			r.emit(domain.ActionCompare, fmt.Sprintf("Compare %d with %d", arr[j], key), arr, j, j+1, held)
			if arr[j] <= key {
				break
			}
			arr[j+1] = arr[j]
			r.emit(domain.ActionMove, fmt.Sprintf("%d > %d, shift it right to position %d", arr[j+1], key, j+1), arr, j, j+1, held)
			j--
		}
		arr[j+1] = key
		r.emit(domain.ActionMove, fmt.Sprintf("Insert %d at position %d", key, j+1), arr, j+1, domain.NoIndex, nil)
	}
	return r.complete(name, arr)
}
