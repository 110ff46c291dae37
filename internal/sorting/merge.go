package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Merge generates the steps of top-down merge sort. Each write back into the
// working array is a move step; comparisons reference the original positions
// of the two candidates.
func Merge(values []int) []domain.Step {
	const name = "Merge sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	r := newRecorder(len(arr))
	r.emit(domain.ActionInit, fmt.Sprintf("Start merge sort on %s", formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)
	mergeSort(r, arr, 0, len(arr)-1)
	return r.complete(name, arr)
}

func mergeSort(r *recorder, arr []int, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(r, arr, lo, mid)
	mergeSort(r, arr, mid+1, hi)
	merge(r, arr, lo, mid, hi)
}

func merge(r *recorder, arr []int, lo, mid, hi int) {
	left := slices.Clone(arr[lo : mid+1])
	right := slices.Clone(arr[mid+1 : hi+1])
	within := span(lo, hi)
	r.emit(domain.ActionSelect, fmt.Sprintf("Merge %s and %s", formatValues(left), formatValues(right)), arr, lo, hi, within)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		r.emit(domain.ActionCompare, fmt.Sprintf("Compare %d and %d", left[i], right[j]), arr, lo+i, mid+1+j, within)
		if left[i] <= right[j] {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		r.emit(domain.ActionMove, fmt.Sprintf("Write %d to position %d", arr[k], k), arr, k, domain.NoIndex, within)
		k++
	}
	for ; i < len(left); i++ {
		arr[k] = left[i]
		r.emit(domain.ActionMove, fmt.Sprintf("Copy remaining %d to position %d", arr[k], k), arr, k, domain.NoIndex, within)
		k++
	}
	for ; j < len(right); j++ {
		arr[k] = right[j]
		r.emit(domain.ActionMove, fmt.Sprintf("Copy remaining %d to position %d", arr[k], k), arr, k, domain.NoIndex, within)
		k++
	}
}
