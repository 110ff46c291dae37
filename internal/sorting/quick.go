package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Quick generates the steps of quick sort using the Lomuto partition scheme
// with the last element of each range as pivot.
func Quick(values []int) []domain.Step {
	const name = "Quick sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	r := newRecorder(len(arr))
	r.emit(domain.ActionInit, fmt.Sprintf("Start quick sort on %s", formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)
	quickSort(r, arr, 0, len(arr)-1)
	return r.complete(name, arr)
}

func quickSort(r *recorder, arr []int, lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		r.markSorted(lo)
		r.emit(domain.ActionSorted, fmt.Sprintf("Single element %d at position %d is in place", arr[lo], lo), arr, lo, domain.NoIndex, span(lo, hi))
		return
	}
	p := partition(r, arr, lo, hi)
	r.markSorted(p)
	r.emit(domain.ActionSorted, fmt.Sprintf("Pivot %d is in its final position %d", arr[p], p), arr, p, domain.NoIndex, span(lo, hi))
	quickSort(r, arr, lo, p-1)
	quickSort(r, arr, p+1, hi)
}

func partition(r *recorder, arr []int, lo, hi int) int {
	pivot := arr[hi]
	withPivot := func(s *domain.ArrayState) {
		s.Range = []int{lo, hi}
		s.Pivot = domain.IntPtr(hi)
	}
	r.emit(domain.ActionPivot, fmt.Sprintf("Partition [%d..%d] around pivot %d", lo, hi, pivot), arr, hi, domain.NoIndex, withPivot)

	i := lo - 1
	for j := lo; j < hi; j++ {
		r.emit(domain.ActionCompare, fmt.Sprintf("Compare %d with pivot %d", arr[j], pivot), arr, j, hi, withPivot)
		if arr[j] < pivot {
			i++
			if i != j {
				arr[i], arr[j] = arr[j], arr[i]
				r.emit(domain.ActionSwap, fmt.Sprintf("%d < %d, move it to the left side (swap positions %d and %d)", arr[i], pivot, i, j), arr, i, j, withPivot)
			}
		}
	}
	p := i + 1
	if p != hi {
		arr[p], arr[hi] = arr[hi], arr[p]
		r.emit(domain.ActionSwap, fmt.Sprintf("Place pivot %d at position %d", pivot, p), arr, p, hi, func(s *domain.ArrayState) {
			s.Range = []int{lo, hi}
			s.Pivot = domain.IntPtr(p)
		})
	}
	return p
}
