package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Heap generates the steps of heap sort: max-heap construction followed by
// repeated extraction of the root into the growing sorted suffix.
func Heap(values []int) []domain.Step {
	const name = "Heap sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	n := len(arr)
	r := newRecorder(n)
	r.emit(domain.ActionInit, fmt.Sprintf("Build a max heap from %s", formatValues(arr)), arr, domain.NoIndex, domain.NoIndex, nil)

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(r, arr, n, i)
	}

	for end := n - 1; end > 0; end-- {
		arr[0], arr[end] = arr[end], arr[0]
		r.markSorted(end)
		r.emit(domain.ActionSwap, fmt.Sprintf("Move heap maximum %d to position %d", arr[end], end), arr, 0, end, span(0, end))
		siftDown(r, arr, end, 0)
	}
	return r.complete(name, arr)
}

// siftDown restores the max-heap property below i for a heap of size n.
func siftDown(r *recorder, arr []int, n, i int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		heap := span(0, n-1)
		if left < n {
			r.emit(domain.ActionCompare, fmt.Sprintf("Compare %d with left child %d", arr[largest], arr[left]), arr, largest, left, heap)
			if arr[left] > arr[largest] {
				largest = left
			}
		}
		if right < n {
			r.emit(domain.ActionCompare, fmt.Sprintf("Compare %d with right child %d", arr[largest], arr[right]), arr, largest, right, heap)
			if arr[right] > arr[largest] {
				largest = right
			}
		}
		if largest == i {
			return
		}
		arr[i], arr[largest] = arr[largest], arr[i]
		r.emit(domain.ActionSwap, fmt.Sprintf("Swap %d down below %d", arr[largest], arr[i]), arr, i, largest, heap)
		i = largest
	}
}
