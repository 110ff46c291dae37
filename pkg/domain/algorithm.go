package domain

// AlgorithmID identifies a step generator.
type AlgorithmID string

const (
	AlgorithmBubbleSort    AlgorithmID = "bubbleSort"
	AlgorithmSelectionSort AlgorithmID = "selectionSort"
	AlgorithmInsertionSort AlgorithmID = "insertionSort"
	AlgorithmQuickSort     AlgorithmID = "quickSort"
	AlgorithmHeapSort      AlgorithmID = "heapSort"
	AlgorithmMergeSort     AlgorithmID = "mergeSort"
	AlgorithmRadixSort     AlgorithmID = "radixSort"
	AlgorithmBucketSort    AlgorithmID = "bucketSort"
	AlgorithmCountingSort  AlgorithmID = "countingSort"
	AlgorithmLinkedList    AlgorithmID = "linkedList"
	AlgorithmBinaryTree    AlgorithmID = "binaryTree"
	AlgorithmStack         AlgorithmID = "stack"
)

// Algorithms is the closed set of supported identifiers, in display order.
var Algorithms = []AlgorithmID{
	AlgorithmBubbleSort,
	AlgorithmSelectionSort,
	AlgorithmInsertionSort,
	AlgorithmQuickSort,
	AlgorithmHeapSort,
	AlgorithmMergeSort,
	AlgorithmRadixSort,
	AlgorithmBucketSort,
	AlgorithmCountingSort,
	AlgorithmLinkedList,
	AlgorithmBinaryTree,
	AlgorithmStack,
}

// Known reports whether id belongs to the supported set.
func (id AlgorithmID) Known() bool {
	for _, a := range Algorithms {
		if a == id {
			return true
		}
	}
	return false
}

// IsSort reports whether id names an array sorting algorithm.
func (id AlgorithmID) IsSort() bool {
	switch id {
	case AlgorithmBubbleSort, AlgorithmSelectionSort, AlgorithmInsertionSort,
		AlgorithmQuickSort, AlgorithmHeapSort, AlgorithmMergeSort,
		AlgorithmRadixSort, AlgorithmBucketSort, AlgorithmCountingSort:
		return true
	}
	return false
}
