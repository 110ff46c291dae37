// Package sorting implements the step generators for the array sorting algorithms.
//
// Every generator copies its input on entry, walks the textbook algorithm and
// records one step per comparison and per swap or write, followed by a final
// step marking the whole array sorted. Output is deterministic.
package sorting
