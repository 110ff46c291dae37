package domain

import "math"

// Defaults substituted when a request omits its data. Each call returns a fresh copy.

// DefaultSortArray is the array sorted when a request has none.
func DefaultSortArray() []int { return []int{64, 34, 25, 12, 22, 11, 90} }

// DefaultTreeValues are inserted into the tree when a request has none.
func DefaultTreeValues() []int { return []int{50, 30, 20, 40, 70, 60, 80} }

// DefaultListValues is the list a session starts from.
func DefaultListValues() []int { return []int{6, 1, 7, 4, 8} }

// DefaultStackPush are the values pushed by the stack demonstration.
func DefaultStackPush() []int { return []int{10, 20, 30, 40} }

const (
	// DefaultStackCapacity bounds the stack demonstration.
	DefaultStackCapacity = 8

	// DefaultMaxArrayLength bounds array inputs; step count grows quadratically.
	DefaultMaxArrayLength = 200
)

// Accepted range for input values.
const (
	MinValue = math.MinInt32
	MaxValue = math.MaxInt32
)
