package domain

// NoIndex is the sentinel used in index pairs when a slot is not applicable.
const NoIndex = -1

// ArrayState is the payload of sorting steps.
type ArrayState struct {
	// Values is the working array at this step.
	Values []int `json:"values"`
	// Indices holds the pair being compared, swapped or written (NoIndex when unused).
	Indices [2]int `json:"indices"`
	// Sorted lists, ascending, the indices known to be in their final position.
	Sorted []int `json:"sorted"`
	// Range is the [lo, hi] span the algorithm is working on, when it has one.
	Range []int `json:"range,omitempty"`
	Pivot *int  `json:"pivot,omitempty"`
	// Held is the value lifted out of the array (insertion sort key).
	Held *int `json:"held,omitempty"`

	Counting *CountingState `json:"counting,omitempty"`
	Radix    *RadixState    `json:"radix,omitempty"`
	Bucket   *BucketState   `json:"bucket,omitempty"`
}

// Counting sort phases. The order is part of the rendering contract.
const (
	PhaseInit         = "init"
	PhaseCounting     = "counting"
	PhaseAccumulation = "accumulation"
	PhasePlacing      = "placing"
	PhaseComplete     = "complete"
)

// CountingState carries the frequency table of counting sort.
type CountingState struct {
	Phase  string `json:"phase"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
	Counts []int  `json:"counts"`
	// Output is the output array being filled; Placed lists its filled slots.
	Output []int `json:"output"`
	Placed []int `json:"placed"`
}

// RadixState exposes the digit pass of radix sort.
type RadixState struct {
	// Digit is the zero-based decimal position (0 = units).
	Digit    int    `json:"digit"`
	Exponent uint64 `json:"exponent"`
	// Offset is added to every value before digit extraction (non-zero with negatives).
	Offset  uint64  `json:"offset"`
	Buckets [][]int `json:"buckets"`
}

// BucketState exposes the buckets of bucket sort.
type BucketState struct {
	Buckets [][]int `json:"buckets"`
	Active  int     `json:"active"`
	// Pair is the pair of positions inside the active bucket (NoIndex when unused).
	Pair [2]int `json:"pair"`
}

// Clone returns a deep copy of the array state.
func (a *ArrayState) Clone() *ArrayState {
	if a == nil {
		return nil
	}
	out := *a
	out.Values = cloneInts(a.Values)
	out.Sorted = cloneInts(a.Sorted)
	out.Range = cloneInts(a.Range)
	out.Pivot = cloneIntPtr(a.Pivot)
	out.Held = cloneIntPtr(a.Held)
	if a.Counting != nil {
		c := *a.Counting
		c.Counts = cloneInts(a.Counting.Counts)
		c.Output = cloneInts(a.Counting.Output)
		c.Placed = cloneInts(a.Counting.Placed)
		out.Counting = &c
	}
	if a.Radix != nil {
		r := *a.Radix
		r.Buckets = cloneBuckets(a.Radix.Buckets)
		out.Radix = &r
	}
	if a.Bucket != nil {
		b := *a.Bucket
		b.Buckets = cloneBuckets(a.Bucket.Buckets)
		out.Bucket = &b
	}
	return &out
}

func cloneBuckets(b [][]int) [][]int {
	if b == nil {
		return nil
	}
	out := make([][]int, len(b))
	for i, bucket := range b {
		out[i] = cloneInts(bucket)
		if out[i] == nil {
			out[i] = []int{}
		}
	}
	return out
}

// CloneBuckets deep-copies a bucket table, normalising nil buckets to empty ones.
func CloneBuckets(b [][]int) [][]int {
	return cloneBuckets(b)
}
