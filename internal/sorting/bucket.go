package sorting

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

// Bucket generates the steps of bucket sort with one bucket per element.
// Values are spread by linear interpolation over [min, max], each bucket is
// insertion sorted and the buckets are concatenated back into the array.
func Bucket(values []int) []domain.Step {
	const name = "Bucket sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	n := len(arr)
	lo, hi := minMax(arr)
	buckets := make([][]int, n)
	for i := range buckets {
		buckets[i] = []int{}
	}
	r := newRecorder(n)

	view := func(active, a, b int) func(*domain.ArrayState) {
		return func(s *domain.ArrayState) {
			s.Bucket = &domain.BucketState{
				Buckets: domain.CloneBuckets(buckets),
				Active:  active,
				Pair:    [2]int{a, b},
			}
		}
	}

	r.emit(domain.ActionInit, fmt.Sprintf("Create %d buckets for values in [%d, %d]", n, lo, hi), arr, domain.NoIndex, domain.NoIndex, view(domain.NoIndex, domain.NoIndex, domain.NoIndex))

	for i, v := range arr {
		b := bucketIndex(v, lo, hi, n)
		buckets[b] = append(buckets[b], v)
		r.emit(domain.ActionDistribute, fmt.Sprintf("Put %d into bucket %d", v, b), arr, i, domain.NoIndex, view(b, len(buckets[b])-1, domain.NoIndex))
	}

	for b := range buckets {
		bucket := buckets[b]
		for i := 1; i < len(bucket); i++ {
			key := bucket[i]
			j := i - 1
			for j >= 0 {
				r.emit(domain.ActionCompare, fmt.Sprintf("Bucket %d: compare %d with %d", b, bucket[j], key), arr, domain.NoIndex, domain.NoIndex, view(b, j, j+1))
				if bucket[j] <= key {
					break
				}
				bucket[j+1] = bucket[j]
				bucket[j] = key
				r.emit(domain.ActionMove, fmt.Sprintf("Bucket %d: move %d before %d", b, key, bucket[j+1]), arr, domain.NoIndex, domain.NoIndex, view(b, j, j+1))
				j--
			}
		}
	}

	k := 0
	for b, bucket := range buckets {
		for _, v := range bucket {
			arr[k] = v
			r.emit(domain.ActionCollect, fmt.Sprintf("Collect %d from bucket %d into position %d", v, b, k), arr, k, domain.NoIndex, view(b, domain.NoIndex, domain.NoIndex))
			k++
		}
	}
	return r.complete(name, arr)
}

// bucketIndex interpolates v into [0, n-1] using 128-bit intermediates.
func bucketIndex(v, lo, hi, n int) int {
	if hi == lo {
		return 0
	}
	prodHi, prodLo := bits.Mul64(valueSpan(lo, v), uint64(n-1))
	q, _ := bits.Div64(prodHi, prodLo, valueSpan(lo, hi))
	return int(q)
}
