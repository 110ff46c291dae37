package sorting

import (
	"fmt"
	"slices"

	"github.com/aretw0/algoviz/pkg/domain"
)

const radixBase = 10

// Radix generates the steps of LSD radix sort in base 10. Every step of a
// digit pass carries the pass digit and a snapshot of the ten buckets.
// Negative inputs are shifted by -min before digits are extracted.
func Radix(values []int) []domain.Step {
	const name = "Radix sort"
	if steps := trivial(name, values); steps != nil {
		return steps
	}
	arr := slices.Clone(values)
	lo, hi := minMax(arr)
	// Keys are computed in uint64 so math.MinInt and math.MaxInt do not overflow.
	var offset uint64
	if lo < 0 {
		offset = -uint64(lo)
	}
	key := func(v int) uint64 { return uint64(v) + offset }
	maxKey := key(hi)
	r := newRecorder(len(arr))

	desc := fmt.Sprintf("Start radix sort on %s", formatValues(arr))
	if offset != 0 {
		desc += fmt.Sprintf(" (digits taken from value + %d)", offset)
	}
	r.emit(domain.ActionInit, desc, arr, domain.NoIndex, domain.NoIndex, nil)

	for digit, exp := 0, uint64(1); maxKey/exp > 0; digit++ {
		buckets := make([][]int, radixBase)
		for i := range buckets {
			buckets[i] = []int{}
		}
		pass := func(s *domain.ArrayState) {
			s.Radix = &domain.RadixState{
				Digit:    digit,
				Exponent: exp,
				Offset:   offset,
				Buckets:  domain.CloneBuckets(buckets),
			}
		}

		for i, v := range arr {
			d := int((key(v) / exp) % radixBase)
			buckets[d] = append(buckets[d], v)
			r.emit(domain.ActionDistribute, fmt.Sprintf("Digit %d of %d is %d: put it in bucket %d", digit, v, d, d), arr, i, domain.NoIndex, pass)
		}

		k := 0
		for b := range buckets {
			for len(buckets[b]) > 0 {
				arr[k] = buckets[b][0]
				buckets[b] = buckets[b][1:]
				r.emit(domain.ActionCollect, fmt.Sprintf("Collect %d from bucket %d into position %d", arr[k], b, k), arr, k, domain.NoIndex, pass)
				k++
			}
		}
		if exp > maxKey/radixBase {
			break
		}
		exp *= radixBase
	}
	return r.complete(name, arr)
}
