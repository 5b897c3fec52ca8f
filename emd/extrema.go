package emd

import (
	"sort"

	"github.com/cwbudde/go-hht/internal/numutil"
)

// detectExtrema locates strict interior local minima/maxima and zero
// crossings of v (spec §4.1). For m < 3 both extrema vectors are empty;
// this is not an error here, it short-circuits callers.
func detectExtrema(v []float64) (indmin, indmax, indzer []int) {
	m := len(v)
	if m < 3 {
		return nil, nil, nil
	}

	for i := 1; i < m-1; i++ {
		if v[i-1] > v[i] && v[i] < v[i+1] {
			indmin = append(indmin, i)
		} else if v[i-1] < v[i] && v[i] > v[i+1] {
			indmax = append(indmax, i)
		}
	}

	var crossings []int
	for i := 0; i < m-1; i++ {
		if v[i]*v[i+1] < 0 {
			crossings = append(crossings, i)
		}
	}

	var zeroRuns []int
	for i := 0; i < m; {
		if v[i] == 0 {
			j := i
			for j < m && v[j] == 0 {
				j++
			}
			mid := numutil.RoundHalfToEven(float64(i+j-1) / 2)
			zeroRuns = append(zeroRuns, mid)
			i = j
		} else {
			i++
		}
	}

	indzer = mergeUniqueSorted(crossings, zeroRuns)
	return indmin, indmax, indzer
}

func mergeUniqueSorted(a, b []int) []int {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	all := make([]int, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	sort.Ints(all)
	out := all[:0:0]
	for i, v := range all {
		if i == 0 || v != all[i-1] {
			out = append(out, v)
		}
	}
	return out
}
