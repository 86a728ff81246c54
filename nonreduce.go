package nanops

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// PushUnlimited makes Push fill NaN runs of any length.
const PushUnlimited = math.MaxInt

// Partsort partially sorts along axis so that the n smallest values of each
// lane occupy its first n positions, in no particular order.
// n must be in [1, lane length].
func Partsort(a *Array, n int, axis Axis) (*Array, error) {
	return MapLanes(a, defaultLast(axis), func(dst, lane []float64) error {
		if err := checkPartN(n, len(lane)); err != nil {
			return err
		}
		selectK(lane, n-1)
		copy(dst, lane)
		return nil
	})
}

// Argpartsort returns the indices that would partially sort each lane as
// Partsort does.
func Argpartsort(a *Array, n int, axis Axis) (*Array, error) {
	var idx []int
	return MapLanes(a, defaultLast(axis), func(dst, lane []float64) error {
		if err := checkPartN(n, len(lane)); err != nil {
			return err
		}
		idx = identity(idx, len(lane))
		argselectK(lane, idx, n-1)
		for i, j := range idx {
			dst[i] = float64(j)
		}
		return nil
	})
}

// Rankdata returns 1-based ranks along axis, averaging ties. NaN values tie
// with each other above every number. With AxisNone the result is the ranks
// of the flattened array.
func Rankdata(a *Array, axis Axis) (*Array, error) {
	var idx []int
	return MapLanes(a, axis, func(dst, lane []float64) error {
		idx = rankLane(dst, lane, idx, false)
		return nil
	})
}

// Nanrankdata is Rankdata leaving NaN at NaN positions and ranking only the
// remaining values.
func Nanrankdata(a *Array, axis Axis) (*Array, error) {
	var idx []int
	return MapLanes(a, axis, func(dst, lane []float64) error {
		idx = rankLane(dst, lane, idx, true)
		return nil
	})
}

// Push fills each NaN along axis with the last preceding non-NaN value, if
// that value is at most n positions back. Use PushUnlimited for no limit.
func Push(a *Array, n int, axis Axis) (*Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: push limit %d must be non-negative", ErrN, n)
	}
	return MapLanes(a, defaultLast(axis), func(dst, lane []float64) error {
		last := -1
		var value float64
		for i, v := range lane {
			switch {
			case !math.IsNaN(v):
				last, value = i, v
				dst[i] = v
			case last >= 0 && i-last <= n:
				dst[i] = value
			default:
				dst[i] = v
			}
		}
		return nil
	})
}

// Replace overwrites, in place, every element equal to old with repl. old may
// be NaN.
func Replace(a *Array, old, repl float64) {
	data := a.data
	if math.IsNaN(old) {
		for i, v := range data {
			if math.IsNaN(v) {
				data[i] = repl
			}
		}
		return
	}
	for i, v := range data {
		if v == old {
			data[i] = repl
		}
	}
}

func defaultLast(axis Axis) Axis {
	if axis.IsNone() {
		return AxisLast
	}
	return axis
}

func checkPartN(n, length int) error {
	if n < 1 || n > length {
		return fmt.Errorf("%w: n %d must be in [1, %d]", ErrN, n, length)
	}
	return nil
}

func identity(idx []int, n int) []int {
	if cap(idx) < n {
		idx = make([]int, n)
	}
	idx = idx[:n]
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// rankLane writes average ranks of lane into dst and returns idx for reuse.
func rankLane(dst, lane []float64, idx []int, skipNaN bool) []int {
	idx = identity(idx, len(lane))
	// Numbers first, NaN last.
	numbers := 0
	for i, j := range idx {
		if !math.IsNaN(lane[j]) {
			idx[numbers], idx[i] = idx[i], idx[numbers]
			numbers++
		}
	}
	slices.SortFunc(idx[:numbers], func(x, y int) int {
		return cmp.Compare(lane[x], lane[y])
	})
	assignAverageRanks(dst, lane, idx[:numbers])
	if numbers < len(idx) {
		nanRank := math.NaN()
		if !skipNaN {
			nanRank = float64(numbers+1+len(idx)) / halfDivisor
		}
		for _, j := range idx[numbers:] {
			dst[j] = nanRank
		}
	}
	return idx
}

// assignAverageRanks gives each run of equal values in sorted order the
// average of the 1-based positions it spans.
func assignAverageRanks(dst, lane []float64, order []int) {
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && lane[order[end]] == lane[order[start]] {
			end++
		}
		rank := float64(start+1+end) / halfDivisor
		for _, j := range order[start:end] {
			dst[j] = rank
		}
		start = end
	}
}
