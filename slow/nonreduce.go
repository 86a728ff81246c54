package slow

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	nanops "github.com/tphakala/go-nanops"
)

// Partsort fully sorts each lane along axis, which satisfies the partial
// ordering nanops.Partsort guarantees.
func Partsort(a *nanops.Array, n int, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.MapLanes(a, lastIfNone(axis), func(dst, lane []float64) error {
		if err := checkN(n, len(lane)); err != nil {
			return err
		}
		sort.Float64s(lane)
		copy(dst, lane)
		return nil
	})
}

// Argpartsort returns the indices that fully sort each lane along axis.
func Argpartsort(a *nanops.Array, n int, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.MapLanes(a, lastIfNone(axis), func(dst, lane []float64) error {
		if err := checkN(n, len(lane)); err != nil {
			return err
		}
		inds := make([]int, len(lane))
		floats.Argsort(lane, inds)
		for i, j := range inds {
			dst[i] = float64(j)
		}
		return nil
	})
}

// Rankdata returns 1-based average ranks along axis with NaN tied last.
func Rankdata(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.MapLanes(a, axis, func(dst, lane []float64) error {
		rank(dst, lane, false)
		return nil
	})
}

// Nanrankdata returns 1-based average ranks along axis leaving NaN as NaN.
func Nanrankdata(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.MapLanes(a, axis, func(dst, lane []float64) error {
		rank(dst, lane, true)
		return nil
	})
}

// Push fills each NaN along axis by searching back at most n positions for a
// non-NaN value.
func Push(a *nanops.Array, n int, axis nanops.Axis) (*nanops.Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: push limit %d must be non-negative", nanops.ErrN, n)
	}
	return nanops.MapLanes(a, lastIfNone(axis), func(dst, lane []float64) error {
		for i, v := range lane {
			dst[i] = v
			if !math.IsNaN(v) {
				continue
			}
			for j := i - 1; j >= 0 && i-j <= n; j-- {
				if !math.IsNaN(lane[j]) {
					dst[i] = lane[j]
					break
				}
			}
		}
		return nil
	})
}

// Replace overwrites, in place, every element equal to old with repl.
func Replace(a *nanops.Array, old, repl float64) {
	data := a.Data()
	for i, v := range data {
		if v == old || (math.IsNaN(old) && math.IsNaN(v)) {
			data[i] = repl
		}
	}
}

func lastIfNone(axis nanops.Axis) nanops.Axis {
	if axis.IsNone() {
		return nanops.AxisLast
	}
	return axis
}

func checkN(n, length int) error {
	if n < 1 || n > length {
		return fmt.Errorf("%w: n %d must be in [1, %d]", nanops.ErrN, n, length)
	}
	return nil
}

func rank(dst, lane []float64, skipNaN bool) {
	var values []float64
	var where []int
	nanCount := 0
	for i, v := range lane {
		if math.IsNaN(v) {
			nanCount++
			continue
		}
		values = append(values, v)
		where = append(where, i)
	}
	inds := make([]int, len(values))
	floats.ArgsortStable(values, inds)
	for start := 0; start < len(values); {
		end := start + 1
		for end < len(values) && values[end] == values[start] {
			end++
		}
		r := float64(start+1+end) / 2
		for _, k := range inds[start:end] {
			dst[where[k]] = r
		}
		start = end
	}
	nanRank := math.NaN()
	if !skipNaN {
		nanRank = float64(len(values)+1+len(lane)) / 2
	}
	if nanCount > 0 {
		for i, v := range lane {
			if math.IsNaN(v) {
				dst[i] = nanRank
			}
		}
	}
}
