package slow

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	nanops "github.com/tphakala/go-nanops"
)

// windowStat computes one moving-window value from the non-NaN values of a
// window and the window itself.
type windowStat func(values, window []float64) float64

// moving recomputes stat over every window from scratch.
func moving(a *nanops.Array, window, minCount int, axis nanops.Axis, fn windowStat) (*nanops.Array, error) {
	return nanops.Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		for i := range lane {
			w := lane[max(0, i-window+1) : i+1]
			values := withoutNaN(w)
			if len(values) < minCount || len(values) == 0 {
				dst[i] = math.NaN()
				continue
			}
			dst[i] = fn(values, w)
		}
	})
}

// MoveSum returns the moving-window sum along axis ignoring NaN.
func MoveSum(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return floats.Sum(values)
	})
}

// MoveMean returns the moving-window mean along axis ignoring NaN.
func MoveMean(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return stat.Mean(values, nil)
	})
}

// MoveVar returns the moving-window population variance along axis ignoring NaN.
func MoveVar(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return stat.PopVariance(values, nil)
	})
}

// MoveStd returns the moving-window population standard deviation along axis
// ignoring NaN.
func MoveStd(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return stat.PopStdDev(values, nil)
	})
}

// MoveMin returns the moving-window minimum along axis ignoring NaN.
func MoveMin(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return floats.Min(values)
	})
}

// MoveMax returns the moving-window maximum along axis ignoring NaN.
func MoveMax(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return floats.Max(values)
	})
}

// MoveArgmin returns the distance from each window's right edge to its
// minimum, preferring the most recent of equal values.
func MoveArgmin(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(_, w []float64) float64 {
		return fromRight(w, func(v, best float64) bool { return v < best })
	})
}

// MoveArgmax is MoveArgmin for the maximum.
func MoveArgmax(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(_, w []float64) float64 {
		return fromRight(w, func(v, best float64) bool { return v > best })
	})
}

// MoveMedian returns the moving-window median along axis ignoring NaN.
func MoveMedian(a *nanops.Array, window, minCount int, axis nanops.Axis) (*nanops.Array, error) {
	return moving(a, window, minCount, axis, func(values, _ []float64) float64 {
		return sortedMedian(values)
	})
}

// fromRight scans w from its last element backwards and returns the distance
// of the first element no other element beats.
func fromRight(w []float64, better func(v, best float64) bool) float64 {
	best := -1
	for j := len(w) - 1; j >= 0; j-- {
		v := w[j]
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || better(v, w[best]) {
			best = j
		}
	}
	return float64(len(w) - 1 - best)
}
