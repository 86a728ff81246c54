package nanops

import (
	"math"
	"sort"
)

// MoveSum returns the moving-window sum along axis ignoring NaN. Positions
// whose window holds fewer than minCount non-NaN values are NaN. A minCount
// of zero or less means window.
func MoveSum(a *Array, window, minCount int, axis Axis) (*Array, error) {
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		moveSumLane(dst, lane, window, minCount, false)
	})
}

// MoveMean returns the moving-window mean along axis ignoring NaN.
func MoveMean(a *Array, window, minCount int, axis Axis) (*Array, error) {
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		moveSumLane(dst, lane, window, minCount, true)
	})
}

// MoveVar returns the moving-window population variance along axis ignoring NaN.
func MoveVar(a *Array, window, minCount int, axis Axis) (*Array, error) {
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		moveVarLane(dst, lane, window, minCount, false)
	})
}

// MoveStd returns the moving-window population standard deviation along axis
// ignoring NaN.
func MoveStd(a *Array, window, minCount int, axis Axis) (*Array, error) {
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		moveVarLane(dst, lane, window, minCount, true)
	})
}

// MoveMin returns the moving-window minimum along axis ignoring NaN.
func MoveMin(a *Array, window, minCount int, axis Axis) (*Array, error) {
	var d deque
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		d.run(dst, lane, window, minCount, false, false)
	})
}

// MoveMax returns the moving-window maximum along axis ignoring NaN.
func MoveMax(a *Array, window, minCount int, axis Axis) (*Array, error) {
	var d deque
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		d.run(dst, lane, window, minCount, true, false)
	})
}

// MoveArgmin returns, for each window, how many positions before the window's
// right edge its minimum sits (0 is the current element). Ties resolve to the
// most recent element.
func MoveArgmin(a *Array, window, minCount int, axis Axis) (*Array, error) {
	var d deque
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		d.run(dst, lane, window, minCount, false, true)
	})
}

// MoveArgmax is MoveArgmin for the maximum.
func MoveArgmax(a *Array, window, minCount int, axis Axis) (*Array, error) {
	var d deque
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		d.run(dst, lane, window, minCount, true, true)
	})
}

// MoveMedian returns the moving-window median along axis ignoring NaN.
func MoveMedian(a *Array, window, minCount int, axis Axis) (*Array, error) {
	var s scratch
	return Move(a, window, minCount, axis, func(dst, lane []float64, window, minCount int) {
		moveMedianLane(dst, lane, s.take(window+1)[:0], window, minCount)
	})
}

func moveSumLane(dst, lane []float64, window, minCount int, mean bool) {
	var sum float64
	count := 0
	for i, v := range lane {
		if !math.IsNaN(v) {
			sum += v
			count++
		}
		if i >= window {
			if old := lane[i-window]; !math.IsNaN(old) {
				sum -= old
				count--
			}
		}
		switch {
		case count < minCount:
			dst[i] = math.NaN()
		case mean:
			dst[i] = sum / float64(count)
		default:
			dst[i] = sum
		}
	}
}

// moveVarLane keeps a running mean and sum of squared deviations, adding the
// incoming value and removing the outgoing one (Welford's update).
func moveVarLane(dst, lane []float64, window, minCount int, std bool) {
	var mean, m2 float64
	count := 0
	for i, v := range lane {
		if !math.IsNaN(v) {
			count++
			delta := v - mean
			mean += delta / float64(count)
			m2 += delta * (v - mean)
		}
		if i >= window {
			if old := lane[i-window]; !math.IsNaN(old) {
				count--
				switch count {
				case 0:
					mean, m2 = 0, 0
				case 1:
					// One value left: it is exact and has no spread.
					mean -= old - mean
					m2 = 0
				default:
					delta := old - mean
					mean -= delta / float64(count)
					m2 -= delta * (old - mean)
				}
			}
		}
		if count < minCount {
			dst[i] = math.NaN()
			continue
		}
		variance := max(m2, 0) / float64(count)
		if std {
			variance = math.Sqrt(variance)
		}
		dst[i] = variance
	}
}

// deque is a monotonic queue of lane indices whose values are increasing
// (for minimum) or decreasing (for maximum) from front to back.
type deque struct {
	idx []int
}

func (d *deque) run(dst, lane []float64, window, minCount int, wantMax, arg bool) {
	if cap(d.idx) < len(lane) {
		d.idx = make([]int, len(lane))
	}
	q := d.idx[:len(lane)]
	head, tail := 0, 0
	count := 0
	for i, v := range lane {
		if !math.IsNaN(v) {
			count++
			for tail > head {
				back := lane[q[tail-1]]
				if (wantMax && back > v) || (!wantMax && back < v) {
					break
				}
				tail--
			}
			q[tail] = i
			tail++
		}
		if i >= window && !math.IsNaN(lane[i-window]) {
			count--
		}
		for head < tail && q[head] <= i-window {
			head++
		}
		switch {
		case count < minCount || head == tail:
			dst[i] = math.NaN()
		case arg:
			dst[i] = float64(i - q[head])
		default:
			dst[i] = lane[q[head]]
		}
	}
}

// moveMedianLane keeps the window's non-NaN values sorted in buf.
func moveMedianLane(dst, lane, buf []float64, window, minCount int) {
	sorted := buf
	for i, v := range lane {
		if !math.IsNaN(v) {
			j := sort.SearchFloat64s(sorted, v)
			sorted = append(sorted, 0)
			copy(sorted[j+1:], sorted[j:])
			sorted[j] = v
		}
		if i >= window {
			if old := lane[i-window]; !math.IsNaN(old) {
				j := sort.SearchFloat64s(sorted, old)
				copy(sorted[j:], sorted[j+1:])
				sorted = sorted[:len(sorted)-1]
			}
		}
		n := len(sorted)
		switch {
		case n < minCount || n == 0:
			dst[i] = math.NaN()
		case n%halfDivisor == 1:
			dst[i] = sorted[n/halfDivisor]
		default:
			dst[i] = (sorted[n/halfDivisor-1] + sorted[n/halfDivisor]) / halfDivisor
		}
	}
}
