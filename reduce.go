package nanops

import (
	"fmt"
	"math"

	"github.com/tphakala/go-nanops/internal/fperr"
	"github.com/tphakala/go-nanops/internal/simdops"
)

// Nansum returns the sum along axis treating NaN as zero.
func Nansum(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, nansumLane)
}

// Nanmean returns the mean along axis ignoring NaN.
func Nanmean(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, nanmeanLane)
}

// Nanvar returns the population variance (ddof 0) along axis ignoring NaN.
func Nanvar(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		return nanvarLane(lane, "nanvar")
	})
}

// Nanstd returns the population standard deviation along axis ignoring NaN.
func Nanstd(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		v, err := nanvarLane(lane, "nanstd")
		return math.Sqrt(v), err
	})
}

// Nanmin returns the minimum along axis ignoring NaN.
func Nanmin(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		return nanextremeLane(lane, "nanmin", false)
	})
}

// Nanmax returns the maximum along axis ignoring NaN.
func Nanmax(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		return nanextremeLane(lane, "nanmax", true)
	})
}

// Nanargmin returns the index of the first minimum along axis ignoring NaN.
func Nanargmin(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		return nanargLane(lane, "nanargmin", false)
	})
}

// Nanargmax returns the index of the first maximum along axis ignoring NaN.
func Nanargmax(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		return nanargLane(lane, "nanargmax", true)
	})
}

// Median returns the median along axis. Any NaN in a lane makes its
// median NaN.
func Median(a *Array, axis Axis) (*Array, error) {
	var s scratch
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		if len(lane) == 0 {
			return math.NaN(), fperr.Invalid("median")
		}
		x := s.take(len(lane))
		copy(x, lane)
		for _, v := range x {
			if math.IsNaN(v) {
				return math.NaN(), nil
			}
		}
		return medianInPlace(x), nil
	})
}

// Nanmedian returns the median along axis ignoring NaN.
func Nanmedian(a *Array, axis Axis) (*Array, error) {
	var s scratch
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		x := s.take(len(lane))[:0]
		for _, v := range lane {
			if !math.IsNaN(v) {
				x = append(x, v)
			}
		}
		if len(x) == 0 {
			return math.NaN(), fperr.Invalid("nanmedian")
		}
		return medianInPlace(x), nil
	})
}

// Ss returns the sum of squares along axis. NaN propagates.
func Ss(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		return simdops.Float64Ops().DotProduct(lane, lane), nil
	})
}

// Anynan reports, as 1 or 0, whether any element along axis is NaN.
func Anynan(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		// A NaN input always poisons the sum; a NaN sum may also come from
		// opposite infinities, so confirm by scanning.
		if !math.IsNaN(simdops.Float64Ops().Sum(lane)) {
			return falseValue, nil
		}
		for _, v := range lane {
			if math.IsNaN(v) {
				return trueValue, nil
			}
		}
		return falseValue, nil
	})
}

// Allnan reports, as 1 or 0, whether every element along axis is NaN.
// Empty lanes are all-NaN.
func Allnan(a *Array, axis Axis) (*Array, error) {
	return Reduce(a, axis, func(lane []float64) (float64, error) {
		for _, v := range lane {
			if !math.IsNaN(v) {
				return falseValue, nil
			}
		}
		return trueValue, nil
	})
}

// nansumCount returns the NaN-skipping sum and the number of non-NaN values.
func nansumCount(lane []float64) (float64, int) {
	if s := simdops.Float64Ops().Sum(lane); !math.IsNaN(s) {
		return s, len(lane)
	}
	var s float64
	n := 0
	for _, v := range lane {
		if !math.IsNaN(v) {
			s += v
			n++
		}
	}
	return s, n
}

func nansumLane(lane []float64) (float64, error) {
	s, _ := nansumCount(lane)
	return s, nil
}

func nanmeanLane(lane []float64) (float64, error) {
	s, n := nansumCount(lane)
	if n == 0 {
		return math.NaN(), fperr.Invalid("nanmean")
	}
	return s / float64(n), nil
}

func nanvarLane(lane []float64, op string) (float64, error) {
	s, n := nansumCount(lane)
	if n == 0 {
		return math.NaN(), fperr.Invalid(op)
	}
	mean := s / float64(n)
	var ss float64
	if n == len(lane) {
		for _, v := range lane {
			d := v - mean
			ss += d * d
		}
	} else {
		for _, v := range lane {
			if !math.IsNaN(v) {
				d := v - mean
				ss += d * d
			}
		}
	}
	return ss / float64(n), nil
}

func nanextremeLane(lane []float64, op string, wantMax bool) (float64, error) {
	if len(lane) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmpty, op)
	}
	m := math.Inf(1)
	if wantMax {
		m = math.Inf(-1)
	}
	seen := false
	for _, v := range lane {
		if math.IsNaN(v) {
			continue
		}
		seen = true
		if wantMax {
			if v > m {
				m = v
			}
		} else if v < m {
			m = v
		}
	}
	if !seen {
		return math.NaN(), fperr.Invalid(op)
	}
	return m, nil
}

func nanargLane(lane []float64, op string, wantMax bool) (float64, error) {
	if len(lane) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmpty, op)
	}
	idx := -1
	var m float64
	for i, v := range lane {
		if math.IsNaN(v) {
			continue
		}
		if idx < 0 || (wantMax && v > m) || (!wantMax && v < m) {
			idx, m = i, v
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrAllNaN, op)
	}
	return float64(idx), nil
}
