package slow

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	nanops "github.com/tphakala/go-nanops"
	"github.com/tphakala/go-nanops/internal/fperr"
)

// Nansum returns the sum along axis treating NaN as zero.
func Nansum(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return floats.Sum(withoutNaN(lane)), nil
	})
}

// Nanmean returns the mean along axis ignoring NaN.
func Nanmean(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		x := withoutNaN(lane)
		if len(x) == 0 {
			return math.NaN(), fperr.Invalid("nanmean")
		}
		return stat.Mean(x, nil), nil
	})
}

// Nanvar returns the population variance along axis ignoring NaN.
func Nanvar(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		x := withoutNaN(lane)
		if len(x) == 0 {
			return math.NaN(), fperr.Invalid("nanvar")
		}
		return stat.PopVariance(x, nil), nil
	})
}

// Nanstd returns the population standard deviation along axis ignoring NaN.
func Nanstd(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		x := withoutNaN(lane)
		if len(x) == 0 {
			return math.NaN(), fperr.Invalid("nanstd")
		}
		return stat.PopStdDev(x, nil), nil
	})
}

// Nanmin returns the minimum along axis ignoring NaN.
func Nanmin(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return extreme(lane, "nanmin", floats.Min)
	})
}

// Nanmax returns the maximum along axis ignoring NaN.
func Nanmax(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return extreme(lane, "nanmax", floats.Max)
	})
}

// Nanargmin returns the index of the first minimum along axis ignoring NaN.
func Nanargmin(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return argExtreme(lane, "nanargmin", floats.MinIdx)
	})
}

// Nanargmax returns the index of the first maximum along axis ignoring NaN.
func Nanargmax(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return argExtreme(lane, "nanargmax", floats.MaxIdx)
	})
}

// Median returns the median along axis; a NaN anywhere in a lane gives NaN.
func Median(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		if len(lane) == 0 {
			return math.NaN(), fperr.Invalid("median")
		}
		if floats.HasNaN(lane) {
			return math.NaN(), nil
		}
		return sortedMedian(append([]float64(nil), lane...)), nil
	})
}

// Nanmedian returns the median along axis ignoring NaN.
func Nanmedian(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		x := withoutNaN(lane)
		if len(x) == 0 {
			return math.NaN(), fperr.Invalid("nanmedian")
		}
		return sortedMedian(x), nil
	})
}

// Ss returns the sum of squares along axis.
func Ss(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return floats.Dot(lane, lane), nil
	})
}

// Anynan reports, as 1 or 0, whether any element along axis is NaN.
func Anynan(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return boolValue(floats.HasNaN(lane)), nil
	})
}

// Allnan reports, as 1 or 0, whether every element along axis is NaN.
func Allnan(a *nanops.Array, axis nanops.Axis) (*nanops.Array, error) {
	return nanops.Reduce(a, axis, func(lane []float64) (float64, error) {
		return boolValue(floats.Count(math.IsNaN, lane) == len(lane)), nil
	})
}

func withoutNaN(lane []float64) []float64 {
	out := make([]float64, 0, len(lane))
	for _, v := range lane {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func extreme(lane []float64, op string, pick func([]float64) float64) (float64, error) {
	if len(lane) == 0 {
		return 0, fmt.Errorf("%w: %s", nanops.ErrEmpty, op)
	}
	x := withoutNaN(lane)
	if len(x) == 0 {
		return math.NaN(), fperr.Invalid(op)
	}
	return pick(x), nil
}

func argExtreme(lane []float64, op string, pick func([]float64) int) (float64, error) {
	if len(lane) == 0 {
		return 0, fmt.Errorf("%w: %s", nanops.ErrEmpty, op)
	}
	if floats.Count(math.IsNaN, lane) == len(lane) {
		return 0, fmt.Errorf("%w: %s", nanops.ErrAllNaN, op)
	}
	return float64(pick(lane)), nil
}

// sortedMedian sorts x and returns its median. x must be non-empty.
func sortedMedian(x []float64) float64 {
	sort.Float64s(x)
	n := len(x)
	if n%2 == 1 {
		return x[n/2]
	}
	return (x[n/2-1] + x[n/2]) / 2
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
