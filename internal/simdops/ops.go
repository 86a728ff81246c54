// Package simdops binds the SIMD kernels used by the fast array functions.
//
// Kernels are reached through an Ops table of function pointers so that the
// scalar fallback can be swapped in for parity tests. With Profile-Guided
// Optimization (Go 1.22+) the indirect calls in hot loops can be devirtualized.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides the float64 kernels used by nanops.
type Ops struct {
	// Sum returns the sum of all elements. A NaN anywhere makes the result NaN.
	Sum func(a []float64) float64

	// DotProduct returns the dot product of two equal-length slices.
	DotProduct func(a, b []float64) float64
}

var (
	simd64 = Ops{
		Sum:        f64.Sum,
		DotProduct: f64.DotProduct,
	}
	scalar64 = Ops{
		Sum:        scalarSum,
		DotProduct: scalarDot,
	}
	active = &simd64
)

// Float64Ops returns the operations currently used by the fast functions.
func Float64Ops() *Ops {
	return active
}

// SIMD returns the SIMD-accelerated operations.
func SIMD() *Ops {
	return &simd64
}

// Scalar returns the pure Go operations.
func Scalar() *Ops {
	return &scalar64
}

// UseSIMD switches the fast functions between SIMD and scalar kernels and
// returns a func that restores the previous choice. Not safe for concurrent
// use with running kernels.
func UseSIMD(enabled bool) (restore func()) {
	prev := active
	if enabled {
		active = &simd64
	} else {
		active = &scalar64
	}
	return func() { active = prev }
}

func scalarSum(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v
	}
	return s
}

func scalarDot(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		s += v * b[i]
	}
	return s
}
