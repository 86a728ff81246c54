// Package testutil provides reusable test helper functions for nanops tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	MovingTolerance  = 1e-8 // Running updates accumulate rounding error
)

// AssertNaNEqual verifies element-wise equality within tolerance, treating
// NaN as equal to NaN.
func AssertNaNEqual(t *testing.T, want, got []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		w, g := want[i], got[i]
		if math.IsNaN(w) || math.IsNaN(g) {
			if math.IsNaN(w) != math.IsNaN(g) {
				return assert.Fail(t, "NaN mismatch", "index %d: want %v, got %v", i, w, g)
			}
			continue
		}
		if math.IsInf(w, 0) && w == g {
			continue
		}
		if !assert.InDelta(t, w, g, tolerance, "index %d", i) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertPartitioned verifies that every element of s[:n] is <= every element
// of s[n:].
func AssertPartitioned(t *testing.T, s []float64, n int, msgAndArgs ...any) bool {
	t.Helper()
	if n <= 0 || n >= len(s) {
		return true
	}
	left := s[0]
	for _, v := range s[1:n] {
		left = math.Max(left, v)
	}
	right := s[n]
	for _, v := range s[n+1:] {
		right = math.Min(right, v)
	}
	return assert.LessOrEqual(t, left, right, msgAndArgs...)
}

// AssertPermutation verifies that idx holds each of 0..len(idx)-1 exactly once.
func AssertPermutation(t *testing.T, idx []float64, msgAndArgs ...any) bool {
	t.Helper()
	seen := make([]bool, len(idx))
	for i, v := range idx {
		j := int(v)
		if float64(j) != v || j < 0 || j >= len(idx) || seen[j] {
			return assert.Fail(t, "not a permutation", "idx[%d]=%v", i, v)
		}
		seen[j] = true
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
