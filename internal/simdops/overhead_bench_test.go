package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

func benchInput(n int) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i) * 0.01
	}
	return a
}

// BenchmarkDirectSum measures the direct SIMD call.
func BenchmarkDirectSum(b *testing.B) {
	a := benchInput(1024)

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.Sum(a)
	}
}

// BenchmarkIndirectSum measures the call through the Ops table.
func BenchmarkIndirectSum(b *testing.B) {
	ops := SIMD()
	a := benchInput(1024)

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.Sum(a)
	}
}

// BenchmarkScalarSum is the pure Go baseline.
func BenchmarkScalarSum(b *testing.B) {
	ops := Scalar()
	a := benchInput(1024)

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.Sum(a)
	}
}

func BenchmarkIndirectDotProduct(b *testing.B) {
	ops := SIMD()
	a := benchInput(1024)

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProduct(a, a)
	}
}
