package nanops_test

import (
	"fmt"
	"testing"

	nanops "github.com/tphakala/go-nanops"
	"github.com/tphakala/go-nanops/slow"
)

// =============================================================================
// Fast vs Reference Benchmarks
// =============================================================================
//
// Run with: go test -bench=. -benchmem .
// For the ratio table use: go run ./cmd/nanbench detailed <function>

var benchSizes = []int{10, 1000, 100000}

func benchReduce(b *testing.B, fn func(*nanops.Array, nanops.Axis) (*nanops.Array, error)) {
	b.Helper()
	for _, n := range benchSizes {
		a := nanops.Rand(nanops.NewRand(nanops.DefaultSeed), n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = fn(a, nanops.AxisNone)
			}
		})
	}
}

func benchMove(b *testing.B, fn func(*nanops.Array, int, int, nanops.Axis) (*nanops.Array, error)) {
	b.Helper()
	for _, n := range benchSizes {
		a := nanops.Rand(nanops.NewRand(nanops.DefaultSeed), n)
		window := max(1, n/5)
		b.Run(fmt.Sprintf("n=%d/w=%d", n, window), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = fn(a, window, 0, nanops.AxisLast)
			}
		})
	}
}

func BenchmarkNansumFast(b *testing.B)   { benchReduce(b, nanops.Nansum) }
func BenchmarkNansumSlow(b *testing.B)   { benchReduce(b, slow.Nansum) }
func BenchmarkNanmeanFast(b *testing.B)  { benchReduce(b, nanops.Nanmean) }
func BenchmarkNanmeanSlow(b *testing.B)  { benchReduce(b, slow.Nanmean) }
func BenchmarkMedianFast(b *testing.B)   { benchReduce(b, nanops.Median) }
func BenchmarkMedianSlow(b *testing.B)   { benchReduce(b, slow.Median) }
func BenchmarkSsFast(b *testing.B)       { benchReduce(b, nanops.Ss) }
func BenchmarkSsSlow(b *testing.B)       { benchReduce(b, slow.Ss) }
func BenchmarkMoveSumFast(b *testing.B)  { benchMove(b, nanops.MoveSum) }
func BenchmarkMoveSumSlow(b *testing.B)  { benchMove(b, slow.MoveSum) }
func BenchmarkMoveMaxFast(b *testing.B)  { benchMove(b, nanops.MoveMax) }
func BenchmarkMoveMaxSlow(b *testing.B)  { benchMove(b, slow.MoveMax) }
func BenchmarkMoveMedianFast(b *testing.B) { benchMove(b, nanops.MoveMedian) }
func BenchmarkMoveMedianSlow(b *testing.B) { benchMove(b, slow.MoveMedian) }
