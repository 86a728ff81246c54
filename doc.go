// Package nanops provides fast NaN-aware reductions, moving-window
// statistics and partial sorts over N-dimensional float64 arrays.
//
// Every function has a reference counterpart with the same signature in
// package slow. The nanbench command times the two against each other.
//
// # Features
//
//   - NaN-skipping reductions: [Nansum], [Nanmean], [Nanvar], [Nanstd],
//     [Nanmin], [Nanmax], [Nanargmin], [Nanargmax], [Nanmedian]
//   - Plain reductions and predicates: [Median], [Ss], [Anynan], [Allnan]
//   - Moving windows in O(n) or O(n log w): [MoveSum], [MoveMean], [MoveVar],
//     [MoveStd], [MoveMin], [MoveMax], [MoveArgmin], [MoveArgmax], [MoveMedian]
//   - Non-reducing functions: [Partsort], [Argpartsort], [Rankdata],
//     [Nanrankdata], [Push] and the in-place [Replace]
//   - SIMD sums and dot products via github.com/tphakala/simd
//
// # Quick Start
//
//	a := nanops.RandNaN(nanops.NewRand(nanops.DefaultSeed), 0.1, 1000, 50)
//
//	// Mean of each row, skipping NaN
//	means, err := nanops.Nanmean(a, nanops.AxisOf(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 20-sample moving median along the last axis
//	med, err := nanops.MoveMedian(a, 20, 0, nanops.AxisLast)
//
// # Axes
//
// Functions take an [Axis]. [AxisNone] flattens the array first, so
// reductions return a zero-dimensional array. Negative axes count from the
// last dimension. Moving-window functions and partial sorts treat AxisNone
// as [AxisLast].
//
// Index results (argmin, argpartsort) and predicate results (anynan, allnan)
// are stored as float64 in the returned array.
//
// # Invalid Values
//
// Reductions with no valid input, such as the mean of an all-NaN lane,
// return NaN and report through the floating-point error mode, which logs a
// warning by default.
//
// # Thread Safety
//
// Functions do not modify their input, except [Replace], and may be called
// concurrently on shared arrays.
package nanops
