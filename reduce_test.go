package nanops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-nanops/internal/fperr"
	"github.com/tphakala/go-nanops/internal/simdops"
	"github.com/tphakala/go-nanops/internal/testutil"
)

var nan = math.NaN()

type reduceFunc func(*Array, Axis) (*Array, error)

func mustNew(t *testing.T, data []float64, shape ...int) *Array {
	t.Helper()
	a, err := New(data, shape...)
	require.NoError(t, err)
	return a
}

// withMode runs the test with the floating-point error mode set to m.
func withMode(t *testing.T, m fperr.Mode) {
	t.Helper()
	prev := fperr.SetMode(m)
	t.Cleanup(func() { fperr.SetMode(prev) })
}

func TestReduceFlattened(t *testing.T) {
	withMode(t, fperr.ModeIgnore)
	a := FromSlice([]float64{1, nan, 3, 4})

	tests := []struct {
		name string
		fn   reduceFunc
		want float64
	}{
		{"nansum", Nansum, 8},
		{"nanmean", Nanmean, 8.0 / 3},
		{"nanvar", Nanvar, 14.0 / 9},
		{"nanstd", Nanstd, math.Sqrt(14.0 / 9)},
		{"nanmin", Nanmin, 1},
		{"nanmax", Nanmax, 4},
		{"nanargmin", Nanargmin, 0},
		{"nanargmax", Nanargmax, 3},
		{"median", Median, nan},
		{"nanmedian", Nanmedian, 3},
		{"ss", Ss, nan},
		{"anynan", Anynan, 1},
		{"allnan", Allnan, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(a, AxisNone)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Ndim())
			testutil.AssertNaNEqual(t, []float64{tt.want}, got.Data(), testutil.DefaultTolerance)
		})
	}
}

func TestReduceAlongAxis(t *testing.T) {
	a := mustNew(t, []float64{
		1, 5, 2,
		4, 3, 6,
	}, 2, 3)

	sum0, err := Nansum(a, AxisOf(0))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, sum0.Shape())
	assert.Equal(t, []float64{5, 8, 8}, sum0.Data())

	max1, err := Nanmax(a, AxisOf(-1))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, max1.Shape())
	assert.Equal(t, []float64{5, 6}, max1.Data())

	arg1, err := Nanargmin(a, AxisOf(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, arg1.Data())

	med0, err := Median(a, AxisOf(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 4, 4}, med0.Data())

	_, err = Nansum(a, AxisOf(2))
	require.ErrorIs(t, err, ErrAxis)
}

func TestReduceThreeDimensional(t *testing.T) {
	a := Rand(NewRand(7), 4, 5, 6)
	for axis := range 3 {
		got, err := Nansum(a, AxisOf(axis))
		require.NoError(t, err)
		var total float64
		for _, v := range got.Data() {
			total += v
		}
		flat, err := Nansum(a, AxisNone)
		require.NoError(t, err)
		assert.InDelta(t, flat.Data()[0], total, 1e-9, "axis %d", axis)
	}
}

func TestMedianEvenAndOdd(t *testing.T) {
	odd, err := Median(FromSlice([]float64{9, 1, 5, 3, 7}), AxisNone)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, odd.Data()[0], 0)

	even, err := Median(FromSlice([]float64{4, 1, 3, 2}), AxisNone)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, even.Data()[0], 0)

	dup, err := Nanmedian(FromSlice([]float64{2, 2, nan, 2, 1}), AxisNone)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, dup.Data()[0], 0)
}

func TestAllNaNLanes(t *testing.T) {
	a := FromSlice([]float64{nan, nan})

	t.Run("invalid results are NaN", func(t *testing.T) {
		withMode(t, fperr.ModeIgnore)
		for name, fn := range map[string]reduceFunc{
			"nanmean": Nanmean, "nanvar": Nanvar, "nanstd": Nanstd,
			"nanmin": Nanmin, "nanmax": Nanmax, "nanmedian": Nanmedian,
		} {
			got, err := fn(a, AxisNone)
			require.NoError(t, err, name)
			assert.True(t, math.IsNaN(got.Data()[0]), name)
		}
		sum, err := Nansum(a, AxisNone)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, sum.Data()[0], 0)

		all, err := Allnan(a, AxisNone)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, all.Data()[0], 0)
	})

	t.Run("raise mode surfaces invalid values", func(t *testing.T) {
		withMode(t, fperr.ModeRaise)
		_, err := Nanmean(a, AxisNone)
		require.ErrorIs(t, err, fperr.ErrInvalidValue)
	})

	t.Run("arg reductions fail", func(t *testing.T) {
		_, err := Nanargmin(a, AxisNone)
		require.ErrorIs(t, err, ErrAllNaN)
		_, err = Nanargmax(a, AxisNone)
		require.ErrorIs(t, err, ErrAllNaN)
	})
}

func TestEmptyLanes(t *testing.T) {
	withMode(t, fperr.ModeIgnore)
	empty := Zeros(0)

	sum, err := Nansum(empty, AxisNone)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sum.Data()[0], 0)

	_, err = Nanmin(empty, AxisNone)
	require.ErrorIs(t, err, ErrEmpty)
	_, err = Nanargmax(empty, AxisNone)
	require.ErrorIs(t, err, ErrEmpty)

	all, err := Allnan(empty, AxisNone)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, all.Data()[0], 0)
}

func TestAnynanWithOppositeInfinities(t *testing.T) {
	// inf + -inf sums to NaN without any NaN input.
	got, err := Anynan(FromSlice([]float64{math.Inf(1), math.Inf(-1), 1}), AxisNone)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got.Data()[0], 0)
}

func TestScalarArrayReductions(t *testing.T) {
	s := Scalar(1)
	for name, fn := range map[string]reduceFunc{
		"nansum": Nansum, "nanmean": Nanmean, "nanmin": Nanmin, "median": Median,
	} {
		got, err := fn(s, AxisNone)
		require.NoError(t, err, name)
		assert.InDelta(t, 1.0, got.Data()[0], 0, name)
	}
	_, err := Nansum(s, AxisOf(0))
	require.ErrorIs(t, err, ErrAxis)
}

func TestReduceScalarKernelsMatchSIMD(t *testing.T) {
	a := RandNaN(NewRand(3), 0.1, 50, 40)
	simd, err := Nanmean(a, AxisOf(1))
	require.NoError(t, err)

	restore := simdops.UseSIMD(false)
	defer restore()
	scalar, err := Nanmean(a, AxisOf(1))
	require.NoError(t, err)

	testutil.AssertNaNEqual(t, scalar.Data(), simd.Data(), 1e-12)
}

func TestLargeSumsMatchScalar(t *testing.T) {
	a := Rand(NewRand(11), 100000)

	simdSum, err := Nansum(a, AxisNone)
	require.NoError(t, err)
	simdSs, err := Ss(a, AxisNone)
	require.NoError(t, err)
	testutil.AssertNoNaNOrInf(t, []float64{simdSum.Data()[0], simdSs.Data()[0]})

	restore := simdops.UseSIMD(false)
	defer restore()
	scalarSum, err := Nansum(a, AxisNone)
	require.NoError(t, err)
	scalarSs, err := Ss(a, AxisNone)
	require.NoError(t, err)

	// Lane-parallel accumulation reorders additions.
	testutil.AssertRelativeError(t, scalarSum.Data()[0], simdSum.Data()[0], 1e-9)
	testutil.AssertRelativeError(t, scalarSs.Data()[0], simdSs.Data()[0], 1e-9)
}
