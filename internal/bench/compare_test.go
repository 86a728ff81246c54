package bench

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-nanops/internal/fperr"
	"github.com/tphakala/go-nanops/internal/script"
	"github.com/tphakala/go-nanops/internal/timeit"
)

type timerCall struct {
	stmt, setup string
	repeat      int
	mode        fperr.Mode
}

// mockTimer returns fixed durations for fast and reference statements.
type mockTimer struct {
	fast, ref float64
	err       error
	calls     []timerCall
}

func (m *mockTimer) Time(stmt, setup string, repeat int) (float64, error) {
	m.calls = append(m.calls, timerCall{stmt, setup, repeat, fperr.Current()})
	if m.err != nil {
		return 0, m.err
	}
	if strings.Contains(stmt, FastSuffix+"(") {
		return m.fast, nil
	}
	return m.ref, nil
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestSpeedIsReferenceOverFast(t *testing.T) {
	timer := &mockTimer{fast: 2, ref: 4}
	c := NewComparator(timer, &bytes.Buffer{})
	tc := Case{
		Name:       [2]string{"nansum(a)", "rand(1)"},
		Statements: []string{"nansum_fast(a)", "nansum(a)"},
		Setup:      setupScript("nansum", "rand(1)"),
		Repeat:     10,
	}

	speed, err := c.Speed(tc)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, speed, 0)

	require.Len(t, timer.calls, 2)
	assert.Equal(t, "nansum_fast(a)", timer.calls[0].stmt)
	assert.Equal(t, "nansum(a)", timer.calls[1].stmt)
	for _, call := range timer.calls {
		assert.Equal(t, tc.Setup, call.setup)
		assert.Equal(t, 10, call.repeat)
	}
}

func TestSpeedIgnoresInvalidOnlyWhileTiming(t *testing.T) {
	prev := fperr.SetMode(fperr.ModeRaise)
	t.Cleanup(func() { fperr.SetMode(prev) })

	timer := &mockTimer{fast: 1, ref: 1}
	c := NewComparator(timer, &bytes.Buffer{})
	_, err := c.Speed(Case{Statements: []string{"f_fast(a)", "f(a)"}, Repeat: 1})
	require.NoError(t, err)

	for _, call := range timer.calls {
		assert.Equal(t, fperr.ModeIgnore, call.mode)
	}
	assert.Equal(t, fperr.ModeRaise, fperr.Current())
	assert.False(t, fperr.Active())
}

func TestSpeedRejectsNestedGuard(t *testing.T) {
	g, err := fperr.Enter(fperr.ModeWarn)
	require.NoError(t, err)
	defer g.Exit()

	timer := &mockTimer{fast: 1, ref: 1}
	_, err = NewComparator(timer, &bytes.Buffer{}).Speed(Case{Statements: []string{"f_fast(a)", "f(a)"}})
	require.ErrorIs(t, err, fperr.ErrGuardActive)
	assert.Empty(t, timer.calls)
}

func TestMalformedCase(t *testing.T) {
	for _, stmts := range [][]string{nil, {"nansum_fast(a)"}, {"a", "b", "c"}} {
		timer := &mockTimer{fast: 2, ref: 4}
		_, err := NewComparator(timer, &bytes.Buffer{}).Speed(Case{Statements: stmts})
		require.ErrorIs(t, err, ErrMalformedCase)
		assert.Empty(t, timer.calls)
	}
}

func TestUnrecognizedFunctionBeforeTiming(t *testing.T) {
	timer := &mockTimer{fast: 1, ref: 1}
	var out bytes.Buffer
	err := NewComparator(timer, &out).RunDetailed("not_a_real_function")
	require.ErrorIs(t, err, ErrUnrecognizedFunction)
	assert.Contains(t, err.Error(), "not_a_real_function")
	assert.Empty(t, timer.calls)
	assert.Empty(t, out.String())
}

func TestRunDetailedReduceEndToEnd(t *testing.T) {
	timer := &mockTimer{fast: 1, ref: 1}
	var out bytes.Buffer
	require.NoError(t, NewComparator(timer, &out).RunDetailed("nanmean"))

	got := lines(out.String())
	require.Len(t, got, 5+len(table))
	assert.Equal(t, "nanmean benchmark", got[0])
	assert.Equal(t, "    Speed is reference (slow) time divided by fast time", got[2])
	assert.Empty(t, got[3])
	assert.Equal(t, ColumnHeader, got[4])

	body := got[5:]
	for i, row := range Rows() {
		sig, ok := row.OneInput.Get()
		require.True(t, ok)
		want := fmt.Sprintf("%8.1f  %-22s   %s", 1.0, "nanmean"+sig, row.Array)
		assert.Equal(t, want, body[i])
	}
	assert.Equal(t, "     1.0  nanmean(a)"+strings.Repeat(" ", 12)+"   rand(1)", body[0])
	assert.Len(t, timer.calls, 2*len(table))
}

func TestRunDetailedDefaultsToNansum(t *testing.T) {
	timer := &mockTimer{fast: 1, ref: 3}
	var out bytes.Buffer
	require.NoError(t, NewComparator(timer, &out).RunDetailed(""))
	got := lines(out.String())
	assert.Equal(t, "nansum benchmark", got[0])
	assert.True(t, strings.HasPrefix(got[5], "     3.0  nansum(a) "), got[5])
}

func TestRunDetailedAbortsOnTimerError(t *testing.T) {
	boom := errors.New("boom")
	timer := &mockTimer{err: boom}
	var out bytes.Buffer
	err := NewComparator(timer, &out).RunDetailed("move_sum")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "move_sum_fast(a, 1)")
	assert.Len(t, timer.calls, 1)
	assert.Len(t, lines(out.String()), 5)
}

func TestEnvironmentLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeHeader(&out, "ss"))
	got := lines(out.String())
	require.Len(t, got, 5)
	assert.True(t, strings.HasPrefix(got[1], "    nanops "), got[1])
	assert.Contains(t, got[1], "; simd ")
	assert.Contains(t, got[1], "; gonum ")
	assert.Contains(t, got[1], runtime.GOOS+"/"+runtime.GOARCH)
}

func TestSuiteListing(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewComparator(&mockTimer{}, &out).Suite("replace"))
	got := lines(out.String())
	require.Len(t, got, 9)
	assert.True(t, strings.HasPrefix(got[0], "replace(a, nan, 0)"), got[0])
	assert.True(t, strings.HasSuffix(got[8], "repeat=2"), got[8])

	err := NewComparator(&mockTimer{}, &out).Suite("nope")
	assert.ErrorIs(t, err, ErrUnrecognizedFunction)
}

func TestSpeedWithRealTimer(t *testing.T) {
	timer := timeit.New(timeit.Options{MinTime: time.Millisecond, MaxDecades: 8})
	c := NewComparator(timer, &bytes.Buffer{})

	speed, err := c.Speed(Case{
		Statements: []string{"nansum_fast(a)", "nansum(a)"},
		Setup:      setupScript("nansum", "rand(10, 10)"),
		Repeat:     2,
	})
	require.NoError(t, err)
	assert.Positive(t, speed)
}

func TestMissingVariantFailsWhenTimed(t *testing.T) {
	timer := timeit.New(timeit.Options{MinTime: time.Millisecond, MaxDecades: 8})
	c := NewComparator(timer, &bytes.Buffer{})

	// A function the suite builder accepts but the registry cannot import.
	_, err := c.Speed(Case{
		Statements: []string{"nanfoo_fast(a)", "nanfoo(a)"},
		Setup:      setupScript("nanfoo", "rand(3)"),
		Repeat:     1,
	})
	require.ErrorIs(t, err, script.ErrUnknownName)
	assert.False(t, fperr.Active())
}
