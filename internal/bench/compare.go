// Package bench builds benchmark suites for the nanops functions and times
// the fast variant of each case against the reference variant.
//
// A suite is a fixed table of array expressions and call signatures expanded
// for one function. Each case carries two statements and a setup script that
// the timer compiles with the script interpreter, so a missing variant only
// surfaces when the case is timed.
package bench

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tphakala/go-nanops/internal/fperr"
	"github.com/tphakala/go-nanops/internal/timeit"
)

// DefaultFunction is benchmarked when no function is named.
const DefaultFunction = "nansum"

// ErrMalformedCase is returned for cases without exactly two statements.
var ErrMalformedCase = errors.New("exactly two statements required")

// Comparator times suites and writes one report line per case.
type Comparator struct {
	Timer timeit.Timer
	Out   io.Writer
	Log   *log.Logger
}

// NewComparator returns a Comparator reporting to out.
func NewComparator(timer timeit.Timer, out io.Writer) *Comparator {
	return &Comparator{Timer: timer, Out: out, Log: log.StandardLogger()}
}

// RunDetailed benchmarks fn with the default timer and prints the report
// to standard output. An empty fn means DefaultFunction.
func RunDetailed(fn string) error {
	return NewComparator(timeit.Default, os.Stdout).RunDetailed(fn)
}

// RunDetailed prints the header and then times every case of fn's suite in
// order. The first error aborts the run.
func (c *Comparator) RunDetailed(fn string) error {
	if fn == "" {
		fn = DefaultFunction
	}
	suite, err := BuildSuite(fn)
	if err != nil {
		return err
	}
	if err := writeHeader(c.Out, fn); err != nil {
		return err
	}
	for tc := range suite {
		speed, err := c.Speed(tc)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.Out, reportLine(speed, tc.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Speed times both statements of tc and returns reference time divided by
// fast time. Invalid-value warnings are ignored while timing.
func (c *Comparator) Speed(tc Case) (float64, error) {
	if len(tc.Statements) != 2 {
		return 0, fmt.Errorf("%w: case %q has %d", ErrMalformedCase, tc.Name[0], len(tc.Statements))
	}
	guard, err := fperr.Enter(fperr.ModeIgnore)
	if err != nil {
		return 0, err
	}
	defer guard.Exit()

	c.logger().Debugf("timing %s on %s (repeat %d)", tc.Name[0], tc.Name[1], tc.Repeat)
	t0, err := c.Timer.Time(tc.Statements[0], tc.Setup, tc.Repeat)
	if err != nil {
		return 0, fmt.Errorf("timing %q: %w", tc.Statements[0], err)
	}
	t1, err := c.Timer.Time(tc.Statements[1], tc.Setup, tc.Repeat)
	if err != nil {
		return 0, fmt.Errorf("timing %q: %w", tc.Statements[1], err)
	}
	c.logger().WithFields(log.Fields{"fast": t0, "reference": t1}).Debug("timed")
	return t1 / t0, nil
}

// Suite prints fn's cases without timing them.
func (c *Comparator) Suite(fn string) error {
	if fn == "" {
		fn = DefaultFunction
	}
	suite, err := BuildSuite(fn)
	if err != nil {
		return err
	}
	for tc := range suite {
		if _, err := fmt.Fprintf(c.Out, "%-26s %-22s repeat=%d\n", tc.Name[0], tc.Name[1], tc.Repeat); err != nil {
			return err
		}
	}
	return nil
}

func (c *Comparator) logger() *log.Logger {
	if c.Log == nil {
		return log.StandardLogger()
	}
	return c.Log
}

// reportLine formats one result as speed, call and array columns.
func reportLine(speed float64, name [2]string) string {
	return fmt.Sprintf("%8.1f  %-22s   %s", speed, name[0], name[1])
}
