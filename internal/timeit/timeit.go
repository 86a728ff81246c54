// Package timeit measures how long a statement takes under a setup script.
//
// Autotimeit grows the loop count by powers of ten until one batch runs for
// at least MinTime, then repeats the batch and reports the best batch time
// divided by the loop count. The setup runs once per measurement.
package timeit

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	nanops "github.com/tphakala/go-nanops"
	"github.com/tphakala/go-nanops/internal/registry"
	"github.com/tphakala/go-nanops/internal/script"
)

// Errors returned by the timer.
var (
	ErrTooFast = errors.New("statement is too fast to time")
	ErrRepeat  = errors.New("repeat must be at least 1")
)

// Timer returns the duration in seconds of one execution of stmt.
type Timer interface {
	Time(stmt, setup string, repeat int) (float64, error)
}

// Options configures an AutoTimer.
type Options struct {
	// MinTime is the shortest batch accepted while scaling the loop count.
	MinTime time.Duration
	// MaxDecades bounds how many loop counts are tried.
	MaxDecades int
	// Pin locks the measuring goroutine to one CPU where supported.
	Pin bool
	// Seed seeds the rand constructor of every setup script.
	Seed uint64
}

// DefaultOptions returns the options used by Autotimeit.
func DefaultOptions() Options {
	return Options{
		MinTime:    defaultMinTime,
		MaxDecades: defaultMaxDecades,
		Pin:        true,
		Seed:       nanops.DefaultSeed,
	}
}

// AutoTimer is a Timer that scales the loop count automatically.
type AutoTimer struct {
	opts Options
}

// New returns an AutoTimer. Zero fields in opts take their defaults; Pin is
// used as given.
func New(opts Options) *AutoTimer {
	def := DefaultOptions()
	if opts.MinTime <= 0 {
		opts.MinTime = def.MinTime
	}
	if opts.MaxDecades <= 0 {
		opts.MaxDecades = def.MaxDecades
	}
	return &AutoTimer{opts: opts}
}

// Default is the timer used by Autotimeit.
var Default Timer = New(DefaultOptions())

// Autotimeit times stmt under setup with the default timer.
func Autotimeit(stmt, setup string, repeat int) (float64, error) {
	return Default.Time(stmt, setup, repeat)
}

// Time implements Timer.
func (t *AutoTimer) Time(stmt, setup string, repeat int) (float64, error) {
	if repeat < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrRepeat, repeat)
	}
	env, err := script.Setup(setup, registry.New(t.opts.Seed))
	if err != nil {
		return 0, err
	}
	run, err := env.Compile(stmt)
	if err != nil {
		return 0, err
	}

	if t.opts.Pin {
		unpin, err := pin()
		if err != nil {
			log.Debugf("timeit: running unpinned: %v", err)
		} else {
			defer unpin()
		}
	}

	number, first, err := t.autoscale(run)
	if err != nil {
		return 0, err
	}
	batches := make([]float64, 1, repeat)
	batches[0] = first.Seconds()
	for range repeat - 1 {
		d, err := batch(run, number)
		if err != nil {
			return 0, err
		}
		batches = append(batches, d.Seconds())
	}
	best := floats.Min(batches) / float64(number)
	log.Tracef("timeit: %s: number=%d repeat=%d best=%.3gs", stmt, number, repeat, best)
	return best, nil
}

// autoscale finds the first loop count whose batch exceeds MinTime.
func (t *AutoTimer) autoscale(run script.Stmt) (int, time.Duration, error) {
	number := 1
	for range t.opts.MaxDecades {
		d, err := batch(run, number)
		if err != nil {
			return 0, 0, err
		}
		if d > t.opts.MinTime {
			return number, d, nil
		}
		number *= scaleFactor
	}
	return 0, 0, fmt.Errorf("%w: under %v after %d loop counts", ErrTooFast, t.opts.MinTime, t.opts.MaxDecades)
}

// batch runs stmt number times and returns the elapsed time.
func batch(run script.Stmt, number int) (time.Duration, error) {
	runtime.GC()
	start := time.Now()
	for range number {
		if err := run(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}
