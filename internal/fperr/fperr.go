// Package fperr tracks how invalid floating-point results are reported.
//
// Go arithmetic never traps, so functions that produce a NaN from input that
// admits no meaningful answer (the mean of an all-NaN slice, for example)
// report it through Invalid. The process-wide Mode decides whether that is
// logged, ignored or turned into an error. Benchmark code switches to
// ModeIgnore only for the duration of one timed pair through a Guard.
package fperr

import (
	"errors"
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// Mode selects how invalid floating-point operations are reported.
type Mode int32

const (
	// ModeWarn logs each invalid operation at warning level.
	ModeWarn Mode = iota

	// ModeIgnore silently accepts invalid operations.
	ModeIgnore

	// ModeRaise turns invalid operations into ErrInvalidValue.
	ModeRaise
)

var (
	// ErrInvalidValue is returned by Invalid in ModeRaise.
	ErrInvalidValue = errors.New("invalid value encountered")

	// ErrGuardActive is returned when a guard is entered while another is held.
	ErrGuardActive = errors.New("floating-point error guard already active")
)

var (
	mode      atomic.Int32
	guardHeld atomic.Bool
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeWarn:
		return "warn"
	case ModeIgnore:
		return "ignore"
	case ModeRaise:
		return "raise"
	default:
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
}

// Current returns the active mode.
func Current() Mode {
	return Mode(mode.Load())
}

// SetMode installs m and returns the previous mode.
func SetMode(m Mode) Mode {
	return Mode(mode.Swap(int32(m)))
}

// Invalid reports an invalid operation in op according to the current mode.
// It returns a non-nil error only in ModeRaise.
func Invalid(op string) error {
	switch Current() {
	case ModeIgnore:
		return nil
	case ModeRaise:
		return fmt.Errorf("%w in %s", ErrInvalidValue, op)
	default:
		log.Warnf("invalid value encountered in %s", op)
		return nil
	}
}

// Guard holds a temporary mode. Guards do not nest: only one may be active
// in the process at a time.
type Guard struct {
	prev   Mode
	active bool
}

// Enter installs m until Exit is called on the returned guard.
func Enter(m Mode) (*Guard, error) {
	if !guardHeld.CompareAndSwap(false, true) {
		return nil, ErrGuardActive
	}
	return &Guard{prev: SetMode(m), active: true}, nil
}

// Exit restores the mode that was active when the guard was entered.
// Calling Exit more than once has no further effect.
func (g *Guard) Exit() {
	if g == nil || !g.active {
		return
	}
	SetMode(g.prev)
	g.active = false
	guardHeld.Store(false)
}

// Active reports whether a guard is currently held.
func Active() bool {
	return guardHeld.Load()
}
