//go:build !linux

package timeit

import (
	"errors"
	"runtime"
)

var errPinUnsupported = errors.New("cpu pinning is not supported on " + runtime.GOOS)

func pin() (func(), error) {
	return nil, errPinUnsupported
}
