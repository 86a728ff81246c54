//go:build linux

package timeit

import (
	"errors"
	"runtime"

	"golang.org/x/sys/unix"
)

var errNoCPU = errors.New("affinity mask is empty")

// pin locks the goroutine to its thread and the thread to the first CPU it
// may run on. The returned function restores the previous mask.
func pin() (func(), error) {
	runtime.LockOSThread()
	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	cpu := -1
	for i := range maxCPUs {
		if prev.IsSet(i) {
			cpu = i
			break
		}
	}
	if cpu < 0 {
		runtime.UnlockOSThread()
		return nil, errNoCPU
	}
	var one unix.CPUSet
	one.Set(cpu)
	if err := unix.SchedSetaffinity(0, &one); err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}
