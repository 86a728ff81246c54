package timeit

import "time"

// Autoscaling
const (
	defaultMinTime    = 200 * time.Millisecond // One batch must run at least this long
	defaultMaxDecades = 12                     // Loop counts tried: 1, 10, ..., 1e11
	scaleFactor       = 10                     // Growth of the loop count per attempt
)

// CPU pinning
const (
	maxCPUs = 1024 // Highest CPU index searched in the affinity mask
)
