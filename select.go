package nanops

// selectK partially orders x in place so that x[k] holds the value it would
// have if x were sorted, every element before k is <= x[k] and every element
// after k is >= x[k]. x must not contain NaN for the ordering to be meaningful.
func selectK(x []float64, k int) {
	l, r := 0, len(x)-1
	for l < r {
		pivot := x[k]
		i, j := l, r
		for {
			for x[i] < pivot {
				i++
			}
			for pivot < x[j] {
				j--
			}
			if i <= j {
				x[i], x[j] = x[j], x[i]
				i++
				j--
			}
			if i > j {
				break
			}
		}
		if j < k {
			l = i
		}
		if k < i {
			r = j
		}
	}
}

// argselectK is selectK over idx, comparing x[idx[i]]. x is not modified.
func argselectK(x []float64, idx []int, k int) {
	l, r := 0, len(idx)-1
	for l < r {
		pivot := x[idx[k]]
		i, j := l, r
		for {
			for x[idx[i]] < pivot {
				i++
			}
			for pivot < x[idx[j]] {
				j--
			}
			if i <= j {
				idx[i], idx[j] = idx[j], idx[i]
				i++
				j--
			}
			if i > j {
				break
			}
		}
		if j < k {
			l = i
		}
		if k < i {
			r = j
		}
	}
}

// medianInPlace returns the median of x, reordering it. x must be non-empty
// and free of NaN.
func medianInPlace(x []float64) float64 {
	n := len(x)
	k := n / halfDivisor
	selectK(x, k)
	if n%halfDivisor == 1 {
		return x[k]
	}
	lower := x[0]
	for _, v := range x[1:k] {
		if v > lower {
			lower = v
		}
	}
	return (lower + x[k]) / halfDivisor
}

// scratch is a reusable buffer for kernels that need a private copy of a lane.
type scratch struct {
	buf []float64
}

func (s *scratch) take(n int) []float64 {
	if cap(s.buf) < n {
		s.buf = make([]float64, n)
	}
	return s.buf[:n]
}
