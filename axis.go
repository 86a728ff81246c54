package nanops

import "fmt"

// Axis selects the dimension a function operates along. The zero value is
// AxisNone, which flattens the array.
type Axis struct {
	index int
	set   bool
}

// AxisNone flattens the array before applying the function.
var AxisNone = Axis{}

// AxisLast is the last dimension, the default for moving-window functions.
var AxisLast = AxisOf(-1)

// AxisOf returns axis k. Negative values count from the last dimension.
func AxisOf(k int) Axis {
	return Axis{index: k, set: true}
}

// IsNone reports whether the axis flattens the array.
func (x Axis) IsNone() bool {
	return !x.set
}

// String implements fmt.Stringer.
func (x Axis) String() string {
	if !x.set {
		return "None"
	}
	return fmt.Sprintf("%d", x.index)
}

// normalize resolves x against an array of ndim dimensions.
func (x Axis) normalize(ndim int) (int, error) {
	k := x.index
	if k < 0 {
		k += ndim
	}
	if k < 0 || k >= ndim {
		return 0, fmt.Errorf("%w: axis %d for %d-d array", ErrAxis, x.index, ndim)
	}
	return k, nil
}

// Lane addresses the elements along one axis for fixed indices on every other
// axis: Data()[Offset + j*Stride] for j in [0, Len).
type Lane struct {
	Offset int
	Stride int
	Len    int
}

// Contiguous reports whether the lane elements are adjacent in memory.
func (l Lane) Contiguous() bool {
	return l.Stride == 1 || l.Len <= 1
}

// Gather copies the lane elements of src into dst and returns dst[:Len].
// It panics if dst is shorter than the lane.
func (l Lane) Gather(dst, src []float64) []float64 {
	dst = dst[:l.Len]
	if l.Len == 0 {
		return dst
	}
	if l.Contiguous() {
		copy(dst, src[l.Offset:l.Offset+l.Len])
		return dst
	}
	for j, p := 0, l.Offset; j < l.Len; j, p = j+1, p+l.Stride {
		dst[j] = src[p]
	}
	return dst
}

// View returns the lane as a subslice of src when it is contiguous, or
// gathers it into buf otherwise.
func (l Lane) View(buf, src []float64) []float64 {
	if l.Len == 0 {
		return buf[:0]
	}
	if l.Contiguous() {
		return src[l.Offset : l.Offset+l.Len]
	}
	return l.Gather(buf, src)
}

// Scatter writes src into the lane positions of dst.
func (l Lane) Scatter(dst, src []float64) {
	if l.Len == 0 {
		return
	}
	if l.Contiguous() {
		copy(dst[l.Offset:l.Offset+l.Len], src[:l.Len])
		return
	}
	for j, p := 0, l.Offset; j < l.Len; j, p = j+1, p+l.Stride {
		dst[p] = src[j]
	}
}

// Lanes calls fn for every lane along axis k (already normalized) in the
// row-major order of the remaining dimensions. The index passed to fn is the
// lane's position in that order. Iteration stops at the first error.
func (a *Array) Lanes(k int, fn func(i int, l Lane) error) error {
	if k < 0 || k >= len(a.shape) {
		return fmt.Errorf("%w: axis %d for %d-d array", ErrAxis, k, len(a.shape))
	}
	outer, inner := 1, 1
	for _, n := range a.shape[:k] {
		outer *= n
	}
	for _, n := range a.shape[k+1:] {
		inner *= n
	}
	n := a.shape[k]
	i := 0
	for o := range outer {
		base := o * n * inner
		for in := range inner {
			if err := fn(i, Lane{Offset: base + in, Stride: inner, Len: n}); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// reducedShape drops axis k from shape.
func reducedShape(shape []int, k int) []int {
	out := make([]int, 0, len(shape)-1)
	out = append(out, shape[:k]...)
	return append(out, shape[k+1:]...)
}
