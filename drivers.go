package nanops

import "fmt"

// ReduceFunc reduces one lane to a scalar. It must not modify lane.
type ReduceFunc func(lane []float64) (float64, error)

// MoveFunc writes a moving-window statistic of lane into dst, which has the
// same length as lane. window and minCount are already validated.
type MoveFunc func(dst, lane []float64, window, minCount int)

// MapFunc transforms one lane into dst, which has the same length as lane.
// lane is a private copy and may be modified.
type MapFunc func(dst, lane []float64) error

// Reduce applies fn along axis. With AxisNone the result is zero-dimensional;
// otherwise axis is removed from the result shape.
func Reduce(a *Array, axis Axis, fn ReduceFunc) (*Array, error) {
	if axis.IsNone() {
		v, err := fn(a.data)
		if err != nil {
			return nil, err
		}
		return Scalar(v), nil
	}
	k, err := axis.normalize(a.Ndim())
	if err != nil {
		return nil, err
	}
	out := Zeros(reducedShape(a.shape, k)...)
	buf := make([]float64, a.shape[k])
	err = a.Lanes(k, func(i int, l Lane) error {
		v, err := fn(l.View(buf, a.data))
		if err != nil {
			return err
		}
		out.data[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Move applies a moving-window function along axis. A minCount of zero or
// less means minCount equals window.
func Move(a *Array, window, minCount int, axis Axis, fn MoveFunc) (*Array, error) {
	if axis.IsNone() {
		axis = AxisLast
	}
	if a.Ndim() == 0 {
		return nil, fmt.Errorf("%w: moving window needs at least one dimension", ErrAxis)
	}
	k, err := axis.normalize(a.Ndim())
	if err != nil {
		return nil, err
	}
	n := a.shape[k]
	if window < 1 || window > n {
		return nil, fmt.Errorf("%w: window %d must be in [1, %d]", ErrWindow, window, n)
	}
	if minCount <= 0 {
		minCount = window
	}
	if minCount > window {
		return nil, fmt.Errorf("%w: min count %d exceeds window %d", ErrWindow, minCount, window)
	}
	out := Zeros(a.shape...)
	in := make([]float64, n)
	res := make([]float64, n)
	err = a.Lanes(k, func(_ int, l Lane) error {
		fn(res, l.View(in, a.data), window, minCount)
		l.Scatter(out.data, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MapLanes applies fn to every lane along axis. With AxisNone the array is
// flattened and the result is one-dimensional.
func MapLanes(a *Array, axis Axis, fn MapFunc) (*Array, error) {
	if axis.IsNone() {
		lane := make([]float64, len(a.data))
		copy(lane, a.data)
		out := Zeros(len(a.data))
		if err := fn(out.data, lane); err != nil {
			return nil, err
		}
		return out, nil
	}
	k, err := axis.normalize(a.Ndim())
	if err != nil {
		return nil, err
	}
	n := a.shape[k]
	out := Zeros(a.shape...)
	in := make([]float64, n)
	res := make([]float64, n)
	err = a.Lanes(k, func(_ int, l Lane) error {
		if err := fn(res, l.Gather(in, a.data)); err != nil {
			return err
		}
		l.Scatter(out.data, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
