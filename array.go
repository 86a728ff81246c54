package nanops

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Common errors returned by array construction and the array functions.
var (
	// ErrShape indicates a shape that does not match the supplied data.
	ErrShape = errors.New("invalid shape")

	// ErrAxis indicates an axis that is out of range for the array.
	ErrAxis = errors.New("axis out of bounds")

	// ErrWindow indicates a moving-window size or min count out of range.
	ErrWindow = errors.New("invalid moving window")

	// ErrN indicates an invalid element count for partsort, argpartsort or push.
	ErrN = errors.New("invalid n")

	// ErrEmpty indicates a reduction over a zero-size lane that has no identity.
	ErrEmpty = errors.New("zero-size array to reduction operation")

	// ErrAllNaN indicates an arg reduction over a lane containing only NaN.
	ErrAllNaN = errors.New("all-NaN slice encountered")
)

// Array is a dense, row-major N-dimensional array of float64 values.
// A zero-dimensional array holds exactly one element.
type Array struct {
	shape []int
	data  []float64
}

// New wraps data in an array of the given shape. The data slice is not copied.
func New(data []float64, shape ...int) (*Array, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if size != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrShape, shape, size, len(data))
	}
	return &Array{shape: cloneShape(shape), data: data}, nil
}

// Zeros returns a zero-filled array of the given shape.
// It panics if any dimension is negative.
func Zeros(shape ...int) *Array {
	size, err := shapeSize(shape)
	if err != nil {
		panic(err)
	}
	return &Array{shape: cloneShape(shape), data: make([]float64, size)}
}

// Full returns an array of the given shape with every element set to v.
func Full(v float64, shape ...int) *Array {
	a := Zeros(shape...)
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// Scalar returns a zero-dimensional array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// FromSlice returns a one-dimensional array copied from s.
func FromSlice(s []float64) *Array {
	data := make([]float64, len(s))
	copy(data, s)
	return &Array{shape: []int{len(s)}, data: data}
}

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int {
	return cloneShape(a.shape)
}

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// Data returns the backing slice in row-major order. Writes are visible
// through the array.
func (a *Array) Data() []float64 {
	return a.data
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: cloneShape(a.shape), data: data}
}

// Item returns the single element of a size-one array.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, fmt.Errorf("%w: item requires size 1, got %d", ErrShape, len(a.data))
	}
	return a.data[0], nil
}

// At returns the element at the given multi-index.
// It panics if the index does not address an element.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("nanops: %d indices for %d-d array", len(idx), len(a.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("nanops: index %d out of range for axis %d with size %d", i, d, a.shape[d]))
		}
		off = off*a.shape[d] + i
	}
	return a.data[off]
}

// Reshape returns an array sharing a's data with a new shape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	return New(a.data, shape...)
}

// HasNaN reports whether any element is NaN.
func (a *Array) HasNaN() bool {
	for _, v := range a.data {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// String formats small arrays in full and large ones by shape only.
func (a *Array) String() string {
	if len(a.data) > maxPrintElements {
		return fmt.Sprintf("Array(shape=%v)", a.shape)
	}
	var sb strings.Builder
	sb.WriteString("Array(")
	fmt.Fprintf(&sb, "%v", a.data)
	fmt.Fprintf(&sb, ", shape=%v)", a.shape)
	return sb.String()
}

func shapeSize(shape []int) (int, error) {
	size := 1
	for d, n := range shape {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative dimension %d on axis %d", ErrShape, n, d)
		}
		size *= n
	}
	return size, nil
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}
