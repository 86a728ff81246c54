// Package registry names the benchmarkable functions, groups them the way the
// benchmark suite classifies them and resolves qualified names such as
// "nanops.nansum" or "slow.move_max" to callables.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	nanops "github.com/tphakala/go-nanops"
)

// Errors returned by the registry.
var (
	ErrUnknownGroup    = errors.New("unknown function group")
	ErrUnknownFunction = errors.New("unknown function")
	ErrArgs            = errors.New("invalid arguments")
)

// Group is a family of functions sharing a call convention.
type Group string

// Function groups.
const (
	GroupReduce        Group = "reduce"
	GroupMove          Group = "move"
	GroupNonreduce     Group = "nonreduce"
	GroupNonreduceAxis Group = "nonreduce_axis"
)

// Groups returns every group in display order.
func Groups() []Group {
	return []Group{GroupReduce, GroupNonreduce, GroupNonreduceAxis, GroupMove}
}

// Func is a callable bound into a setup script. Arguments are *nanops.Array
// or float64 values; the result may be nil.
type Func func(args ...any) (any, error)

// Variant selects which implementation of a function a qualified name
// resolves to.
type Variant string

// Implementation prefixes accepted by Lookup.
const (
	Fast      Variant = "nanops"
	Reference Variant = "slow"
)

// Functions returns the function names in group g, sorted.
func Functions(g Group) ([]string, error) {
	var names []string
	for name, e := range kernels {
		if e.group == g {
			names = append(names, name)
		}
	}
	if names == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}
	slices.Sort(names)
	return names, nil
}

// All returns every registered function name, sorted.
func All() []string {
	return slices.Sorted(maps.Keys(kernels))
}

// InGroup reports whether name belongs to group g.
func InGroup(name string, g Group) bool {
	e, ok := kernels[name]
	return ok && e.group == g
}

// Registry resolves names for one setup script. Constructors draw from the
// registry's own random source so each script sees the same arrays.
type Registry struct {
	rng *rand.Rand
}

// New returns a registry whose rand constructor is seeded with seed.
func New(seed uint64) *Registry {
	return &Registry{rng: nanops.NewRand(seed)}
}

// Lookup resolves a qualified kernel name ("nanops.<fn>" or "slow.<fn>") or
// one of the array constructors "rand" and "array".
func (r *Registry) Lookup(name string) (Func, error) {
	switch name {
	case "rand":
		return r.randArray, nil
	case "array":
		return scalarArray, nil
	}
	prefix, fn, ok := strings.Cut(name, ".")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	e, ok := kernels[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	switch Variant(prefix) {
	case Fast:
		return e.fast, nil
	case Reference:
		return e.ref, nil
	default:
		return nil, fmt.Errorf("%w: %q has no implementation %q", ErrUnknownFunction, fn, prefix)
	}
}

// randArray builds an array of the given shape with uniform values.
func (r *Registry) randArray(args ...any) (any, error) {
	shape := make([]int, len(args))
	for i, v := range args {
		n, err := intArg("rand", v)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: rand dimension %d is negative", ErrArgs, n)
		}
		shape[i] = n
	}
	return nanops.Rand(r.rng, shape...), nil
}

// scalarArray builds a zero-dimensional array.
func scalarArray(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: array takes 1 argument, got %d", ErrArgs, len(args))
	}
	x, err := floatArg("array", args[0])
	if err != nil {
		return nil, err
	}
	return nanops.Scalar(x), nil
}
