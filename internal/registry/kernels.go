package registry

import (
	"fmt"
	"math"

	nanops "github.com/tphakala/go-nanops"
	"github.com/tphakala/go-nanops/slow"
)

type (
	reduceKernel  func(*nanops.Array, nanops.Axis) (*nanops.Array, error)
	moveKernel    func(*nanops.Array, int, int, nanops.Axis) (*nanops.Array, error)
	nKernel       func(*nanops.Array, int, nanops.Axis) (*nanops.Array, error)
	replaceKernel func(*nanops.Array, float64, float64)
)

type entry struct {
	group     Group
	fast, ref Func
}

var kernels = map[string]entry{
	"nansum":    reduce(nanops.Nansum, slow.Nansum),
	"nanmean":   reduce(nanops.Nanmean, slow.Nanmean),
	"nanstd":    reduce(nanops.Nanstd, slow.Nanstd),
	"nanvar":    reduce(nanops.Nanvar, slow.Nanvar),
	"nanmin":    reduce(nanops.Nanmin, slow.Nanmin),
	"nanmax":    reduce(nanops.Nanmax, slow.Nanmax),
	"nanargmin": reduce(nanops.Nanargmin, slow.Nanargmin),
	"nanargmax": reduce(nanops.Nanargmax, slow.Nanargmax),
	"median":    reduce(nanops.Median, slow.Median),
	"nanmedian": reduce(nanops.Nanmedian, slow.Nanmedian),
	"ss":        reduce(nanops.Ss, slow.Ss),
	"anynan":    reduce(nanops.Anynan, slow.Anynan),
	"allnan":    reduce(nanops.Allnan, slow.Allnan),

	"move_sum":    move(nanops.MoveSum, slow.MoveSum),
	"move_mean":   move(nanops.MoveMean, slow.MoveMean),
	"move_std":    move(nanops.MoveStd, slow.MoveStd),
	"move_var":    move(nanops.MoveVar, slow.MoveVar),
	"move_min":    move(nanops.MoveMin, slow.MoveMin),
	"move_max":    move(nanops.MoveMax, slow.MoveMax),
	"move_argmin": move(nanops.MoveArgmin, slow.MoveArgmin),
	"move_argmax": move(nanops.MoveArgmax, slow.MoveArgmax),
	"move_median": move(nanops.MoveMedian, slow.MoveMedian),

	"partsort":    withN(nanops.Partsort, slow.Partsort, false),
	"argpartsort": withN(nanops.Argpartsort, slow.Argpartsort, false),
	"push":        withN(nanops.Push, slow.Push, true),
	"rankdata":    rank(nanops.Rankdata, slow.Rankdata),
	"nanrankdata": rank(nanops.Nanrankdata, slow.Nanrankdata),

	"replace": replace(nanops.Replace, slow.Replace),
}

// reduce binds fn(a) and fn(a, axis).
func reduce(fast, ref reduceKernel) entry {
	bind := func(fn reduceKernel) Func {
		return func(args ...any) (any, error) {
			if err := arity("reduction", args, 1, 2); err != nil {
				return nil, err
			}
			a, err := arrayArg(args[0])
			if err != nil {
				return nil, err
			}
			axis, err := axisArg(args, 1, nanops.AxisNone)
			if err != nil {
				return nil, err
			}
			return fn(a, axis)
		}
	}
	return entry{group: GroupReduce, fast: bind(fast), ref: bind(ref)}
}

// move binds fn(a, window [, min_count [, axis]]).
func move(fast, ref moveKernel) entry {
	bind := func(fn moveKernel) Func {
		return func(args ...any) (any, error) {
			if err := arity("moving window", args, 2, 4); err != nil {
				return nil, err
			}
			a, err := arrayArg(args[0])
			if err != nil {
				return nil, err
			}
			window, err := intArg("window", args[1])
			if err != nil {
				return nil, err
			}
			minCount := 0
			if len(args) > 2 {
				if minCount, err = intArg("min_count", args[2]); err != nil {
					return nil, err
				}
			}
			axis, err := axisArg(args, 3, nanops.AxisLast)
			if err != nil {
				return nil, err
			}
			return fn(a, window, minCount, axis)
		}
	}
	return entry{group: GroupMove, fast: bind(fast), ref: bind(ref)}
}

// withN binds fn(a, n [, axis]). When optional is set n may be omitted and
// means no limit.
func withN(fast, ref nKernel, optional bool) entry {
	lo := 2
	if optional {
		lo = 1
	}
	bind := func(fn nKernel) Func {
		return func(args ...any) (any, error) {
			if err := arity("n", args, lo, 3); err != nil {
				return nil, err
			}
			a, err := arrayArg(args[0])
			if err != nil {
				return nil, err
			}
			n := nanops.PushUnlimited
			if len(args) > 1 {
				if n, err = intArg("n", args[1]); err != nil {
					return nil, err
				}
			}
			axis, err := axisArg(args, 2, nanops.AxisLast)
			if err != nil {
				return nil, err
			}
			return fn(a, n, axis)
		}
	}
	return entry{group: GroupNonreduceAxis, fast: bind(fast), ref: bind(ref)}
}

// rank binds fn(a [, axis]).
func rank(fast, ref reduceKernel) entry {
	e := reduce(fast, ref)
	e.group = GroupNonreduceAxis
	return e
}

// replace binds fn(a, old, new), which modifies a and returns nothing.
func replace(fast, ref replaceKernel) entry {
	bind := func(fn replaceKernel) Func {
		return func(args ...any) (any, error) {
			if err := arity("replace", args, 3, 3); err != nil {
				return nil, err
			}
			a, err := arrayArg(args[0])
			if err != nil {
				return nil, err
			}
			old, err := floatArg("old", args[1])
			if err != nil {
				return nil, err
			}
			repl, err := floatArg("new", args[2])
			if err != nil {
				return nil, err
			}
			fn(a, old, repl)
			return nil, nil
		}
	}
	return entry{group: GroupNonreduce, fast: bind(fast), ref: bind(ref)}
}

func arity(what string, args []any, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return fmt.Errorf("%w: %s call takes %d to %d arguments, got %d", ErrArgs, what, lo, hi, len(args))
	}
	return nil
}

func arrayArg(v any) (*nanops.Array, error) {
	a, ok := v.(*nanops.Array)
	if !ok {
		return nil, fmt.Errorf("%w: first argument must be an array, got %T", ErrArgs, v)
	}
	return a, nil
}

func floatArg(name string, v any) (float64, error) {
	x, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrArgs, name, v)
	}
	return x, nil
}

func intArg(name string, v any) (int, error) {
	x, err := floatArg(name, v)
	if err != nil {
		return 0, err
	}
	if x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrArgs, name, x)
	}
	return int(x), nil
}

// axisArg reads an optional axis at position i.
func axisArg(args []any, i int, def nanops.Axis) (nanops.Axis, error) {
	if i >= len(args) {
		return def, nil
	}
	if args[i] == nil {
		return nanops.AxisNone, nil
	}
	k, err := intArg("axis", args[i])
	if err != nil {
		return nanops.Axis{}, err
	}
	return nanops.AxisOf(k), nil
}
