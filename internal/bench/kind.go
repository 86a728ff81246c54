package bench

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-nanops/internal/registry"
)

// ErrUnrecognizedFunction is returned for identifiers no Kind covers.
var ErrUnrecognizedFunction = errors.New("function not recognized")

// Kind is the call convention a benchmarked function follows.
type Kind int

// Signature kinds.
const (
	KindReduce Kind = iota
	KindMovingWindow
	KindRank
	KindPartialSort
	KindReplace
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindReduce:
		return "reduce"
	case KindMovingWindow:
		return "moving window"
	case KindRank:
		return "rank"
	case KindPartialSort:
		return "partial sort"
	case KindReplace:
		return "replace"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Slot selects one of the signature columns of a Row.
type Slot int

// Signature slots.
const (
	SlotOneInput Slot = iota
	SlotMovingWindow
	SlotReplace
)

// String implements fmt.Stringer.
func (s Slot) String() string {
	switch s {
	case SlotOneInput:
		return "one input"
	case SlotMovingWindow:
		return "moving window"
	case SlotReplace:
		return "replace"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Slot returns the signature column used by functions of kind k. Rank
// functions share the one-input column and partial sorts the moving-window
// column.
func (k Kind) Slot() Slot {
	switch k {
	case KindMovingWindow, KindPartialSort:
		return SlotMovingWindow
	case KindReplace:
		return SlotReplace
	default:
		return SlotOneInput
	}
}

// Classify returns the kind of fn. The first matching rule wins: reduce
// group, moving-window group, rank functions, partial sorts and push, then
// replace.
func Classify(fn string) (Kind, error) {
	switch {
	case registry.InGroup(fn, registry.GroupReduce):
		return KindReduce, nil
	case registry.InGroup(fn, registry.GroupMove):
		return KindMovingWindow, nil
	}
	switch fn {
	case "rankdata", "nanrankdata":
		return KindRank, nil
	case "partsort", "argpartsort", "push":
		return KindPartialSort, nil
	case "replace":
		return KindReplace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedFunction, fn)
}
