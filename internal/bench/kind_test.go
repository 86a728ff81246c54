package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-nanops/internal/registry"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		fn   string
		kind Kind
		slot Slot
	}{
		{"nansum", KindReduce, SlotOneInput},
		{"median", KindReduce, SlotOneInput},
		{"move_sum", KindMovingWindow, SlotMovingWindow},
		{"move_median", KindMovingWindow, SlotMovingWindow},
		{"rankdata", KindRank, SlotOneInput},
		{"nanrankdata", KindRank, SlotOneInput},
		{"partsort", KindPartialSort, SlotMovingWindow},
		{"argpartsort", KindPartialSort, SlotMovingWindow},
		{"push", KindPartialSort, SlotMovingWindow},
		{"replace", KindReplace, SlotReplace},
	}
	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			kind, err := Classify(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.slot, kind.Slot())
		})
	}
}

func TestClassifyWholeGroups(t *testing.T) {
	for group, want := range map[registry.Group]Kind{
		registry.GroupReduce: KindReduce,
		registry.GroupMove:   KindMovingWindow,
	} {
		names, err := registry.Functions(group)
		require.NoError(t, err)
		for _, fn := range names {
			kind, err := Classify(fn)
			require.NoError(t, err, fn)
			assert.Equal(t, want, kind, fn)
		}
	}
}

func TestClassifyCoversRegistry(t *testing.T) {
	for _, fn := range registry.All() {
		_, err := Classify(fn)
		assert.NoError(t, err, fn)
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	for _, fn := range []string{"not_a_real_function", "", "Nansum", "nansum_fast"} {
		_, err := Classify(fn)
		require.ErrorIs(t, err, ErrUnrecognizedFunction, fn)
		assert.Contains(t, err.Error(), `"`+fn+`"`)
	}
}

func TestKindAndSlotStrings(t *testing.T) {
	assert.Equal(t, "reduce", KindReduce.String())
	assert.Equal(t, "partial sort", KindPartialSort.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "moving window", SlotMovingWindow.String())
	assert.Equal(t, "Slot(-1)", Slot(-1).String())
	assert.Equal(t, SlotOneInput, Kind(9).Slot())
}
