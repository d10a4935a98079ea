package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

func TestOutfitSelection_WithColor(t *testing.T) {
	sel := NewOutfitSelection()

	next, err := sel.WithColor(valueobjects.SlotUpper, "navy blue, ish")
	require.NoError(t, err)

	assert.Equal(t, valueobjects.Color("navy blue, ish"), next.Color(valueobjects.SlotUpper))
	assert.True(t, sel.Color(valueobjects.SlotUpper).IsEmpty(), "receiver must not change")
	assert.False(t, next.IsComplete())
	assert.True(t, next.HasAnyInput())

	_, err = sel.WithColor(valueobjects.Slot("hat"), "#000000")
	assert.True(t, errors.Is(err, valueobjects.ErrUnknownSlot))
}

func TestOutfitSelection_WithSwatch(t *testing.T) {
	tests := []struct {
		name    string
		color   valueobjects.Color
		wantErr bool
	}{
		{name: "swatch is stored literally", color: "#FFC0CB"},
		{name: "lowercase swatch is rejected", color: "#ffc0cb", wantErr: true},
		{name: "non swatch is rejected", color: "#123456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := NewOutfitSelection().WithSwatch(valueobjects.SlotShoe, tt.color)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNotSwatch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.color, sel.Color(valueobjects.SlotShoe))
		})
	}
}

func TestOutfitSelection_WithOccasion(t *testing.T) {
	sel, err := NewOutfitSelection().WithOccasion(valueobjects.OccasionMovie)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.OccasionMovie, sel.Occasion())

	again, err := sel.WithOccasion(valueobjects.OccasionMovie)
	require.NoError(t, err)
	assert.Equal(t, sel, again, "selecting the same occasion is a no-op")

	replaced, err := sel.WithOccasion(valueobjects.OccasionDating)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.OccasionDating, replaced.Occasion())

	_, err = sel.WithOccasion("")
	assert.True(t, errors.Is(err, valueobjects.ErrUnknownOccasion))
}

func TestOutfitSelection_ImageGenerations(t *testing.T) {
	sel := NewOutfitSelection()
	gen := sel.Generation(valueobjects.SlotLower)

	withImage, err := sel.WithImage(valueobjects.SlotLower, "data:image/png;base64,AAAA", gen)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.ImageReference("data:image/png;base64,AAAA"), withImage.Image(valueobjects.SlotLower))

	cleared, err := withImage.WithoutImage(valueobjects.SlotLower)
	require.NoError(t, err)
	assert.True(t, cleared.Image(valueobjects.SlotLower).IsEmpty())
	assert.Equal(t, gen+1, cleared.Generation(valueobjects.SlotLower))

	t.Run("upload started before clear is stale", func(t *testing.T) {
		after, err := cleared.WithImage(valueobjects.SlotLower, "data:image/png;base64,BBBB", gen)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStaleUpload))
		assert.True(t, after.Image(valueobjects.SlotLower).IsEmpty())
	})

	t.Run("other slots keep their generation", func(t *testing.T) {
		assert.Equal(t, uint64(0), cleared.Generation(valueobjects.SlotUpper))
		assert.Equal(t, uint64(0), cleared.Generation(valueobjects.SlotShoe))
	})
}

func TestOutfitSelection_Reset(t *testing.T) {
	sel := NewOutfitSelection()
	sel, _ = sel.WithColor(valueobjects.SlotUpper, "#FF0000")
	sel, _ = sel.WithColor(valueobjects.SlotLower, "#0000FF")
	sel, _ = sel.WithColor(valueobjects.SlotShoe, "#00FF00")
	sel, _ = sel.WithOccasion(valueobjects.OccasionOuting)
	sel, _ = sel.WithImage(valueobjects.SlotUpper, "data:image/png;base64,AAAA", 0)
	require.True(t, sel.IsComplete())

	reset := sel.Reset()
	assert.False(t, reset.HasAnyInput())
	assert.False(t, reset.IsComplete())
	assert.Equal(t, valueobjects.OccasionNone, reset.Occasion())
	for _, slot := range valueobjects.Slots {
		assert.Equal(t, sel.Generation(slot)+1, reset.Generation(slot))
	}

	_, err := reset.WithImage(valueobjects.SlotUpper, "data:image/png;base64,CCCC", 0)
	assert.True(t, errors.Is(err, ErrStaleUpload), "upload from before the reset must not repopulate the slot")
}

func TestSelectionSnapshot_RoundTrip(t *testing.T) {
	sel := NewOutfitSelection()
	sel, _ = sel.WithColor(valueobjects.SlotUpper, "#FF0000")
	sel, _ = sel.WithoutImage(valueobjects.SlotShoe)
	sel, _ = sel.WithImage(valueobjects.SlotShoe, "data:image/gif;base64,R0lG", 1)
	sel, _ = sel.WithOccasion(valueobjects.OccasionFunction)

	restored := RestoreSelection(sel.Snapshot())
	assert.Equal(t, sel, restored)

	snap := sel.Snapshot()
	snap.Occasion = "retired-occasion"
	assert.Equal(t, valueobjects.OccasionNone, RestoreSelection(snap).Occasion())
}
