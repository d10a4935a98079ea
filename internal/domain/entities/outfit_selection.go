package entities

import (
	"errors"
	"fmt"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

var (
	ErrNotSwatch   = errors.New("color is not a swatch")
	ErrStaleUpload = errors.New("stale image upload")
)

type SessionID string

type slotState struct {
	color      valueobjects.Color
	image      valueobjects.ImageReference
	generation uint64
}

// OutfitSelection is the user's current input. It is a value: every change
// returns a new selection and leaves the receiver untouched.
type OutfitSelection struct {
	upper    slotState
	lower    slotState
	shoe     slotState
	occasion valueobjects.Occasion
}

func NewOutfitSelection() OutfitSelection {
	return OutfitSelection{}
}

func (s OutfitSelection) Color(slot valueobjects.Slot) valueobjects.Color {
	st, _ := s.slot(slot)
	return st.color
}

func (s OutfitSelection) Image(slot valueobjects.Slot) valueobjects.ImageReference {
	st, _ := s.slot(slot)
	return st.image
}

// Generation is bumped whenever the slot's image is cleared or the selection
// is reset. Uploads started under an older generation are rejected.
func (s OutfitSelection) Generation(slot valueobjects.Slot) uint64 {
	st, _ := s.slot(slot)
	return st.generation
}

func (s OutfitSelection) Occasion() valueobjects.Occasion {
	return s.occasion
}

func (s OutfitSelection) Palette() Palette {
	return Palette{Upper: s.upper.color, Lower: s.lower.color, Shoe: s.shoe.color}
}

func (s OutfitSelection) Images() ImageSet {
	return ImageSet{Upper: s.upper.image, Lower: s.lower.image, Shoe: s.shoe.image}
}

// IsComplete reports whether every slot holds a color.
func (s OutfitSelection) IsComplete() bool {
	return !s.upper.color.IsEmpty() && !s.lower.color.IsEmpty() && !s.shoe.color.IsEmpty()
}

func (s OutfitSelection) HasAnyInput() bool {
	for _, st := range []slotState{s.upper, s.lower, s.shoe} {
		if !st.color.IsEmpty() || !st.image.IsEmpty() {
			return true
		}
	}
	return s.occasion != valueobjects.OccasionNone
}

// WithColor overwrites the slot's color with whatever was entered.
func (s OutfitSelection) WithColor(slot valueobjects.Slot, color valueobjects.Color) (OutfitSelection, error) {
	st, err := s.slot(slot)
	if err != nil {
		return s, err
	}
	st.color = color
	return s.withSlot(slot, st), nil
}

func (s OutfitSelection) WithSwatch(slot valueobjects.Slot, color valueobjects.Color) (OutfitSelection, error) {
	if !valueobjects.IsSwatch(color) {
		return s, fmt.Errorf("%w: %q", ErrNotSwatch, color)
	}
	return s.WithColor(slot, color)
}

// WithOccasion replaces the occasion. Picking the current one again changes
// nothing.
func (s OutfitSelection) WithOccasion(occasion valueobjects.Occasion) (OutfitSelection, error) {
	if !occasion.IsKnown() {
		return s, fmt.Errorf("%w: %q", valueobjects.ErrUnknownOccasion, occasion)
	}
	s.occasion = occasion
	return s, nil
}

// WithImage attaches an upload that was started when the slot was at
// generation.
func (s OutfitSelection) WithImage(slot valueobjects.Slot, ref valueobjects.ImageReference, generation uint64) (OutfitSelection, error) {
	st, err := s.slot(slot)
	if err != nil {
		return s, err
	}
	if generation != st.generation {
		return s, fmt.Errorf("%w: slot %s is at generation %d, upload was for %d", ErrStaleUpload, slot, st.generation, generation)
	}
	st.image = ref
	return s.withSlot(slot, st), nil
}

func (s OutfitSelection) WithoutImage(slot valueobjects.Slot) (OutfitSelection, error) {
	st, err := s.slot(slot)
	if err != nil {
		return s, err
	}
	st.image = ""
	st.generation++
	return s.withSlot(slot, st), nil
}

// Reset empties every field. Generations keep counting up so uploads in
// flight before the reset are still recognized as stale.
func (s OutfitSelection) Reset() OutfitSelection {
	return OutfitSelection{
		upper: slotState{generation: s.upper.generation + 1},
		lower: slotState{generation: s.lower.generation + 1},
		shoe:  slotState{generation: s.shoe.generation + 1},
	}
}

func (s OutfitSelection) slot(slot valueobjects.Slot) (slotState, error) {
	switch slot {
	case valueobjects.SlotUpper:
		return s.upper, nil
	case valueobjects.SlotLower:
		return s.lower, nil
	case valueobjects.SlotShoe:
		return s.shoe, nil
	default:
		return slotState{}, fmt.Errorf("%w: %q", valueobjects.ErrUnknownSlot, slot)
	}
}

func (s OutfitSelection) withSlot(slot valueobjects.Slot, st slotState) OutfitSelection {
	switch slot {
	case valueobjects.SlotUpper:
		s.upper = st
	case valueobjects.SlotLower:
		s.lower = st
	case valueobjects.SlotShoe:
		s.shoe = st
	}
	return s
}

// SlotSnapshot and SelectionSnapshot are the storable form of a selection.
type SlotSnapshot struct {
	Color      string `json:"color,omitempty"`
	Image      string `json:"image,omitempty"`
	Generation uint64 `json:"generation"`
}

type SelectionSnapshot struct {
	Upper    SlotSnapshot `json:"upper"`
	Lower    SlotSnapshot `json:"lower"`
	Shoe     SlotSnapshot `json:"shoe"`
	Occasion string       `json:"occasion,omitempty"`
}

func (s OutfitSelection) Snapshot() SelectionSnapshot {
	snap := func(st slotState) SlotSnapshot {
		return SlotSnapshot{Color: string(st.color), Image: string(st.image), Generation: st.generation}
	}
	return SelectionSnapshot{
		Upper:    snap(s.upper),
		Lower:    snap(s.lower),
		Shoe:     snap(s.shoe),
		Occasion: string(s.occasion),
	}
}

// RestoreSelection rebuilds a selection from storage. An occasion that is no
// longer selectable is dropped.
func RestoreSelection(snap SelectionSnapshot) OutfitSelection {
	restore := func(ss SlotSnapshot) slotState {
		return slotState{
			color:      valueobjects.Color(ss.Color),
			image:      valueobjects.ImageReference(ss.Image),
			generation: ss.Generation,
		}
	}
	occasion := valueobjects.Occasion(snap.Occasion)
	if !occasion.IsKnown() {
		occasion = valueobjects.OccasionNone
	}
	return OutfitSelection{
		upper:    restore(snap.Upper),
		lower:    restore(snap.Lower),
		shoe:     restore(snap.Shoe),
		occasion: occasion,
	}
}
