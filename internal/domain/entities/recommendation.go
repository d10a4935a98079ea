package entities

import "github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"

// Palette is one color per slot.
type Palette struct {
	Upper valueobjects.Color `json:"upper"`
	Lower valueobjects.Color `json:"lower"`
	Shoe  valueobjects.Color `json:"shoe"`
}

func (p Palette) For(slot valueobjects.Slot) valueobjects.Color {
	switch slot {
	case valueobjects.SlotUpper:
		return p.Upper
	case valueobjects.SlotLower:
		return p.Lower
	case valueobjects.SlotShoe:
		return p.Shoe
	default:
		return ""
	}
}

// ImageSet is one optional image per slot.
type ImageSet struct {
	Upper valueobjects.ImageReference `json:"upper,omitempty"`
	Lower valueobjects.ImageReference `json:"lower,omitempty"`
	Shoe  valueobjects.ImageReference `json:"shoe,omitempty"`
}

func (s ImageSet) For(slot valueobjects.Slot) valueobjects.ImageReference {
	switch slot {
	case valueobjects.SlotUpper:
		return s.Upper
	case valueobjects.SlotLower:
		return s.Lower
	case valueobjects.SlotShoe:
		return s.Shoe
	default:
		return ""
	}
}

// Recommendation is one suggestion card. Images is nil for generated looks;
// a card without an image for a slot shows the color swatch instead.
type Recommendation struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      string    `json:"rating"`
	Colors      Palette   `json:"colors"`
	Images      *ImageSet `json:"images,omitempty"`
}

func (r Recommendation) ImageFor(slot valueobjects.Slot) valueobjects.ImageReference {
	if r.Images == nil {
		return ""
	}
	return r.Images.For(slot)
}
