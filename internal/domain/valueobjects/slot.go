package valueobjects

import (
	"errors"
	"fmt"
)

var ErrUnknownSlot = errors.New("unknown slot")

// Slot is one of the three clothing inputs.
type Slot string

const (
	SlotUpper Slot = "upper"
	SlotLower Slot = "lower"
	SlotShoe  Slot = "shoe"
)

// Slots lists every slot in page order.
var Slots = []Slot{SlotUpper, SlotLower, SlotShoe}

func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	switch slot {
	case SlotUpper, SlotLower, SlotShoe:
		return slot, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, s)
	}
}

func (s Slot) Title() string {
	switch s {
	case SlotUpper:
		return "Upper Wear"
	case SlotLower:
		return "Lower Wear"
	case SlotShoe:
		return "Footwear"
	default:
		return ""
	}
}

// Label is the short column header used on recommendation cards.
func (s Slot) Label() string {
	switch s {
	case SlotUpper:
		return "Upper"
	case SlotLower:
		return "Lower"
	case SlotShoe:
		return "Shoes"
	default:
		return ""
	}
}

func (s Slot) Icon() string {
	switch s {
	case SlotUpper:
		return "👕"
	case SlotLower:
		return "👖"
	case SlotShoe:
		return "👟"
	default:
		return ""
	}
}

func (s Slot) Placeholder() string {
	switch s {
	case SlotUpper:
		return "Shirt, t-shirt, blouse..."
	case SlotLower:
		return "Pants, jeans, skirt..."
	case SlotShoe:
		return "Shoes, sneakers, boots..."
	default:
		return "Enter color (hex, rgb, or name)"
	}
}

func (s Slot) String() string {
	return string(s)
}
