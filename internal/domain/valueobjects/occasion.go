package valueobjects

import (
	"errors"
	"fmt"
)

var ErrUnknownOccasion = errors.New("unknown occasion")

// Occasion is the event a look is put together for. The zero value means
// nothing has been selected.
type Occasion string

const (
	OccasionNone     Occasion = ""
	OccasionOuting   Occasion = "outing"
	OccasionDating   Occasion = "dating"
	OccasionFunction Occasion = "function"
	OccasionMovie    Occasion = "movie"
)

// OccasionInfo is the display name and style descriptor used in card text.
type OccasionInfo struct {
	Name  string `json:"name"`
	Style string `json:"style"`
}

// GeneralOccasion is used for an empty or unrecognized occasion.
var GeneralOccasion = OccasionInfo{Name: "General", Style: "versatile"}

// OccasionOption describes one button of the occasion selector.
type OccasionOption struct {
	ID          Occasion `json:"id"`
	Label       string   `json:"label"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
}

// OccasionOptions lists the selectable occasions in display order.
var OccasionOptions = []OccasionOption{
	{ID: OccasionOuting, Label: "Casual Outing", Emoji: "🚶‍♀️", Description: "Relaxed, comfortable style for everyday activities"},
	{ID: OccasionDating, Label: "Date Night", Emoji: "💕", Description: "Romantic, elegant look that impresses"},
	{ID: OccasionFunction, Label: "Formal Function", Emoji: "🎭", Description: "Professional, sophisticated attire for events"},
	{ID: OccasionMovie, Label: "Movie Night", Emoji: "🎬", Description: "Cozy, comfortable style for entertainment"},
}

// ParseOccasion accepts one of the selectable occasions.
func ParseOccasion(s string) (Occasion, error) {
	o := Occasion(s)
	if !o.IsKnown() {
		return OccasionNone, fmt.Errorf("%w: %q", ErrUnknownOccasion, s)
	}
	return o, nil
}

func (o Occasion) IsKnown() bool {
	switch o {
	case OccasionOuting, OccasionDating, OccasionFunction, OccasionMovie:
		return true
	default:
		return false
	}
}

// Info returns the card wording for o, falling back to GeneralOccasion.
func (o Occasion) Info() OccasionInfo {
	switch o {
	case OccasionOuting:
		return OccasionInfo{Name: "Casual Outing", Style: "relaxed and comfortable"}
	case OccasionDating:
		return OccasionInfo{Name: "Date Night", Style: "romantic and elegant"}
	case OccasionFunction:
		return OccasionInfo{Name: "Formal Function", Style: "professional and sophisticated"}
	case OccasionMovie:
		return OccasionInfo{Name: "Movie Night", Style: "cozy and comfortable"}
	default:
		return GeneralOccasion
	}
}

// Option returns the selector entry for o.
func (o Occasion) Option() (OccasionOption, bool) {
	for _, opt := range OccasionOptions {
		if opt.ID == o {
			return opt, true
		}
	}
	return OccasionOption{}, false
}

func (o Occasion) String() string {
	return string(o)
}
