package services

import (
	"fmt"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

const (
	monochromeLowerShift = -20
	monochromeShoeShift  = -40
)

type occasionLook struct {
	title       string
	description string
	rating      string
	lower       valueobjects.Color
	shoe        valueobjects.Color
}

// lookFor returns the fixed palette suggested for a selectable occasion.
func lookFor(occasion valueobjects.Occasion) (occasionLook, bool) {
	switch occasion {
	case valueobjects.OccasionDating:
		return occasionLook{"Romantic Elegance", "Perfect for making a memorable impression", "Date Perfect", "#2C2C2C", "#8B4513"}, true
	case valueobjects.OccasionFunction:
		return occasionLook{"Professional Polish", "Sophisticated and business-appropriate", "Meeting Ready", "#1F2937", "#000000"}, true
	case valueobjects.OccasionOuting:
		return occasionLook{"Casual Cool", "Relaxed yet put-together style", "Day Perfect", "#4A5568", "#FFFFFF"}, true
	case valueobjects.OccasionMovie:
		return occasionLook{"Cozy Comfort", "Comfortable for long movie sessions", "Comfort First", "#2D3748", "#718096"}, true
	default:
		return occasionLook{}, false
	}
}

type RecommendationDomainService struct{}

func NewRecommendationDomainService() *RecommendationDomainService {
	return &RecommendationDomainService{}
}

// Generate builds the recommendation cards for a palette. It returns no cards
// until all three colors are set. Any occasion string is accepted; ones that
// are not selectable read as "General". Free-text colors never fail: the
// monochrome card reads them with AdjustBrightness semantics.
func (s *RecommendationDomainService) Generate(
	palette entities.Palette,
	occasion valueobjects.Occasion,
	images entities.ImageSet,
) []entities.Recommendation {
	if palette.Upper.IsEmpty() || palette.Lower.IsEmpty() || palette.Shoe.IsEmpty() {
		return []entities.Recommendation{}
	}

	info := occasion.Info()
	recommendations := []entities.Recommendation{
		{
			Title:       fmt.Sprintf("Current %s Look", info.Name),
			Description: fmt.Sprintf("Your selected colors for a %s occasion", info.Style),
			Rating:      "Personal Choice",
			Colors:      palette,
			Images:      &images,
		},
	}

	if look, ok := lookFor(occasion); ok {
		recommendations = append(recommendations, entities.Recommendation{
			Title:       look.title,
			Description: look.description,
			Rating:      look.rating,
			Colors:      entities.Palette{Upper: palette.Upper, Lower: look.lower, Shoe: look.shoe},
		})
	}

	return append(recommendations, entities.Recommendation{
		Title:       "Monochromatic Style",
		Description: "Sophisticated single-color palette",
		Rating:      "Always Chic",
		Colors: entities.Palette{
			Upper: palette.Upper,
			Lower: valueobjects.AdjustBrightness(palette.Upper, monochromeLowerShift),
			Shoe:  valueobjects.AdjustBrightness(palette.Upper, monochromeShoeShift),
		},
	})
}

func (s *RecommendationDomainService) GenerateForSelection(selection entities.OutfitSelection) []entities.Recommendation {
	return s.Generate(selection.Palette(), selection.Occasion(), selection.Images())
}
