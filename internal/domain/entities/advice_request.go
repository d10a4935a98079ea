package entities

import (
	"fmt"
	"time"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

type AdviceRequestID string

// AdviceRequest asks the style advisor to comment on a selection.
type AdviceRequest struct {
	id              AdviceRequestID
	palette         Palette
	occasion        valueobjects.Occasion
	recommendations []Recommendation
	images          map[valueobjects.Slot]*valueobjects.ImageData
	createdAt       time.Time
}

func NewAdviceRequest(
	palette Palette,
	occasion valueobjects.Occasion,
	recommendations []Recommendation,
	images map[valueobjects.Slot]*valueobjects.ImageData,
) (*AdviceRequest, error) {
	if len(recommendations) == 0 {
		return nil, fmt.Errorf("at least one recommendation is required")
	}

	if images == nil {
		images = make(map[valueobjects.Slot]*valueobjects.ImageData)
	}

	id := AdviceRequestID(fmt.Sprintf("adv_%d", time.Now().UnixNano()))

	return &AdviceRequest{
		id:              id,
		palette:         palette,
		occasion:        occasion,
		recommendations: recommendations,
		images:          images,
		createdAt:       time.Now(),
	}, nil
}

func (r *AdviceRequest) ID() AdviceRequestID {
	return r.id
}

func (r *AdviceRequest) Palette() Palette {
	return r.palette
}

func (r *AdviceRequest) Occasion() valueobjects.Occasion {
	return r.occasion
}

func (r *AdviceRequest) Recommendations() []Recommendation {
	return r.recommendations
}

// Image returns the slot's uploaded image, or nil.
func (r *AdviceRequest) Image(slot valueobjects.Slot) *valueobjects.ImageData {
	return r.images[slot]
}

func (r *AdviceRequest) CreatedAt() time.Time {
	return r.createdAt
}

// PrepareImages converts every attached image to JPEG for the model.
func (r *AdviceRequest) PrepareImages() error {
	for slot, img := range r.images {
		converted, err := img.ToJPEG()
		if err != nil {
			return fmt.Errorf("failed to convert %s image to JPEG: %w", slot, err)
		}
		r.images[slot] = converted
	}
	return nil
}
