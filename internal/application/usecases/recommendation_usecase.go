package usecases

import (
	"context"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/metrics"
)

// RecommendationUseCase runs the generator on raw input without touching
// any session.
type RecommendationUseCase struct {
	recommender *services.RecommendationDomainService
}

func NewRecommendationUseCase(recommender *services.RecommendationDomainService) *RecommendationUseCase {
	return &RecommendationUseCase{recommender: recommender}
}

type RecommendationInput struct {
	Upper    string
	Lower    string
	Shoe     string
	Occasion string
	Images   entities.ImageSet
}

type RecommendationOutput struct {
	Occasion        valueobjects.OccasionInfo `json:"occasion"`
	Recommendations []entities.Recommendation `json:"recommendations"`
}

func (uc *RecommendationUseCase) Execute(ctx context.Context, input RecommendationInput) *RecommendationOutput {
	occasion := valueobjects.Occasion(input.Occasion)
	palette := entities.Palette{
		Upper: valueobjects.Color(input.Upper),
		Lower: valueobjects.Color(input.Lower),
		Shoe:  valueobjects.Color(input.Shoe),
	}

	recs := uc.recommender.Generate(palette, occasion, input.Images)
	metrics.RecordRecommendations(string(occasion))

	return &RecommendationOutput{
		Occasion:        occasion.Info(),
		Recommendations: recs,
	}
}
