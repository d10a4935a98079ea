package repositories

import (
	"context"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
)

// StyleAdvisorAIService produces a short styling note for a selection.
type StyleAdvisorAIService interface {
	GenerateAdvice(ctx context.Context, request *entities.AdviceRequest) (*entities.AdviceResult, error)

	Close() error
}
