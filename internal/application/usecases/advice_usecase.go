package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/metrics"
)

var ErrAdvisorDisabled = errors.New("style advisor is disabled")

type AdviceUseCase struct {
	selections    *SelectionUseCase
	recommender   *services.RecommendationDomainService
	domainService *services.AdviceDomainService
}

// NewAdviceUseCase accepts a nil domainService when the advisor is not
// configured; Execute then returns ErrAdvisorDisabled.
func NewAdviceUseCase(
	selections *SelectionUseCase,
	recommender *services.RecommendationDomainService,
	domainService *services.AdviceDomainService,
) *AdviceUseCase {
	return &AdviceUseCase{
		selections:    selections,
		recommender:   recommender,
		domainService: domainService,
	}
}

type AdviceOutput struct {
	RequestID entities.AdviceRequestID `json:"request_id"`
	Advice    string                   `json:"advice"`
}

func (uc *AdviceUseCase) Enabled() bool {
	return uc.domainService != nil
}

func (uc *AdviceUseCase) Execute(ctx context.Context, id entities.SessionID) (*AdviceOutput, error) {
	if !uc.Enabled() {
		return nil, ErrAdvisorDisabled
	}

	selection, err := uc.selections.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !selection.IsComplete() {
		return nil, fmt.Errorf("%w: choose all three colors first", services.ErrInvalidAdvice)
	}

	recs := uc.recommender.GenerateForSelection(selection)

	images := make(map[valueobjects.Slot]*valueobjects.ImageData)
	for _, slot := range valueobjects.Slots {
		ref := selection.Image(slot)
		if ref.IsEmpty() {
			continue
		}
		img, err := valueobjects.ParseDataURL(ref)
		if err != nil {
			// an unreadable stored image is left out of the request
			logging.Ctx(ctx).Warn().Err(err).Str("slot", string(slot)).Msg("stored image skipped")
			continue
		}
		images[slot] = img
	}

	request, err := entities.NewAdviceRequest(selection.Palette(), selection.Occasion(), recs, images)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	result, err := uc.domainService.ProcessAdvice(ctx, request)
	if err != nil {
		if errors.Is(err, services.ErrAdvisorBusy) {
			metrics.AdviceRequests.WithLabelValues("busy").Inc()
		} else {
			metrics.AdviceRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.AdviceRequests.WithLabelValues("ok").Inc()
	return &AdviceOutput{
		RequestID: result.RequestID(),
		Advice:    result.Text(),
	}, nil
}
