package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/metrics"
)

// SelectionUseCase applies user actions to a session's selection. Every
// action is load, transform, save under the session's lock.
type SelectionUseCase struct {
	selectionRepo repositories.SelectionRepository
	recommender   *services.RecommendationDomainService
	locks         *sessionLocks
}

func NewSelectionUseCase(
	selectionRepo repositories.SelectionRepository,
	recommender *services.RecommendationDomainService,
) *SelectionUseCase {
	return &SelectionUseCase{
		selectionRepo: selectionRepo,
		recommender:   recommender,
		locks:         newSessionLocks(),
	}
}

type SelectionOutput struct {
	Selection       entities.OutfitSelection
	Recommendations []entities.Recommendation
}

type ImageUploadInput struct {
	Slot       valueobjects.Slot
	Generation uint64
	Data       []byte
}

// Load returns an empty selection for sessions with nothing stored.
func (uc *SelectionUseCase) Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	selection, err := uc.selectionRepo.Load(ctx, id)
	if errors.Is(err, repositories.ErrSelectionNotFound) {
		return entities.NewOutfitSelection(), nil
	}
	if err != nil {
		return entities.OutfitSelection{}, fmt.Errorf("failed to load selection: %w", err)
	}
	return selection, nil
}

// View loads the selection and derives its recommendations.
func (uc *SelectionUseCase) View(ctx context.Context, id entities.SessionID) (*SelectionOutput, error) {
	selection, err := uc.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	recs := uc.recommender.GenerateForSelection(selection)
	metrics.RecordRecommendations(string(selection.Occasion()))

	return &SelectionOutput{Selection: selection, Recommendations: recs}, nil
}

func (uc *SelectionUseCase) SetColor(ctx context.Context, id entities.SessionID, slot valueobjects.Slot, color valueobjects.Color) (entities.OutfitSelection, error) {
	return uc.update(ctx, id, "color", func(sel entities.OutfitSelection) (entities.OutfitSelection, error) {
		return sel.WithColor(slot, color)
	})
}

func (uc *SelectionUseCase) ApplySwatch(ctx context.Context, id entities.SessionID, slot valueobjects.Slot, color valueobjects.Color) (entities.OutfitSelection, error) {
	return uc.update(ctx, id, "swatch", func(sel entities.OutfitSelection) (entities.OutfitSelection, error) {
		return sel.WithSwatch(slot, color)
	})
}

func (uc *SelectionUseCase) SelectOccasion(ctx context.Context, id entities.SessionID, occasion valueobjects.Occasion) (entities.OutfitSelection, error) {
	return uc.update(ctx, id, "occasion", func(sel entities.OutfitSelection) (entities.OutfitSelection, error) {
		return sel.WithOccasion(occasion)
	})
}

// AttachImage stores an uploaded file as the slot's data URL. It fails with
// valueobjects.ErrUnsupportedImage for unreadable files and with
// entities.ErrStaleUpload when the slot was cleared after the upload began.
func (uc *SelectionUseCase) AttachImage(ctx context.Context, id entities.SessionID, input ImageUploadInput) (entities.OutfitSelection, error) {
	image, err := valueobjects.NewImageData(input.Data)
	if err != nil {
		metrics.ImageUploads.WithLabelValues(string(input.Slot), "unsupported").Inc()
		return entities.OutfitSelection{}, err
	}
	ref := image.ToDataURL()

	selection, err := uc.update(ctx, id, "image", func(sel entities.OutfitSelection) (entities.OutfitSelection, error) {
		return sel.WithImage(input.Slot, ref, input.Generation)
	})
	switch {
	case errors.Is(err, entities.ErrStaleUpload):
		metrics.ImageUploads.WithLabelValues(string(input.Slot), "stale").Inc()
	case err == nil:
		metrics.ImageUploads.WithLabelValues(string(input.Slot), "stored").Inc()
		logging.Ctx(ctx).Debug().
			Str("slot", string(input.Slot)).
			Str("format", string(image.Format())).
			Int("bytes", len(input.Data)).
			Msg("image attached")
	}
	return selection, err
}

func (uc *SelectionUseCase) ClearImage(ctx context.Context, id entities.SessionID, slot valueobjects.Slot) (entities.OutfitSelection, error) {
	return uc.update(ctx, id, "clear_image", func(sel entities.OutfitSelection) (entities.OutfitSelection, error) {
		return sel.WithoutImage(slot)
	})
}

// Reset empties the selection but keeps it stored so slot generations stay
// monotonic for uploads still in flight.
func (uc *SelectionUseCase) Reset(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	return uc.update(ctx, id, "reset", func(sel entities.OutfitSelection) (entities.OutfitSelection, error) {
		return sel.Reset(), nil
	})
}

func (uc *SelectionUseCase) update(
	ctx context.Context,
	id entities.SessionID,
	action string,
	apply func(entities.OutfitSelection) (entities.OutfitSelection, error),
) (entities.OutfitSelection, error) {
	unlock := uc.locks.lock(id)
	defer unlock()

	current, err := uc.Load(ctx, id)
	if err != nil {
		return entities.OutfitSelection{}, err
	}

	next, err := apply(current)
	if err != nil {
		return current, err
	}

	if err := uc.selectionRepo.Save(ctx, id, next); err != nil {
		return current, fmt.Errorf("failed to save selection: %w", err)
	}

	metrics.SelectionUpdates.WithLabelValues(action).Inc()
	return next, nil
}
