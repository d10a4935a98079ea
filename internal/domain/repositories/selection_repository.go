package repositories

import (
	"context"
	"errors"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
)

var ErrSelectionNotFound = errors.New("selection not found")

// SelectionRepository stores one OutfitSelection per browser session.
// Implementations expire entries once the configured session TTL passes
// without a Load or Save; both push the expiry a full TTL ahead.
type SelectionRepository interface {
	// Load returns ErrSelectionNotFound when the session has no stored selection.
	Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error)
	Save(ctx context.Context, id entities.SessionID, selection entities.OutfitSelection) error

	Close() error
}
