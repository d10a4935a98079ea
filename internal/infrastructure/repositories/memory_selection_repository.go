package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	domainrepos "github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/metrics"
)

type memoryEntry struct {
	selection entities.OutfitSelection
	expiresAt time.Time
}

// MemorySelectionRepository keeps selections in process memory. Expired
// entries are invisible to Load and are removed by Serve.
type MemorySelectionRepository struct {
	entries       map[entities.SessionID]memoryEntry
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
	mu            sync.Mutex
}

func NewMemorySelectionRepository(ttl, sweepInterval time.Duration) *MemorySelectionRepository {
	return &MemorySelectionRepository{
		entries:       make(map[entities.SessionID]memoryEntry),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Load returns a live entry and pushes its expiry a full TTL ahead.
func (r *MemorySelectionRepository) Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, exists := r.entries[id]
	if !exists || !now.Before(entry.expiresAt) {
		return entities.OutfitSelection{}, domainrepos.ErrSelectionNotFound
	}

	entry.expiresAt = now.Add(r.ttl)
	r.entries[id] = entry
	return entry.selection, nil
}

func (r *MemorySelectionRepository) Save(ctx context.Context, id entities.SessionID, selection entities.OutfitSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[id] = memoryEntry{selection: selection, expiresAt: r.now().Add(r.ttl)}
	metrics.SessionsActive.Set(float64(len(r.entries)))
	return nil
}

func (r *MemorySelectionRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.entries)
	return nil
}

// Sweep removes expired entries and returns how many were dropped.
func (r *MemorySelectionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}

	metrics.SessionsActive.Set(float64(len(r.entries)))
	metrics.SessionsExpired.Add(float64(removed))
	return removed
}

// Serve runs the sweeper until ctx is done. It satisfies suture.Service.
func (r *MemorySelectionRepository) Serve(ctx context.Context) error {
	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := r.Sweep(); removed > 0 {
				logging.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}

func (r *MemorySelectionRepository) String() string {
	return "memory-session-sweeper"
}
