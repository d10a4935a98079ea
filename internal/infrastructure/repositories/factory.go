package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thejerf/suture/v4"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/config"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	domainrepos "github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/metrics"
)

// NewSelectionRepository builds the store named by cfg.Driver. The returned
// service is non-nil only for stores that need a background sweeper.
func NewSelectionRepository(ctx context.Context, store config.StoreConfig, session config.SessionConfig) (domainrepos.SelectionRepository, suture.Service, error) {
	switch store.Driver {
	case "", "memory":
		repo := NewMemorySelectionRepository(session.TTL, session.SweepInterval)
		return instrument("memory", repo), repo, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     store.RedisAddr,
			Password: store.RedisPassword,
			DB:       store.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", store.RedisAddr, err)
		}
		return instrument("redis", NewRedisSelectionRepository(client, store.KeyPrefix, session.TTL)), nil, nil

	case "badger":
		db, err := OpenBadger(store.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return instrument("badger", NewBadgerSelectionRepository(db, session.TTL)), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", store.Driver)
	}
}

type instrumentedRepository struct {
	driver string
	next   domainrepos.SelectionRepository
}

func instrument(driver string, next domainrepos.SelectionRepository) domainrepos.SelectionRepository {
	return &instrumentedRepository{driver: driver, next: next}
}

func (r *instrumentedRepository) Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	start := time.Now()
	selection, err := r.next.Load(ctx, id)

	// a missing session is not a store failure
	recorded := err
	if errors.Is(recorded, domainrepos.ErrSelectionNotFound) {
		recorded = nil
	}
	metrics.RecordStoreOperation(r.driver, "load", time.Since(start), recorded)
	return selection, err
}

func (r *instrumentedRepository) Save(ctx context.Context, id entities.SessionID, selection entities.OutfitSelection) error {
	start := time.Now()
	err := r.next.Save(ctx, id, selection)
	metrics.RecordStoreOperation(r.driver, "save", time.Since(start), err)
	return err
}

func (r *instrumentedRepository) Close() error {
	return r.next.Close()
}
