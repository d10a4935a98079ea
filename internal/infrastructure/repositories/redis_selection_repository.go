package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	domainrepos "github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
)

// RedisSelectionRepository stores JSON snapshots under prefix+sessionID
// with the session TTL, refreshed on every load and save.
type RedisSelectionRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisSelectionRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisSelectionRepository {
	return &RedisSelectionRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisSelectionRepository) key(id entities.SessionID) string {
	return r.prefix + string(id)
}

func (r *RedisSelectionRepository) Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	data, err := r.client.GetEx(ctx, r.key(id), r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.OutfitSelection{}, domainrepos.ErrSelectionNotFound
	}
	if err != nil {
		return entities.OutfitSelection{}, fmt.Errorf("redis getex: %w", err)
	}

	return decodeSelection(data)
}

func (r *RedisSelectionRepository) Save(ctx context.Context, id entities.SessionID, selection entities.OutfitSelection) error {
	data, err := encodeSelection(selection)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisSelectionRepository) Close() error {
	return r.client.Close()
}
