package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	domainrepos "github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
)

const selectionKeyPrefix = "selection:"

// BadgerSelectionRepository persists selections in an embedded BadgerDB so
// sessions survive a restart. Entries carry a native TTL that every load
// and save rewrites.
type BadgerSelectionRepository struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadger opens a database at path, or an in-memory one when path is "".
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}

func NewBadgerSelectionRepository(db *badger.DB, ttl time.Duration) *BadgerSelectionRepository {
	return &BadgerSelectionRepository{db: db, ttl: ttl}
}

func selectionKey(id entities.SessionID) []byte {
	return []byte(selectionKeyPrefix + string(id))
}

func (r *BadgerSelectionRepository) Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	var data []byte

	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(selectionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domainrepos.ErrSelectionNotFound
		}
		if err != nil {
			return fmt.Errorf("get selection: %w", err)
		}

		data, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		if err := txn.SetEntry(badger.NewEntry(selectionKey(id), data).WithTTL(r.ttl)); err != nil {
			return fmt.Errorf("refresh selection ttl: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.OutfitSelection{}, err
	}

	return decodeSelection(data)
}

func (r *BadgerSelectionRepository) Save(ctx context.Context, id entities.SessionID, selection entities.OutfitSelection) error {
	data, err := encodeSelection(selection)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(selectionKey(id), data).WithTTL(r.ttl)
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set selection: %w", err)
		}
		return nil
	})
}

func (r *BadgerSelectionRepository) Close() error {
	return r.db.Close()
}
