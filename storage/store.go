// ABOUTME: BadgerDB-backed local store for wardrobe data
// ABOUTME: Persists JSON-serialized entity lists under fixed keys
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// Storage keys. Each key holds one JSON array of entities, mirroring the
// layout older app versions used so existing databases keep working.
const (
	keyClothes = "closet-clothes"
	keyOutfits = "closet-outfits"
)

// Store wraps a Badger database holding the device's wardrobe. All writes go
// through a read-modify-write of the whole list under one key, guarded by a
// mutex so concurrent callers cannot interleave within one list update.
type Store struct {
	db  *badger.DB
	mu  sync.Mutex
	log *zap.Logger
}

// Open opens (or creates) the store at dir. A nil logger disables logging.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", dir, err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// readList unmarshals the JSON array stored under key into out. A missing
// key leaves out untouched. Dates arrive as RFC 3339 strings and are parsed
// back to instants by encoding/json.
func (s *Store) readList(key string, out any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	return nil
}

// writeList marshals list and stores it under key.
func (s *Store) writeList(key string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
