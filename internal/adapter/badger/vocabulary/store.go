// Package vocabulary stores vocabulary documents in BadgerDB under the key
// "{partitionKey}/{id}". Document TTL hints are enforced by badger itself.
package vocabulary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/docstore"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

// Store provides vocabulary persistence backed by BadgerDB.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL expires every saved document ttl after its save. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// New creates a new badger-backed vocabulary store.
func New(db *badger.DB, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save validates the aggregate and writes its document, keeping the row id
// of an existing document with the same key.
func (s *Store) Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, err := docstore.FillAndValidate(v)
	if err != nil {
		return nil, err
	}
	if s.ttl > 0 {
		secs := int(s.ttl / time.Second)
		e.TTL = &secs
	}
	key := []byte(e.Key())

	err = s.db.Update(func(txn *badger.Txn) error {
		existing, err := readEntity(txn, key)
		switch {
		case err == nil:
			e.RowID = existing.RowID
		case errors.Is(err, badger.ErrKeyNotFound):
			e.RowID = uuid.NewString()
		default:
			return err
		}

		doc, err := json.Marshal(e)
		if err != nil {
			return err
		}
		entry := badger.NewEntry(key, doc)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return nil, domain.NewStorageError("save vocabulary", e.ID, err)
	}

	return docstore.ToDomain(e)
}

// GetByID returns the stored vocabulary item or domain.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, source, target, id string) (*domain.Vocabulary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := []byte(domain.PartitionKey(source, target) + "/" + id)

	var e *docstore.Entity
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		e, err = readEntity(txn, key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("get vocabulary %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, domain.NewStorageError("get vocabulary", id, err)
	}

	v, err := docstore.ToDomain(e)
	if err != nil {
		return nil, fmt.Errorf("rehydrate vocabulary %s: %w", id, err)
	}
	return v, nil
}

// Ping reports whether the database is open.
func (s *Store) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

func readEntity(txn *badger.Txn, key []byte) (*docstore.Entity, error) {
	item, err := txn.Get(key)
	if err != nil {
		return nil, err
	}
	var e docstore.Entity
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}
