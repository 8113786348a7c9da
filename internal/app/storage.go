package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/badger"
	badgervocab "github.com/heartmarshall/vocab-catalog/internal/adapter/badger/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/adapter/postgres"
	pgvocab "github.com/heartmarshall/vocab-catalog/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/adapter/redis"
	"github.com/heartmarshall/vocab-catalog/internal/adapter/redis/vocabcache"
	"github.com/heartmarshall/vocab-catalog/internal/config"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
	"github.com/heartmarshall/vocab-catalog/internal/transport/rest"
)

// VocabularyStore is the persistence port of the vocabulary service.
type VocabularyStore interface {
	Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	GetByID(ctx context.Context, source, target, id string) (*domain.Vocabulary, error)
}

// Storage is the assembled persistence stack: the configured document store,
// optionally behind the Redis cache, plus the health checks for each backend.
type Storage struct {
	Vocabulary VocabularyStore
	Checks     []rest.Check

	closers []func() error
}

// OpenStorage connects the backends selected by cfg. On error everything
// opened so far is closed again.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *Storage, err error) {
	s := &Storage{}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		s.closers = append(s.closers, func() error { pool.Close(); return nil })

		s.Vocabulary = pgvocab.New(pool, postgres.NewTxManager(pool), pgvocab.WithTTL(cfg.Store.DocumentTTL))
		s.Checks = append(s.Checks, rest.Check{Name: "store", Target: pool})

	case config.DriverBadger:
		db, err := badger.Open(cfg.Store.Badger, logger)
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
		s.closers = append(s.closers, db.Close)

		store := badgervocab.New(db.DB, badgervocab.WithTTL(cfg.Store.DocumentTTL))
		s.Vocabulary = store
		s.Checks = append(s.Checks, rest.Check{Name: "store", Target: store})

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Cache.Enabled {
		rdb, err := redis.NewClient(ctx, cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("connect to cache: %w", err)
		}
		s.closers = append(s.closers, rdb.Close)

		s.Vocabulary = vocabcache.New(s.Vocabulary, rdb, cfg.Cache.TTL, logger,
			vocabcache.WithDocumentTTL(cfg.Store.DocumentTTL))
		s.Checks = append(s.Checks, rest.Check{
			Name:   "cache",
			Target: rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
	}

	logger.Info("storage ready",
		slog.String("driver", cfg.Store.Driver),
		slog.Bool("cache", cfg.Cache.Enabled),
		slog.Duration("document_ttl", cfg.Store.DocumentTTL),
	)
	return s, nil
}

// Close releases the backends in reverse order of opening.
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
