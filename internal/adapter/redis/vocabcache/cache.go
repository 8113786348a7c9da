// Package vocabcache is a read-through Redis cache in front of a vocabulary
// store. Cache failures are logged and never fail the request.
package vocabcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/docstore"
	"github.com/heartmarshall/vocab-catalog/internal/domain"
)

const keyPrefix = "vocab:"

type store interface {
	Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	GetByID(ctx context.Context, source, target, id string) (*domain.Vocabulary, error)
}

type cmdable interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Cache decorates a store with a Redis read-through cache.
type Cache struct {
	next   store
	rdb    cmdable
	ttl    time.Duration
	docTTL time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithDocumentTTL tells the cache that the store expires documents ttl after
// their last save. No entry outlives its document.
func WithDocumentTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.docTTL = ttl }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache in front of next. Entries expire after ttl.
func New(next store, rdb cmdable, ttl time.Duration, logger *slog.Logger, opts ...Option) *Cache {
	c := &Cache{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.With("component", "vocabcache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Save writes through to the store and refreshes the cached document.
func (c *Cache) Save(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	saved, err := c.next.Save(ctx, v)
	if err != nil {
		key := cacheKey(v.PartitionKey(), v.ID())
		if delErr := c.rdb.Del(ctx, key).Err(); delErr != nil {
			c.logger.WarnContext(ctx, "cache invalidation failed", slog.String("key", key), slog.String("error", delErr.Error()))
		}
		return nil, err
	}

	c.put(ctx, saved)
	return saved, nil
}

// GetByID serves from the cache when possible and fills it on a miss.
func (c *Cache) GetByID(ctx context.Context, source, target, id string) (*domain.Vocabulary, error) {
	key := cacheKey(domain.PartitionKey(source, target), id)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e docstore.Entity
		if err := json.Unmarshal(raw, &e); err == nil {
			if v, err := docstore.ToDomain(&e); err == nil {
				return v, nil
			}
		}
		c.logger.WarnContext(ctx, "discarding corrupt cache entry", slog.String("key", key))
	case errors.Is(err, goredis.Nil):
	default:
		c.logger.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	v, err := c.next.GetByID(ctx, source, target, id)
	if err != nil {
		return nil, err
	}

	c.put(ctx, v)
	return v, nil
}

func (c *Cache) put(ctx context.Context, v *domain.Vocabulary) {
	e := docstore.FromSnapshot(v.Snapshot())
	key := cacheKey(e.PartitionKey, e.ID)

	expiration, ok := c.expiration(v)
	if !ok {
		if err := c.rdb.Del(ctx, key).Err(); err != nil {
			c.logger.WarnContext(ctx, "cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, expiration).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// expiration returns the Redis expiry for v, capped at the remaining lifetime
// of the stored document. ok is false when the document has already expired.
func (c *Cache) expiration(v *domain.Vocabulary) (time.Duration, bool) {
	if c.docTTL <= 0 {
		return c.ttl, true
	}

	remaining := c.docTTL
	if updated := v.UpdatedAt(); !updated.IsZero() {
		remaining = updated.Add(c.docTTL).Sub(c.now())
	}
	// Redis expiries have millisecond resolution.
	if remaining < time.Millisecond {
		return 0, false
	}
	if c.ttl > 0 && c.ttl < remaining {
		return c.ttl, true
	}
	return remaining, true
}

func cacheKey(partitionKey, id string) string {
	return keyPrefix + partitionKey + "/" + id
}
