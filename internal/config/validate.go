package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Store.Driver == DriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when store.driver is %q", DriverPostgres)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return fmt.Errorf("cache.addr is required when the cache is enabled")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("rate_limit: requests_per_second must be > 0 and burst >= 1 (got %v, %d)",
			c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", c.Tracing.SampleRatio)
	}

	if c.Vocabulary.ImportConcurrency < 1 {
		return fmt.Errorf("vocabulary.import_concurrency must be >= 1 (got %d)", c.Vocabulary.ImportConcurrency)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverPostgres:
	case DriverBadger:
		if !s.Badger.InMemory && strings.TrimSpace(s.Badger.Path) == "" {
			return fmt.Errorf("badger.path is required unless badger.in_memory is set")
		}
		if s.Badger.GCDiscardRatio < 0 || s.Badger.GCDiscardRatio > 1 {
			return fmt.Errorf("badger.gc_discard_ratio must be within [0, 1] (got %v)", s.Badger.GCDiscardRatio)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", s.Driver, DriverPostgres, DriverBadger)
	}

	if s.DocumentTTL < 0 {
		return fmt.Errorf("document_ttl must be >= 0 (got %v)", s.DocumentTTL)
	}

	return nil
}
