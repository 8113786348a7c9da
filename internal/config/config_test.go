package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

store:
  driver: "postgres"
  document_ttl: "720h"

cache:
  enabled: true
  addr: "redis:6379"
  ttl: "1m"

log:
  level: "debug"
  format: "text"

rate_limit:
  requests_per_second: 5
  burst: 10

vocabulary:
  default_source_language: "de"
  default_target_language: "en"
  import_concurrency: 4
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("server.max_body_bytes = %d, want default %d", cfg.Server.MaxBodyBytes, 1<<20)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Store
	if cfg.Store.Driver != DriverPostgres {
		t.Errorf("store.driver = %q, want %q", cfg.Store.Driver, DriverPostgres)
	}
	if cfg.Store.DocumentTTL != 720*time.Hour {
		t.Errorf("store.document_ttl = %v, want 720h", cfg.Store.DocumentTTL)
	}

	// Cache
	if !cfg.Cache.Enabled || cfg.Cache.Addr != "redis:6379" || cfg.Cache.TTL != time.Minute {
		t.Errorf("unexpected cache config: %+v", cfg.Cache)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerSecond != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("unexpected rate limit config: %+v", cfg.RateLimit)
	}

	// Vocabulary
	if cfg.Vocabulary.DefaultSourceLanguage != "de" || cfg.Vocabulary.ImportConcurrency != 4 {
		t.Errorf("unexpected vocabulary config: %+v", cfg.Vocabulary)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("STORE_DRIVER", "badger")
	t.Setenv("BADGER_IN_MEMORY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Store.Driver != DriverBadger || !cfg.Store.Badger.InMemory {
		t.Errorf("store = %+v, want in-memory badger (ENV override)", cfg.Store)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Store.Driver != DriverPostgres {
		t.Errorf("store.driver = %q, want default %q", cfg.Store.Driver, DriverPostgres)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled by default")
	}
}

func TestLoad_NoFile_MissingDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error when postgres driver has no DSN")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: "postgres://u:p@localhost/db", MaxConns: 25, MinConns: 5},
		Store:    StoreConfig{Driver: DriverPostgres},
		Cache:    CacheConfig{Addr: "localhost:6379"},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Tracing:    TracingConfig{SampleRatio: 1},
		Vocabulary: VocabularyConfig{ImportConcurrency: 8},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }, wantErr: true},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Database.DSN = " " }, wantErr: true},
		{
			name:   "badger without dsn",
			mutate: func(c *Config) { c.Store.Driver = DriverBadger; c.Store.Badger.Path = "/tmp/b"; c.Database.DSN = "" },
		},
		{
			name:    "badger without path",
			mutate:  func(c *Config) { c.Store.Driver = DriverBadger },
			wantErr: true,
		},
		{
			name:   "badger in memory",
			mutate: func(c *Config) { c.Store.Driver = DriverBadger; c.Store.Badger.InMemory = true },
		},
		{
			name:    "badger discard ratio",
			mutate:  func(c *Config) { c.Store.Driver = DriverBadger; c.Store.Badger.InMemory = true; c.Store.Badger.GCDiscardRatio = 2 },
			wantErr: true,
		},
		{name: "negative ttl", mutate: func(c *Config) { c.Store.DocumentTTL = -time.Second }, wantErr: true},
		{name: "min conns above max", mutate: func(c *Config) { c.Database.MinConns = 30 }, wantErr: true},
		{name: "cache without addr", mutate: func(c *Config) { c.Cache.Enabled = true; c.Cache.Addr = "" }, wantErr: true},
		{name: "zero rate", mutate: func(c *Config) { c.RateLimit.RequestsPerSecond = 0 }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, wantErr: true},
		{
			name:   "disabled rate limit ignores values",
			mutate: func(c *Config) { c.RateLimit = RateLimitConfig{} },
		},
		{name: "sample ratio above one", mutate: func(c *Config) { c.Tracing.SampleRatio = 1.5 }, wantErr: true},
		{name: "zero import concurrency", mutate: func(c *Config) { c.Vocabulary.ImportConcurrency = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
