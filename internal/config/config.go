package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Store      StoreConfig      `yaml:"store"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Tracing    TracingConfig    `yaml:"tracing"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
}

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is required when store.driver is postgres.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"vocab-catalog"`
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver      string        `yaml:"driver"       env:"STORE_DRIVER"       env-default:"postgres"`
	DocumentTTL time.Duration `yaml:"document_ttl" env:"STORE_DOCUMENT_TTL" env-default:"0s"`
	Badger      BadgerConfig  `yaml:"badger"`
}

// BadgerConfig holds embedded BadgerDB settings.
type BadgerConfig struct {
	Path           string        `yaml:"path"             env:"BADGER_PATH"             env-default:"./data/badger"`
	InMemory       bool          `yaml:"in_memory"        env:"BADGER_IN_MEMORY"        env-default:"false"`
	SyncWrites     bool          `yaml:"sync_writes"      env:"BADGER_SYNC_WRITES"      env-default:"true"`
	GCInterval     time.Duration `yaml:"gc_interval"      env:"BADGER_GC_INTERVAL"      env-default:"5m"`
	GCDiscardRatio float64       `yaml:"gc_discard_ratio" env:"BADGER_GC_DISCARD_RATIO" env-default:"0.5"`
}

// CacheConfig holds the optional Redis read-through cache settings.
type CacheConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"CACHE_ENABLED"        env-default:"false"`
	Addr        string        `yaml:"addr"         env:"CACHE_REDIS_ADDR"     env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"CACHE_REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"CACHE_REDIS_DB"       env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"CACHE_DIAL_TIMEOUT"   env-default:"5s"`
	TTL         time.Duration `yaml:"ttl"          env:"CACHE_TTL"            env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request rate limits.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"              env-default:"20"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"            env-default:"40"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// TracingConfig controls OpenTelemetry tracing.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"      env:"TRACING_ENABLED"      env-default:"false"`
	ServiceName string  `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"vocab-catalog"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO" env-default:"1.0"`
}

// VocabularyConfig holds catalog defaults used by the import tool.
type VocabularyConfig struct {
	DefaultSourceLanguage string `yaml:"default_source_language" env:"VOCAB_DEFAULT_SOURCE_LANGUAGE" env-default:"en"`
	DefaultTargetLanguage string `yaml:"default_target_language" env:"VOCAB_DEFAULT_TARGET_LANGUAGE" env-default:"de"`
	ImportConcurrency     int    `yaml:"import_concurrency"      env:"VOCAB_IMPORT_CONCURRENCY"      env-default:"8"`
}
