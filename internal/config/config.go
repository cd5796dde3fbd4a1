package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Directory DirectoryConfig `yaml:"directory"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"`
	Demand    DemandConfig    `yaml:"demand"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Access-Token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3003"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout caps every statement server side. Zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"demand-service"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DirectoryConfig points at the external client and user services.
type DirectoryConfig struct {
	ClientsURL string        `yaml:"clients_url" env:"DIRECTORY_CLIENTS_URL" env-required:"true"`
	UsersURL   string        `yaml:"users_url"   env:"DIRECTORY_USERS_URL"   env-required:"true"`
	Timeout    time.Duration `yaml:"timeout"     env:"DIRECTORY_TIMEOUT"     env-default:"10s"`
}

// RedisConfig holds the client-directory cache settings.
// An empty URL disables the cache.
type RedisConfig struct {
	URL            string        `yaml:"url"              env:"REDIS_URL"`
	ClientCacheTTL time.Duration `yaml:"client_cache_ttl" env:"REDIS_CLIENT_CACHE_TTL" env-default:"1m"`
}

// StorageConfig selects where attachment content is kept.
type StorageConfig struct {
	Backend        string `yaml:"backend"          env:"STORAGE_BACKEND"          env-default:"filesystem"`
	Root           string `yaml:"root"             env:"STORAGE_ROOT"             env-default:"./uploads"`
	Bucket         string `yaml:"bucket"           env:"STORAGE_BUCKET"`
	Region         string `yaml:"region"           env:"STORAGE_REGION"           env-default:"us-east-1"`
	Endpoint       string `yaml:"endpoint"         env:"STORAGE_ENDPOINT"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"33554432"`
}

// DemandConfig holds lifecycle settings.
type DemandConfig struct {
	Timezone      string `yaml:"timezone"       env:"DEMAND_TIMEZONE"       env-default:"America/Sao_Paulo"`
	NewestLimit   int    `yaml:"newest_limit"   env:"DEMAND_NEWEST_LIMIT"   env-default:"4"`
	MutateRetries int    `yaml:"mutate_retries" env:"DEMAND_MUTATE_RETRIES" env-default:"3"`
}

// CleanupConfig controls the orphan attachment sweeper.
type CleanupConfig struct {
	OrphanRetention time.Duration `yaml:"orphan_retention" env:"CLEANUP_ORPHAN_RETENTION" env-default:"24h"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// S3 reports whether the S3 backend is selected.
func (s StorageConfig) S3() bool {
	return strings.EqualFold(s.Backend, "s3")
}
