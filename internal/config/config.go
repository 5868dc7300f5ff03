// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Config holds the server configuration.
//
// Loading order:
//  1. Defaults from defaultConfig
//  2. Optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment variables listed in envMappings
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Logging    logging.Config   `koanf:"logging"`
	Engine     EngineConfig     `koanf:"engine"`
	NATS       NATSConfig       `koanf:"nats"`
	Events     EventsConfig     `koanf:"events"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig configures the HTTP API.
//
// Environment Variables:
//   - SERVER_HOST, SERVER_PORT
//   - SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT
//   - CORS_ORIGINS: comma-separated list, "*" allows any origin
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: per-IP limit, 0 requests disables it
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout       time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig selects and tunes the session store.
//
// Driver is duckdb (default) or badger. An empty DuckDB path opens an
// in-memory database; Badger always needs a directory.
type DatabaseConfig struct {
	Driver    string `koanf:"driver" validate:"oneof=duckdb badger"`
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads" validate:"gte=0"`
}

// EngineConfig bounds analysis work in the service layer.
type EngineConfig struct {
	// AnalysisTimeout caps a single analysis run.
	AnalysisTimeout time.Duration `koanf:"analysis_timeout" validate:"gt=0"`

	// AnalysisRate is analyses per second. Zero disables the limiter.
	AnalysisRate  float64 `koanf:"analysis_rate" validate:"gte=0"`
	AnalysisBurst int     `koanf:"analysis_burst" validate:"gte=1"`

	// BreakerMaxFailures consecutive store failures open the breaker for
	// BreakerTimeout.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures" validate:"gte=1"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout" validate:"gt=0"`

	// ResultCacheSize bounds how many stored results stay in memory, each
	// for ResultCacheTTL. Zero disables the cache.
	ResultCacheSize int           `koanf:"result_cache_size" validate:"gte=0"`
	ResultCacheTTL  time.Duration `koanf:"result_cache_ttl" validate:"gte=0"`
}

// NATSConfig enables the JetStream event transport. Without the nats build
// tag the in-process channel transport is used regardless of Enabled.
type NATSConfig struct {
	Enabled       bool          `koanf:"enabled"`
	URL           string        `koanf:"url"`
	Embedded      bool          `koanf:"embedded"`
	StoreDir      string        `koanf:"store_dir"`
	Port          int           `koanf:"port" validate:"gte=0,lte=65535"`
	MaxReconnects int           `koanf:"max_reconnects" validate:"gte=-1"`
	ReconnectWait time.Duration `koanf:"reconnect_wait" validate:"gte=0"`
}

// EventsConfig names the published topics.
type EventsConfig struct {
	TopicPrefix string `koanf:"topic_prefix" validate:"required"`
}

// SupervisorConfig tunes suture restart behavior.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold" validate:"gt=0"`
	FailureBackoff   time.Duration `koanf:"failure_backoff" validate:"gt=0"`
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
