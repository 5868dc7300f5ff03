// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/alfainternational/ma-sub000/internal/logging"
)

// DefaultConfigPaths lists the config files searched in order. The first
// one found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/ma-sub000/config.yaml",
	"/etc/ma-sub000/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
		Database: DatabaseConfig{
			Driver:    "duckdb",
			Path:      "/data/assessments.duckdb",
			MaxMemory: "1GB",
			Threads:   0, // runtime.NumCPU()
		},
		Logging: logging.DefaultConfig(),
		Engine: EngineConfig{
			AnalysisTimeout:    10 * time.Second,
			AnalysisRate:       20,
			AnalysisBurst:      40,
			BreakerMaxFailures: 5,
			BreakerTimeout:     30 * time.Second,
			ResultCacheSize:    256,
			ResultCacheTTL:     10 * time.Minute,
		},
		NATS: NATSConfig{
			Enabled:       false,
			URL:           "nats://127.0.0.1:4222",
			Embedded:      true,
			StoreDir:      "/data/nats/jetstream",
			Port:          4222,
			MaxReconnects: -1,
			ReconnectWait: 2 * time.Second,
		},
		Events: EventsConfig{
			TopicPrefix: "assessment",
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureBackoff:   15 * time.Second,
		},
	}
}

// Load reads defaults, the first config file found and the environment.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit config file. An empty path skips the
// file layer.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// SERVER_PORT -> server.port, unmapped variables are dropped.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

var envMappings = map[string]string{
	"server_host":             "server.host",
	"server_port":             "server.port",
	"server_read_timeout":     "server.read_timeout",
	"server_write_timeout":    "server.write_timeout",
	"server_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":            "server.cors_origins",
	"rate_limit_requests":     "server.rate_limit_requests",
	"rate_limit_window":       "server.rate_limit_window",

	"database_driver":     "database.driver",
	"database_path":       "database.path",
	"database_max_memory": "database.max_memory",
	"database_threads":    "database.threads",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"analysis_timeout":     "engine.analysis_timeout",
	"analysis_rate":        "engine.analysis_rate",
	"analysis_burst":       "engine.analysis_burst",
	"breaker_max_failures": "engine.breaker_max_failures",
	"breaker_timeout":      "engine.breaker_timeout",
	"result_cache_size":    "engine.result_cache_size",
	"result_cache_ttl":     "engine.result_cache_ttl",

	"nats_enabled":        "nats.enabled",
	"nats_url":            "nats.url",
	"nats_embedded":       "nats.embedded",
	"nats_store_dir":      "nats.store_dir",
	"nats_port":           "nats.port",
	"nats_max_reconnects": "nats.max_reconnects",
	"nats_reconnect_wait": "nats.reconnect_wait",

	"events_topic_prefix": "events.topic_prefix",

	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
}

// envTransformFunc maps an environment variable onto its koanf path.
// Variables outside envMappings return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
