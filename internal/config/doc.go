// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package config loads server configuration with koanf v2.

Layers are applied in order, later layers winning:

 1. Built-in defaults
 2. Optional YAML file, from CONFIG_PATH or the first of DefaultConfigPaths
 3. Environment variables with an explicit name mapping

Example config.yaml:

	server:
	  port: 8080
	  cors_origins: ["https://app.example.com"]
	database:
	  driver: duckdb
	  path: /data/assessments.duckdb
	engine:
	  analysis_timeout: 10s
	  analysis_rate: 20
	nats:
	  enabled: true
	  embedded: true

Unknown environment variables are ignored so the process environment
cannot leak into the configuration.
*/
package config
