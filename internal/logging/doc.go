// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

// Package logging wraps a process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Str("session_id", id).Msg("Session created")
//	logging.Error().Err(err).Msg("Analysis failed")
//
//	// Request-scoped fields
//	ctx = logging.ContextWithNewRequestID(ctx)
//	ctx = logging.ContextWithSessionID(ctx, id)
//	logging.Ctx(ctx).Info().Msg("Analyzing session")
//
// # Configuration
//
// Environment variables (mapped by the config package):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # slog Bridge
//
// Libraries that accept a *slog.Logger (the supervisor tree and the
// watermill router) receive NewSlogLogger, which forwards every record to
// the global zerolog logger.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never written.
package logging
