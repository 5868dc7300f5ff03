// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

//go:build !nats

package eventprocessor

import "context"

// EmbeddedServer is a stub. Build with -tags=nats for the embedded server.
type EmbeddedServer struct{}

// NewEmbeddedServer returns ErrNATSNotEnabled.
func NewEmbeddedServer(_ *ServerConfig) (*EmbeddedServer, error) {
	return nil, ErrNATSNotEnabled
}

// ClientURL returns an empty string.
func (s *EmbeddedServer) ClientURL() string { return "" }

// Shutdown is a no-op.
func (s *EmbeddedServer) Shutdown(context.Context) error { return nil }

// IsRunning always returns false.
func (s *EmbeddedServer) IsRunning() bool { return false }
