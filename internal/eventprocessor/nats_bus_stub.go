// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

//go:build !nats

package eventprocessor

import "github.com/ThreeDotsLabs/watermill"

// NATSAvailable reports whether the binary was built with the nats tag.
const NATSAvailable = false

// NewNATSBus returns ErrNATSNotEnabled. Build with -tags=nats for JetStream.
func NewNATSBus(_ NATSConfig, _ BusConfig, _ watermill.LoggerAdapter) (*Bus, error) {
	return nil, ErrNATSNotEnabled
}
