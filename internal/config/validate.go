// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/alfainternational/ma-sub000/internal/validation"
)

// Validate checks struct tags first, then the cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateRateLimit(); err != nil {
		return err
	}
	return c.validateNATS()
}

func (c *Config) validateDatabase() error {
	if c.Database.Driver == "badger" && c.Database.Path == "" {
		return errors.New("DATABASE_PATH is required for the badger driver")
	}
	return nil
}

func (c *Config) validateRateLimit() error {
	if c.Server.RateLimitRequests > 0 && c.Server.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive when RATE_LIMIT_REQUESTS is set")
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	if c.NATS.Embedded {
		if c.NATS.StoreDir == "" {
			return errors.New("NATS_STORE_DIR is required for the embedded server")
		}
		if c.NATS.Port == 0 {
			return errors.New("NATS_PORT is required for the embedded server")
		}
		return nil
	}
	if err := validateNATSURL(c.NATS.URL); err != nil {
		return fmt.Errorf("NATS_URL: %w", err)
	}
	return nil
}

// validateNATSURL accepts nats, tls, ws and wss URLs with a host.
func validateNATSURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	validSchemes := map[string]bool{"nats": true, "tls": true, "ws": true, "wss": true}
	if !validSchemes[parsedURL.Scheme] {
		return fmt.Errorf("scheme must be nats, tls, ws, or wss, got: %s", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return errors.New("host is required (e.g., localhost:4222)")
	}
	return nil
}
