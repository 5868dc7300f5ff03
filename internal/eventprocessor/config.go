// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import "time"

// BusConfig configures topic naming and publish protection.
type BusConfig struct {
	// TopicPrefix is prepended to every event type, e.g. "assessment".
	TopicPrefix string

	// Breaker guards Publish. Consecutive failures open it and publishes
	// fail fast until Timeout elapses.
	Breaker CircuitBreakerConfig

	// OutputBuffer sizes the in-process channel per subscriber.
	OutputBuffer int64
}

// DefaultBusConfig returns defaults for the in-process bus.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		TopicPrefix:  "assessment",
		Breaker:      DefaultCircuitBreakerConfig("event-publisher"),
		OutputBuffer: 256,
	}
}

// NATSConfig holds client settings for the JetStream transport.
type NATSConfig struct {
	URL              string
	MaxReconnects    int
	ReconnectWait    time.Duration
	ReconnectBuffer  int
	QueueGroup       string
	DurableName      string
	SubscribersCount int
	AckWaitTimeout   time.Duration
	CloseTimeout     time.Duration
}

// DefaultNATSConfig returns production defaults for the NATS client.
func DefaultNATSConfig(url string) NATSConfig {
	return NATSConfig{
		URL:              url,
		MaxReconnects:    -1, // Unlimited
		ReconnectWait:    2 * time.Second,
		ReconnectBuffer:  8 * 1024 * 1024, // 8MB
		QueueGroup:       "assessment-audit",
		DurableName:      "assessment-audit",
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     30 * time.Second,
	}
}

// ServerConfig holds embedded NATS server configuration.
type ServerConfig struct {
	Host              string
	Port              int
	StoreDir          string
	JetStreamMaxMem   int64
	JetStreamMaxStore int64
}

// DefaultServerConfig returns defaults for the embedded NATS server.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:              "127.0.0.1",
		Port:              4222,
		StoreDir:          "/data/nats/jetstream",
		JetStreamMaxMem:   256 << 20, // 256MB
		JetStreamMaxStore: 1 << 30,   // 1GB
	}
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // Allowed in half-open state
	Interval         time.Duration // Reset interval for counts
	Timeout          time.Duration // Time to stay open
	FailureThreshold uint32        // Failures before opening
}

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}

// RouterConfig holds configuration for the Watermill Router.
type RouterConfig struct {
	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64

	// PoisonQueueSuffix names the topic (under the bus prefix) that receives
	// messages failing every retry. Empty disables the poison queue.
	PoisonQueueSuffix string
}

// DefaultRouterConfig returns production defaults for the Router.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     5 * time.Second,
		RetryMultiplier:      2.0,
		PoisonQueueSuffix:    "poison",
	}
}
