// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Router wraps the Watermill Router with panic recovery, retries with
// exponential backoff, and an optional poison queue.
type Router struct {
	router  *message.Router
	config  RouterConfig
	events  *logging.EventLogger
	running atomic.Bool

	mu     sync.Mutex
	topics []string
}

// NewRouter creates a Router. poisonPublisher may be nil to disable the
// poison queue; poisonTopic is the full topic name.
func NewRouter(cfg *RouterConfig, poisonPublisher message.Publisher, poisonTopic string, logger watermill.LoggerAdapter) (*Router, error) {
	if logger == nil {
		logger = NewWatermillLogger()
	}
	if cfg == nil {
		def := DefaultRouterConfig()
		cfg = &def
	}

	wmRouter, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Outer to inner: poison queue, retry, recover. Panics become errors
	// that are retried, and only exhausted messages reach the poison topic.
	if poisonPublisher != nil && poisonTopic != "" {
		poison, err := middleware.PoisonQueue(poisonPublisher, poisonTopic)
		if err != nil {
			return nil, fmt.Errorf("create poison queue middleware: %w", err)
		}
		wmRouter.AddMiddleware(poison)
	}

	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      cfg.RetryMultiplier,
		Logger:          logger,
	}
	wmRouter.AddMiddleware(retry.Middleware)
	wmRouter.AddMiddleware(middleware.Recoverer)

	return &Router{
		router: wmRouter,
		config: *cfg,
		events: logging.NewEventLogger(),
	}, nil
}

// NewBusRouter creates a Router whose poison queue publishes on the bus
// under "<prefix>.<PoisonQueueSuffix>".
func NewBusRouter(cfg *RouterConfig, bus *Bus, logger watermill.LoggerAdapter) (*Router, error) {
	if cfg == nil {
		def := DefaultRouterConfig()
		cfg = &def
	}
	var topic string
	if cfg.PoisonQueueSuffix != "" {
		topic = Topic(bus.Prefix(), cfg.PoisonQueueSuffix)
	}
	return NewRouter(cfg, bus.Publisher(), topic, logger)
}

// AddConsumerHandler registers a handler that produces no output messages.
// Must be called before Run.
func (r *Router) AddConsumerHandler(name, topic string, sub message.Subscriber, handler message.NoPublishHandlerFunc) *message.Handler {
	r.mu.Lock()
	r.topics = append(r.topics, topic)
	r.mu.Unlock()
	return r.router.AddConsumerHandler(name, topic, sub, handler)
}

// Run starts the router and blocks until ctx is canceled or Close is called.
func (r *Router) Run(ctx context.Context) error {
	r.mu.Lock()
	topics := append([]string(nil), r.topics...)
	r.mu.Unlock()

	r.running.Store(true)
	defer r.running.Store(false)

	r.events.LogRouterStarted(topics...)
	defer r.events.LogRouterStopped()
	return r.router.Run(ctx)
}

// Serve implements suture.Service.
func (r *Router) Serve(ctx context.Context) error {
	return r.Run(ctx)
}

// String names the service in supervisor logs.
func (r *Router) String() string { return "event-router" }

// Running returns a channel closed once handlers are subscribed.
func (r *Router) Running() <-chan struct{} {
	return r.router.Running()
}

// Close stops the router, waiting up to CloseTimeout for in-flight messages.
func (r *Router) Close() error {
	return r.router.Close()
}

// IsRunning reports whether Run is active.
func (r *Router) IsRunning() bool {
	return r.running.Load()
}
