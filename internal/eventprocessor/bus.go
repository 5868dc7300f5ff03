// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"context"
	"errors"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/alfainternational/ma-sub000/internal/logging"
	"github.com/alfainternational/ma-sub000/internal/metrics"
)

// Metadata keys set on every published message.
const (
	MetadataEventType = "event_type"
	MetadataSessionID = "session_id"
)

// Bus publishes assessment events on a Watermill transport and exposes the
// matching subscriber for the Router. The transport is an in-process Go
// channel by default and NATS JetStream with the nats build tag.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	prefix     string
	breaker    *gobreaker.CircuitBreaker[struct{}]
	events     *logging.EventLogger
	transport  string

	mu      sync.RWMutex
	closed  bool
	closers []func() error
}

// NewChannelBus creates a Bus on Watermill's gochannel pub/sub. Events
// published with no subscriber attached are dropped.
func NewChannelBus(cfg BusConfig, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = NewWatermillLogger()
	}
	buffer := cfg.OutputBuffer
	if buffer <= 0 {
		buffer = DefaultBusConfig().OutputBuffer
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: buffer}, logger)
	return newBus(cfg, pubSub, pubSub, "gochannel", pubSub.Close)
}

func newBus(cfg BusConfig, pub message.Publisher, sub message.Subscriber, transport string, closers ...func() error) *Bus {
	if cfg.Breaker.Name == "" {
		cfg.Breaker = DefaultCircuitBreakerConfig("event-publisher")
	}
	return &Bus{
		publisher:  pub,
		subscriber: sub,
		prefix:     cfg.TopicPrefix,
		breaker:    NewCircuitBreaker[struct{}](cfg.Breaker, nil),
		events:     logging.NewEventLogger(),
		transport:  transport,
		closers:    closers,
	}
}

// NewWatermillLogger adapts the global zerolog logger for Watermill.
func NewWatermillLogger() watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logging.NewComponentSlogLogger("watermill"))
}

// Publish serializes the event and publishes it on "<prefix>.<type>".
func (b *Bus) Publish(ctx context.Context, event *AssessmentEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	topic := event.Topic(b.prefix)
	data, err := SerializeEvent(event)
	if err != nil {
		metrics.RecordEventPublished(topic, err)
		return err
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set(MetadataEventType, event.Type)
	msg.Metadata.Set(MetadataSessionID, event.SessionID)
	if rid := logging.RequestIDFromContext(ctx); rid != "" {
		msg.Metadata.Set("request_id", rid)
	}

	_, err = b.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, b.publisher.Publish(topic, msg)
	})
	metrics.RecordBreakerRequest(b.breaker.Name(), BreakerResult(err))
	metrics.RecordEventPublished(topic, err)
	if err != nil {
		b.events.LogPublishFailed(ctx, topic, err)
		return err
	}
	b.events.LogEventPublished(ctx, event.EventID, topic)
	return nil
}

// Topics lists every topic the bus publishes on.
func (b *Bus) Topics() []string {
	return []string{Topic(b.prefix, EventAnalyzed), Topic(b.prefix, EventStatusChanged)}
}

// Prefix returns the topic prefix.
func (b *Bus) Prefix() string { return b.prefix }

// Transport names the underlying pub/sub, "gochannel" or "nats".
func (b *Bus) Transport() string { return b.transport }

// Subscriber returns the transport subscriber for Router handlers.
func (b *Bus) Subscriber() message.Subscriber { return b.subscriber }

// Publisher returns the raw transport publisher, used for the poison queue.
func (b *Bus) Publisher() message.Publisher { return b.publisher }

// BreakerState reports the publish breaker state.
func (b *Bus) BreakerState() string { return CircuitBreakerState(b.breaker) }

// Close closes the transport. Further publishes return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	for _, c := range b.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
