// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/alfainternational/ma-sub000/internal/logging"
	"github.com/alfainternational/ma-sub000/internal/metrics"
)

// EventFunc receives each decoded event. A returned error triggers the
// router's retry policy.
type EventFunc func(ctx context.Context, event *AssessmentEvent) error

// AuditHandler consumes assessment events, records metrics and writes an
// audit log line per event.
//
// Malformed payloads are acknowledged and counted rather than retried,
// since no amount of redelivery will make them decode.
type AuditHandler struct {
	onEvent EventFunc
	events  *logging.EventLogger

	received   atomic.Int64
	processed  atomic.Int64
	malformed  atomic.Int64
	lastHandle atomic.Int64 // unix nanos
}

// NewAuditHandler creates a handler. onEvent may be nil.
func NewAuditHandler(onEvent EventFunc) *AuditHandler {
	return &AuditHandler{
		onEvent: onEvent,
		events:  logging.NewEventLogger(),
	}
}

// Handle implements message.NoPublishHandlerFunc.
func (h *AuditHandler) Handle(msg *message.Message) error {
	start := time.Now()
	h.received.Add(1)

	ctx := msg.Context()
	topic := message.SubscribeTopicFromCtx(ctx)
	if rid := msg.Metadata.Get("request_id"); rid != "" {
		ctx = logging.ContextWithRequestID(ctx, rid)
	}

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		h.malformed.Add(1)
		metrics.RecordEventHandled(topic, time.Since(start), err)
		h.events.LogEventFailed(ctx, msg.UUID, err)
		return nil
	}
	ctx = logging.ContextWithSessionID(ctx, event.SessionID)

	if h.onEvent != nil {
		if err := h.onEvent(ctx, event); err != nil {
			metrics.RecordEventHandled(topic, time.Since(start), err)
			h.events.LogEventFailed(ctx, event.EventID, err)
			return err
		}
	}

	d := time.Since(start)
	h.processed.Add(1)
	h.lastHandle.Store(time.Now().UnixNano())
	metrics.RecordEventHandled(topic, d, nil)
	h.events.LogEventHandled(ctx, event.EventID, event.Type, d)
	return nil
}

// Register subscribes the handler to every topic the bus publishes.
func (h *AuditHandler) Register(r *Router, bus *Bus) {
	for _, topic := range bus.Topics() {
		r.AddConsumerHandler("audit-"+topic, topic, bus.Subscriber(), h.Handle)
	}
}

// HandlerStats is a point-in-time snapshot of handler counters.
type HandlerStats struct {
	Received  int64     `json:"received"`
	Processed int64     `json:"processed"`
	Malformed int64     `json:"malformed"`
	LastEvent time.Time `json:"last_event"`
}

// Stats returns the current counters.
func (h *AuditHandler) Stats() HandlerStats {
	s := HandlerStats{
		Received:  h.received.Load(),
		Processed: h.processed.Load(),
		Malformed: h.malformed.Load(),
	}
	if ns := h.lastHandle.Load(); ns > 0 {
		s.LastEvent = time.Unix(0, ns)
	}
	return s
}
