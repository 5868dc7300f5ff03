// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package eventprocessor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/alfainternational/ma-sub000/internal/assessment"
)

type failingPublisher struct{ err error }

func (p failingPublisher) Publish(string, ...*message.Message) error { return p.err }
func (p failingPublisher) Close() error                              { return nil }

func fastRouterConfig() *RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.CloseTimeout = time.Second
	cfg.RetryMaxRetries = 1
	cfg.RetryInitialInterval = time.Millisecond
	cfg.RetryMaxInterval = 5 * time.Millisecond
	return &cfg
}

// startRouter runs r until the test ends.
func startRouter(t *testing.T, r *Router) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case <-r.Running():
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("router did not start")
	}
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("router did not stop")
		}
	})
	return ctx
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestChannelBusDelivers(t *testing.T) {
	t.Parallel()

	bus := NewChannelBus(DefaultBusConfig(), nil)
	t.Cleanup(func() { _ = bus.Close() })

	router, err := NewBusRouter(fastRouterConfig(), bus, nil)
	if err != nil {
		t.Fatalf("NewBusRouter() error = %v", err)
	}

	got := make(chan *AssessmentEvent, 4)
	audit := NewAuditHandler(func(_ context.Context, e *AssessmentEvent) error {
		got <- e
		return nil
	})
	audit.Register(router, bus)
	ctx := startRouter(t, router)

	if !router.IsRunning() {
		t.Error("IsRunning() = false after start")
	}

	sent := NewStatusChangedEvent("sess-9", assessment.StatusInProgress, assessment.StatusCompleted, time.Now())
	if err := bus.Publish(ctx, sent); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case e := <-got:
		if e.EventID != sent.EventID || e.ToStatus != assessment.StatusCompleted {
			t.Errorf("received %+v, want %+v", e, sent)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}

	waitFor(t, func() bool { return audit.Stats().Processed == 1 })
	if s := audit.Stats(); s.Received != 1 || s.Malformed != 0 || s.LastEvent.IsZero() {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestRouterRetriesHandlerErrors(t *testing.T) {
	t.Parallel()

	bus := NewChannelBus(DefaultBusConfig(), nil)
	t.Cleanup(func() { _ = bus.Close() })
	router, err := NewBusRouter(fastRouterConfig(), bus, nil)
	if err != nil {
		t.Fatalf("NewBusRouter() error = %v", err)
	}

	var calls atomic.Int32
	audit := NewAuditHandler(func(context.Context, *AssessmentEvent) error {
		if calls.Add(1) == 1 {
			return errors.New("transient")
		}
		return nil
	})
	audit.Register(router, bus)
	ctx := startRouter(t, router)

	if err := bus.Publish(ctx, NewAnalyzedEvent(sampleBundle())); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	waitFor(t, func() bool { return audit.Stats().Processed == 1 })
	if n := calls.Load(); n != 2 {
		t.Errorf("handler calls = %d, want 2", n)
	}
}

func TestRouterPoisonQueue(t *testing.T) {
	t.Parallel()

	bus := NewChannelBus(DefaultBusConfig(), nil)
	t.Cleanup(func() { _ = bus.Close() })
	router, err := NewBusRouter(fastRouterConfig(), bus, nil)
	if err != nil {
		t.Fatalf("NewBusRouter() error = %v", err)
	}

	audit := NewAuditHandler(func(context.Context, *AssessmentEvent) error {
		return errors.New("permanent")
	})
	audit.Register(router, bus)
	ctx := startRouter(t, router)

	poison, err := bus.Subscriber().Subscribe(ctx, Topic(bus.Prefix(), "poison"))
	if err != nil {
		t.Fatalf("Subscribe(poison) error = %v", err)
	}

	sent := NewAnalyzedEvent(sampleBundle())
	if err := bus.Publish(ctx, sent); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case msg := <-poison:
		msg.Ack()
		e, err := DeserializeEvent(msg.Payload)
		if err != nil {
			t.Fatalf("poisoned payload: %v", err)
		}
		if e.EventID != sent.EventID {
			t.Errorf("poisoned EventID = %q, want %q", e.EventID, sent.EventID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("message not routed to poison queue")
	}
}

func TestAuditHandlerAcksMalformed(t *testing.T) {
	t.Parallel()

	bus := NewChannelBus(DefaultBusConfig(), nil)
	t.Cleanup(func() { _ = bus.Close() })
	router, err := NewBusRouter(fastRouterConfig(), bus, nil)
	if err != nil {
		t.Fatalf("NewBusRouter() error = %v", err)
	}
	audit := NewAuditHandler(nil)
	audit.Register(router, bus)
	startRouter(t, router)

	raw := message.NewMessage(uuid.NewString(), []byte("not json"))
	if err := bus.Publisher().Publish(Topic(bus.Prefix(), EventAnalyzed), raw); err != nil {
		t.Fatalf("Publish(raw) error = %v", err)
	}
	waitFor(t, func() bool { return audit.Stats().Malformed == 1 })
	if s := audit.Stats(); s.Processed != 0 {
		t.Errorf("Processed = %d, want 0", s.Processed)
	}
}

func TestBusPublishBreaker(t *testing.T) {
	t.Parallel()

	cfg := DefaultBusConfig()
	cfg.Breaker = DefaultCircuitBreakerConfig("bus-breaker-test")
	cfg.Breaker.FailureThreshold = 2
	brokerDown := errors.New("broker down")
	bus := newBus(cfg, failingPublisher{err: brokerDown}, nil, "test")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := bus.Publish(ctx, NewAnalyzedEvent(sampleBundle())); !errors.Is(err, brokerDown) {
			t.Fatalf("Publish() #%d = %v, want broker down", i, err)
		}
	}
	if got := bus.BreakerState(); got != "open" {
		t.Errorf("BreakerState() = %q, want open", got)
	}
	if err := bus.Publish(ctx, NewAnalyzedEvent(sampleBundle())); !IsBreakerRejection(err) {
		t.Errorf("Publish() with open breaker = %v, want rejection", err)
	}
}

func TestBusClosed(t *testing.T) {
	t.Parallel()

	bus := NewChannelBus(DefaultBusConfig(), nil)
	if err := bus.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	err := bus.Publish(context.Background(), NewAnalyzedEvent(sampleBundle()))
	if !errors.Is(err, ErrBusClosed) {
		t.Errorf("Publish() after Close = %v, want ErrBusClosed", err)
	}
}

func TestBusRejectsInvalidEvent(t *testing.T) {
	t.Parallel()

	bus := NewChannelBus(DefaultBusConfig(), nil)
	t.Cleanup(func() { _ = bus.Close() })
	if err := bus.Publish(context.Background(), &AssessmentEvent{}); !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("Publish(invalid) = %v, want ErrInvalidEvent", err)
	}
}

func TestBusTopics(t *testing.T) {
	t.Parallel()

	cfg := DefaultBusConfig()
	cfg.TopicPrefix = "qa"
	bus := NewChannelBus(cfg, nil)
	t.Cleanup(func() { _ = bus.Close() })

	want := []string{"qa.analyzed", "qa.status_changed"}
	got := bus.Topics()
	if len(got) != len(want) {
		t.Fatalf("Topics() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if bus.Transport() != "gochannel" {
		t.Errorf("Transport() = %q, want gochannel", bus.Transport())
	}
}
