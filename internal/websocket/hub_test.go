// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package websocket

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/eventprocessor"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

// testClient is a hub client without a connection.
func testClient(hub *Hub, sessionID string, buffer int) *Client {
	return &Client{
		id:        clientIDCounter.Add(1),
		sessionID: sessionID,
		hub:       hub,
		send:      make(chan Message, buffer),
	}
}

// waitFor polls cond until it holds or a second passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func receive(t *testing.T, c *Client) (Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatalf("client %d received nothing", c.id)
		return Message{}, false
	}
}

func expectNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Errorf("client %d received %+v, want nothing", c.id, msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func statusEvent(sessionID string) *eventprocessor.AssessmentEvent {
	return eventprocessor.NewStatusChangedEvent(sessionID, assessment.StatusDraft, assessment.StatusInProgress, time.Now())
}

func TestHub_RegisterUnregister(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	c := testClient(hub, "", 4)

	hub.Register <- c
	waitFor(t, "registration", func() bool { return hub.ClientCount() == 1 })

	hub.Unregister <- c
	waitFor(t, "unregistration", func() bool { return hub.ClientCount() == 0 })
	if _, ok := <-c.send; ok {
		t.Error("send channel still open after unregister")
	}

	// A second unregister is a no-op.
	hub.Unregister <- c
	if n := hub.ClientCount(); n != 0 {
		t.Errorf("ClientCount() = %d, want 0", n)
	}
}

func TestHub_BroadcastEventFiltersBySession(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	all := testClient(hub, "", 4)
	mine := testClient(hub, "s1", 4)
	other := testClient(hub, "s2", 4)
	for _, c := range []*Client{all, mine, other} {
		hub.Register <- c
	}
	waitFor(t, "registration", func() bool { return hub.ClientCount() == 3 })

	if err := hub.BroadcastEvent(context.Background(), statusEvent("s1")); err != nil {
		t.Fatalf("BroadcastEvent() error = %v", err)
	}

	for _, c := range []*Client{all, mine} {
		msg, _ := receive(t, c)
		if msg.Type != eventprocessor.EventStatusChanged || msg.SessionID != "s1" {
			t.Errorf("client %q got %s/%s, want %s/s1", c.sessionID, msg.Type, msg.SessionID, eventprocessor.EventStatusChanged)
		}
		if _, ok := msg.Data.(*eventprocessor.AssessmentEvent); !ok {
			t.Errorf("Data = %T, want *eventprocessor.AssessmentEvent", msg.Data)
		}
	}
	expectNothing(t, other)

	// Session-less messages reach everyone.
	hub.Broadcast(Message{Type: "notice"})
	for _, c := range []*Client{all, mine, other} {
		if msg, _ := receive(t, c); msg.Type != "notice" {
			t.Errorf("client %q got %q, want notice", c.sessionID, msg.Type)
		}
	}
}

func TestHub_BroadcastEventNil(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	if err := hub.BroadcastEvent(context.Background(), nil); err != nil {
		t.Errorf("BroadcastEvent(nil) = %v, want nil", err)
	}
	if len(hub.broadcast) != 0 {
		t.Errorf("queued %d messages, want 0", len(hub.broadcast))
	}
}

func TestHub_BroadcastDropsWhenQueueFull(t *testing.T) {
	t.Parallel()

	hub := NewHub() // not running, so nothing drains the queue
	for i := 0; i < broadcastBuffer; i++ {
		if !hub.Broadcast(Message{Type: "fill"}) {
			t.Fatalf("Broadcast() #%d = false, want true", i)
		}
	}
	if hub.Broadcast(Message{Type: "overflow"}) {
		t.Error("Broadcast() on a full queue = true, want false")
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	slow := testClient(hub, "", 1)
	fast := testClient(hub, "", 8)
	hub.Register <- slow
	hub.Register <- fast
	waitFor(t, "registration", func() bool { return hub.ClientCount() == 2 })

	hub.Broadcast(Message{Type: "one"})
	hub.Broadcast(Message{Type: "two"})
	waitFor(t, "slow client removal", func() bool { return hub.ClientCount() == 1 })

	for _, want := range []string{"one", "two"} {
		if msg, _ := receive(t, fast); msg.Type != want {
			t.Errorf("fast client got %q, want %q", msg.Type, want)
		}
	}
	if msg, ok := receive(t, slow); !ok || msg.Type != "one" {
		t.Errorf("slow client first message = %q, %v, want one, true", msg.Type, ok)
	}
	if _, ok := <-slow.send; ok {
		t.Error("slow client channel still open")
	}
}

func TestHub_RunWithContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     func() (context.Context, context.CancelFunc)
		cancel  bool
		wantErr error
	}{
		{
			name:    "canceled",
			ctx:     func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			cancel:  true,
			wantErr: context.Canceled,
		},
		{
			name: "deadline",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 30*time.Millisecond)
			},
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hub := NewHub()
			ctx, cancel := tt.ctx()
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- hub.RunWithContext(ctx) }()

			c := testClient(hub, "", 1)
			hub.Register <- c
			if tt.cancel {
				cancel()
			}

			select {
			case err := <-errCh:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RunWithContext() = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(time.Second):
				t.Fatal("RunWithContext did not return")
			}
			if _, ok := <-c.send; ok {
				t.Error("client channel open after shutdown")
			}
			if n := hub.ClientCount(); n != 0 {
				t.Errorf("ClientCount() after shutdown = %d, want 0", n)
			}
		})
	}
}

func TestShutdownReason(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancel2 := context.WithTimeout(context.Background(), -time.Second)
	defer cancel2()

	if got := shutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("shutdownReason(canceled) = %q, want %q", got, ShutdownReasonContextCanceled)
	}
	if got := shutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("shutdownReason(expired) = %q, want %q", got, ShutdownReasonContextDeadline)
	}
}

func TestHub_ConcurrentBroadcasts(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	c := testClient(hub, "", broadcastBuffer)
	hub.Register <- c
	waitFor(t, "registration", func() bool { return hub.ClientCount() == 1 })

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = hub.BroadcastEvent(context.Background(), statusEvent("s"))
			}
		}()
	}
	wg.Wait()

	for i := 0; i < 80; i++ {
		receive(t, c)
	}
}
