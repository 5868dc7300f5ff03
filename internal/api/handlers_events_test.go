// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/database"
	"github.com/alfainternational/ma-sub000/internal/engine"
	"github.com/alfainternational/ma-sub000/internal/eventprocessor"
	"github.com/alfainternational/ma-sub000/internal/websocket"
)

const testOrigin = "https://app.example.com"

// hubPublisher delivers service events straight to the hub, standing in
// for the bus and router.
type hubPublisher struct{ hub *websocket.Hub }

func (p hubPublisher) Publish(ctx context.Context, e *eventprocessor.AssessmentEvent) error {
	return p.hub.BroadcastEvent(ctx, e)
}

// newStreamServer serves the full router with a running hub.
func newStreamServer(t *testing.T) (*httptest.Server, *engine.Service, *websocket.Hub) {
	t.Helper()
	store, err := database.OpenBadgerStore("")
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	analyzer, err := engine.NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	hub := websocket.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.RunWithContext(ctx) }()
	t.Cleanup(cancel)

	svc := engine.NewService(analyzer, store, testEngineConfig(), engine.WithPublisher(hubPublisher{hub}))
	h := NewHandler(svc, "test").WithEventStream(hub, []string{testOrigin})
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 0
	srv := httptest.NewServer(NewRouter(h, NewChiMiddleware(mw)).Setup())
	t.Cleanup(srv.Close)
	return srv, svc, hub
}

func dialStream(srv *httptest.Server, query, origin string) (*gorillaws.Conn, int, error) {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/events/ws" + query
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	conn, resp, err := gorillaws.DefaultDialer.Dial(url, header)
	status := 0
	if resp != nil {
		status = resp.StatusCode
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}
	return conn, status, err
}

func waitClients(t *testing.T, hub *websocket.Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEventStream_Unavailable(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)
	rec, env := do(t, h, http.MethodGet, "/api/v1/events/ws", "")
	wantStatus(t, rec, http.StatusServiceUnavailable)
	wantErrorCode(t, env, ErrCodeServiceUnavailable)
}

func TestEventStream_Rejections(t *testing.T) {
	t.Parallel()

	srv, _, _ := newStreamServer(t)
	tests := []struct {
		name   string
		query  string
		origin string
		want   int
	}{
		{"missing origin", "", "", http.StatusForbidden},
		{"foreign origin", "", "https://evil.example.com", http.StatusForbidden},
		{"unknown session", "?session_id=nope", testOrigin, http.StatusNotFound},
	}
	for _, tt := range tests {
		conn, status, err := dialStream(srv, tt.query, tt.origin)
		if err == nil {
			_ = conn.Close()
			t.Errorf("%s: Dial() succeeded, want status %d", tt.name, tt.want)
			continue
		}
		if status != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, status, tt.want)
		}
	}
}

func TestEventStream_SessionEvents(t *testing.T) {
	t.Parallel()

	srv, svc, hub := newStreamServer(t)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, assessment.Context{})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	conn, _, err := dialStream(srv, "?session_id="+sess.ID, testOrigin)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	waitClients(t, hub, 1)

	other, err := svc.CreateSession(ctx, assessment.Context{})
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if _, err := svc.Abandon(ctx, other.ID); err != nil {
		t.Fatalf("Abandon(other) error = %v", err)
	}
	if _, err := svc.Complete(ctx, sess.ID); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline() error = %v", err)
	}
	var frame struct {
		Type      string                         `json:"type"`
		SessionID string                         `json:"session_id"`
		Data      eventprocessor.AssessmentEvent `json:"data"`
	}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if frame.Type != eventprocessor.EventStatusChanged || frame.SessionID != sess.ID {
		t.Errorf("frame = %s/%s, want %s/%s", frame.Type, frame.SessionID, eventprocessor.EventStatusChanged, sess.ID)
	}
	if frame.Data.ToStatus != assessment.StatusCompleted {
		t.Errorf("to_status = %q, want completed", frame.Data.ToStatus)
	}
}
