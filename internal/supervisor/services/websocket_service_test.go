// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alfainternational/ma-sub000/internal/websocket"
)

type blockingHub struct{ started chan struct{} }

func (h *blockingHub) RunWithContext(ctx context.Context) error {
	close(h.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestWebSocketHubService_Serve(t *testing.T) {
	t.Parallel()

	hub := &blockingHub{started: make(chan struct{})}
	svc := NewWebSocketHubService(hub)
	if svc.String() != "websocket-hub" {
		t.Errorf("String() = %q, want websocket-hub", svc.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-hub.started
	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestWebSocketHubService_RealHub(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewWebSocketHubService(websocket.NewHub()).Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
}
