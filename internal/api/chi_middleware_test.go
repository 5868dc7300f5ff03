// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/engine"
	"github.com/alfainternational/ma-sub000/internal/report"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	h := newTestRouter(t, mw)

	for i := 0; i < 2; i++ {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/playbooks", "")
		wantStatus(t, rec, http.StatusOK)
	}
	rec, env := do(t, h, http.MethodGet, "/api/v1/playbooks", "")
	wantStatus(t, rec, http.StatusTooManyRequests)
	wantErrorCode(t, env, ErrCodeTooManyRequests)

	// Probes stay reachable once the client is limited.
	rec, _ = do(t, h, http.MethodGet, "/api/v1/health/live", "")
	wantStatus(t, rec, http.StatusOK)
}

func TestMiddlewareConfigFrom(t *testing.T) {
	t.Parallel()

	got := MiddlewareConfigFrom(config.ServerConfig{
		CORSOrigins:       []string{"https://app.example.com"},
		RateLimitRequests: 50,
	})
	if len(got.CORSAllowedOrigins) != 1 || got.CORSAllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", got.CORSAllowedOrigins)
	}
	if got.RateLimitRequests != 50 {
		t.Errorf("RateLimitRequests = %d, want 50", got.RateLimitRequests)
	}
	if got.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v, want default 1m", got.RateLimitWindow)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://app.example.com"}
	mw.RateLimitRequests = 0
	h := newTestRouter(t, mw)

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/playbooks", nil)
		req.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestRespondServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"session not found", fmt.Errorf("get session x: %w", engine.ErrSessionNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"result not found", engine.ErrResultNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"invalid transition", engine.ErrInvalidTransition, http.StatusConflict, ErrCodeConflict},
		{"not completed", engine.ErrSessionNotCompleted, http.StatusConflict, ErrCodeConflict},
		{"rate limited", engine.ErrRateLimited, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"store down", engine.ErrStoreUnavailable, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"unknown variant", report.ErrUnknownVariant, http.StatusBadRequest, ErrCodeBadRequest},
		{"timeout", fmt.Errorf("analyze: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, ErrCodeTimeout},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/x", nil)
			respondServiceError(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
			if tt.name == "unexpected" && resp.Error.Message != "Internal server error" {
				t.Errorf("internal error text leaked: %q", resp.Error.Message)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nforged", `line\x0aforged`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
