// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/database"
	"github.com/alfainternational/ma-sub000/internal/engine"
)

// envelope mirrors APIResponse with a raw payload for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

const strugglingAnswersJSON = `{
	"has_website": false,
	"revenue_trend": "declining",
	"competition_level": "very_high",
	"cac": 500,
	"ltv": 300
}`

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		AnalysisTimeout:    5 * time.Second,
		AnalysisRate:       1000,
		AnalysisBurst:      100,
		BreakerMaxFailures: 3,
		BreakerTimeout:     time.Minute,
	}
}

func newTestService(t *testing.T) *engine.Service {
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
	return engine.NewService(analyzer, store, testEngineConfig())
}

// newTestRouter returns the full handler stack with rate limiting off
// unless mw says otherwise.
func newTestRouter(t *testing.T, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitRequests = 0
	}
	h := NewHandler(newTestService(t), "test")
	return NewRouter(h, NewChiMiddleware(mw)).Setup()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode envelope: %v\nbody: %s", method, path, err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
	}
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, want, rec.Body.String())
	}
}

func wantErrorCode(t *testing.T, env envelope, want string) {
	t.Helper()
	if env.Success {
		t.Fatal("success = true, want false")
	}
	if env.Error == nil {
		t.Fatal("error = nil, want an error object")
	}
	if env.Error.Code != want {
		t.Errorf("error.code = %q, want %q", env.Error.Code, want)
	}
}
