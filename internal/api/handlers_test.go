// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/report"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/health/live", "")
	wantStatus(t, rec, http.StatusOK)
	var live HealthStatus
	decodeData(t, env, &live)
	if live.Status != "alive" || live.Version != "test" {
		t.Errorf("live = %+v, want status alive and version test", live)
	}

	rec, env = do(t, h, http.MethodGet, "/api/v1/health/ready", "")
	wantStatus(t, rec, http.StatusOK)
	var ready HealthStatus
	decodeData(t, env, &ready)
	if ready.StoreHealthy == nil || !*ready.StoreHealthy {
		t.Errorf("store_healthy = %v, want true", ready.StoreHealthy)
	}
	if ready.StoreBreaker != "closed" {
		t.Errorf("store_breaker = %q, want closed", ready.StoreBreaker)
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)
	body := `{"answers": ` + strugglingAnswersJSON + `, "context": {"sector": "retail"}}`

	rec, env := do(t, h, http.MethodPost, "/api/v1/analyze", body)
	wantStatus(t, rec, http.StatusOK)
	if !env.Success {
		t.Fatalf("success = false, error = %+v", env.Error)
	}

	var bundle assessment.ResultBundle
	decodeData(t, env, &bundle)
	if len(bundle.Alerts) == 0 {
		t.Fatal("alerts = 0, want the struggling-business alerts")
	}
	if bundle.Alerts[0].ID != "ALC_NO_DIGITAL_PRESENCE" {
		t.Errorf("first alert = %s, want ALC_NO_DIGITAL_PRESENCE", bundle.Alerts[0].ID)
	}
	if len(bundle.Recommendations) == 0 {
		t.Error("recommendations = 0, want some")
	}
	if env.Meta == nil || env.Meta.RequestID == "" {
		t.Errorf("meta.request_id missing: %+v", env.Meta)
	}
}

func TestAnalyze_BadRequests(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{"answers":`, ErrCodeBadRequest},
		{"missing answers", `{"context": {"sector": "retail"}}`, ErrCodeValidationFailed},
		{"empty answers", `{"answers": {}}`, ErrCodeValidationFailed},
		{"bad answer key", `{"answers": {"Has-Website": true}}`, ErrCodeValidationFailed},
		{"bad company size", `{"answers": {"has_website": true}, "context": {"company_size": "galactic"}}`, ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, http.MethodPost, "/api/v1/analyze", tt.body)
			wantStatus(t, rec, http.StatusBadRequest)
			wantErrorCode(t, env, tt.wantCode)
		})
	}
}

func TestPlaybooks(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)
	rec, env := do(t, h, http.MethodGet, "/api/v1/playbooks", "")
	wantStatus(t, rec, http.StatusOK)

	var patterns []struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &patterns)
	if len(patterns) == 0 {
		t.Fatal("patterns = 0, want the built-in library")
	}
	if env.Meta.Pagination == nil || env.Meta.Pagination.Count != len(patterns) {
		t.Errorf("pagination = %+v, want count %d", env.Meta.Pagination, len(patterns))
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)

	rec, env := do(t, h, http.MethodPost, "/api/v1/sessions", `{"context": {"sector": "retail", "company_size": "small"}}`)
	wantStatus(t, rec, http.StatusCreated)
	var sess assessment.Session
	decodeData(t, env, &sess)
	if sess.ID == "" || sess.Status != assessment.StatusDraft {
		t.Fatalf("created session = %+v, want a draft with an id", sess)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/v1/sessions/"+sess.ID {
		t.Errorf("Location = %q", loc)
	}
	base := "/api/v1/sessions/" + sess.ID

	// Analysis needs a completed session.
	rec, env = do(t, h, http.MethodPost, base+"/analyze", "")
	wantStatus(t, rec, http.StatusConflict)
	wantErrorCode(t, env, ErrCodeConflict)

	rec, env = do(t, h, http.MethodPut, base+"/answers", `{"answers": `+strugglingAnswersJSON+`}`)
	wantStatus(t, rec, http.StatusOK)
	decodeData(t, env, &sess)
	if sess.Status != assessment.StatusInProgress {
		t.Errorf("status after answers = %s, want in_progress", sess.Status)
	}

	rec, _ = do(t, h, http.MethodPut, base+"/answers", `{"answers": {"cac": null, "ltv": 450}}`)
	wantStatus(t, rec, http.StatusOK)

	rec, env = do(t, h, http.MethodGet, base, "")
	wantStatus(t, rec, http.StatusOK)
	var view struct {
		ID      string                 `json:"id"`
		Answers map[string]interface{} `json:"answers"`
	}
	decodeData(t, env, &view)
	if view.ID != sess.ID {
		t.Errorf("view id = %q, want %q", view.ID, sess.ID)
	}
	if _, ok := view.Answers["cac"]; ok {
		t.Error("cac still stored after null removal")
	}
	if _, ok := view.Answers["ltv"]; !ok {
		t.Error("ltv missing from stored answers")
	}

	rec, _ = do(t, h, http.MethodGet, base+"/results", "")
	wantStatus(t, rec, http.StatusNotFound)

	rec, env = do(t, h, http.MethodPost, base+"/complete", "")
	wantStatus(t, rec, http.StatusOK)
	decodeData(t, env, &sess)
	if sess.Status != assessment.StatusCompleted || sess.CompletedAt == nil {
		t.Errorf("completed session = %+v", sess)
	}

	// Closed sessions reject answers and further transitions.
	rec, env = do(t, h, http.MethodPut, base+"/answers", `{"answers": {"cac": 100}}`)
	wantStatus(t, rec, http.StatusConflict)
	wantErrorCode(t, env, ErrCodeConflict)
	rec, _ = do(t, h, http.MethodPost, base+"/abandon", "")
	wantStatus(t, rec, http.StatusConflict)

	rec, env = do(t, h, http.MethodPost, base+"/analyze", "")
	wantStatus(t, rec, http.StatusOK)
	var bundle assessment.ResultBundle
	decodeData(t, env, &bundle)
	if bundle.SessionID != sess.ID {
		t.Errorf("bundle session_id = %q, want %q", bundle.SessionID, sess.ID)
	}

	rec, env = do(t, h, http.MethodGet, base+"/results", "")
	wantStatus(t, rec, http.StatusOK)
	var stored assessment.ResultBundle
	decodeData(t, env, &stored)
	if len(stored.Alerts) != len(bundle.Alerts) {
		t.Errorf("stored alerts = %d, want %d", len(stored.Alerts), len(bundle.Alerts))
	}

	for _, v := range report.Variants() {
		rec, env = do(t, h, http.MethodGet, base+"/reports/"+string(v), "")
		wantStatus(t, rec, http.StatusOK)
		var rep struct {
			Variant   report.Variant `json:"variant"`
			SessionID string         `json:"session_id"`
		}
		decodeData(t, env, &rep)
		if rep.Variant != v || rep.SessionID != sess.ID {
			t.Errorf("report %s = %+v", v, rep)
		}
	}

	rec, _ = do(t, h, http.MethodGet, base+"/reports/action-plan", "")
	wantStatus(t, rec, http.StatusOK)

	rec, env = do(t, h, http.MethodGet, base+"/reports/horoscope", "")
	wantStatus(t, rec, http.StatusBadRequest)
	wantErrorCode(t, env, ErrCodeBadRequest)
}

func TestSessionNotFound(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)
	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/sessions/missing", ""},
		{http.MethodPut, "/api/v1/sessions/missing/answers", `{"answers": {"cac": 1}}`},
		{http.MethodPost, "/api/v1/sessions/missing/complete", ""},
		{http.MethodPost, "/api/v1/sessions/missing/abandon", ""},
		{http.MethodPost, "/api/v1/sessions/missing/analyze", ""},
		{http.MethodGet, "/api/v1/sessions/missing/results", ""},
		{http.MethodGet, "/api/v1/sessions/missing/reports/executive", ""},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, p.method, p.path, p.body)
			wantStatus(t, rec, http.StatusNotFound)
			wantErrorCode(t, env, ErrCodeNotFound)
		})
	}
}

func TestListSessions(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)
	var ids []string
	for i := 0; i < 3; i++ {
		rec, env := do(t, h, http.MethodPost, "/api/v1/sessions", `{"context": {"sector": "services"}}`)
		wantStatus(t, rec, http.StatusCreated)
		var s assessment.Session
		decodeData(t, env, &s)
		ids = append(ids, s.ID)
	}
	rec, _ := do(t, h, http.MethodPost, "/api/v1/sessions/"+ids[0]+"/abandon", "")
	wantStatus(t, rec, http.StatusOK)

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantMore  bool
	}{
		{"all", "", 3, false},
		{"paged", "?limit=2", 2, true},
		{"second page", "?limit=2&offset=2", 1, false},
		{"abandoned", "?status=abandoned", 1, false},
		{"draft", "?status=draft", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, http.MethodGet, "/api/v1/sessions"+tt.query, "")
			wantStatus(t, rec, http.StatusOK)
			var list []assessment.Session
			decodeData(t, env, &list)
			if len(list) != tt.wantCount {
				t.Errorf("count = %d, want %d", len(list), tt.wantCount)
			}
			if p := env.Meta.Pagination; p == nil || p.HasMore != tt.wantMore {
				t.Errorf("pagination = %+v, want has_more %v", p, tt.wantMore)
			}
		})
	}

	rec, env := do(t, h, http.MethodGet, "/api/v1/sessions?status=pending", "")
	wantStatus(t, rec, http.StatusBadRequest)
	wantErrorCode(t, env, ErrCodeValidationFailed)

	rec, _ = do(t, h, http.MethodGet, "/api/v1/sessions?limit=-1", "")
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestRouting(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, nil)

	rec, env := do(t, h, http.MethodGet, "/api/v1/nowhere", "")
	wantStatus(t, rec, http.StatusNotFound)
	wantErrorCode(t, env, ErrCodeNotFound)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/analyze", "")
	wantStatus(t, rec, http.StatusMethodNotAllowed)

	rec, _ = do(t, h, http.MethodGet, "/api/v1/health/live", "")
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not echoed")
	}

	rec, _ = do(t, h, http.MethodGet, "/metrics", "")
	wantStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "api_active_requests") {
		t.Error("/metrics does not expose application metrics")
	}
}
