// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/database"
	"github.com/alfainternational/ma-sub000/internal/report"
	"github.com/alfainternational/ma-sub000/internal/validation"
)

// sessionID reads {id} and tags the request logger with it.
func sessionID(r *http.Request) (string, *http.Request) {
	id := chi.URLParam(r, "id")
	return id, withSession(r, id)
}

// CreateSession starts a draft session for the posted business context.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.svc.CreateSession(r.Context(), req.Context)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+sess.ID)
	respondData(w, r, http.StatusCreated, sess)
}

// ListSessions returns sessions newest first, optionally by status.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ListSessionsRequest{
		Status: q.Get("status"),
		Limit:  getIntParam(q.Get("limit"), database.DefaultListLimit),
		Offset: getIntParam(q.Get("offset"), 0),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	filter := database.ListFilter{Limit: req.Limit, Offset: req.Offset}
	if req.Status != "" {
		filter.Status, _ = assessment.ParseSessionStatus(req.Status)
	}

	// One extra row tells whether another page exists.
	probe := filter
	probe.Limit = filter.Limit + 1
	sessions, err := h.svc.ListSessions(r.Context(), probe)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	hasMore := len(sessions) > filter.Limit
	if hasMore {
		sessions = sessions[:filter.Limit]
	}
	if sessions == nil {
		sessions = []*assessment.Session{}
	}
	respondPage(w, r, sessions, &PaginationMeta{
		Count:   len(sessions),
		Offset:  filter.Offset,
		Limit:   filter.Limit,
		HasMore: hasMore,
	})
}

// GetSession returns a session with its answers.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, r := sessionID(r)

	sess, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	answers, err := h.svc.GetAnswers(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if answers == nil {
		answers = assessment.AnswerMap{}
	}
	respondData(w, r, http.StatusOK, SessionView{Session: sess, Answers: answers})
}

// SubmitAnswers merges answers into an open session.
func (h *Handler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	id, r := sessionID(r)

	var req SubmitAnswersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.svc.SubmitAnswers(r.Context(), id, req.Answers)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, sess)
}

// CompleteSession closes a session for analysis.
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.Complete)
}

// AbandonSession closes a session without analysis.
func (h *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.Abandon)
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (*assessment.Session, error)) {
	id, r := sessionID(r)

	sess, err := fn(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, sess)
}

// AnalyzeSession analyzes a completed session and stores the result.
func (h *Handler) AnalyzeSession(w http.ResponseWriter, r *http.Request) {
	id, r := sessionID(r)

	bundle, err := h.svc.AnalyzeSession(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, bundle)
}

// GetResult returns the stored result bundle.
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, r := sessionID(r)

	bundle, err := h.svc.GetResult(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, bundle)
}

// GetReport renders one report variant of the stored result.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, r := sessionID(r)

	variant, ok := report.ParseVariant(chi.URLParam(r, "variant"))
	if !ok {
		respondJSON(w, http.StatusBadRequest, &APIResponse{
			Success: false,
			Error: &APIError{
				Code:    ErrCodeBadRequest,
				Message: "Unknown report variant",
				Details: map[string]interface{}{"variants": report.Variants()},
			},
			Meta: newMeta(r),
		})
		return
	}

	rep, err := h.svc.Report(r.Context(), id, variant)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, rep)
}

// getIntParam parses an integer query value, returning def when empty or
// malformed.
func getIntParam(value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
