// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"net/http"
)

// Analyze runs the full pipeline over the posted answers without storing
// anything.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	bundle, err := h.svc.Analyze(r.Context(), req.Answers, req.Context)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, bundle)
}

// Playbooks lists the pattern library the matcher evaluates.
func (h *Handler) Playbooks(w http.ResponseWriter, r *http.Request) {
	patterns := h.svc.Analyzer().Matcher().Patterns()
	respondPage(w, r, patterns, &PaginationMeta{
		Count: len(patterns),
		Limit: len(patterns),
	})
}
