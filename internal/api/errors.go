// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/alfainternational/ma-sub000/internal/engine"
	"github.com/alfainternational/ma-sub000/internal/report"
)

// errorMapping ties a service error to its HTTP response.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// serviceErrors is checked in order with errors.Is.
var serviceErrors = []errorMapping{
	{engine.ErrSessionNotFound, http.StatusNotFound, ErrCodeNotFound, "Session not found"},
	{engine.ErrResultNotFound, http.StatusNotFound, ErrCodeNotFound, "No analysis result for this session"},
	{engine.ErrInvalidTransition, http.StatusConflict, ErrCodeConflict, "Session status does not allow this operation"},
	{engine.ErrSessionNotCompleted, http.StatusConflict, ErrCodeConflict, "Session must be completed before analysis"},
	{engine.ErrRateLimited, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Analysis rate limit exceeded"},
	{engine.ErrStoreUnavailable, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Session store unavailable"},
	{report.ErrUnknownVariant, http.StatusBadRequest, ErrCodeBadRequest, "Unknown report variant"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ErrCodeTimeout, "Analysis timed out"},
}

// respondServiceError maps err to a status and code. Unknown errors are 500
// and their text stays in the log.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			respondError(w, r, m.status, m.code, m.message, err)
			return
		}
	}
	if errors.Is(err, context.Canceled) {
		// Client went away; nobody reads the body.
		respondError(w, r, 499, ErrCodeBadRequest, "Request canceled", nil)
		return
	}
	respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", err)
}
