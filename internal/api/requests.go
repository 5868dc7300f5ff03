// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package api

import (
	"github.com/alfainternational/ma-sub000/internal/assessment"
)

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Answers assessment.AnswerMap `json:"answers" validate:"required,min=1,dive,keys,answer_key,endkeys"`
	Context assessment.Context   `json:"context"`
}

// CreateSessionRequest is the body of POST /api/v1/sessions.
type CreateSessionRequest struct {
	Context assessment.Context `json:"context"`
}

// SubmitAnswersRequest is the body of PUT /api/v1/sessions/{id}/answers.
// A null value removes a stored answer.
type SubmitAnswersRequest struct {
	Answers assessment.AnswerMap `json:"answers" validate:"required,min=1,dive,keys,answer_key,endkeys"`
}

// ListSessionsRequest holds the query parameters of GET /api/v1/sessions.
type ListSessionsRequest struct {
	Status string `json:"status" validate:"omitempty,session_status"`
	Limit  int    `json:"limit" validate:"gte=0,lte=500"`
	Offset int    `json:"offset" validate:"gte=0"`
}

// SessionView is a session together with its current answers.
type SessionView struct {
	*assessment.Session
	Answers assessment.AnswerMap `json:"answers"`
}
