// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package engine

import (
	"errors"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/database"
)

// Service errors. Store lookups surface the store's own sentinels so that
// errors.Is works across layers.
var (
	ErrSessionNotFound     = database.ErrSessionNotFound
	ErrResultNotFound      = database.ErrResultNotFound
	ErrInvalidTransition   = assessment.ErrInvalidTransition
	ErrSessionNotCompleted = errors.New("session is not completed")
	ErrStoreUnavailable    = errors.New("session store unavailable")
	ErrRateLimited         = errors.New("analysis rate limit exceeded")
)
