// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

/*
Package database persists assessment sessions, answers and results.

Two drivers implement Store:

  - DuckDBStore (default): relational tables with versioned migrations.
    Answers are one row per question key; results are one JSON document
    per session, upserted on every analysis.
  - BadgerStore: embedded key-value store with one JSON document per
    session, answer set and result.

Select the driver with DATABASE_DRIVER and open it through Open:

	store, err := database.Open(&cfg.Database)
	if err != nil {
	    return err
	}
	defer store.Close()

Every call records latency and failures in the assessment_store_* metrics.
Lookups of unknown sessions return errors wrapping ErrSessionNotFound.
*/
package database
