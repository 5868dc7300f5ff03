// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Migration is one versioned schema change.
type Migration struct {
	Version     int
	Name        string
	Description string
	SQL         string
	AppliedAt   time.Time
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMP NOT NULL
);
`

// migrations are append-only. Never edit or reorder an applied migration.
var migrations = []Migration{
	{
		Version:     1,
		Name:        "create_sessions",
		Description: "Assessment sessions with their business context",
		SQL: `CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			context TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			completed_at TIMESTAMP
		);`,
	},
	{
		Version:     2,
		Name:        "create_answers",
		Description: "One row per answered question",
		SQL: `CREATE TABLE IF NOT EXISTS answers (
			session_id TEXT NOT NULL,
			question_key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (session_id, question_key)
		);`,
	},
	{
		Version:     3,
		Name:        "create_results",
		Description: "Latest analysis result per session",
		SQL: `CREATE TABLE IF NOT EXISTS results (
			session_id TEXT PRIMARY KEY,
			bundle TEXT NOT NULL,
			overall_score INTEGER NOT NULL,
			plan_type TEXT NOT NULL,
			generated_at TIMESTAMP NOT NULL
		);`,
	},
	{
		Version:     4,
		Name:        "index_sessions_status",
		Description: "Status filter for session listing",
		SQL:         `CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);`,
	},
}

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// runMigrations applies every migration newer than the recorded version.
func runMigrations(conn *sql.DB) error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(ctx, conn, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		logging.Info().Int("version", m.Version).Str("name", m.Name).Msg("Applied schema migration")
	}
	return nil
}

func appliedVersions(ctx context.Context, conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func applyMigration(ctx context.Context, conn *sql.DB, m Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollbackQuietly(tx)

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, description, applied_at) VALUES (?, ?, ?, ?)`,
		m.Version, m.Name, m.Description, time.Now().UTC(),
	); err != nil {
		return err
	}
	return tx.Commit()
}

// schemaVersion returns the highest applied migration version.
func schemaVersion(ctx context.Context, conn *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := conn.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return int(v.Int64), nil
}
