// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/config"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// DuckDBStore is the default Store. An empty path or ":memory:" opens an
// in-memory database shared by every pooled connection.
type DuckDBStore struct {
	conn *sql.DB
	path string
}

// NewDuckDBStore opens the database and applies pending migrations.
func NewDuckDBStore(cfg *config.DatabaseConfig) (*DuckDBStore, error) {
	path := cfg.Path
	if path == ":memory:" {
		path = ""
	}

	if path != "" {
		// 0750 per gosec G301
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", connString(path, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	conn.SetMaxOpenConns(threads)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err := runMigrations(conn); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().Str("path", displayPath(path)).Int("threads", threads).Msg("DuckDB store ready")
	return &DuckDBStore{conn: conn, path: path}, nil
}

func connString(path string, cfg *config.DatabaseConfig) string {
	params := url.Values{}
	if cfg.Threads > 0 {
		params.Set("threads", strconv.Itoa(cfg.Threads))
	}
	if cfg.MaxMemory != "" {
		params.Set("max_memory", cfg.MaxMemory)
	}
	// Extensions are not needed and auto-install hangs in restricted networks.
	params.Set("autoinstall_known_extensions", "false")
	params.Set("autoload_known_extensions", "false")
	return path + "?" + params.Encode()
}

func displayPath(path string) string {
	if path == "" {
		return ":memory:"
	}
	return path
}

// Ping checks the connection.
func (s *DuckDBStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close closes the connection pool.
func (s *DuckDBStore) Close() error {
	return s.conn.Close()
}

// SchemaVersion returns the applied migration version.
func (s *DuckDBStore) SchemaVersion(ctx context.Context) (int, error) {
	return schemaVersion(ctx, s.conn)
}

// CreateSession inserts a new session.
func (s *DuckDBStore) CreateSession(ctx context.Context, sess *assessment.Session) (err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "create_session", start, err) }(time.Now())

	ctxJSON, err := json.Marshal(sess.Context)
	if err != nil {
		return fmt.Errorf("marshal session context: %w", err)
	}

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO sessions (id, status, context, created_at, updated_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, string(sess.Status), string(ctxJSON),
		sess.CreatedAt.UTC(), sess.UpdatedAt.UTC(), nullTime(sess.CompletedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: %s", ErrSessionExists, sess.ID)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession loads one session.
func (s *DuckDBStore) GetSession(ctx context.Context, id string) (sess *assessment.Session, err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "get_session", start, err) }(time.Now())

	row := s.conn.QueryRowContext(ctx,
		`SELECT id, status, context, created_at, updated_at, completed_at
		 FROM sessions WHERE id = ?`, id)
	sess, err = scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, err
}

// UpdateSession overwrites status, context and timestamps.
func (s *DuckDBStore) UpdateSession(ctx context.Context, sess *assessment.Session) (err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "update_session", start, err) }(time.Now())

	ctxJSON, err := json.Marshal(sess.Context)
	if err != nil {
		return fmt.Errorf("marshal session context: %w", err)
	}

	res, err := s.conn.ExecContext(ctx,
		`UPDATE sessions SET status = ?, context = ?, updated_at = ?, completed_at = ?
		 WHERE id = ?`,
		string(sess.Status), string(ctxJSON), sess.UpdatedAt.UTC(), nullTime(sess.CompletedAt), sess.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sess.ID)
	}
	return nil
}

// ListSessions returns sessions newest first.
func (s *DuckDBStore) ListSessions(ctx context.Context, filter ListFilter) (out []*assessment.Session, err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "list_sessions", start, err) }(time.Now())

	query := `SELECT id, status, context, created_at, updated_at, completed_at FROM sessions WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT %d OFFSET %d", filter.limit(), max(filter.Offset, 0))

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	out = []*assessment.Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}
	return out, nil
}

// SaveAnswers upserts each answer in one transaction.
func (s *DuckDBStore) SaveAnswers(ctx context.Context, sessionID string, answers assessment.AnswerMap) (err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "save_answers", start, err) }(time.Now())

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if err := requireSession(ctx, tx, sessionID); err != nil {
		return err
	}

	now := time.Now().UTC()
	for key, value := range answers {
		if value.Kind() == assessment.KindAbsent {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM answers WHERE session_id = ? AND question_key = ?`, sessionID, key); err != nil {
				return fmt.Errorf("failed to delete answer %s: %w", key, err)
			}
			continue
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal answer %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO answers (session_id, question_key, value, updated_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT (session_id, question_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			sessionID, key, string(data), now,
		); err != nil {
			return fmt.Errorf("failed to save answer %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit answers: %w", err)
	}
	return nil
}

// GetAnswers returns every stored answer of a session.
func (s *DuckDBStore) GetAnswers(ctx context.Context, sessionID string) (answers assessment.AnswerMap, err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "get_answers", start, err) }(time.Now())

	if err := requireSession(ctx, s.conn, sessionID); err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT question_key, value FROM answers WHERE session_id = ?`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	answers = assessment.AnswerMap{}
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		var v assessment.Value
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decode answer %s: %w", key, err)
		}
		answers[key] = v
	}
	return answers, rows.Err()
}

// SaveResult upserts the result of a session.
func (s *DuckDBStore) SaveResult(ctx context.Context, result *assessment.ResultBundle) (err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "save_result", start, err) }(time.Now())

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if err := requireSession(ctx, tx, result.SessionID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO results (session_id, bundle, overall_score, plan_type, generated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (session_id) DO UPDATE SET
			bundle = excluded.bundle,
			overall_score = excluded.overall_score,
			plan_type = excluded.plan_type,
			generated_at = excluded.generated_at`,
		result.SessionID, string(data), result.Scores.Overall,
		string(result.Synthesis.PlanType), result.GeneratedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

// GetResult loads the stored result of a session.
func (s *DuckDBStore) GetResult(ctx context.Context, sessionID string) (result *assessment.ResultBundle, err error) {
	defer func(start time.Time) { observe(DriverDuckDB, "get_result", start, err) }(time.Now())

	var raw string
	err = s.conn.QueryRowContext(ctx, `SELECT bundle FROM results WHERE session_id = ?`, sessionID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query result: %w", err)
	}

	result = &assessment.ResultBundle{}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	return result, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func requireSession(ctx context.Context, q queryRower, id string) error {
	var exists bool
	err := q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM sessions WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*assessment.Session, error) {
	var (
		sess        assessment.Session
		status      string
		ctxJSON     string
		completedAt sql.NullTime
	)
	if err := row.Scan(&sess.ID, &status, &ctxJSON, &sess.CreatedAt, &sess.UpdatedAt, &completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	sess.Status = assessment.SessionStatus(status)
	if err := json.Unmarshal([]byte(ctxJSON), &sess.Context); err != nil {
		return nil, fmt.Errorf("decode session context: %w", err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		sess.CompletedAt = &t
	}
	return &sess, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
