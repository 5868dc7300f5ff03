// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/config"
)

// storeFactories builds one fresh store per driver.
var storeFactories = map[string]func(t *testing.T) Store{
	DriverDuckDB: func(t *testing.T) Store {
		t.Helper()
		s, err := NewDuckDBStore(&config.DatabaseConfig{Driver: DriverDuckDB, Path: ":memory:", Threads: 1})
		if err != nil {
			t.Fatalf("NewDuckDBStore() error = %v", err)
		}
		t.Cleanup(func() { closeWithLog(s, "duckdb store") })
		return s
	},
	DriverBadger: func(t *testing.T) Store {
		t.Helper()
		s, err := OpenBadgerStore("")
		if err != nil {
			t.Fatalf("OpenBadgerStore() error = %v", err)
		}
		t.Cleanup(func() { closeWithLog(s, "badger store") })
		return s
	},
}

// forEachStore runs fn against every driver.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn(t, factory(t))
		})
	}
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSession(id string, offset time.Duration) *assessment.Session {
	return assessment.NewSession(id, assessment.Context{Sector: "retail", AnnualRevenue: 500000}, baseTime.Add(offset))
}

func mustCreate(t *testing.T, s Store, sess *assessment.Session) {
	t.Helper()
	if err := s.CreateSession(context.Background(), sess); err != nil {
		t.Fatalf("CreateSession(%s) error = %v", sess.ID, err)
	}
}

func TestStore_SessionLifecycle(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		sess := newSession("s-1", 0)
		mustCreate(t, s, sess)

		if err := s.CreateSession(ctx, sess); !errors.Is(err, ErrSessionExists) {
			t.Errorf("duplicate CreateSession() error = %v, want ErrSessionExists", err)
		}

		got, err := s.GetSession(ctx, "s-1")
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if got.Status != assessment.StatusDraft {
			t.Errorf("Status = %q, want draft", got.Status)
		}
		if got.Context.Sector != assessment.SectorRetail {
			t.Errorf("Sector = %q, want retail", got.Context.Sector)
		}
		if !got.CreatedAt.Equal(baseTime) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, baseTime)
		}
		if got.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, want nil", got.CompletedAt)
		}

		if err := got.Transition(assessment.StatusCompleted, baseTime.Add(time.Hour)); err != nil {
			t.Fatalf("Transition() error = %v", err)
		}
		if err := s.UpdateSession(ctx, got); err != nil {
			t.Fatalf("UpdateSession() error = %v", err)
		}

		reloaded, err := s.GetSession(ctx, "s-1")
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if reloaded.Status != assessment.StatusCompleted {
			t.Errorf("Status = %q, want completed", reloaded.Status)
		}
		if reloaded.CompletedAt == nil || !reloaded.CompletedAt.Equal(baseTime.Add(time.Hour)) {
			t.Errorf("CompletedAt = %v, want %v", reloaded.CompletedAt, baseTime.Add(time.Hour))
		}
	})
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		if _, err := s.GetSession(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("GetSession() error = %v, want ErrSessionNotFound", err)
		}
		if err := s.UpdateSession(ctx, newSession("missing", 0)); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("UpdateSession() error = %v, want ErrSessionNotFound", err)
		}
		if err := s.SaveAnswers(ctx, "missing", assessment.AnswerMap{"x": assessment.NumberValue(1)}); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("SaveAnswers() error = %v, want ErrSessionNotFound", err)
		}
		if _, err := s.GetAnswers(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("GetAnswers() error = %v, want ErrSessionNotFound", err)
		}
		if err := s.SaveResult(ctx, &assessment.ResultBundle{SessionID: "missing"}); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("SaveResult() error = %v, want ErrSessionNotFound", err)
		}
		if _, err := s.GetResult(ctx, "missing"); !errors.Is(err, ErrResultNotFound) {
			t.Errorf("GetResult() error = %v, want ErrResultNotFound", err)
		}
	})
}

func TestStore_ListSessions(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		for i := 0; i < 5; i++ {
			sess := newSession(fmt.Sprintf("s-%d", i), time.Duration(i)*time.Minute)
			if i%2 == 0 {
				sess.Status = assessment.StatusInProgress
			}
			mustCreate(t, s, sess)
		}

		all, err := s.ListSessions(ctx, ListFilter{})
		if err != nil {
			t.Fatalf("ListSessions() error = %v", err)
		}
		if len(all) != 5 {
			t.Fatalf("len(all) = %d, want 5", len(all))
		}
		if all[0].ID != "s-4" || all[4].ID != "s-0" {
			t.Errorf("order = %s..%s, want s-4..s-0", all[0].ID, all[4].ID)
		}

		inProgress, err := s.ListSessions(ctx, ListFilter{Status: assessment.StatusInProgress})
		if err != nil {
			t.Fatalf("ListSessions(in_progress) error = %v", err)
		}
		if len(inProgress) != 3 {
			t.Errorf("len(in_progress) = %d, want 3", len(inProgress))
		}

		page, err := s.ListSessions(ctx, ListFilter{Limit: 2, Offset: 1})
		if err != nil {
			t.Fatalf("ListSessions(page) error = %v", err)
		}
		if len(page) != 2 || page[0].ID != "s-3" || page[1].ID != "s-2" {
			t.Errorf("page = %v, want [s-3 s-2]", sessionIDs(page))
		}

		past, err := s.ListSessions(ctx, ListFilter{Offset: 10})
		if err != nil {
			t.Fatalf("ListSessions(offset) error = %v", err)
		}
		if past == nil || len(past) != 0 {
			t.Errorf("ListSessions(offset past end) = %v, want empty non-nil", past)
		}
	})
}

func sessionIDs(sessions []*assessment.Session) []string {
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}

func TestStore_AnswersMerge(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		mustCreate(t, s, newSession("s-1", 0))

		empty, err := s.GetAnswers(ctx, "s-1")
		if err != nil {
			t.Fatalf("GetAnswers() error = %v", err)
		}
		if len(empty) != 0 {
			t.Errorf("len(answers) = %d, want 0", len(empty))
		}

		first := assessment.AnswerMap{
			"has_website":        assessment.BoolValue(true),
			"monthly_revenue":    assessment.NumberValue(42000),
			"marketing_channels": assessment.ListValue("social", "email"),
			"revenue_trend":      assessment.StringValue("growing"),
		}
		if err := s.SaveAnswers(ctx, "s-1", first); err != nil {
			t.Fatalf("SaveAnswers() error = %v", err)
		}

		second := assessment.AnswerMap{
			"monthly_revenue": assessment.NumberValue(50000),
			"revenue_trend":   {},
		}
		if err := s.SaveAnswers(ctx, "s-1", second); err != nil {
			t.Fatalf("SaveAnswers() error = %v", err)
		}

		got, err := s.GetAnswers(ctx, "s-1")
		if err != nil {
			t.Fatalf("GetAnswers() error = %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len(answers) = %d, want 3 (%v)", len(got), got)
		}
		if !got.Bool("has_website") {
			t.Error("has_website = false, want true")
		}
		if v, ok := got.Float("monthly_revenue"); !ok || v != 50000 {
			t.Errorf("monthly_revenue = %v, %v, want 50000", v, ok)
		}
		if n, _ := got.Count("marketing_channels"); n != 2 {
			t.Errorf("Count(marketing_channels) = %d, want 2", n)
		}
		if _, ok := got["revenue_trend"]; ok {
			t.Error("revenue_trend still present after absent overwrite")
		}
	})
}

func TestStore_ResultUpsert(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		mustCreate(t, s, newSession("s-1", 0))

		first := &assessment.ResultBundle{
			SessionID:   "s-1",
			Scores:      assessment.Scores{Overall: 40},
			Synthesis:   assessment.Synthesis{PlanType: assessment.PlanTreatment},
			Alerts:      []assessment.Alert{{ID: "ALH_LOW_MATURITY", Tier: assessment.AlertHigh, UrgencyScore: 75}},
			GeneratedAt: baseTime,
		}
		if err := s.SaveResult(ctx, first); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}

		second := *first
		second.Scores.Overall = 72
		second.Synthesis.PlanType = assessment.PlanGrowth
		second.Alerts = nil
		second.GeneratedAt = baseTime.Add(time.Hour)
		if err := s.SaveResult(ctx, &second); err != nil {
			t.Fatalf("SaveResult() upsert error = %v", err)
		}

		got, err := s.GetResult(ctx, "s-1")
		if err != nil {
			t.Fatalf("GetResult() error = %v", err)
		}
		if got.Scores.Overall != 72 {
			t.Errorf("Overall = %d, want 72", got.Scores.Overall)
		}
		if got.Synthesis.PlanType != assessment.PlanGrowth {
			t.Errorf("PlanType = %q, want growth", got.Synthesis.PlanType)
		}
		if len(got.Alerts) != 0 {
			t.Errorf("len(Alerts) = %d, want 0", len(got.Alerts))
		}
		if !got.GeneratedAt.Equal(baseTime.Add(time.Hour)) {
			t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, baseTime.Add(time.Hour))
		}
	})
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, s Store) {
		if err := s.Ping(context.Background()); err != nil {
			t.Errorf("Ping() error = %v", err)
		}
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{"duckdb memory", config.DatabaseConfig{Driver: DriverDuckDB, Path: ":memory:"}, "*database.DuckDBStore", false},
		{"duckdb file", config.DatabaseConfig{Driver: DriverDuckDB, Path: filepath.Join(t.TempDir(), "nested", "a.duckdb")}, "*database.DuckDBStore", false},
		{"badger dir", config.DatabaseConfig{Driver: DriverBadger, Path: t.TempDir()}, "*database.BadgerStore", false},
		{"unknown", config.DatabaseConfig{Driver: "sqlite"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := Open(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer closeWithLog(s, tt.name)
			if got := fmt.Sprintf("%T", s); got != tt.want {
				t.Errorf("Open() type = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDuckDBStore_Migrations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "m.duckdb")
	cfg := &config.DatabaseConfig{Driver: DriverDuckDB, Path: path}

	s, err := NewDuckDBStore(cfg)
	if err != nil {
		t.Fatalf("NewDuckDBStore() error = %v", err)
	}
	mustCreate(t, s, newSession("persisted", 0))
	v, err := s.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if want := migrations[len(migrations)-1].Version; v != want {
		t.Errorf("SchemaVersion() = %d, want %d", v, want)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening must not reapply migrations or lose data.
	s2, err := NewDuckDBStore(cfg)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer closeWithLog(s2, "duckdb store")
	if _, err := s2.GetSession(context.Background(), "persisted"); err != nil {
		t.Errorf("GetSession() after reopen error = %v", err)
	}
}

func TestNewBadgerStore_DoesNotCloseShared(t *testing.T) {
	t.Parallel()

	owner, err := OpenBadgerStore("")
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	defer closeWithLog(owner, "badger store")

	shared := NewBadgerStore(owner.db)
	if err := shared.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := owner.Ping(context.Background()); err != nil {
		t.Errorf("Ping() after shared Close error = %v", err)
	}
}

func TestConnString(t *testing.T) {
	t.Parallel()

	got := connString("/data/a.duckdb", &config.DatabaseConfig{Threads: 2, MaxMemory: "1GB"})
	want := "/data/a.duckdb?autoinstall_known_extensions=false&autoload_known_extensions=false&max_memory=1GB&threads=2"
	if got != want {
		t.Errorf("connString() = %q, want %q", got, want)
	}
}
