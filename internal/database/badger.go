// MA-Sub000 - Marketing Maturity Assessment Engine
// Copyright 2026 Alfa International
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alfainternational/ma-sub000

package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/alfainternational/ma-sub000/internal/assessment"
	"github.com/alfainternational/ma-sub000/internal/logging"
)

// Key prefixes for BadgerDB storage
const (
	sessionKeyPrefix = "session:"
	answersKeyPrefix = "answers:"
	resultKeyPrefix  = "result:"
)

// BadgerStore implements Store on an embedded BadgerDB. Answers and results
// are stored as one JSON document per session.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
}

// OpenBadgerStore opens a BadgerDB directory. An empty path opens an
// in-memory instance.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	logging.Info().Str("path", displayPath(path)).Msg("Badger store ready")
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// NewBadgerStore wraps an open database. Close leaves db open.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Ping reports whether the database is open.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: database closed")
	}
	return ctx.Err()
}

// Close closes the database when the store opened it.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// CreateSession stores a new session.
func (s *BadgerStore) CreateSession(ctx context.Context, sess *assessment.Session) (err error) {
	defer func(start time.Time) { observe(DriverBadger, "create_session", start, err) }(time.Now())

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(sessionKeyPrefix + sess.ID)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: %s", ErrSessionExists, sess.ID)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("get session: %w", err)
		}
		return txn.Set(key, data)
	})
}

// GetSession loads one session.
func (s *BadgerStore) GetSession(ctx context.Context, id string) (sess *assessment.Session, err error) {
	defer func(start time.Time) { observe(DriverBadger, "get_session", start, err) }(time.Now())

	sess = &assessment.Session{}
	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, sessionKeyPrefix+id, sess, ErrSessionNotFound)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// UpdateSession overwrites an existing session.
func (s *BadgerStore) UpdateSession(ctx context.Context, sess *assessment.Session) (err error) {
	defer func(start time.Time) { observe(DriverBadger, "update_session", start, err) }(time.Now())

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(sessionKeyPrefix + sess.ID)
		if err := requireKey(txn, key, ErrSessionNotFound); err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// ListSessions scans every session, newest first.
func (s *BadgerStore) ListSessions(ctx context.Context, filter ListFilter) (out []*assessment.Session, err error) {
	defer func(start time.Time) { observe(DriverBadger, "list_sessions", start, err) }(time.Now())

	all := []*assessment.Session{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var sess assessment.Session
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &sess)
			}); err != nil {
				return fmt.Errorf("decode session: %w", err)
			}
			if filter.Status == "" || sess.Status == filter.Status {
				all = append(all, &sess)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	start := min(max(filter.Offset, 0), len(all))
	end := min(start+filter.limit(), len(all))
	return all[start:end], nil
}

// SaveAnswers merges answers into the stored document.
func (s *BadgerStore) SaveAnswers(ctx context.Context, sessionID string, answers assessment.AnswerMap) (err error) {
	defer func(start time.Time) { observe(DriverBadger, "save_answers", start, err) }(time.Now())

	return s.db.Update(func(txn *badger.Txn) error {
		if err := requireKey(txn, []byte(sessionKeyPrefix+sessionID), ErrSessionNotFound); err != nil {
			return err
		}

		current := assessment.AnswerMap{}
		if err := getJSON(txn, answersKeyPrefix+sessionID, &current, nil); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		data, err := json.Marshal(current.Merge(answers))
		if err != nil {
			return fmt.Errorf("marshal answers: %w", err)
		}
		return txn.Set([]byte(answersKeyPrefix+sessionID), data)
	})
}

// GetAnswers returns the stored answers, empty when none were saved.
func (s *BadgerStore) GetAnswers(ctx context.Context, sessionID string) (answers assessment.AnswerMap, err error) {
	defer func(start time.Time) { observe(DriverBadger, "get_answers", start, err) }(time.Now())

	answers = assessment.AnswerMap{}
	err = s.db.View(func(txn *badger.Txn) error {
		if err := requireKey(txn, []byte(sessionKeyPrefix+sessionID), ErrSessionNotFound); err != nil {
			return err
		}
		err := getJSON(txn, answersKeyPrefix+sessionID, &answers, nil)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// SaveResult replaces the stored result of a session.
func (s *BadgerStore) SaveResult(ctx context.Context, result *assessment.ResultBundle) (err error) {
	defer func(start time.Time) { observe(DriverBadger, "save_result", start, err) }(time.Now())

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := requireKey(txn, []byte(sessionKeyPrefix+result.SessionID), ErrSessionNotFound); err != nil {
			return err
		}
		return txn.Set([]byte(resultKeyPrefix+result.SessionID), data)
	})
}

// GetResult loads the stored result of a session.
func (s *BadgerStore) GetResult(ctx context.Context, sessionID string) (result *assessment.ResultBundle, err error) {
	defer func(start time.Time) { observe(DriverBadger, "get_result", start, err) }(time.Now())

	result = &assessment.ResultBundle{}
	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, resultKeyPrefix+sessionID, result, ErrResultNotFound)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// getJSON decodes the value at key into dst. A missing key returns
// notFound wrapped with the key suffix, or badger.ErrKeyNotFound when
// notFound is nil.
func getJSON(txn *badger.Txn, key string, dst any, notFound error) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		if notFound == nil {
			return err
		}
		return fmt.Errorf("%w: %s", notFound, keyID(key))
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}

func requireKey(txn *badger.Txn, key []byte, notFound error) error {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", notFound, keyID(string(key)))
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return nil
}

func keyID(key string) string {
	for _, prefix := range []string{sessionKeyPrefix, answersKeyPrefix, resultKeyPrefix} {
		if id, ok := strings.CutPrefix(key, prefix); ok {
			return id
		}
	}
	return key
}
