// Package storage implements the device-local key-value store: string keys,
// JSON-serialized values, flat namespace. Every operation degrades to a
// no-op / zero result on underlying storage error; callers must treat
// absence and failure identically (both read back as "no value").
package storage

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"

	"github.com/wisebook/wisebook/internal/dbx"
	"github.com/wisebook/wisebook/internal/logging"
)

// Well-known storage keys.
const (
	KeyCurrentUser      = "user"
	KeyAccounts         = "wisebook_users"
	KeyThemeMode        = "themeMode"
	KeyAppSettings      = "appSettings"
	KeyLearningProgress = "learningProgress"
	KeyCompletedContent = "completedContent"
	KeyEnrolledPaths    = "enrolledPaths"
	KeyAchievements     = "achievements"
	KeyOfflineContent   = "offlineContent"
	KeyLastSync         = "lastSync"
)

// nullValue is the marker written for nil values, so a cleared slot is
// indistinguishable from an absent one when read back.
var nullValue = []byte("null")

// Store is the JSON layer over the raw repository. Failures are logged and
// reported as false/zero, never returned as errors.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// Save serializes value to JSON (or the null marker when value is nil) and
// writes it under key. Reports success as a boolean.
func (s *Store) Save(ctx context.Context, key string, value any) bool {
	data, err := marshalValue(value)
	if err != nil {
		s.log.Error(ctx, "error saving to storage", "key", key, "error", err)
		return false
	}
	if err := s.repo().Set(ctx, key, data); err != nil {
		s.log.Error(ctx, "error saving to storage", "key", key, "error", err)
		return false
	}
	return true
}

// Load reads the entry for key into dest. Returns false when the key is
// absent, holds the null marker, or cannot be read or parsed.
func (s *Store) Load(ctx context.Context, key string, dest any) bool {
	raw, err := s.repo().Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "error loading from storage", "key", key, "error", err)
		return false
	}
	if raw == nil || bytes.Equal(raw, nullValue) {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Error(ctx, "error loading from storage", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes the entry for key.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.repo().Delete(ctx, key); err != nil {
		s.log.Error(ctx, "error removing from storage", "key", key, "error", err)
		return false
	}
	return true
}

// Clear deletes all entries in the namespace. Used by full reset flows only.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.repo().Clear(ctx); err != nil {
		s.log.Error(ctx, "error clearing storage", "error", err)
		return false
	}
	return true
}

// WithTx runs fn against a transactional view of the same kv namespace.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}

func marshalValue(value any) ([]byte, error) {
	if value == nil {
		return nullValue, nil
	}
	return json.Marshal(value)
}
