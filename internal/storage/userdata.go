package storage

import (
	"context"
	"encoding/json"
	"time"
)

// UserData is the bulk offline snapshot: the current user plus the opaque
// progress blobs. None of the blobs are validated against a schema.
type UserData struct {
	User             json.RawMessage
	LearningProgress map[string]float64
	CompletedContent []string
	EnrolledPaths    []string
	Achievements     json.RawMessage
	OfflineContent   json.RawMessage
	LastSync         string
}

// SaveUserData writes the whole offline snapshot plus a fresh lastSync
// timestamp in a single transaction.
func (s *Store) SaveUserData(ctx context.Context, data *UserData) bool {
	err := s.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		entries := []struct {
			key   string
			value any
		}{
			{KeyCurrentUser, data.User},
			{KeyLearningProgress, data.LearningProgress},
			{KeyCompletedContent, data.CompletedContent},
			{KeyEnrolledPaths, data.EnrolledPaths},
			{KeyAchievements, data.Achievements},
			{KeyOfflineContent, data.OfflineContent},
			{KeyLastSync, time.Now().UTC().Format(time.RFC3339)},
		}
		for _, e := range entries {
			raw, err := marshalValue(e.value)
			if err != nil {
				return err
			}
			if err := repo.Set(ctx, e.key, raw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "error saving user data", "error", err)
		return false
	}
	return true
}

// LoadUserData reads the offline snapshot back. Returns nil when no current
// user is stored; missing blobs come back as empty collections.
func (s *Store) LoadUserData(ctx context.Context) *UserData {
	var user json.RawMessage
	if !s.Load(ctx, KeyCurrentUser, &user) {
		return nil
	}

	data := &UserData{
		User:             user,
		LearningProgress: make(map[string]float64),
		CompletedContent: []string{},
		EnrolledPaths:    []string{},
	}
	s.Load(ctx, KeyLearningProgress, &data.LearningProgress)
	s.Load(ctx, KeyCompletedContent, &data.CompletedContent)
	s.Load(ctx, KeyEnrolledPaths, &data.EnrolledPaths)
	s.Load(ctx, KeyAchievements, &data.Achievements)
	s.Load(ctx, KeyOfflineContent, &data.OfflineContent)
	s.Load(ctx, KeyLastSync, &data.LastSync)

	return data
}
