package state

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisebook/wisebook/internal/accounts"
	"github.com/wisebook/wisebook/internal/catalog"
	"github.com/wisebook/wisebook/internal/logging"
	"github.com/wisebook/wisebook/internal/storage"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	st := storage.NewStore(db, log)
	return New(st), st
}

func TestDefaults(t *testing.T) {
	s, _ := setupStore(t)

	assert.Nil(t, s.User())
	assert.Equal(t, "dark", s.ThemeMode())
	assert.Zero(t, s.XP())
	assert.Equal(t, 1, s.Level())
	assert.Empty(t, s.CompletedContent())
	assert.Empty(t, s.Notifications())
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s, _ := setupStore(t)

	var events []Event
	unsubscribe := s.Subscribe(func(e Event) { events = append(events, e) })

	s.SetUser(&accounts.Session{ID: "1"})
	s.UpdateProgress("content-1", 0.4)
	require.Len(t, events, 2)
	assert.Equal(t, UserChanged, events[0].Type)
	assert.Equal(t, ProgressUpdated, events[1].Type)

	unsubscribe()
	s.UpdateProgress("content-1", 0.6)
	assert.Len(t, events, 2)
}

func TestSetThemeMode_Persists(t *testing.T) {
	ctx := context.Background()
	s, st := setupStore(t)

	s.SetThemeMode(ctx, "light")
	assert.Equal(t, "light", s.ThemeMode())

	var saved string
	require.True(t, st.Load(ctx, storage.KeyThemeMode, &saved))
	assert.Equal(t, "light", saved)
}

func TestHydrate_RestoresSessionAndTheme(t *testing.T) {
	ctx := context.Background()
	s, st := setupStore(t)

	require.True(t, st.Save(ctx, storage.KeyCurrentUser, accounts.Session{ID: "1", Name: "Demo"}))
	require.True(t, st.Save(ctx, storage.KeyThemeMode, "light"))

	s.Hydrate(ctx)
	require.NotNil(t, s.User())
	assert.Equal(t, "Demo", s.User().Name)
	assert.Equal(t, "light", s.ThemeMode())
}

func TestHydrate_NothingPersisted(t *testing.T) {
	s, _ := setupStore(t)

	s.Hydrate(context.Background())
	assert.Nil(t, s.User())
	assert.Equal(t, "dark", s.ThemeMode())
}

func TestMarkContentCompleted_Deduplicates(t *testing.T) {
	s, _ := setupStore(t)

	s.MarkContentCompleted("content-1")
	s.MarkContentCompleted("content-1")
	s.MarkContentCompleted("content-2")
	assert.Equal(t, []string{"content-1", "content-2"}, s.CompletedContent())
}

func TestEnrollInPath_Deduplicates(t *testing.T) {
	s, _ := setupStore(t)

	s.EnrollInPath("path-1")
	s.EnrollInPath("path-1")
	assert.Equal(t, []string{"path-1"}, s.EnrolledPaths())
}

func TestAddAchievement_DeduplicatesByID(t *testing.T) {
	s, _ := setupStore(t)

	s.AddAchievement(catalog.Achievement{ID: "a-1", Title: "First Steps"})
	s.AddAchievement(catalog.Achievement{ID: "a-1", Title: "First Steps"})
	assert.Len(t, s.Achievements(), 1)
}

func TestAddXP_Leveling(t *testing.T) {
	s, _ := setupStore(t)

	s.AddXP(50)
	assert.Equal(t, 50, s.XP())
	assert.Equal(t, 1, s.Level())

	s.AddXP(50)
	assert.Equal(t, 100, s.XP())
	assert.Equal(t, 2, s.Level())

	s.AddXP(250)
	assert.Equal(t, 350, s.XP())
	assert.Equal(t, 4, s.Level())
}

func TestAddNotification_NewestFirst(t *testing.T) {
	s, _ := setupStore(t)

	s.AddNotification(Notification{Message: "first", CreatedAt: time.Now()})
	s.AddNotification(Notification{Message: "second", CreatedAt: time.Now()})

	notifications := s.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
}

func TestOfflineContent_AddAndRemove(t *testing.T) {
	s, _ := setupStore(t)

	s.AddOfflineContent(catalog.Content{ID: "content-1"})
	s.AddOfflineContent(catalog.Content{ID: "content-1"})
	s.AddOfflineContent(catalog.Content{ID: "content-2"})
	assert.Len(t, s.OfflineContent(), 2)

	s.RemoveOfflineContent("content-1")
	remaining := s.OfflineContent()
	require.Len(t, remaining, 1)
	assert.Equal(t, "content-2", remaining[0].ID)
}

func TestLogout_ResetsEverything(t *testing.T) {
	ctx := context.Background()
	s, st := setupStore(t)

	s.SetUser(&accounts.Session{ID: "1"})
	s.UpdateProgress("content-1", 0.5)
	s.MarkContentCompleted("content-1")
	s.EnrollInPath("path-1")
	s.AddXP(250)
	s.AddNotification(Notification{Message: "hi"})

	var got Event
	s.Subscribe(func(e Event) { got = e })

	s.Logout(ctx)
	assert.Equal(t, LoggedOut, got.Type)
	assert.Nil(t, s.User())
	assert.Zero(t, s.Progress("content-1"))
	assert.Empty(t, s.CompletedContent())
	assert.Empty(t, s.EnrolledPaths())
	assert.Zero(t, s.XP())
	assert.Equal(t, 1, s.Level())
	assert.Empty(t, s.Notifications())

	var session accounts.Session
	assert.False(t, st.Load(ctx, storage.KeyCurrentUser, &session))
}
