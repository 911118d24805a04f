// Package state holds the shared application state every screen reads and
// updates: session, theme, progress, achievements, notifications. It is an
// explicit, injected container with a subscribe contract instead of an
// ambient global.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/wisebook/wisebook/internal/accounts"
	"github.com/wisebook/wisebook/internal/catalog"
	"github.com/wisebook/wisebook/internal/storage"
)

// xpPerLevel is the leveling formula: one level per 100 xp.
const xpPerLevel = 100

type EventType int

const (
	UserChanged EventType = iota
	ThemeChanged
	ProgressUpdated
	ContentCompleted
	PathEnrolled
	AchievementUnlocked
	XPChanged
	NotificationAdded
	OfflineContentChanged
	LoggedOut
)

// Event describes one state mutation. Data depends on the type.
type Event struct {
	Type EventType
	Data any
}

type Handler func(Event)

// Notification is one in-app message shown to the user.
type Notification struct {
	Message   string
	CreatedAt time.Time
}

// Store is the application state container. Safe for concurrent use; every
// mutation notifies subscribers after the lock is released.
type Store struct {
	storage *storage.Store

	mu               sync.RWMutex
	subs             map[int]Handler
	nextSub          int
	user             *accounts.Session
	themeMode        string
	learningProgress map[string]float64
	completedContent []string
	enrolledPaths    []string
	achievements     []catalog.Achievement
	xp               int
	level            int
	notifications    []Notification
	offlineContent   []catalog.Content
}

func New(st *storage.Store) *Store {
	return &Store{
		storage:          st,
		subs:             make(map[int]Handler),
		themeMode:        "dark",
		learningProgress: make(map[string]float64),
		level:            1,
	}
}

// Subscribe registers a handler for every state event and returns its
// unsubscribe func.
func (s *Store) Subscribe(h Handler) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = h
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(e Event) {
	s.mu.RLock()
	handlers := make([]Handler, 0, len(s.subs))
	for _, h := range s.subs {
		handlers = append(handlers, h)
	}
	s.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Hydrate restores the persisted session and theme at startup.
func (s *Store) Hydrate(ctx context.Context) {
	var session accounts.Session
	if s.storage.Load(ctx, storage.KeyCurrentUser, &session) {
		s.SetUser(&session)
	}
	var theme string
	if s.storage.Load(ctx, storage.KeyThemeMode, &theme) && theme != "" {
		s.mu.Lock()
		s.themeMode = theme
		s.mu.Unlock()
	}
}

func (s *Store) User() *accounts.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) SetUser(user *accounts.Session) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.publish(Event{Type: UserChanged, Data: user})
}

func (s *Store) ThemeMode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themeMode
}

// SetThemeMode switches the theme and persists the choice.
func (s *Store) SetThemeMode(ctx context.Context, mode string) {
	s.mu.Lock()
	s.themeMode = mode
	s.mu.Unlock()
	s.storage.Save(ctx, storage.KeyThemeMode, mode)
	s.publish(Event{Type: ThemeChanged, Data: mode})
}

// UpdateProgress records partial progress for a content item.
func (s *Store) UpdateProgress(contentID string, progress float64) {
	s.mu.Lock()
	s.learningProgress[contentID] = progress
	s.mu.Unlock()
	s.publish(Event{Type: ProgressUpdated, Data: contentID})
}

func (s *Store) Progress(contentID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.learningProgress[contentID]
}

// MarkContentCompleted adds the id to the completed list, once.
func (s *Store) MarkContentCompleted(contentID string) {
	s.mu.Lock()
	for _, id := range s.completedContent {
		if id == contentID {
			s.mu.Unlock()
			return
		}
	}
	s.completedContent = append(s.completedContent, contentID)
	s.mu.Unlock()
	s.publish(Event{Type: ContentCompleted, Data: contentID})
}

func (s *Store) CompletedContent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.completedContent))
	copy(out, s.completedContent)
	return out
}

// EnrollInPath adds the path id to the enrolled list, once.
func (s *Store) EnrollInPath(pathID string) {
	s.mu.Lock()
	for _, id := range s.enrolledPaths {
		if id == pathID {
			s.mu.Unlock()
			return
		}
	}
	s.enrolledPaths = append(s.enrolledPaths, pathID)
	s.mu.Unlock()
	s.publish(Event{Type: PathEnrolled, Data: pathID})
}

func (s *Store) EnrolledPaths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.enrolledPaths))
	copy(out, s.enrolledPaths)
	return out
}

// AddAchievement records an unlocked achievement, deduplicated by id.
func (s *Store) AddAchievement(a catalog.Achievement) {
	s.mu.Lock()
	for _, existing := range s.achievements {
		if existing.ID == a.ID {
			s.mu.Unlock()
			return
		}
	}
	s.achievements = append(s.achievements, a)
	s.mu.Unlock()
	s.publish(Event{Type: AchievementUnlocked, Data: a})
}

func (s *Store) Achievements() []catalog.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// AddXP adds xp and recomputes the level from the running total.
func (s *Store) AddXP(amount int) {
	s.mu.Lock()
	s.xp += amount
	s.level = s.xp/xpPerLevel + 1
	xp := s.xp
	s.mu.Unlock()
	s.publish(Event{Type: XPChanged, Data: xp})
}

func (s *Store) XP() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.xp
}

func (s *Store) Level() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// AddNotification prepends a notification, newest first.
func (s *Store) AddNotification(n Notification) {
	s.mu.Lock()
	s.notifications = append([]Notification{n}, s.notifications...)
	s.mu.Unlock()
	s.publish(Event{Type: NotificationAdded, Data: n})
}

func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AddOfflineContent saves a catalog item for offline use, once.
func (s *Store) AddOfflineContent(c catalog.Content) {
	s.mu.Lock()
	for _, existing := range s.offlineContent {
		if existing.ID == c.ID {
			s.mu.Unlock()
			return
		}
	}
	s.offlineContent = append(s.offlineContent, c)
	s.mu.Unlock()
	s.publish(Event{Type: OfflineContentChanged, Data: c.ID})
}

// RemoveOfflineContent drops a saved item by id.
func (s *Store) RemoveOfflineContent(contentID string) {
	s.mu.Lock()
	filtered := s.offlineContent[:0]
	for _, c := range s.offlineContent {
		if c.ID != contentID {
			filtered = append(filtered, c)
		}
	}
	s.offlineContent = filtered
	s.mu.Unlock()
	s.publish(Event{Type: OfflineContentChanged, Data: contentID})
}

func (s *Store) OfflineContent() []catalog.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Content, len(s.offlineContent))
	copy(out, s.offlineContent)
	return out
}

// Logout clears every per-user field and the persisted session slot.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.learningProgress = make(map[string]float64)
	s.completedContent = nil
	s.enrolledPaths = nil
	s.achievements = nil
	s.xp = 0
	s.level = 1
	s.notifications = nil
	s.offlineContent = nil
	s.mu.Unlock()

	s.storage.Save(ctx, storage.KeyCurrentUser, nil)
	s.publish(Event{Type: LoggedOut})
}
