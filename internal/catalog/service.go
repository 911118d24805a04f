package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/wisebook/wisebook/internal/logging"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrPathNotFound    = errors.New("path not found")
)

// Service answers catalog queries from the in-memory fixtures after a
// simulated network delay. All operations are cancellable through ctx while
// waiting out the delay.
type Service struct {
	delay time.Duration
	log   logging.Logger
	now   func() time.Time
}

// NewService builds a catalog service with the given simulated latency.
// A zero delay disables the pause (useful in tests).
func NewService(delay time.Duration, log logging.Logger) *Service {
	return &Service{delay: delay, log: log, now: time.Now}
}

func (s *Service) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LibraryContent returns the whole content catalog.
func (s *Service) LibraryContent(ctx context.Context) ([]Content, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return Contents(), nil
}

// ContentDetails returns one content item enriched for the detail view.
// Courses get a generated module list.
func (s *Service) ContentDetails(ctx context.Context, contentID string) (*ContentDetails, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	content, ok := findContent(contentID)
	if !ok {
		return nil, fmt.Errorf("content %s: %w", contentID, ErrContentNotFound)
	}

	details := &ContentDetails{
		Content:     content,
		FullDetails: true,
		LearningPoints: []string{
			"Master key concepts and practical applications",
			"Develop critical thinking and problem-solving skills",
			"Apply knowledge in real-world scenarios",
			"Gain insights from industry experts",
		},
	}
	if details.Author == nil {
		details.Author = &Author{
			Name: "Dr. Alex Johnson",
			Bio:  "Leading expert in this field with over 15 years of experience in research and education.",
		}
	}
	if content.Type == "course" {
		details.Modules = generateModules(contentID, 5)
	}
	return details, nil
}

// RecentContent returns the newest slice of the catalog for the home screen.
func (s *Service) RecentContent(ctx context.Context) ([]Content, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return Contents()[:5], nil
}

// ContinueLearning returns up to three in-progress items with simulated
// partial progress.
func (s *Service) ContinueLearning(ctx context.Context, userID string) ([]Content, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	items := make([]Content, 0, 3)
	for _, c := range Contents() {
		if rand.Float64() <= 0.7 {
			continue
		}
		c.Progress = rand.Float64() * 0.9
		items = append(items, c)
		if len(items) == 3 {
			break
		}
	}
	return items, nil
}

// MarkProgress records progress for a content item. With no backend this is
// acknowledge-only.
func (s *Service) MarkProgress(ctx context.Context, contentID, userID string, progress float64) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	s.log.Debug(ctx, "content progress", "content", contentID, "user", userID, "progress", progress)
	return nil
}

// LearningPaths returns all learning paths.
func (s *Service) LearningPaths(ctx context.Context) ([]Path, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return Paths(), nil
}

// EnrolledPaths returns up to two paths the user is simulated to be
// enrolled in.
func (s *Service) EnrolledPaths(ctx context.Context, userID string) ([]EnrolledPath, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	enrolled := make([]EnrolledPath, 0, 2)
	for _, p := range Paths() {
		if rand.Float64() <= 0.6 {
			continue
		}
		enrolled = append(enrolled, EnrolledPath{
			Path:                 p,
			Enrolled:             true,
			Progress:             rand.Float64(),
			CompletedCheckpoints: rand.IntN(p.TotalCheckpoints),
			XPEarned:             rand.IntN(p.TotalXP),
		})
		if len(enrolled) == 2 {
			break
		}
	}
	return enrolled, nil
}

// PathDetails returns a path with its generated checkpoint roadmap.
func (s *Service) PathDetails(ctx context.Context, pathID string) (*PathDetails, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	var path *Path
	for _, p := range Paths() {
		if p.ID == pathID {
			path = &p
			break
		}
	}
	if path == nil {
		return nil, fmt.Errorf("path %s: %w", pathID, ErrPathNotFound)
	}

	contents := Contents()
	checkpoints := make([]Checkpoint, path.TotalCheckpoints)
	for i := range checkpoints {
		cp := Checkpoint{
			ID:          fmt.Sprintf("checkpoint-%s-%d", pathID, i),
			Title:       fmt.Sprintf("Checkpoint %d: %s", i+1, checkpointTitle(i)),
			Description: "This checkpoint covers essential concepts and practical applications to enhance your understanding.",
			XP:          rand.IntN(30) + 10,
			Completed:   i < 2,
			Duration:    fmt.Sprintf("%d min", rand.IntN(30)+10),
			ContentID:   contents[rand.IntN(len(contents))].ID,
		}
		if i%2 == 0 {
			cp.Type = "content"
			cp.ContentType = []string{"video", "book", "course"}[rand.IntN(3)]
		} else {
			cp.Type = "quiz"
			cp.Questions = rand.IntN(10) + 5
		}
		checkpoints[i] = cp
	}

	return &PathDetails{
		Path:                 *path,
		FullDetails:          true,
		Checkpoints:          checkpoints,
		Enrolled:             rand.Float64() > 0.5,
		Progress:             0.2,
		CompletedCheckpoints: 2,
		Skills: []string{
			"Critical Thinking",
			"Problem Solving",
			"Data Analysis",
			"Communication",
			"Technical Proficiency",
		},
		Achievements: []PathAchievement{
			{ID: "path-beginner", Title: "Path Beginner", Icon: "award", XP: 50, Unlocked: true},
			{ID: "path-intermediate", Title: "Path Intermediate", Icon: "award", XP: 100},
			{ID: "path-expert", Title: "Path Expert", Icon: "award", XP: 150},
		},
	}, nil
}

// EnrollInPath records an enrollment. Acknowledge-only without a backend.
func (s *Service) EnrollInPath(ctx context.Context, pathID, userID string) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	s.log.Debug(ctx, "path enrollment", "path", pathID, "user", userID)
	return nil
}

// UserStats returns the learner's statistics.
func (s *Service) UserStats(ctx context.Context, userID string) (UserStats, error) {
	if err := s.pause(ctx); err != nil {
		return UserStats{}, err
	}
	return Stats(), nil
}

// UserAchievements returns the learner's achievement set.
func (s *Service) UserAchievements(ctx context.Context, userID string) ([]Achievement, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return Achievements(), nil
}

// CommunityPosts returns the community feed.
func (s *Service) CommunityPosts(ctx context.Context) ([]Post, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return Posts(), nil
}

// CreatePost builds a new feed entry for the current user.
func (s *Service) CreatePost(ctx context.Context, content, postType string) (*Post, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	return &Post{
		ID:        fmt.Sprintf("post-%d", now.UnixMilli()),
		User:      PostUser{Name: "You", Level: 5},
		Content:   content,
		Type:      postType,
		Timestamp: now.UTC().Format(time.RFC3339),
		Likes:     0,
		Comments:  []Comment{},
	}, nil
}

// TopUsers returns the community leaderboard.
func (s *Service) TopUsers(ctx context.Context) ([]TopUser, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	return LeaderboardUsers(), nil
}

// UpcomingEvents returns the calendar entries falling on the given day.
func (s *Service) UpcomingEvents(ctx context.Context, userID string, date time.Time) ([]Event, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	matched := make([]Event, 0)
	for _, e := range Events(s.now()) {
		if sameDay(e.Date, date) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func findContent(id string) (Content, bool) {
	for _, c := range Contents() {
		if c.ID == id {
			return c, true
		}
	}
	return Content{}, false
}

func generateModules(contentID string, count int) []Module {
	modules := make([]Module, count)
	for i := range modules {
		modules[i] = Module{
			ID:          fmt.Sprintf("module-%s-%d", contentID, i),
			Title:       fmt.Sprintf("Module %d: %s", i+1, moduleTitle(i)),
			Description: "Learn essential concepts and practical applications through interactive lessons.",
			Duration:    fmt.Sprintf("%d min", rand.IntN(30)+10),
			Completed:   i < 2,
			Locked:      i > 2,
			XP:          rand.IntN(20) + 10,
		}
	}
	return modules
}

func moduleTitle(index int) string {
	titles := []string{
		"Introduction to Fundamentals",
		"Core Concepts and Principles",
		"Advanced Techniques",
		"Practical Applications",
		"Case Studies and Examples",
		"Future Trends and Innovations",
	}
	return titles[index%len(titles)]
}

func checkpointTitle(index int) string {
	titles := []string{
		"Understanding the Basics",
		"Applying Core Principles",
		"Mastering Advanced Concepts",
		"Analyzing Real-world Scenarios",
		"Building Your Portfolio",
		"Final Assessment",
	}
	return titles[index%len(titles)]
}
