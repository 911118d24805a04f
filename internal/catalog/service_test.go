package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisebook/wisebook/internal/logging"
)

func testService() *Service {
	return NewService(0, logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestLibraryContent(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	contents, err := svc.LibraryContent(ctx)
	require.NoError(t, err)
	assert.Len(t, contents, 10)
	assert.Equal(t, "content-1", contents[0].ID)
}

func TestContentDetails_Course(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	details, err := svc.ContentDetails(ctx, "content-1")
	require.NoError(t, err)
	require.Equal(t, "course", details.Type)
	assert.True(t, details.FullDetails)
	assert.Len(t, details.Modules, 5)
	assert.NotEmpty(t, details.LearningPoints)
	require.NotNil(t, details.Author)
	assert.Equal(t, "Dr. Alex Morgan", details.Author.Name)

	// First two modules done, everything past the third locked.
	assert.True(t, details.Modules[0].Completed)
	assert.True(t, details.Modules[1].Completed)
	assert.False(t, details.Modules[2].Locked)
	assert.True(t, details.Modules[3].Locked)
}

func TestContentDetails_NonCourseGetsDefaultAuthor(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	details, err := svc.ContentDetails(ctx, "content-2")
	require.NoError(t, err)
	assert.Equal(t, "video", details.Type)
	assert.Empty(t, details.Modules)
	require.NotNil(t, details.Author)
	assert.Equal(t, "Dr. Alex Johnson", details.Author.Name)
}

func TestContentDetails_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	_, err := svc.ContentDetails(ctx, "content-999")
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestRecentContent(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	recent, err := svc.RecentContent(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}

func TestContinueLearning_BoundedWithPartialProgress(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	items, err := svc.ContinueLearning(ctx, "1")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(items), 3)
	for _, c := range items {
		assert.GreaterOrEqual(t, c.Progress, 0.0)
		assert.Less(t, c.Progress, 1.0)
	}
}

func TestLearningPaths(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	paths, err := svc.LearningPaths(ctx)
	require.NoError(t, err)
	assert.Len(t, paths, 5)
}

func TestEnrolledPaths_Bounded(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	enrolled, err := svc.EnrolledPaths(ctx, "1")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(enrolled), 2)
	for _, e := range enrolled {
		assert.True(t, e.Enrolled)
		assert.Less(t, e.CompletedCheckpoints, e.TotalCheckpoints)
	}
}

func TestPathDetails(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	details, err := svc.PathDetails(ctx, "path-1")
	require.NoError(t, err)
	assert.True(t, details.FullDetails)
	assert.Len(t, details.Checkpoints, details.TotalCheckpoints)
	assert.Equal(t, 2, details.CompletedCheckpoints)
	assert.Len(t, details.Achievements, 3)

	for i, cp := range details.Checkpoints {
		if i%2 == 0 {
			assert.Equal(t, "content", cp.Type)
			assert.NotEmpty(t, cp.ContentType)
		} else {
			assert.Equal(t, "quiz", cp.Type)
			assert.Positive(t, cp.Questions)
		}
		assert.Equal(t, i < 2, cp.Completed)
	}
}

func TestPathDetails_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	_, err := svc.PathDetails(ctx, "path-999")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestUserStats(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	stats, err := svc.UserStats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Level)
	assert.Equal(t, 320, stats.XP)
}

func TestUserAchievements(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	achievements, err := svc.UserAchievements(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, achievements, 10)
}

func TestCommunityPosts(t *testing.T) {
	ctx := context.Background()
	svc := testService()

	posts, err := svc.CommunityPosts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, posts)
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	svc := testService()
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	post, err := svc.CreatePost(ctx, "hello", "general")
	require.NoError(t, err)
	assert.Equal(t, "post-1740830400000", post.ID)
	assert.Equal(t, "hello", post.Content)
	assert.Equal(t, "You", post.User.Name)
	assert.Zero(t, post.Likes)
	assert.NotNil(t, post.Comments)
}

func TestUpcomingEvents_FiltersByDay(t *testing.T) {
	ctx := context.Background()
	svc := testService()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	today, err := svc.UpcomingEvents(ctx, "1", base)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "event-2", today[0].ID)

	tomorrow, err := svc.UpcomingEvents(ctx, "1", base.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, tomorrow, 1)
	assert.Equal(t, "event-1", tomorrow[0].ID)

	farFuture, err := svc.UpcomingEvents(ctx, "1", base.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, farFuture)
}

func TestPause_CancelledContext(t *testing.T) {
	svc := NewService(time.Minute, logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.LibraryContent(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
