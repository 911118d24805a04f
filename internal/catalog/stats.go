package catalog

// UserStats summarizes a learner's progress for the profile screen.
type UserStats struct {
	Level             int `json:"level"`
	XP                int `json:"xp"`
	XPToNextLevel     int `json:"xpToNextLevel"`
	CompletedCourses  int `json:"completedCourses"`
	CompletedPaths    int `json:"completedPaths"`
	DailyStreak       int `json:"dailyStreak"`
	TotalLearningTime int `json:"totalLearningTime"`
	Badges            int `json:"badges"`
	Achievements      int `json:"achievements"`
	CompletionRate    int `json:"completionRate,omitempty"`
	CommunityPoints   int `json:"communityPoints,omitempty"`
	ReviewsGiven      int `json:"reviewsGiven,omitempty"`
}

// Achievement is one profile badge, unlocked or not.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	XP          int    `json:"xp"`
	Unlocked    bool   `json:"unlocked"`
	Date        string `json:"date,omitempty"`
}

// Stats returns the fixed user statistics.
func Stats() UserStats {
	return UserStats{
		Level:             8,
		XP:                320,
		XPToNextLevel:     500,
		CompletedCourses:  12,
		CompletedPaths:    2,
		DailyStreak:       16,
		TotalLearningTime: 42,
		Badges:            14,
		Achievements:      7,
	}
}

// Achievements returns the fixed achievement set.
func Achievements() []Achievement {
	return []Achievement{
		{ID: "achievement-1", Title: "First Steps", Description: "Completed your first course", Icon: "award", Category: "Progress", XP: 50, Unlocked: true, Date: "2023-10-15T14:30:00Z"},
		{ID: "achievement-2", Title: "Knowledge Seeker", Description: "Completed 5 courses", Icon: "book", Category: "Progress", XP: 100, Unlocked: true, Date: "2023-11-03T09:15:00Z"},
		{ID: "achievement-3", Title: "Wisdom Master", Description: "Completed 10 courses", Icon: "book-open", Category: "Progress", XP: 200, Unlocked: true, Date: "2023-12-21T16:45:00Z"},
		{ID: "achievement-4", Title: "Consistent Learner", Description: "Maintained a 7-day streak", Icon: "calendar", Category: "Engagement", XP: 75, Unlocked: true, Date: "2023-10-22T10:00:00Z"},
		{ID: "achievement-5", Title: "Learning Devotee", Description: "Maintained a 30-day streak", Icon: "calendar", Category: "Engagement", XP: 150},
		{ID: "achievement-6", Title: "Path Pioneer", Description: "Completed your first learning path", Icon: "map", Category: "Paths", XP: 125, Unlocked: true, Date: "2023-11-15T20:30:00Z"},
		{ID: "achievement-7", Title: "Path Master", Description: "Completed 3 learning paths", Icon: "map-pin", Category: "Paths", XP: 250},
		{ID: "achievement-8", Title: "Community Contributor", Description: "Made 5 helpful posts in the community", Icon: "users", Category: "Community", XP: 100, Unlocked: true, Date: "2023-12-05T14:20:00Z"},
		{ID: "achievement-9", Title: "Thought Leader", Description: "Received 50 likes on your community posts", Icon: "thumbs-up", Category: "Community", XP: 150},
		{ID: "achievement-10", Title: "Quiz Whiz", Description: "Scored 100% on 10 quizzes", Icon: "check-circle", Category: "Performance", XP: 200},
	}
}
