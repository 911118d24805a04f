package recommend

import (
	"time"

	"github.com/wisebook/wisebook/internal/catalog"
)

// LearnerProfile is the synthetic profile sent to the AI tier and consumed
// by the heuristic tier. Shapes match the JSON payload of the prompt.
type LearnerProfile struct {
	Profile  ProfileSummary  `json:"profile"`
	History  ProfileHistory  `json:"history"`
	Behavior ProfileBehavior `json:"behavior"`
}

type ProfileSummary struct {
	SkillLevel       string   `json:"skillLevel"`
	Interests        []string `json:"interests"`
	LearningStyle    string   `json:"learningStyle"`
	AvailableTime    string   `json:"availableTime"`
	CareerGoals      []string `json:"careerGoals"`
	PreferredFormats []string `json:"preferredFormats"`
}

type ProfileHistory struct {
	CompletedContent    []string `json:"completedContent"`
	InProgressContent   []string `json:"inProgressContent"`
	EnrolledPaths       []string `json:"enrolledPaths"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	CompletionRate      int      `json:"completionRate"`
	AverageSessionTime  int      `json:"averageSessionTime"`
	LastActive          string   `json:"lastActive"`
}

type ProfileBehavior struct {
	PreferredStudyTime string            `json:"preferredStudyTime"`
	EngagementMetrics  EngagementMetrics `json:"engagementMetrics"`
	SocialInteractions int               `json:"socialInteractions"`
	FeedbackProvided   int               `json:"feedbackProvided"`
}

type EngagementMetrics struct {
	VideoCompletionRate    float64 `json:"videoCompletionRate"`
	QuizSuccessRate        float64 `json:"quizSuccessRate"`
	ExerciseCompletionRate float64 `json:"exerciseCompletionRate"`
}

// SkillLevel infers a coarse skill bracket from the user's level.
func SkillLevel(level int) string {
	switch {
	case level < 5:
		return "beginner"
	case level < 15:
		return "intermediate"
	default:
		return "advanced"
	}
}

// BuildProfile assembles the synthetic learner profile from the user's stats
// and the catalog fixtures. Zero-valued stats fields get the historical
// defaults.
func BuildProfile(stats catalog.UserStats, now time.Time) *LearnerProfile {
	contents := catalog.Contents()
	paths := catalog.Paths()

	completed := contentIDs(contents[0:3])
	inProgress := contentIDs(contents[5:7])
	enrolled := []string{paths[0].ID, paths[1].ID}

	completionRate := stats.CompletionRate
	if completionRate == 0 {
		completionRate = 75
	}
	communityPoints := stats.CommunityPoints
	if communityPoints == 0 {
		communityPoints = 120
	}
	reviewsGiven := stats.ReviewsGiven
	if reviewsGiven == 0 {
		reviewsGiven = 5
	}

	return &LearnerProfile{
		Profile: ProfileSummary{
			SkillLevel:       SkillLevel(stats.Level),
			Interests:        []string{"AI", "Data Science", "Productivity", "Design Thinking"},
			LearningStyle:    "visual",
			AvailableTime:    "30min-1hr",
			CareerGoals:      []string{"Data Scientist", "Machine Learning Engineer"},
			PreferredFormats: []string{"video", "interactive"},
		},
		History: ProfileHistory{
			CompletedContent:    completed,
			InProgressContent:   inProgress,
			EnrolledPaths:       enrolled,
			Strengths:           []string{"Python", "Statistics"},
			AreasForImprovement: []string{"Deep Learning", "Data Visualization"},
			CompletionRate:      completionRate,
			AverageSessionTime:  25,
			LastActive:          now.UTC().Format(time.RFC3339),
		},
		Behavior: ProfileBehavior{
			PreferredStudyTime: "evening",
			EngagementMetrics: EngagementMetrics{
				VideoCompletionRate:    0.8,
				QuizSuccessRate:        0.7,
				ExerciseCompletionRate: 0.65,
			},
			SocialInteractions: communityPoints,
			FeedbackProvided:   reviewsGiven,
		},
	}
}

func contentIDs(contents []catalog.Content) []string {
	ids := make([]string, 0, len(contents))
	for _, c := range contents {
		ids = append(ids, c.ID)
	}
	return ids
}
