package catalog

// Path is a structured learning journey made of checkpoints.
type Path struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Level            string `json:"level"`
	Duration         string `json:"duration"`
	TotalCheckpoints int    `json:"totalCheckpoints"`
	TotalXP          int    `json:"totalXP"`
	Icon             string `json:"icon"`
	Popular          bool   `json:"popular,omitempty"`
	New              bool   `json:"new,omitempty"`
}

// Checkpoint is one step of a path roadmap: either content or a quiz.
type Checkpoint struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XP          int    `json:"xp"`
	Completed   bool   `json:"completed"`
	Type        string `json:"type"`
	ContentType string `json:"contentType,omitempty"`
	Duration    string `json:"duration"`
	Questions   int    `json:"questions,omitempty"`
	ContentID   string `json:"contentId"`
}

// PathAchievement is a badge attached to path progress milestones.
type PathAchievement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	XP       int    `json:"xp"`
	Unlocked bool   `json:"unlocked"`
}

// PathDetails is a Path enriched with its roadmap for the detail view.
type PathDetails struct {
	Path
	FullDetails          bool              `json:"fullDetails"`
	Checkpoints          []Checkpoint      `json:"checkpoints"`
	Enrolled             bool              `json:"enrolled"`
	Progress             float64           `json:"progress"`
	CompletedCheckpoints int               `json:"completedCheckpoints"`
	Skills               []string          `json:"skills"`
	Achievements         []PathAchievement `json:"achievements"`
}

// EnrolledPath is a Path with the user's progress attached.
type EnrolledPath struct {
	Path
	Enrolled             bool    `json:"enrolled"`
	Progress             float64 `json:"progress"`
	CompletedCheckpoints int     `json:"completedCheckpoints"`
	XPEarned             int     `json:"xpEarned"`
}

// Paths returns the fixed learning paths.
func Paths() []Path {
	return []Path{
		{
			ID:               "path-1",
			Title:            "Data Science Mastery",
			Description:      "Become a data science expert through a structured learning journey from basics to advanced techniques.",
			Level:            "Intermediate",
			Duration:         "12 weeks",
			TotalCheckpoints: 12,
			TotalXP:          1200,
			Icon:             "database",
			Popular:          true,
		},
		{
			ID:               "path-2",
			Title:            "AI Development Journey",
			Description:      "Build your artificial intelligence skills from foundational concepts to implementing complex neural networks.",
			Level:            "Advanced",
			Duration:         "16 weeks",
			TotalCheckpoints: 16,
			TotalXP:          1600,
			Icon:             "cpu",
		},
		{
			ID:               "path-3",
			Title:            "Digital Marketing Excellence",
			Description:      "Master digital marketing strategies across multiple platforms to drive growth and engagement.",
			Level:            "Beginner",
			Duration:         "8 weeks",
			TotalCheckpoints: 8,
			TotalXP:          800,
			Icon:             "trending-up",
			New:              true,
		},
		{
			ID:               "path-4",
			Title:            "High Performance Mindset",
			Description:      "Develop mental strategies for optimal performance in high-pressure environments.",
			Level:            "Intermediate",
			Duration:         "6 weeks",
			TotalCheckpoints: 6,
			TotalXP:          600,
			Icon:             "activity",
		},
		{
			ID:               "path-5",
			Title:            "Blockchain Innovation",
			Description:      "Learn blockchain technology and how to implement decentralized applications for various industries.",
			Level:            "Advanced",
			Duration:         "10 weeks",
			TotalCheckpoints: 10,
			TotalXP:          1000,
			Icon:             "link",
		},
	}
}
