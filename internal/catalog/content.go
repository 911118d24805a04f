// Package catalog serves the learning catalog: library content, learning
// paths, user stats, achievements, and the community feed. There is no
// backend; every operation simulates a network round trip and answers from
// fixed in-memory data.
package catalog

// Author describes who produced a piece of content.
type Author struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// Content is one library item: a course, video, book, or audio session.
type Content struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Rating      float64  `json:"rating"`
	Progress    float64  `json:"progress,omitempty"`
	XP          int      `json:"xp"`
	Author      *Author  `json:"author,omitempty"`
	Topics      []string `json:"topics"`
}

// Module is one unit of a course, generated for the details view.
type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Completed   bool   `json:"completed"`
	Locked      bool   `json:"locked"`
	XP          int    `json:"xp"`
}

// ContentDetails is a Content enriched for the detail view.
type ContentDetails struct {
	Content
	FullDetails    bool     `json:"fullDetails"`
	Modules        []Module `json:"modules,omitempty"`
	LearningPoints []string `json:"learningPoints"`
}

// Contents returns the fixed content catalog.
func Contents() []Content {
	return []Content{
		{
			ID:          "content-1",
			Title:       "Introduction to Artificial Intelligence",
			Description: "Learn the fundamental concepts of AI, from basic algorithms to advanced neural networks.",
			Type:        "course",
			Duration:    "4 hours",
			Level:       "Beginner",
			Rating:      4.8,
			Progress:    0.3,
			XP:          120,
			Author: &Author{
				Name: "Dr. Alex Morgan",
				Bio:  "AI researcher with 10+ years of experience at leading tech companies.",
			},
			Topics: []string{"AI", "Machine Learning", "Neural Networks"},
		},
		{
			ID:          "content-2",
			Title:       "The Future of Quantum Computing",
			Description: "Explore how quantum computing is transforming technology and opening new possibilities.",
			Type:        "video",
			Duration:    "45 minutes",
			Level:       "Intermediate",
			Rating:      4.7,
			XP:          80,
			Topics:      []string{"Quantum Computing", "Technology Trends", "Advanced Computing"},
		},
		{
			ID:          "content-3",
			Title:       "Data Science Masterclass",
			Description: "Master the skills needed to become a data scientist, from statistics to machine learning.",
			Type:        "course",
			Duration:    "8 hours",
			Level:       "Advanced",
			Rating:      4.9,
			XP:          200,
			Topics:      []string{"Data Science", "Statistics", "Machine Learning", "Python"},
		},
		{
			ID:          "content-4",
			Title:       "Mindfulness for High Performance",
			Description: "Learn how to incorporate mindfulness practices into your daily routine for increased focus and productivity.",
			Type:        "audio",
			Duration:    "3 hours",
			Level:       "Beginner",
			Rating:      4.6,
			XP:          90,
			Topics:      []string{"Mindfulness", "Productivity", "Mental Health"},
		},
		{
			ID:          "content-5",
			Title:       "Digital Marketing Strategies",
			Description: "Discover the latest digital marketing techniques to grow your business and reach new customers.",
			Type:        "course",
			Duration:    "5 hours",
			Level:       "Intermediate",
			Rating:      4.5,
			XP:          150,
			Topics:      []string{"Digital Marketing", "Business", "Social Media"},
		},
		{
			ID:          "content-6",
			Title:       "Blockchain Technology Explained",
			Description: "Understand the fundamentals of blockchain and how it is revolutionizing industries.",
			Type:        "book",
			Duration:    "2 hours",
			Level:       "Beginner",
			Rating:      4.4,
			XP:          100,
			Topics:      []string{"Blockchain", "Cryptocurrency", "Technology"},
		},
		{
			ID:          "content-7",
			Title:       "Accelerated Learning Techniques",
			Description: "Learn how to learn faster and retain more information with proven cognitive strategies.",
			Type:        "course",
			Duration:    "3 hours",
			Level:       "Beginner",
			Rating:      4.8,
			XP:          110,
			Topics:      []string{"Learning", "Productivity", "Cognitive Science"},
		},
		{
			ID:          "content-8",
			Title:       "The Psychology of Decision Making",
			Description: "Explore the cognitive biases that influence our decisions and learn how to make better choices.",
			Type:        "book",
			Duration:    "4 hours",
			Level:       "Intermediate",
			Rating:      4.7,
			XP:          130,
			Topics:      []string{"Psychology", "Decision Making", "Cognitive Biases"},
		},
		{
			ID:          "content-9",
			Title:       "Cybersecurity Fundamentals",
			Description: "Learn essential practices to protect your digital assets from cyber threats.",
			Type:        "course",
			Duration:    "6 hours",
			Level:       "Intermediate",
			Rating:      4.6,
			XP:          160,
			Topics:      []string{"Cybersecurity", "Digital Safety", "Technology"},
		},
		{
			ID:          "content-10",
			Title:       "Leadership in the Digital Age",
			Description: "Develop the skills needed to lead teams in today's rapidly changing technological landscape.",
			Type:        "video",
			Duration:    "90 minutes",
			Level:       "Advanced",
			Rating:      4.9,
			XP:          170,
			Topics:      []string{"Leadership", "Management", "Digital Transformation"},
		},
	}
}
