package catalog

import "time"

// PostUser is the author stub shown on community posts.
type PostUser struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Comment is a reply attached to a community post.
type Comment struct {
	ID        string   `json:"id"`
	User      PostUser `json:"user"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
}

// Post is one community feed entry.
type Post struct {
	ID        string    `json:"id"`
	User      PostUser  `json:"user"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	Timestamp string    `json:"timestamp"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// TopUser is a leaderboard row.
type TopUser struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	Contributions int    `json:"contributions"`
}

// Event is a calendar entry; Date carries the day, Time the display slot.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Type     string    `json:"type"`
	Duration string    `json:"duration"`
}

// Posts returns the fixed community feed.
func Posts() []Post {
	return []Post{
		{
			ID:        "post-1",
			User:      PostUser{Name: "Alex Chen", Level: 12},
			Content:   "Just completed the AI Development Path and it was incredible! The practical exercises really helped me understand how to implement neural networks. Highly recommend it to anyone interested in AI.",
			Type:      "discussion",
			Timestamp: "2023-12-28T14:30:00Z",
			Likes:     24,
			Comments: []Comment{
				{ID: "comment-1-1", User: PostUser{Name: "Maya Singh", Level: 8}, Content: "I am starting that path next week! Any tips?", Timestamp: "2023-12-28T15:45:00Z"},
				{ID: "comment-1-2", User: PostUser{Name: "Alex Chen", Level: 12}, Content: "Definitely focus on the practical exercises and do not rush through the math sections, they are important for later modules!", Timestamp: "2023-12-28T16:20:00Z"},
			},
		},
		{
			ID:        "post-2",
			User:      PostUser{Name: "Jordan Taylor", Level: 15},
			Content:   "Has anyone taken the Blockchain Innovation path? I am curious about how practical the content is for real-world applications.",
			Type:      "question",
			Timestamp: "2023-12-27T10:15:00Z",
			Likes:     8,
			Comments:  []Comment{},
		},
		{
			ID:        "post-3",
			User:      PostUser{Name: "Dr. Sarah Williams", Level: 20},
			Content:   "Excited to announce that I will be hosting a live Q&A session next Tuesday on \"The Future of AI in Healthcare.\" Join me to discuss how AI is transforming patient care and medical research!",
			Type:      "announcement",
			Timestamp: "2023-12-26T09:00:00Z",
			Likes:     42,
			Comments: []Comment{
				{ID: "comment-3-1", User: PostUser{Name: "Michael Johnson", Level: 10}, Content: "Looking forward to this! Will it be recorded for those who cannot attend live?", Timestamp: "2023-12-26T09:45:00Z"},
			},
		},
		{
			ID:        "post-4",
			User:      PostUser{Name: "Priya Patel", Level: 9},
			Content:   "The Data Visualization module in the Data Science path has completely changed how I present information! I used the techniques in my work presentation yesterday and my manager was impressed.",
			Type:      "discussion",
			Timestamp: "2023-12-25T16:20:00Z",
			Likes:     19,
			Comments:  []Comment{},
		},
		{
			ID:        "post-5",
			User:      PostUser{Name: "Carlos Rodriguez", Level: 11},
			Content:   "Does anyone have recommendations for resources on quantum computing beyond what is covered in the Future of Quantum Computing video? I am particularly interested in quantum algorithms.",
			Type:      "question",
			Timestamp: "2023-12-24T13:10:00Z",
			Likes:     7,
			Comments: []Comment{
				{ID: "comment-5-1", User: PostUser{Name: "Emma Wilson", Level: 14}, Content: "Check out the Quantum Algorithms specialization in the Advanced Computing path. It goes much deeper into the topic.", Timestamp: "2023-12-24T14:30:00Z"},
			},
		},
	}
}

// LeaderboardUsers returns the fixed community leaderboard.
func LeaderboardUsers() []TopUser {
	return []TopUser{
		{ID: "user-1", Name: "Dr. Sarah Williams", Level: 20, XP: 12500, Contributions: 48},
		{ID: "user-2", Name: "Jordan Taylor", Level: 15, XP: 8750, Contributions: 36},
		{ID: "user-3", Name: "Alex Chen", Level: 12, XP: 6200, Contributions: 29},
		{ID: "user-4", Name: "Emma Wilson", Level: 14, XP: 7900, Contributions: 33},
		{ID: "user-5", Name: "Priya Patel", Level: 9, XP: 4100, Contributions: 21},
	}
}

// Events builds the calendar fixture relative to now, matching the original
// seed data which spreads entries over the coming days.
func Events(now time.Time) []Event {
	day := func(offset int) time.Time {
		return now.AddDate(0, 0, offset)
	}
	return []Event{
		{ID: "event-1", Title: "Live Q&A: Future of AI in Healthcare", Date: day(1), Time: "11:00 AM", Type: "live", Duration: "1 hour"},
		{ID: "event-2", Title: "Scheduled Learning: Neural Networks", Date: day(0), Time: "3:00 PM", Type: "lesson", Duration: "45 min"},
		{ID: "event-3", Title: "Weekly Quiz: Data Analysis", Date: day(2), Time: "10:00 AM", Type: "quiz", Duration: "30 min"},
		{ID: "event-4", Title: "Path Checkpoint: Blockchain Basics", Date: day(3), Time: "2:00 PM", Type: "deadline", Duration: "1 hour"},
		{ID: "event-5", Title: "Community Discussion: Ethical AI", Date: day(4), Time: "4:00 PM", Type: "discussion", Duration: "1.5 hours"},
	}
}
