package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sashabaranov/go-openai"
	"github.com/wisebook/wisebook/internal/catalog"
	"github.com/wisebook/wisebook/internal/logging"
)

const systemPrompt = `You are WISEAI, an intelligent learning assistant that provides highly personalized content recommendations.

Your goal is to help users progress in their learning journey by suggesting the most relevant and engaging content based on their profile, learning history, and behavior patterns.

For each recommendation, provide:
1. The content ID
2. A personalized reason why this content would benefit the user
3. A suggestion for the best time to engage with this content
4. How it connects to their interests or career goals

Respond with a JSON object in this format:
{
  "recommendedContent": [
    {
      "id": "content-id",
      "reason": "This content will help you master X which is critical for your goal of becoming a Y",
      "bestTimeToEngage": "morning/evening/weekends",
      "connectionToGoals": "This builds directly on your interest in Z and will help you develop skills in A"
    }
  ],
  "learningInsight": "A personalized insight about their learning patterns",
  "suggestedLearningGoal": "A suggested short-term learning goal"
}`

// contentSummary is the catalog slice sent to the model.
type contentSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Topics      []string `json:"topics"`
}

type promptPayload struct {
	UserProfile      *LearnerProfile  `json:"userProfile"`
	AvailableContent []contentSummary `json:"availableContent"`
}

type aiResponse struct {
	RecommendedContent []struct {
		ID                string `json:"id"`
		Reason            string `json:"reason"`
		BestTimeToEngage  string `json:"bestTimeToEngage"`
		ConnectionToGoals string `json:"connectionToGoals"`
	} `json:"recommendedContent"`
	LearningInsight       string `json:"learningInsight"`
	SuggestedLearningGoal string `json:"suggestedLearningGoal"`
}

// AIProvider is the personalized tier: a chat-completion call returning
// structured JSON. Any network or parse failure is returned to the engine so
// the next tier takes over.
type AIProvider struct {
	client *openai.Client
	model  string
	log    logging.Logger
}

// NewAIProvider builds the provider. baseURL overrides the API endpoint and
// is primarily a test hook.
func NewAIProvider(apiKey, baseURL string, log logging.Logger) *AIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4o,
		log:    log,
	}
}

func (p *AIProvider) Name() string { return "openai" }

func (p *AIProvider) Recommend(ctx context.Context, profile *LearnerProfile) ([]Recommendation, error) {
	contents := Catalog()

	summaries := make([]contentSummary, 0, len(contents))
	for _, c := range contents {
		summaries = append(summaries, contentSummary{
			ID:          c.ID,
			Title:       c.Title,
			Type:        c.Type,
			Description: c.Description,
			Duration:    c.Duration,
			Difficulty:  c.Level,
			Topics:      c.Topics,
		})
	}

	payload, err := json.Marshal(promptPayload{UserProfile: profile, AvailableContent: summaries})
	if err != nil {
		return nil, fmt.Errorf("marshaling prompt payload: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	var parsed aiResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("parsing completion: %w", err)
	}
	if len(parsed.RecommendedContent) == 0 {
		return nil, errors.New("completion contained no recommendations")
	}

	byID := make(map[string]int, len(contents))
	for i, c := range contents {
		byID[c.ID] = i
	}

	recs := make([]Recommendation, 0, len(parsed.RecommendedContent))
	for _, rc := range parsed.RecommendedContent {
		idx, ok := byID[rc.ID]
		if !ok {
			p.log.Warn(ctx, "model recommended unknown content id", "id", rc.ID)
			continue
		}
		recs = append(recs, Recommendation{
			Content:     contents[idx],
			Reason:      ReasonPersonalized,
			Explanation: rc.Reason,
			BestTime:    rc.BestTimeToEngage,
			Relevance:   rc.ConnectionToGoals,
		})
	}
	if len(recs) > 0 {
		recs[0].LearningInsight = parsed.LearningInsight
		recs[0].SuggestedGoal = parsed.SuggestedLearningGoal
	}

	// Too few personalized picks: pad with shuffled untouched items tagged
	// as trending.
	if len(recs) < 3 {
		recs = append(recs, trendingPadding(contents, recs)...)
	}

	return recs, nil
}

// trendingPadding shuffles the catalog items not already recommended and
// returns enough of them to bring the list up to the cap.
func trendingPadding(contents []catalog.Content, recs []Recommendation) []Recommendation {
	used := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		used[r.ID] = struct{}{}
	}

	remaining := make([]catalog.Content, 0, len(contents))
	for _, c := range contents {
		if _, ok := used[c.ID]; !ok {
			remaining = append(remaining, c)
		}
	}
	rand.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	padding := make([]Recommendation, 0)
	for _, c := range remaining {
		if len(recs)+len(padding) == maxRecommendations {
			break
		}
		padding = append(padding, Recommendation{Content: c, Reason: ReasonTrending})
	}
	return padding
}
