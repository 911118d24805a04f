// Package recommend produces ordered content recommendations through a chain
// of providers: AI-backed when a key is configured, then heuristic filtering,
// then a fixed basic list. The chain never fails outward; quality degrades
// silently tier by tier.
package recommend

import (
	"context"

	"github.com/wisebook/wisebook/internal/catalog"
	"github.com/wisebook/wisebook/internal/logging"
)

// Reason tags why an item was recommended.
type Reason string

const (
	ReasonPersonalized     Reason = "personalized"
	ReasonTrending         Reason = "trending"
	ReasonInterestBased    Reason = "interest-based"
	ReasonPopular          Reason = "popular"
	ReasonSkillAppropriate Reason = "skill-appropriate"
	ReasonNew              Reason = "new"
)

// maxRecommendations caps the final list.
const maxRecommendations = 5

// Recommendation is a catalog item plus the reasoning attached to it. The AI
// fields are only populated by the personalized tier.
type Recommendation struct {
	catalog.Content
	Reason          Reason `json:"reason"`
	Explanation     string `json:"explanation,omitempty"`
	BestTime        string `json:"bestTime,omitempty"`
	Relevance       string `json:"relevance,omitempty"`
	LearningInsight string `json:"learningInsight,omitempty"`
	SuggestedGoal   string `json:"suggestedGoal,omitempty"`
}

// Provider is one recommendation strategy: produce a list or fail so the
// next tier can take over.
type Provider interface {
	Name() string
	Recommend(ctx context.Context, profile *LearnerProfile) ([]Recommendation, error)
}

// Engine tries providers in order and returns the first successful list,
// deduplicated and capped. It always produces something: if every provider
// fails it falls back to the basic fixed list.
type Engine struct {
	providers []Provider
	log       logging.Logger
}

func NewEngine(log logging.Logger, providers ...Provider) *Engine {
	return &Engine{providers: providers, log: log}
}

func (e *Engine) Recommend(ctx context.Context, profile *LearnerProfile) []Recommendation {
	for _, p := range e.providers {
		recs, err := p.Recommend(ctx, profile)
		if err != nil {
			e.log.Warn(ctx, "recommendation provider failed, falling through", "provider", p.Name(), "error", err)
			continue
		}
		return finalize(recs)
	}

	recs, _ := (&BasicProvider{}).Recommend(ctx, profile)
	return finalize(recs)
}

// finalize removes duplicate content ids (first occurrence wins) and caps
// the list length.
func finalize(recs []Recommendation) []Recommendation {
	seen := make(map[string]struct{}, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}
