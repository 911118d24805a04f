package recommend

import (
	"context"
	"fmt"
	"strings"
)

// HeuristicProvider is the middle tier: filter the catalog by interest
// overlap, add one popular item, one item matching the skill bracket, and
// pad the rest with fresh content.
type HeuristicProvider struct{}

func (p *HeuristicProvider) Name() string { return "heuristic" }

func (p *HeuristicProvider) Recommend(ctx context.Context, profile *LearnerProfile) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contents := Catalog()
	interests := profile.Profile.Interests
	recs := make([]Recommendation, 0, maxRecommendations)

	picked := func(id string) bool {
		for _, r := range recs {
			if r.ID == id {
				return true
			}
		}
		return false
	}

	// Up to two items whose topics overlap the user's interests.
	for _, c := range contents {
		topic := matchingTopic(c.Topics, interests)
		if topic == "" {
			continue
		}
		recs = append(recs, Recommendation{
			Content:     c,
			Reason:      ReasonInterestBased,
			Explanation: fmt.Sprintf("Matches your interest in %s", topic),
		})
		if len(recs) == 2 {
			break
		}
	}

	// One untouched item as the popular pick.
	for _, c := range contents {
		if picked(c.ID) {
			continue
		}
		recs = append(recs, Recommendation{
			Content:     c,
			Reason:      ReasonPopular,
			Explanation: "Trending in the community",
		})
		break
	}

	// One item at or slightly above the inferred skill level.
	skillLevel := profile.Profile.SkillLevel
	if skillLevel == "" {
		skillLevel = "intermediate"
	}
	for _, c := range contents {
		if picked(c.ID) || !matchesSkillLevel(skillLevel, c.Level) {
			continue
		}
		recs = append(recs, Recommendation{
			Content:     c,
			Reason:      ReasonSkillAppropriate,
			Explanation: fmt.Sprintf("Matches your %s skill level", skillLevel),
		})
		break
	}

	// Pad remaining slots with fresh content.
	for _, c := range contents {
		if len(recs) == maxRecommendations {
			break
		}
		if picked(c.ID) {
			continue
		}
		recs = append(recs, Recommendation{
			Content:     c,
			Reason:      ReasonNew,
			Explanation: "Recently added to the platform",
		})
	}

	return recs, nil
}

// matchingTopic returns the first content topic that contains one of the
// user's interests, case-insensitively.
func matchingTopic(topics, interests []string) string {
	for _, topic := range topics {
		for _, interest := range interests {
			if strings.Contains(strings.ToLower(topic), strings.ToLower(interest)) {
				return topic
			}
		}
	}
	return ""
}

// matchesSkillLevel keeps content at the user's bracket or one above, so
// recommendations stretch the learner without overwhelming them.
func matchesSkillLevel(skillLevel, contentLevel string) bool {
	level := strings.ToLower(contentLevel)
	if level == "" {
		level = "intermediate"
	}
	switch skillLevel {
	case "beginner":
		return level == "beginner" || level == "intermediate"
	case "intermediate":
		return level == "intermediate" || level == "advanced"
	default:
		return level == "advanced"
	}
}
