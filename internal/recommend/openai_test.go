package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer serves a canned chat completion whose message content is
// the given string.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAIProvider_MapsRecommendations(t *testing.T) {
	content, err := json.Marshal(map[string]any{
		"recommendedContent": []map[string]any{
			{"id": "content-3", "reason": "Builds on your statistics strengths", "bestTimeToEngage": "evening", "connectionToGoals": "Core for the data scientist track"},
			{"id": "content-1", "reason": "Fills your deep learning gap", "bestTimeToEngage": "morning", "connectionToGoals": "Matches your AI interest"},
			{"id": "content-9", "reason": "Rounds out your fundamentals", "bestTimeToEngage": "weekends", "connectionToGoals": "Broadens your technical base"},
		},
		"learningInsight":       "You learn best in short evening sessions",
		"suggestedLearningGoal": "Finish the data science path this month",
	})
	require.NoError(t, err)

	srv := completionServer(t, string(content))
	p := NewAIProvider("test-key", srv.URL, testLogger())

	recs, err := p.Recommend(context.Background(), testProfile())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "content-3", recs[0].ID)
	assert.Equal(t, ReasonPersonalized, recs[0].Reason)
	assert.Equal(t, "Builds on your statistics strengths", recs[0].Explanation)
	assert.Equal(t, "evening", recs[0].BestTime)
	assert.Equal(t, "Core for the data scientist track", recs[0].Relevance)

	// Insight and goal land on the first item only.
	assert.Equal(t, "You learn best in short evening sessions", recs[0].LearningInsight)
	assert.Equal(t, "Finish the data science path this month", recs[0].SuggestedGoal)
	assert.Empty(t, recs[1].LearningInsight)
}

func TestAIProvider_SkipsUnknownIDsAndPads(t *testing.T) {
	content, err := json.Marshal(map[string]any{
		"recommendedContent": []map[string]any{
			{"id": "content-1", "reason": "Matches your AI interest"},
			{"id": "content-999", "reason": "Hallucinated"},
		},
	})
	require.NoError(t, err)

	srv := completionServer(t, string(content))
	p := NewAIProvider("test-key", srv.URL, testLogger())

	recs, err := p.Recommend(context.Background(), testProfile())
	require.NoError(t, err)
	require.Len(t, recs, maxRecommendations)

	assert.Equal(t, "content-1", recs[0].ID)
	assert.Equal(t, ReasonPersonalized, recs[0].Reason)

	seen := map[string]bool{"content-1": true}
	for _, r := range recs[1:] {
		assert.Equal(t, ReasonTrending, r.Reason)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestAIProvider_MalformedCompletion(t *testing.T) {
	srv := completionServer(t, "not json at all")
	p := NewAIProvider("test-key", srv.URL, testLogger())

	_, err := p.Recommend(context.Background(), testProfile())
	assert.ErrorContains(t, err, "parsing completion")
}

func TestAIProvider_EmptyRecommendations(t *testing.T) {
	srv := completionServer(t, `{"recommendedContent":[]}`)
	p := NewAIProvider("test-key", srv.URL, testLogger())

	_, err := p.Recommend(context.Background(), testProfile())
	assert.ErrorContains(t, err, "no recommendations")
}

func TestAIProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	p := NewAIProvider("test-key", srv.URL, testLogger())
	_, err := p.Recommend(context.Background(), testProfile())
	assert.ErrorContains(t, err, "chat completion")
}
