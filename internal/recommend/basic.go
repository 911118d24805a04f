package recommend

import (
	"context"

	"github.com/wisebook/wisebook/internal/catalog"
)

// Catalog is the content list the providers draw from. Overridable in tests.
var Catalog = catalog.Contents

// BasicProvider is the last-resort tier: a fixed slice of the catalog with
// no personalization. It never fails.
type BasicProvider struct{}

func (p *BasicProvider) Name() string { return "basic" }

func (p *BasicProvider) Recommend(ctx context.Context, profile *LearnerProfile) ([]Recommendation, error) {
	contents := Catalog()
	recs := make([]Recommendation, 0, 4)

	for _, c := range contents[0:2] {
		recs = append(recs, Recommendation{
			Content:     c,
			Reason:      ReasonPopular,
			Explanation: "Highly rated by learners",
		})
	}
	for _, c := range contents[4:6] {
		recs = append(recs, Recommendation{
			Content:     c,
			Reason:      ReasonNew,
			Explanation: "Recently added to the platform",
		})
	}

	return recs, nil
}
