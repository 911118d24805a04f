package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/wisebook/wisebook/internal/catalog"
	"github.com/wisebook/wisebook/internal/recommend"
)

// Recommend prints up to five content picks for the current user. The engine
// never fails; the list just gets less personal when tiers fall through.
func (a *App) Recommend(ctx context.Context) error {
	user := a.state.User()
	if user == nil {
		printlnFn("Log in first.")
		return nil
	}

	stats, err := a.catalog.UserStats(ctx, user.ID)
	if err != nil {
		a.log.Warn(ctx, "stats unavailable, using profile defaults", "error", err)
		stats = catalog.UserStats{Level: user.Level, XP: user.XP}
	}
	profile := recommend.BuildProfile(stats, time.Now())

	for _, rec := range a.engine.Recommend(ctx, profile) {
		printlnFn(fmt.Sprintf("[%s] %s — %s", rec.Reason, rec.Title, rec.Explanation))
		if rec.LearningInsight != "" {
			printlnFn("  insight: " + rec.LearningInsight)
		}
	}
	return nil
}
