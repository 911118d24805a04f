package cli

import (
	"context"
	"fmt"
)

// Library lists the content catalog.
func (a *App) Library(ctx context.Context) error {
	contents, err := a.catalog.LibraryContent(ctx)
	if err != nil {
		printlnFn("Could not load the library.")
		return err
	}
	for _, c := range contents {
		printlnFn(fmt.Sprintf("[%s] %s (%s, %s) — %.1f★, %d xp", c.ID, c.Title, c.Type, c.Level, c.Rating, c.XP))
	}
	return nil
}

// Paths lists the learning paths.
func (a *App) Paths(ctx context.Context) error {
	paths, err := a.catalog.LearningPaths(ctx)
	if err != nil {
		printlnFn("Could not load the learning paths.")
		return err
	}
	for _, p := range paths {
		printlnFn(fmt.Sprintf("[%s] %s (%s, %s) — %d checkpoints, %d xp", p.ID, p.Title, p.Level, p.Duration, p.TotalCheckpoints, p.TotalXP))
	}
	return nil
}

// Stats shows the learner's statistics.
func (a *App) Stats(ctx context.Context) error {
	user := a.state.User()
	if user == nil {
		printlnFn("Log in first.")
		return nil
	}
	stats, err := a.catalog.UserStats(ctx, user.ID)
	if err != nil {
		printlnFn("Could not load your stats.")
		return err
	}
	printlnFn(fmt.Sprintf("Level %d — %d/%d xp, %d courses, %d paths, %d-day streak",
		stats.Level, stats.XP, stats.XPToNextLevel, stats.CompletedCourses, stats.CompletedPaths, stats.DailyStreak))
	return nil
}

// Achievements lists the learner's badges.
func (a *App) Achievements(ctx context.Context) error {
	user := a.state.User()
	if user == nil {
		printlnFn("Log in first.")
		return nil
	}
	achievements, err := a.catalog.UserAchievements(ctx, user.ID)
	if err != nil {
		printlnFn("Could not load your achievements.")
		return err
	}
	for _, ach := range achievements {
		status := " "
		if ach.Unlocked {
			status = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s — %s (%d xp)", status, ach.Title, ach.Description, ach.XP))
	}
	return nil
}
