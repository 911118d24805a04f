package cli

import (
	"context"
	"fmt"
)

// Theme flips between dark and light mode and persists the choice.
func (a *App) Theme(ctx context.Context) error {
	mode := "dark"
	if a.state.ThemeMode() == "dark" {
		mode = "light"
	}
	a.state.SetThemeMode(ctx, mode)
	printlnFn("Theme set to " + mode + ".")
	return nil
}

// Settings shows the persisted app settings.
func (a *App) Settings(ctx context.Context) error {
	settings := a.store.LoadSettings(ctx)
	printlnFn(fmt.Sprintf("theme: %s, notifications: %t, offline mode: %t, data usage: %s",
		settings.ThemeMode, settings.Notifications, settings.OfflineMode, settings.DataUsage))
	return nil
}
