package storage

import "context"

// AppSettings mirrors the persisted appSettings blob.
type AppSettings struct {
	ThemeMode     string `json:"themeMode"`
	Notifications bool   `json:"notifications"`
	OfflineMode   bool   `json:"offlineMode"`
	DataUsage     string `json:"dataUsage"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
// Dark theme is the default.
func DefaultSettings() AppSettings {
	return AppSettings{
		ThemeMode:     "dark",
		Notifications: true,
		OfflineMode:   false,
		DataUsage:     "standard",
	}
}

// SaveSettings persists the app settings blob.
func (s *Store) SaveSettings(ctx context.Context, settings AppSettings) bool {
	return s.Save(ctx, KeyAppSettings, settings)
}

// LoadSettings returns the persisted settings, or the defaults when the key
// is absent or unreadable.
func (s *Store) LoadSettings(ctx context.Context) AppSettings {
	settings := DefaultSettings()
	if !s.Load(ctx, KeyAppSettings, &settings) {
		return DefaultSettings()
	}
	return settings
}
