// Package config loads runtime settings for the WiseBook app: defaults,
// then an optional JSON file, then command-line flags, later sources
// winning.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local sqlite database.
//   - OpenAIAPIKey: credential for the personalized recommendation tier;
//     empty means the tier is skipped entirely (fully supported mode).
//   - OpenAIBaseURL: endpoint override, primarily for tests.
//   - APIDelay: simulated network latency of the catalog stubs.
//   - LogLevel: slog level name (debug/info/warn/error).
type Config struct {
	DatabaseDSN   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	APIDelay      time.Duration
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults. The API key default comes
// from the environment, matching how the original app was configured.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "wisebook.db"
	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAIBaseURL = ""
	c.APIDelay = 500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
