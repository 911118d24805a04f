package config

import (
	"encoding/json"
	"os"

	"github.com/wisebook/wisebook/internal/flagx"
	"github.com/wisebook/wisebook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the delay either as a string like
// "500ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN   string         `json:"database_dsn"`
	OpenAIAPIKey  string         `json:"openai_api_key"`
	OpenAIBaseURL string         `json:"openai_base_url"`
	APIDelay      timex.Duration `json:"api_delay"`
	LogLevel      string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. Absent flag means no JSON is loaded. Only fields
// present in the file override the current values. Panics on read or
// unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OpenAIAPIKey != "" {
		cfg.OpenAIAPIKey = jc.OpenAIAPIKey
	}
	if jc.OpenAIBaseURL != "" {
		cfg.OpenAIBaseURL = jc.OpenAIBaseURL
	}
	if jc.APIDelay.Duration != 0 {
		cfg.APIDelay = jc.APIDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
