package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"wisebook"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "wisebook.db", cfg.DatabaseDSN)
	assert.Equal(t, "env-key", cfg.OpenAIAPIKey)
	assert.Empty(t, cfg.OpenAIBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.APIDelay)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadDefaults_NoAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestParseFlags(t *testing.T) {
	setArgs(t, "-d", "other.db", "-k", "flag-key", "-i", "50", "-l", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "other.db", cfg.DatabaseDSN)
	assert.Equal(t, "flag-key", cfg.OpenAIAPIKey)
	assert.Equal(t, 50*time.Millisecond, cfg.APIDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFlags_IgnoresUnknownFlags(t *testing.T) {
	setArgs(t, "-x", "noise", "-d", "other.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "other.db", cfg.DatabaseDSN)
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_dsn": "json.db",
		"openai_base_url": "http://localhost:9999/v1",
		"api_delay": "50ms",
		"log_level": "warn"
	}`), 0o600))
	setArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "json.db", cfg.DatabaseDSN)
	assert.Equal(t, "http://localhost:9999/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 50*time.Millisecond, cfg.APIDelay)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": "error"}`), 0o600))
	setArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "wisebook.db", cfg.DatabaseDSN)
	assert.Equal(t, 500*time.Millisecond, cfg.APIDelay)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseJson_NoFlagNoFile(t *testing.T) {
	setArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	assert.Equal(t, "wisebook.db", cfg.DatabaseDSN)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn": "json.db", "log_level": "warn"}`), 0o600))
	setArgs(t, "-c", path, "-d", "flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}
