package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "secret",
		"model": "gemini-1.5-pro",
		"database_url": "postgres://localhost/evaluator",
		"prompt_char_budget": 12000,
		"generate_timeout": "45s",
		"worker_batch": 8,
		"default_template": "compact"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, 12000, cfg.PromptCharBudget)
	assert.Equal(t, "45s", cfg.GenerateTimeout)
	assert.Equal(t, 8, cfg.WorkerBatch)
	assert.Equal(t, "compact", cfg.DefaultTemplate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config", Config{}, ""},
		{"valid durations", Config{GenerateTimeout: "30s", PollInterval: "1m", StaleAfter: "1h"}, ""},
		{"negative budget", Config{PromptCharBudget: -1}, "prompt_char_budget"},
		{"negative batch", Config{WorkerBatch: -2}, "worker_batch"},
		{"temperature too high", Config{Temperature: 3}, "temperature"},
		{"bad duration", Config{GenerateTimeout: "ninety seconds"}, "generate_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 45*time.Second, Duration("45s", time.Minute))
	assert.Equal(t, time.Minute, Duration("", time.Minute))
	assert.Equal(t, time.Minute, Duration("bogus", time.Minute))
}
