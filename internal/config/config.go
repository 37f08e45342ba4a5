// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values use defaults or come from CLI flags and the
// environment.
type Config struct {
	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Model       string `json:"model,omitempty"`        // Generator model name
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generation
	PromptCharBudget int     `json:"prompt_char_budget,omitempty"` // Resume text budget per prompt
	GenerateTimeout  string  `json:"generate_timeout,omitempty"`   // Per-call timeout, Go duration string
	MaxOutputTokens  int32   `json:"max_output_tokens,omitempty"`  // Response token cap
	Temperature      float32 `json:"temperature,omitempty"`        // Sampling temperature

	// Rendering
	DefaultTemplate string `json:"default_template,omitempty"` // Template key for candidates without one

	// Worker
	WorkerBatch  int    `json:"worker_batch,omitempty"`  // Concurrent runs per poll
	PollInterval string `json:"poll_interval,omitempty"` // Worker poll period, Go duration string
	StaleAfter   string `json:"stale_after,omitempty"`   // Stuck-run sweep threshold, Go duration string

	Verbose bool `json:"verbose,omitempty"` // Print debug-level logs
}

// Defaults applied when the file and flags leave a field unset.
const (
	DefaultGenerateTimeout = 90 * time.Second
	DefaultPollInterval    = 5 * time.Second
	DefaultStaleAfter      = 30 * time.Minute
	DefaultWorkerBatch     = 4
)

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; flag validation after merging handles those.
func (c *Config) Validate() error {
	if c.PromptCharBudget < 0 {
		return fmt.Errorf("config error: 'prompt_char_budget' must be non-negative")
	}
	if c.WorkerBatch < 0 {
		return fmt.Errorf("config error: 'worker_batch' must be non-negative")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	for name, value := range map[string]string{
		"generate_timeout": c.GenerateTimeout,
		"poll_interval":    c.PollInterval,
		"stale_after":      c.StaleAfter,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("config error: %q is not a valid duration for '%s'", value, name)
		}
	}
	return nil
}

// Duration parses a duration field, returning fallback when the field is
// empty or invalid. Validate reports invalid values; this accessor stays
// forgiving so callers get a usable value either way.
func Duration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
