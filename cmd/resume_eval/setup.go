package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/extraction"
	"github.com/jonathan/resume-evaluator/internal/llm"
	"github.com/jonathan/resume-evaluator/internal/logger"
	"github.com/jonathan/resume-evaluator/internal/pipeline"
	"github.com/jonathan/resume-evaluator/internal/store"
)

// sharedFlags are the flags every subcommand merges over the config file.
type sharedFlags struct {
	configPath  string
	apiKey      string
	model       string
	databaseURL string
	verbose     bool
	jsonLogs    bool
}

func (f *sharedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY env var)")
	cmd.Flags().StringVar(&f.model, "model", "", "Generator model name")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print debug-level logs")
	cmd.Flags().BoolVar(&f.jsonLogs, "json-logs", false, "Emit JSON-encoded logs")
}

// load merges the config file, explicit flags and environment fallbacks.
// Flags set on the command line take priority over the file.
func (f *sharedFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = f.databaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return cfg, nil
}

func (f *sharedFlags) logger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(f.jsonLogs, cfg.Verbose)
}

func pipelineConfig(cfg *config.Config) pipeline.Config {
	return pipeline.Config{
		PromptCharBudget: cfg.PromptCharBudget,
		GenerateTimeout:  config.Duration(cfg.GenerateTimeout, config.DefaultGenerateTimeout),
		MaxOutputTokens:  cfg.MaxOutputTokens,
		Temperature:      cfg.Temperature,
		DefaultTemplate:  cfg.DefaultTemplate,
	}
}

// buildRunner wires a pipeline runner against the PostgreSQL store and the
// Gemini client. The returned cleanup closes both.
func buildRunner(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pipeline.Runner, store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, nil, fmt.Errorf("database URL is required (set --db-url or DATABASE_URL)")
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}

	gen, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}

	runner := pipeline.NewRunner(st, extraction.NewFileExtractor(), gen, pipelineConfig(cfg), log)
	cleanup := func() {
		_ = gen.Close()
		st.Close()
	}
	return runner, st, cleanup, nil
}
