package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-evaluator/internal/extraction"
	"github.com/jonathan/resume-evaluator/internal/llm"
	"github.com/jonathan/resume-evaluator/internal/pipeline"
	"github.com/jonathan/resume-evaluator/internal/store"
	"github.com/jonathan/resume-evaluator/internal/types"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score a local resume file without a database",
	Long:  "Runs the full pipeline against a local resume file using an in-memory store: extraction, profile parsing, evaluation, polishing and rendering. Prints the evaluation as JSON; optionally writes the rendered document.",
	RunE:  runScoreCmd,
}

var (
	scoreFlags        sharedFlags
	scoreResumePath   string
	scoreReqPath      string
	scoreTemplate     string
	scoreRenderedPath string
)

func init() {
	scoreFlags.register(scoreCommand)
	scoreCommand.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to the resume file (required)")
	scoreCommand.Flags().StringVar(&scoreReqPath, "requirements", "", "Path to a requirements JSON file")
	scoreCommand.Flags().StringVarP(&scoreTemplate, "template", "t", "", "Rendering template key")
	scoreCommand.Flags().StringVarP(&scoreRenderedPath, "out", "o", "", "Write the rendered document to this path")

	_ = scoreCommand.MarkFlagRequired("resume")
	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := scoreFlags.load(cmd)
	if err != nil {
		return err
	}
	log, err := scoreFlags.logger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var requirements *types.Requirements
	if scoreReqPath != "" {
		data, err := os.ReadFile(scoreReqPath)
		if err != nil {
			return fmt.Errorf("failed to read requirements file: %w", err)
		}
		requirements = &types.Requirements{}
		if err := json.Unmarshal(data, requirements); err != nil {
			return fmt.Errorf("failed to parse requirements JSON: %w", err)
		}
		if err := requirements.Validate(); err != nil {
			return fmt.Errorf("invalid requirements: %w", err)
		}
	}

	gen, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	defer func() { _ = gen.Close() }()

	st := store.NewMemoryStore()
	candidate := &types.Candidate{
		ResumePath:   scoreResumePath,
		TemplateKey:  scoreTemplate,
		Requirements: requirements,
	}
	if err := st.Create(ctx, candidate); err != nil {
		return err
	}

	runner := pipeline.NewRunner(st, extraction.NewFileExtractor(), gen, pipelineConfig(cfg), log)
	if err := runner.Run(ctx, candidate.ID); err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	result, ok := st.Result(candidate.ID)
	if !ok {
		return fmt.Errorf("no result produced for %s", candidate.ID)
	}

	encoded, err := json.MarshalIndent(result.Evaluation, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	if scoreRenderedPath != "" {
		if err := os.WriteFile(scoreRenderedPath, []byte(result.Rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write rendered document: %w", err)
		}
		fmt.Printf("Rendered document written to %s\n", scoreRenderedPath)
	}
	return nil
}
