package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var processCommand = &cobra.Command{
	Use:   "process",
	Short: "Run the pipeline for one candidate",
	Long:  "Executes a full processing run for the given candidate ID: extraction, profile parsing, evaluation, content polishing and rendering. Safe to re-run; each run recomputes everything.",
	RunE:  runProcessCmd,
}

var (
	processFlags sharedFlags
	processID    string
)

func init() {
	processFlags.register(processCommand)
	processCommand.Flags().StringVar(&processID, "id", "", "Candidate UUID (required)")
	_ = processCommand.MarkFlagRequired("id")
	rootCmd.AddCommand(processCommand)
}

func runProcessCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	id, err := uuid.Parse(processID)
	if err != nil {
		return fmt.Errorf("invalid candidate ID %q: %w", processID, err)
	}

	cfg, err := processFlags.load(cmd)
	if err != nil {
		return err
	}
	log, err := processFlags.logger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner, _, cleanup, err := buildRunner(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := runner.Run(ctx, id); err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	fmt.Printf("Candidate processed: %s\n", id)
	return nil
}
