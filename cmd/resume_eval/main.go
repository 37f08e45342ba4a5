// Package main provides the resume evaluation CLI: enqueue candidates, run
// the processing pipeline, and score local resume files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_eval",
	Short: "Resume evaluation pipeline",
	Long:  "Resume evaluation turns unstructured resumes into structured profiles, scores them against position requirements, and renders a standardized document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
