package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-evaluator/internal/store"
	"github.com/jonathan/resume-evaluator/internal/types"
)

var addCommand = &cobra.Command{
	Use:   "add",
	Short: "Enqueue a candidate for processing",
	Long:  "Registers a candidate with a resume file and optional position requirements. The candidate starts in the new status and is picked up by a worker or an explicit process call.",
	RunE:  runAddCmd,
}

var (
	addFlags         sharedFlags
	addResumePath    string
	addName          string
	addEmail         string
	addTemplate      string
	addSkillsReq     []string
	addSkillsNice    []string
	addMinYears      int
	addNotes         string
)

func init() {
	addFlags.register(addCommand)
	addCommand.Flags().StringVarP(&addResumePath, "resume", "r", "", "Path to the resume file (required)")
	addCommand.Flags().StringVarP(&addName, "name", "n", "", "Candidate name (backfilled from the resume if omitted)")
	addCommand.Flags().StringVar(&addEmail, "email", "", "Candidate email (backfilled from the resume if omitted)")
	addCommand.Flags().StringVarP(&addTemplate, "template", "t", "", "Rendering template key")
	addCommand.Flags().StringSliceVar(&addSkillsReq, "skills-required", nil, "Required skills, comma-separated")
	addCommand.Flags().StringSliceVar(&addSkillsNice, "skills-nice", nil, "Nice-to-have skills, comma-separated")
	addCommand.Flags().IntVar(&addMinYears, "min-years", 0, "Minimum years of experience")
	addCommand.Flags().StringVar(&addNotes, "notes", "", "Free-form requirement notes")

	_ = addCommand.MarkFlagRequired("resume")
	rootCmd.AddCommand(addCommand)
}

func runAddCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := addFlags.load(cmd)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set --db-url or DATABASE_URL)")
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	candidate := &types.Candidate{
		FullName:    addName,
		Email:       addEmail,
		ResumePath:  addResumePath,
		TemplateKey: addTemplate,
	}
	if len(addSkillsReq) > 0 || len(addSkillsNice) > 0 || addMinYears > 0 || addNotes != "" {
		req := &types.Requirements{
			SkillsRequired:     addSkillsReq,
			SkillsNiceToHave:   addSkillsNice,
			MinYearsExperience: addMinYears,
			Notes:              addNotes,
		}
		if err := req.Validate(); err != nil {
			return fmt.Errorf("invalid requirements: %w", err)
		}
		candidate.Requirements = req
	}

	if err := st.Create(ctx, candidate); err != nil {
		return err
	}

	fmt.Printf("Candidate enqueued: %s\n", candidate.ID)
	return nil
}
