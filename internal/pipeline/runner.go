// Package pipeline drives the per-candidate processing run: extract the
// resume text, parse it into a structured profile through the generator,
// evaluate it against the position requirements, polish the content, render
// the final document and persist the outcome.
package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-evaluator/internal/evaluation"
	"github.com/jonathan/resume-evaluator/internal/extraction"
	"github.com/jonathan/resume-evaluator/internal/llm"
	"github.com/jonathan/resume-evaluator/internal/profile"
	"github.com/jonathan/resume-evaluator/internal/prompts"
	"github.com/jonathan/resume-evaluator/internal/recovery"
	"github.com/jonathan/resume-evaluator/internal/rendering"
	"github.com/jonathan/resume-evaluator/internal/schemas"
	"github.com/jonathan/resume-evaluator/internal/store"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// noExtractedTextNote is the user-facing failure note for resumes that
// yielded no text.
const noExtractedTextNote = "No text could be extracted from the resume."

// Config holds the tunables of a pipeline run.
type Config struct {
	// PromptCharBudget bounds the resume text sent to the generator.
	PromptCharBudget int
	// GenerateTimeout bounds each generator call.
	GenerateTimeout time.Duration
	// MaxOutputTokens caps generator responses; zero keeps the provider
	// default.
	MaxOutputTokens int32
	// Temperature is the generator sampling temperature.
	Temperature float32
	// DefaultTemplate is used when a candidate has no template key set.
	DefaultTemplate string
}

// Runner executes pipeline runs against a store, an extractor and a
// generator client.
type Runner struct {
	store     store.Store
	extractor extraction.Extractor
	gen       llm.Client
	cfg       Config
	log       *zap.Logger
}

// NewRunner wires a Runner. A nil logger is replaced with a nop logger.
func NewRunner(st store.Store, extractor extraction.Extractor, gen llm.Client, cfg Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.PromptCharBudget <= 0 {
		cfg.PromptCharBudget = DefaultPromptCharBudget
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = rendering.DefaultTemplate
	}
	return &Runner{store: st, extractor: extractor, gen: gen, cfg: cfg, log: log}
}

// Run executes one full pipeline run for the candidate. Safe to re-invoke:
// every run recomputes from the stored resume and overwrites prior results.
// Failures in any step move the candidate to the error status and are
// returned to the caller.
func (r *Runner) Run(ctx context.Context, id uuid.UUID) error {
	log := r.log.With(zap.String("candidate_id", id.String()))

	candidate, err := r.store.Candidate(ctx, id)
	if err != nil {
		return err
	}

	// No resume attached means nothing to do, not a failure.
	if strings.TrimSpace(candidate.ResumePath) == "" {
		log.Debug("candidate has no resume attached, skipping")
		return nil
	}

	text, err := r.extractor.Extract(candidate.ResumePath)
	if err != nil {
		return r.fail(ctx, log, id, err.Error(),
			&ExtractionError{Message: "resume text extraction failed", Cause: err})
	}
	if strings.TrimSpace(text) == "" {
		return r.fail(ctx, log, id, noExtractedTextNote,
			&ExtractionError{Message: noExtractedTextNote})
	}

	parsed, err := r.extractProfile(ctx, log, text)
	if err != nil {
		return r.fail(ctx, log, id, "The resume could not be parsed into a profile.",
			&RunError{Step: "parse", Message: "profile extraction failed", Cause: err})
	}
	profile.NormalizeProfile(parsed)

	requirements := candidate.Requirements
	result := evaluation.Evaluate(requirements, parsed)
	log.Info("candidate evaluated",
		zap.Float64("score", result.Score),
		zap.Float64("fit_score", result.FitScore),
		zap.Float64("completeness_score", result.CompletenessScore))

	content := r.polishContent(ctx, log, parsed, requirements, result)
	profile.NormalizeContent(content)

	templateKey := candidate.TemplateKey
	if templateKey == "" {
		templateKey = r.cfg.DefaultTemplate
	}
	rendered := rendering.RenderTemplate(templateKey, content)

	processed := &types.ProcessedResult{
		Profile:     parsed,
		Evaluation:  result,
		Content:     content,
		Rendered:    rendered,
		TemplateKey: templateKey,
	}
	backfill := types.ContactBackfill{
		FullName: parsed.Contact.FullName,
		Email:    parsed.Contact.Email,
	}
	if err := r.store.SaveProcessed(ctx, id, processed, backfill); err != nil {
		return r.fail(ctx, log, id, "Failed to store the processing result.",
			&RunError{Step: "persist", Message: "failed to save processed candidate", Cause: err})
	}

	log.Info("candidate processed", zap.String("template", templateKey))
	return nil
}

// extractProfile runs the parse-mode generator call and decodes the
// recovered JSON into a profile. Any failure here is fatal for the run.
func (r *Runner) extractProfile(ctx context.Context, log *zap.Logger, text string) (*types.RawProfile, error) {
	user := prompts.Format(prompts.MustGet("pipeline.json", "extract-profile"), map[string]string{
		"Resume": TruncateForPrompt(text, r.cfg.PromptCharBudget),
	})

	raw, err := r.gen.Generate(ctx, prompts.MustGet("pipeline.json", "extract-profile-system"), user, r.genOpts())
	if err != nil {
		return nil, err
	}

	result, err := recovery.ParseWithRecovery(raw)
	if err != nil {
		return nil, err
	}
	if result.Recovered {
		log.Warn("profile JSON needed recovery")
	}

	document, err := json.Marshal(result.Value)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateProfileJSON(document); err != nil {
		// Advisory only: a shape mismatch is logged, not fatal.
		log.Warn("profile JSON deviates from schema", zap.Error(err))
	}

	var parsed types.RawProfile
	if err := json.Unmarshal(document, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// polishContent runs the generate-mode call with one repair round-trip.
// Never fails: after two bad generator responses it falls back to content
// synthesized from the profile.
func (r *Runner) polishContent(ctx context.Context, log *zap.Logger, p *types.RawProfile, req *types.Requirements, eval *types.EvaluationResult) *types.GeneratedContent {
	profileJSON, err := json.Marshal(p)
	if err != nil {
		log.Warn("failed to encode profile for polishing", zap.Error(err))
		return FallbackContent(p)
	}
	if req == nil {
		req = &types.Requirements{}
	}
	requirementsJSON, err := json.Marshal(req)
	if err != nil {
		log.Warn("failed to encode requirements for polishing", zap.Error(err))
		return FallbackContent(p)
	}

	user := prompts.Format(prompts.MustGet("pipeline.json", "polish-content"), map[string]string{
		"Profile":      string(profileJSON),
		"Requirements": string(requirementsJSON),
		"Evaluation":   eval.Notes,
	})

	raw, err := r.gen.Generate(ctx, prompts.MustGet("pipeline.json", "polish-content-system"), user, r.genOpts())
	if err != nil {
		log.Warn("content polishing call failed, using fallback content", zap.Error(err))
		return FallbackContent(p)
	}

	content, parseErr := decodeContent(raw)
	if parseErr == nil {
		return content
	}
	log.Warn("polished content failed to parse, requesting repair", zap.Error(parseErr))

	repairUser := prompts.Format(prompts.MustGet("pipeline.json", "repair-json"), map[string]string{
		"Invalid": raw,
	})
	repaired, err := r.gen.Generate(ctx, prompts.MustGet("pipeline.json", "repair-json-system"), repairUser, r.genOpts())
	if err != nil {
		log.Warn("repair call failed, using fallback content", zap.Error(err))
		return FallbackContent(p)
	}

	content, parseErr = decodeContent(repaired)
	if parseErr != nil {
		log.Warn("repaired content still unparsable, using fallback content", zap.Error(parseErr))
		return FallbackContent(p)
	}
	return content
}

func decodeContent(raw string) (*types.GeneratedContent, error) {
	result, err := recovery.ParseWithRecovery(raw)
	if err != nil {
		return nil, err
	}
	document, err := json.Marshal(result.Value)
	if err != nil {
		return nil, err
	}
	var content types.GeneratedContent
	if err := json.Unmarshal(document, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *Runner) genOpts() llm.Options {
	return llm.Options{
		JSONMode:        true,
		Timeout:         r.cfg.GenerateTimeout,
		MaxOutputTokens: r.cfg.MaxOutputTokens,
		Temperature:     r.cfg.Temperature,
	}
}

// fail records the terminal error state and surfaces the error to the
// caller. The stored note stays short and human-readable; the full error
// goes to the log and the return value.
func (r *Runner) fail(ctx context.Context, log *zap.Logger, id uuid.UUID, note string, runErr error) error {
	log.Error("pipeline run failed", zap.Error(runErr))
	if markErr := r.store.MarkError(ctx, id, note); markErr != nil {
		log.Error("failed to record error status", zap.Error(markErr))
	}
	return runErr
}
