// Package evaluation computes the deterministic fit and completeness scores
// for a candidate profile against position requirements. Evaluate is a pure
// function of its inputs and the evaluation instant; the same inputs always
// produce the same auditable result.
package evaluation

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/resume-evaluator/internal/skills"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// Weights of the fit sub-scores. Required coverage dominates by design of the
// product: a candidate missing required skills cannot score high on nice-to-
// haves alone.
const (
	requiredWeight   = 75.0
	niceToHaveWeight = 15.0
	experienceWeight = 10.0

	fitShare          = 0.75
	completenessShare = 0.25

	daysPerYear = 365.25
)

// Evaluate scores the profile against the requirements at the current
// instant.
func Evaluate(req *types.Requirements, p *types.RawProfile) *types.EvaluationResult {
	return EvaluateAt(req, p, time.Now())
}

// EvaluateAt scores the profile against the requirements, resolving "present"
// dates to the given instant. Passing a fixed instant makes the result fully
// reproducible.
func EvaluateAt(req *types.Requirements, p *types.RawProfile, now time.Time) *types.EvaluationResult {
	if req == nil {
		req = &types.Requirements{}
	}

	ev := skills.BuildEvidence(p)
	matchedRequired, missingRequired := coverSkills(req.SkillsRequired, ev)
	matchedNice, missingNice := coverSkills(req.SkillsNiceToHave, ev)

	requiredCoverage := coverage(len(matchedRequired), len(matchedRequired)+len(missingRequired))
	niceCoverage := coverage(len(matchedNice), len(matchedNice)+len(missingNice))

	years := experienceYears(p.Experience, now)
	experienceCoverage := 1.0
	if req.MinYearsExperience > 0 {
		experienceCoverage = math.Min(1, years/float64(req.MinYearsExperience))
	}

	fit := clamp(requiredCoverage*requiredWeight + niceCoverage*niceToHaveWeight + experienceCoverage*experienceWeight)
	completeness, missingFields := scoreCompleteness(p)
	completeness = clamp(completeness)
	score := clamp(fit*fitShare + completeness*completenessShare)

	return &types.EvaluationResult{
		Score:             round2(score),
		FitScore:          round2(fit),
		CompletenessScore: round2(completeness),
		MatchedSkills:     matchedRequired,
		MissingSkills:     missingRequired,
		MatchedNiceToHave: matchedNice,
		MissingNiceToHave: missingNice,
		MissingFields:     missingFields,
		ExperienceYears:   round1(years),
		Notes: auditNotes(len(matchedRequired), len(matchedRequired)+len(missingRequired),
			len(matchedNice), len(matchedNice)+len(missingNice),
			years, req.MinYearsExperience, missingFields),
	}
}

// coverSkills partitions the wanted skills into matched and missing against
// the evidence, deduplicating by normalized key while keeping the first-seen
// spelling for reporting.
func coverSkills(wanted []string, ev *skills.Evidence) (matched, missing []string) {
	matched = make([]string, 0, len(wanted))
	missing = make([]string, 0)
	seen := make(map[string]struct{}, len(wanted))
	for _, skill := range wanted {
		key := skills.NormalizeKey(skill)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if skills.HasSkillMatch(skill, ev) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// coverage treats an empty requirement dimension as fully satisfied: the
// absence of a requirement cannot penalize fit.
func coverage(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}

// experienceYears estimates total experience from loosely formatted date
// ranges. Entries with either end unparsable contribute nothing; entries
// ending before they start are discarded rather than subtracted.
func experienceYears(entries []types.ExperienceEntry, now time.Time) float64 {
	total := 0.0
	for _, entry := range entries {
		start, okStart := ParseDate(entry.StartDate, now)
		end, okEnd := ParseDate(entry.EndDate, now)
		if !okStart || !okEnd {
			continue
		}
		days := end.Sub(start).Hours() / 24
		if days <= 0 {
			continue
		}
		total += days / daysPerYear
	}
	return total
}

// auditNotes builds the deterministic one-line audit string. It must be
// regenerable byte-for-byte from the same inputs.
func auditNotes(matchedReq, totalReq, matchedNice, totalNice int, years float64, minYears int, missingFields []string) string {
	return fmt.Sprintf("required %d/%d; nice-to-have %d/%d; experience %.1fy (min %dy); missing fields %d",
		matchedReq, totalReq, matchedNice, totalNice, round1(years), minYears, len(missingFields))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to 1 decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
