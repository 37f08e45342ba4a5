package evaluation

import (
	"testing"
	"time"

	"github.com/jonathan/resume-evaluator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func fullProfile() *types.RawProfile {
	return &types.RawProfile{
		Contact: types.Contact{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+33 6 12 34 56 78",
			Location: "Paris, France",
			Links:    []string{"https://example.com/ada"},
		},
		Summary: "Backend engineer focused on Go services and PostgreSQL.",
		Skills:  []string{"Go", "PostgreSQL", "Docker"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", Title: "Backend Engineer", StartDate: "2020-01", EndDate: "2023-06",
				Highlights: []string{"Built the billing API in Go"}},
			{Company: "Globex", Title: "SRE", StartDate: "2023-07", EndDate: "Present"},
		},
		Education: []types.EducationEntry{
			{School: "ENS", Degree: "MSc Computer Science", StartDate: "2014", EndDate: "2016"},
		},
	}
}

func TestEvaluateAtScoreBounds(t *testing.T) {
	profiles := []*types.RawProfile{
		{},
		fullProfile(),
		{Skills: []string{"Go"}},
	}
	requirements := []*types.Requirements{
		nil,
		{},
		{SkillsRequired: []string{"Go", "Rust", "Haskell"}, MinYearsExperience: 40},
		{SkillsNiceToHave: []string{"Kubernetes"}},
	}

	for _, p := range profiles {
		for _, req := range requirements {
			result := EvaluateAt(req, p, evalNow)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 100.0)
			assert.GreaterOrEqual(t, result.FitScore, 0.0)
			assert.LessOrEqual(t, result.FitScore, 100.0)
			assert.GreaterOrEqual(t, result.CompletenessScore, 0.0)
			assert.LessOrEqual(t, result.CompletenessScore, 100.0)
		}
	}
}

func TestEvaluateAtEmptyRequirements(t *testing.T) {
	result := EvaluateAt(&types.Requirements{}, fullProfile(), evalNow)

	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.MatchedNiceToHave)
	assert.Empty(t, result.MissingNiceToHave)
	// All coverage dimensions count as fully satisfied.
	assert.InDelta(t, 100.0, result.FitScore, 0.001)
}

func TestEvaluateAtCompletenessMax(t *testing.T) {
	result := EvaluateAt(nil, fullProfile(), evalNow)
	assert.InDelta(t, 100.0, result.CompletenessScore, 0.001)
	assert.Empty(t, result.MissingFields)
}

func TestEvaluateAtCompletenessGaps(t *testing.T) {
	p := &types.RawProfile{
		Contact: types.Contact{FullName: "Ada Lovelace"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", StartDate: "2020"},
		},
	}
	result := EvaluateAt(nil, p, evalNow)

	assert.Contains(t, result.MissingFields, "email")
	assert.Contains(t, result.MissingFields, "summary")
	assert.Contains(t, result.MissingFields, "education")
	assert.Contains(t, result.MissingFields, "experienceDates")
	assert.NotContains(t, result.MissingFields, "fullName")
	assert.NotContains(t, result.MissingFields, "experience")
}

func TestEvaluateAtNoExperienceOmitsDatesLabel(t *testing.T) {
	result := EvaluateAt(nil, &types.RawProfile{}, evalNow)
	assert.Contains(t, result.MissingFields, "experience")
	assert.NotContains(t, result.MissingFields, "experienceDates")
}

func TestEvaluateAtScenarioFullRequiredCoverage(t *testing.T) {
	p := &types.RawProfile{
		Skills: []string{"Python", "AWS"},
		Experience: []types.ExperienceEntry{
			{StartDate: "2020", EndDate: "Present"},
		},
	}
	req := &types.Requirements{
		SkillsRequired:     []string{"python"},
		MinYearsExperience: 3,
	}

	result := EvaluateAt(req, p, evalNow)

	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	// 2020-01-01 to 2026-03-01 is a bit over six years.
	assert.InDelta(t, 6.2, result.ExperienceYears, 0.1)
	// Full required coverage, full experience coverage, no nice-to-haves.
	assert.InDelta(t, 100.0, result.FitScore, 0.001)
}

func TestEvaluateAtPartialExperienceCoverage(t *testing.T) {
	p := &types.RawProfile{
		Skills: []string{"Go"},
		Experience: []types.ExperienceEntry{
			{StartDate: "2025-03", EndDate: "2026-03"},
		},
	}
	req := &types.Requirements{
		SkillsRequired:     []string{"Go"},
		MinYearsExperience: 4,
	}

	result := EvaluateAt(req, p, evalNow)

	// One year of four required: 75 + 15 + 10*0.25 = 92.5, within rounding.
	assert.InDelta(t, 92.5, result.FitScore, 0.2)
}

func TestEvaluateAtDiscardsBrokenRanges(t *testing.T) {
	p := &types.RawProfile{
		Experience: []types.ExperienceEntry{
			{StartDate: "2022", EndDate: "2020"},     // reversed
			{StartDate: "garbage", EndDate: "2021"},  // unparsable start
			{StartDate: "2020", EndDate: "mystery?"}, // unparsable end
		},
	}
	result := EvaluateAt(nil, p, evalNow)
	assert.Zero(t, result.ExperienceYears)
}

func TestEvaluateAtDeterministicNotes(t *testing.T) {
	req := &types.Requirements{SkillsRequired: []string{"Go", "Rust"}, MinYearsExperience: 3}
	first := EvaluateAt(req, fullProfile(), evalNow)
	second := EvaluateAt(req, fullProfile(), evalNow)

	require.Equal(t, first, second)
	assert.Equal(t, "required 1/2; nice-to-have 0/0; experience 6.1y (min 3y); missing fields 0", first.Notes)
}

func TestEvaluateAtDeduplicatesRequirements(t *testing.T) {
	req := &types.Requirements{SkillsRequired: []string{"Go", "GO", "go"}}
	result := EvaluateAt(req, fullProfile(), evalNow)
	assert.Equal(t, []string{"Go"}, result.MatchedSkills)
}

func TestParseDate(t *testing.T) {
	now := evalNow
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"bare year", "2020", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"year-month", "2021-06", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"slash month-year", "06/2021", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"english month", "March 2019", time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"abbreviated month", "Mar 2019", time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"french month", "janvier 2020", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"french month with accent", "août 2018", time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC), true},
		{"present", "Present", now, true},
		{"french present", "aujourd'hui", now, true},
		{"year in free text", "Summer 2017", time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "unknown", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeDateText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"janvier 2020", "january 2020"},
		{"Décembre 2019", "december 2019"},
		{"en cours", "Present"},
		{"current", "Present"},
		{"2021-06", "2021-06"},
		{"  March 2019 ", "March 2019"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDateText(tt.input), "input %q", tt.input)
	}
}
