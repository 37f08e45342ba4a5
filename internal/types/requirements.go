package types

import "github.com/go-playground/validator/v10"

// Requirements describes what the open position asks for. It is owned by the
// requisition side and read-only input to evaluation.
type Requirements struct {
	SkillsRequired     []string `json:"skillsRequired,omitempty"`
	SkillsNiceToHave   []string `json:"skillsNiceToHave,omitempty"`
	MinYearsExperience int      `json:"minYearsExperience,omitempty" validate:"min=0"`
	Notes              string   `json:"notes,omitempty"`
}

var validate = validator.New()

// Validate checks field bounds on the requirements.
func (r *Requirements) Validate() error {
	return validate.Struct(r)
}

// EvaluationResult is the deterministic scoring output. It is immutable once
// produced; reprocessing recomputes it wholesale, never patches it.
type EvaluationResult struct {
	Score             float64  `json:"score"`
	FitScore          float64  `json:"fitScore"`
	CompletenessScore float64  `json:"completenessScore"`
	MatchedSkills     []string `json:"matchedSkills"`
	MissingSkills     []string `json:"missingSkills"`
	MatchedNiceToHave []string `json:"matchedNiceToHave"`
	MissingNiceToHave []string `json:"missingNiceToHave"`
	MissingFields     []string `json:"missingFields"`
	ExperienceYears   float64  `json:"experienceYears"`
	Notes             string   `json:"notes"`
}
