// Package types defines the shared domain model for the resume evaluation pipeline.
package types

// Contact holds the candidate identity fields extracted from a resume.
type Contact struct {
	FullName string   `json:"fullName,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// ExperienceEntry is a single employment entry. All fields are optional;
// the generator frequently omits companies or dates.
type ExperienceEntry struct {
	Company    string   `json:"company,omitempty"`
	Title      string   `json:"title,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationEntry is a single education entry.
type EducationEntry struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Links       []string `json:"links,omitempty"`
}

// RawProfile is the generator's first-pass structured guess at the resume
// content. Every field is optional; after normalization every string is
// trimmed and non-empty and every list is deduplicated case-insensitively
// while preserving first-seen casing and order.
type RawProfile struct {
	Contact        Contact           `json:"contact"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Projects       []Project         `json:"projects,omitempty"`
}

// GeneratedContent is the polished restatement of a RawProfile produced by
// the second generator pass. It shares the RawProfile shape and adds the
// presentation-only sections.
type GeneratedContent struct {
	RawProfile
	Languages []string `json:"languages,omitempty"`
	Qualities []string `json:"qualities,omitempty"`
	Interests []string `json:"interests,omitempty"`
}
