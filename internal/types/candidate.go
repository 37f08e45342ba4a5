package types

import (
	"time"

	"github.com/google/uuid"
)

// CandidateStatus is the per-candidate pipeline state.
type CandidateStatus string

// Candidate status values. A run moves new -> processing -> processed, or
// processing -> error on unrecoverable failure.
const (
	StatusNew        CandidateStatus = "new"
	StatusProcessing CandidateStatus = "processing"
	StatusProcessed  CandidateStatus = "processed"
	StatusError      CandidateStatus = "error"
)

// Candidate is the stored record the pipeline operates on.
type Candidate struct {
	ID           uuid.UUID       `json:"id"`
	FullName     string          `json:"fullName,omitempty"`
	Email        string          `json:"email,omitempty"`
	ResumePath   string          `json:"resumePath,omitempty"`
	TemplateKey  string          `json:"templateKey,omitempty"`
	Status       CandidateStatus `json:"status"`
	FailureNote  string          `json:"failureNote,omitempty"`
	Requirements *Requirements   `json:"requirements,omitempty"`
	CreatedAt    time.Time       `json:"createdAt,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt,omitempty"`
}

// ProcessedResult bundles everything a successful run persists.
type ProcessedResult struct {
	Profile     *RawProfile       `json:"profile"`
	Evaluation  *EvaluationResult `json:"evaluation"`
	Content     *GeneratedContent `json:"content"`
	Rendered    string            `json:"rendered"`
	TemplateKey string            `json:"templateKey"`
}

// ContactBackfill carries profile-derived identity values that may be copied
// onto the candidate record, but only where the record is still unset.
type ContactBackfill struct {
	FullName string
	Email    string
}
