// Package store persists candidates and their processing results. The
// canonical implementation is PostgreSQL; an in-memory implementation backs
// tests and the local scoring command.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// Store is the persistence contract the pipeline runs against.
type Store interface {
	// Create inserts a new candidate in the new status.
	Create(ctx context.Context, c *types.Candidate) error
	// Candidate loads a candidate by ID. Returns *NotFoundError when the ID
	// is unknown.
	Candidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error)
	// ClaimNext atomically moves the oldest new candidate to processing and
	// returns it. Returns (nil, nil) when no candidate is waiting.
	ClaimNext(ctx context.Context) (*types.Candidate, error)
	// MarkError moves a candidate to the error status with a short
	// human-readable note.
	MarkError(ctx context.Context, id uuid.UUID, note string) error
	// SaveProcessed stores the pipeline output, moves the candidate to
	// processed and applies the contact backfill to still-empty fields.
	SaveProcessed(ctx context.Context, id uuid.UUID, result *types.ProcessedResult, backfill types.ContactBackfill) error
	// FailStale moves candidates stuck in processing for longer than
	// olderThan to the error status and returns how many were swept.
	FailStale(ctx context.Context, olderThan time.Duration) (int, error)
	// Close releases the store's resources.
	Close()
}

// NotFoundError indicates a candidate ID with no matching row.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return "candidate not found: " + e.ID.String()
}

// staleNote is the failure note written by FailStale sweeps.
const staleNote = "Processing timed out."
