package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// schema is applied on connect. Idempotent so restarts are safe.
const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id            UUID PRIMARY KEY,
	full_name     TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	resume_path   TEXT NOT NULL DEFAULT '',
	template_key  TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'new',
	failure_note  TEXT NOT NULL DEFAULT '',
	requirements  JSONB,
	profile       JSONB,
	evaluation    JSONB,
	content       JSONB,
	rendered      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS candidates_status_idx ON candidates (status, created_at);
`

// PostgresStore is the production Store backed by a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and ensures the schema exists.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Create inserts a new candidate. A zero ID is assigned one.
func (s *PostgresStore) Create(ctx context.Context, c *types.Candidate) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = types.StatusNew
	}

	requirements, err := marshalNullable(c.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates (id, full_name, email, resume_path, template_key, status, requirements)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.FullName, c.Email, c.ResumePath, c.TemplateKey, string(c.Status), requirements,
	)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// Candidate loads a candidate by ID.
func (s *PostgresStore) Candidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, full_name, email, resume_path, template_key, status, failure_note,
		        requirements, created_at, updated_at
		 FROM candidates WHERE id = $1`, id)
	return scanCandidate(row, id)
}

// ClaimNext atomically claims the oldest new candidate. SKIP LOCKED keeps
// concurrent workers from claiming the same row.
func (s *PostgresStore) ClaimNext(ctx context.Context) (*types.Candidate, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE candidates SET status = 'processing', updated_at = NOW()
		 WHERE id = (
			SELECT id FROM candidates
			WHERE status = 'new'
			ORDER BY created_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		 )
		 RETURNING id, full_name, email, resume_path, template_key, status, failure_note,
		           requirements, created_at, updated_at`)

	c, err := scanCandidate(row, uuid.Nil)
	if err != nil {
		if _, notFound := err.(*NotFoundError); notFound {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// MarkError moves a candidate to the error status with a failure note.
func (s *PostgresStore) MarkError(ctx context.Context, id uuid.UUID, note string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE candidates SET status = 'error', failure_note = $1, updated_at = NOW()
		 WHERE id = $2`, note, id)
	if err != nil {
		return fmt.Errorf("failed to mark candidate error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// SaveProcessed stores the pipeline output and finalizes the candidate.
// Contact fields are backfilled only when still empty, so operator-entered
// values are never overwritten.
func (s *PostgresStore) SaveProcessed(ctx context.Context, id uuid.UUID, result *types.ProcessedResult, backfill types.ContactBackfill) error {
	profile, err := marshalNullable(result.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	evaluation, err := marshalNullable(result.Evaluation)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation: %w", err)
	}
	content, err := marshalNullable(result.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE candidates SET
			status = 'processed',
			failure_note = '',
			profile = $1,
			evaluation = $2,
			content = $3,
			rendered = $4,
			template_key = $5,
			full_name = CASE WHEN full_name = '' THEN $6 ELSE full_name END,
			email = CASE WHEN email = '' THEN $7 ELSE email END,
			updated_at = NOW()
		 WHERE id = $8`,
		profile, evaluation, content, result.Rendered, result.TemplateKey,
		backfill.FullName, backfill.Email, id)
	if err != nil {
		return fmt.Errorf("failed to save processed candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// FailStale sweeps candidates stuck in processing longer than olderThan.
func (s *PostgresStore) FailStale(ctx context.Context, olderThan time.Duration) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE candidates SET status = 'error', failure_note = $1, updated_at = NOW()
		 WHERE status = 'processing' AND updated_at < NOW() - $2::interval`,
		staleNote, fmt.Sprintf("%f seconds", olderThan.Seconds()))
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale candidates: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanCandidate(row pgx.Row, id uuid.UUID) (*types.Candidate, error) {
	var (
		c            types.Candidate
		status       string
		requirements []byte
	)
	err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.ResumePath, &c.TemplateKey,
		&status, &c.FailureNote, &requirements, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to scan candidate: %w", err)
	}

	c.Status = types.CandidateStatus(status)
	if len(requirements) > 0 {
		var req types.Requirements
		if err := json.Unmarshal(requirements, &req); err != nil {
			return nil, fmt.Errorf("failed to decode requirements: %w", err)
		}
		c.Requirements = &req
	}
	return &c, nil
}

// marshalNullable marshals v to JSON, mapping nil pointers to SQL NULL.
func marshalNullable(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	switch ptr := v.(type) {
	case *types.Requirements:
		if ptr == nil {
			return nil, nil
		}
	case *types.RawProfile:
		if ptr == nil {
			return nil, nil
		}
	case *types.EvaluationResult:
		if ptr == nil {
			return nil, nil
		}
	case *types.GeneratedContent:
		if ptr == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
