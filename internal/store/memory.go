package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// MemoryStore is an in-memory Store for tests and one-off local runs. It
// honors the same claim and backfill semantics as the PostgreSQL store.
type MemoryStore struct {
	mu         sync.Mutex
	candidates map[uuid.UUID]*types.Candidate
	results    map[uuid.UUID]*types.ProcessedResult
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates: make(map[uuid.UUID]*types.Candidate),
		results:    make(map[uuid.UUID]*types.ProcessedResult),
	}
}

// Create inserts a new candidate. A zero ID is assigned one.
func (s *MemoryStore) Create(_ context.Context, c *types.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = types.StatusNew
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	stored := *c
	s.candidates[c.ID] = &stored
	return nil
}

// Candidate loads a candidate by ID.
func (s *MemoryStore) Candidate(_ context.Context, id uuid.UUID) (*types.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	copied := *c
	return &copied, nil
}

// ClaimNext claims the oldest new candidate, or returns (nil, nil).
func (s *MemoryStore) ClaimNext(_ context.Context) (*types.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	waiting := make([]*types.Candidate, 0)
	for _, c := range s.candidates {
		if c.Status == types.StatusNew {
			waiting = append(waiting, c)
		}
	}
	if len(waiting) == 0 {
		return nil, nil
	}
	sort.Slice(waiting, func(i, j int) bool {
		return waiting[i].CreatedAt.Before(waiting[j].CreatedAt)
	})

	claimed := waiting[0]
	claimed.Status = types.StatusProcessing
	claimed.UpdatedAt = time.Now()
	copied := *claimed
	return &copied, nil
}

// MarkError moves a candidate to the error status with a failure note.
func (s *MemoryStore) MarkError(_ context.Context, id uuid.UUID, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	c.Status = types.StatusError
	c.FailureNote = note
	c.UpdatedAt = time.Now()
	return nil
}

// SaveProcessed stores the pipeline output and finalizes the candidate.
func (s *MemoryStore) SaveProcessed(_ context.Context, id uuid.UUID, result *types.ProcessedResult, backfill types.ContactBackfill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.candidates[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	c.Status = types.StatusProcessed
	c.FailureNote = ""
	c.TemplateKey = result.TemplateKey
	if c.FullName == "" {
		c.FullName = backfill.FullName
	}
	if c.Email == "" {
		c.Email = backfill.Email
	}
	c.UpdatedAt = time.Now()
	s.results[id] = result
	return nil
}

// Result returns the stored pipeline output for a processed candidate.
func (s *MemoryStore) Result(id uuid.UUID) (*types.ProcessedResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[id]
	return result, ok
}

// FailStale sweeps candidates stuck in processing longer than olderThan.
func (s *MemoryStore) FailStale(_ context.Context, olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	swept := 0
	for _, c := range s.candidates {
		if c.Status == types.StatusProcessing && c.UpdatedAt.Before(cutoff) {
			c.Status = types.StatusError
			c.FailureNote = staleNote
			c.UpdatedAt = time.Now()
			swept++
		}
	}
	return swept, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}
