package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-evaluator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAssignsDefaults(t *testing.T) {
	s := NewMemoryStore()
	c := &types.Candidate{ResumePath: "/tmp/resume.txt"}

	require.NoError(t, s.Create(context.Background(), c))
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, types.StatusNew, c.Status)

	loaded, err := s.Candidate(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, loaded.ID)
	assert.Equal(t, "/tmp/resume.txt", loaded.ResumePath)
}

func TestMemoryStoreCandidateNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Candidate(context.Background(), uuid.New())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestMemoryStoreClaimNextOrdering(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &types.Candidate{FullName: "first", CreatedAt: time.Now().Add(-2 * time.Hour)}
	second := &types.Candidate{FullName: "second", CreatedAt: time.Now().Add(-1 * time.Hour)}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	claimed, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "first", claimed.FullName)
	assert.Equal(t, types.StatusProcessing, claimed.Status)

	claimed, err = s.ClaimNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "second", claimed.FullName)

	claimed, err = s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestMemoryStoreMarkError(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	c := &types.Candidate{}
	require.NoError(t, s.Create(ctx, c))
	require.NoError(t, s.MarkError(ctx, c.ID, "No text could be extracted from the resume."))

	loaded, err := s.Candidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusError, loaded.Status)
	assert.Equal(t, "No text could be extracted from the resume.", loaded.FailureNote)
}

func TestMemoryStoreSaveProcessedBackfill(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	blank := &types.Candidate{}
	named := &types.Candidate{FullName: "Operator Entered", Email: "kept@example.com"}
	require.NoError(t, s.Create(ctx, blank))
	require.NoError(t, s.Create(ctx, named))

	result := &types.ProcessedResult{Rendered: "# doc\n", TemplateKey: "classic"}
	backfill := types.ContactBackfill{FullName: "Ada Lovelace", Email: "ada@example.com"}

	require.NoError(t, s.SaveProcessed(ctx, blank.ID, result, backfill))
	require.NoError(t, s.SaveProcessed(ctx, named.ID, result, backfill))

	blankLoaded, err := s.Candidate(ctx, blank.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusProcessed, blankLoaded.Status)
	assert.Equal(t, "Ada Lovelace", blankLoaded.FullName)
	assert.Equal(t, "ada@example.com", blankLoaded.Email)

	namedLoaded, err := s.Candidate(ctx, named.ID)
	require.NoError(t, err)
	assert.Equal(t, "Operator Entered", namedLoaded.FullName)
	assert.Equal(t, "kept@example.com", namedLoaded.Email)

	stored, ok := s.Result(blank.ID)
	require.True(t, ok)
	assert.Equal(t, "# doc\n", stored.Rendered)
}

func TestMemoryStoreSaveProcessedClearsFailureNote(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	c := &types.Candidate{}
	require.NoError(t, s.Create(ctx, c))
	require.NoError(t, s.MarkError(ctx, c.ID, "transient"))
	require.NoError(t, s.SaveProcessed(ctx, c.ID, &types.ProcessedResult{}, types.ContactBackfill{}))

	loaded, err := s.Candidate(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusProcessed, loaded.Status)
	assert.Empty(t, loaded.FailureNote)
}

func TestMemoryStoreFailStale(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	stuck := &types.Candidate{CreatedAt: time.Now().Add(-3 * time.Hour)}
	require.NoError(t, s.Create(ctx, stuck))
	claimed, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Simulate a worker that died mid-run.
	s.mu.Lock()
	s.candidates[stuck.ID].UpdatedAt = time.Now().Add(-time.Hour)
	s.mu.Unlock()

	fresh := &types.Candidate{}
	require.NoError(t, s.Create(ctx, fresh))

	swept, err := s.FailStale(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	loaded, err := s.Candidate(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusError, loaded.Status)
	assert.Equal(t, "Processing timed out.", loaded.FailureNote)

	freshLoaded, err := s.Candidate(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusNew, freshLoaded.Status)
}
