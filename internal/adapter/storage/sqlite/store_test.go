package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mixtaped/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "mixtaped.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RegisterAndLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Register(ctx, "Summer Tape", "https://uploads.example/wp-content/uploads/summer.zip")
	require.NoError(t, err)
	assert.Positive(t, id)

	job, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, "Summer Tape", job.DisplayName)
	assert.Equal(t, "https://uploads.example/wp-content/uploads/summer.zip", job.ArchiveLocation)

	status, err := store.ZippingStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ZippingPending, status)
}

func TestStore_LookupMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Lookup(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_MarkPublished(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Register(ctx, "Tape", "/uploads/tape.zip")
	require.NoError(t, err)

	require.NoError(t, store.MarkPublished(ctx, id, "https://cdn.example/12/tape.zip"))

	job, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/12/tape.zip", job.ArchiveLocation)

	status, err := store.ZippingStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ZippingProcessed, status)

	pending, err := store.PendingJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, store.MarkPublished(ctx, id+100, "x"), domain.ErrNotFound)
}

func TestStore_MarkFailed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Register(ctx, "Tape", "/uploads/tape.zip")
	require.NoError(t, err)

	require.NoError(t, store.MarkFailed(ctx, id, "extract: source archive not found"))

	status, err := store.ZippingStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ZippingFailed, status)

	assert.ErrorIs(t, store.MarkFailed(ctx, id+100, "x"), domain.ErrNotFound)
}

func TestStore_PendingJobs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Register(ctx, "One", "/uploads/one.zip")
	require.NoError(t, err)
	second, err := store.Register(ctx, "Two", "/uploads/two.zip")
	require.NoError(t, err)
	third, err := store.Register(ctx, "Three", "/uploads/three.zip")
	require.NoError(t, err)
	require.NoError(t, store.MarkPublished(ctx, second, "https://cdn.example/1/two.zip"))

	pending, err := store.PendingJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{first, third}, pending)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "summer-tape-2024", slug("Summer Tape (2024)"))
	assert.Equal(t, "", slug("!!!"))
}
