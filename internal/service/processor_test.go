package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/port/mocks"
)

func newTestProcessor(h *pipelineHarness, store *mocks.MetadataStoreMock, opts ProcessorOptions) *Processor {
	opts.DataDir = h.dataDir
	return NewProcessor(
		store,
		h.workingSets,
		NewPipeline(h.deps, h.opts),
		NewStatusPublisher(store, fastPolicy(2)),
		opts,
	)
}

func TestProcessor_Process(t *testing.T) {
	h := newPipelineHarness(t)
	h.writeArchive("summer.zip", "a.mp3")
	h.writeArchive("queued.zip", "b.mp3")
	require.NoError(t, os.WriteFile(filepath.Join(h.dataDir, "leftover.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(h.dataDir, ".keep"), nil, 0o644))

	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().Lookup(mock.Anything, int64(8)).Return(&domain.Job{
		ID:              8,
		ArchiveLocation: "https://tapes.example/wp-content/uploads/summer.zip",
		DisplayName:     "Summer",
	}, nil).Once()
	store.EXPECT().MarkPublished(mock.Anything, int64(8), "https://cdn.example/11/summer.zip").Return(nil).Once()

	require.NoError(t, newTestProcessor(h, store, ProcessorOptions{}).Process(context.Background(), 8))

	// source archive and stray files are cleared; other archives and hidden files stay
	entries, err := os.ReadDir(h.dataDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{".keep", "queued.zip"}, names)

	// working set is gone
	_, err = os.Stat(filepath.Join(filepath.Dir(h.dataDir), "work", "job-8"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessor_Process_KeepFlags(t *testing.T) {
	h := newPipelineHarness(t)
	h.writeArchive("summer.zip", "a.mp3")
	require.NoError(t, os.WriteFile(filepath.Join(h.dataDir, "leftover.txt"), []byte("x"), 0o644))

	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().Lookup(mock.Anything, int64(8)).Return(&domain.Job{ID: 8, ArchiveLocation: "/uploads/summer.zip"}, nil).Once()
	store.EXPECT().MarkPublished(mock.Anything, int64(8), mock.Anything).Return(nil).Once()

	opts := ProcessorOptions{KeepDirectories: true, KeepOriginal: true, SaveRest: true}
	require.NoError(t, newTestProcessor(h, store, opts).Process(context.Background(), 8))

	for _, name := range []string{"summer.zip", "leftover.txt"} {
		_, err := os.Stat(filepath.Join(h.dataDir, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(filepath.Dir(h.dataDir), "work", "job-8", "full", "a.mp3"))
	assert.NoError(t, err)
}

func TestProcessor_Process_LookupFails(t *testing.T) {
	h := newPipelineHarness(t)
	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().Lookup(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

	err := newTestProcessor(h, store, ProcessorOptions{}).Process(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "10", h.counter())
}

func TestProcessor_Process_FatalErrorMarksFailed(t *testing.T) {
	h := newPipelineHarness(t)
	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().Lookup(mock.Anything, int64(5)).Return(&domain.Job{ID: 5, ArchiveLocation: "/uploads/gone.zip"}, nil).Once()
	store.EXPECT().MarkFailed(mock.Anything, int64(5), mock.MatchedBy(func(reason string) bool {
		return reason != ""
	})).Return(nil).Once()

	err := newTestProcessor(h, store, ProcessorOptions{}).Process(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNoArchive)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(h.dataDir), "work", "job-5"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessor_Process_PrepareFailureCleansUp(t *testing.T) {
	h := newPipelineHarness(t)
	h.writeArchive("summer.zip", "a.mp3")
	jobRoot := filepath.Join(filepath.Dir(h.dataDir), "work", "job-6")
	require.NoError(t, os.MkdirAll(jobRoot, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(jobRoot, string(domain.RolePreview)), nil, 0o644))

	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().Lookup(mock.Anything, int64(6)).Return(&domain.Job{ID: 6, ArchiveLocation: "/uploads/summer.zip"}, nil).Once()
	store.EXPECT().MarkFailed(mock.Anything, int64(6), mock.Anything).Return(nil).Once()

	err := newTestProcessor(h, store, ProcessorOptions{}).Process(context.Background(), 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare working set")

	_, statErr := os.Stat(jobRoot)
	assert.True(t, os.IsNotExist(statErr), "partial working set left behind")
	_, statErr = os.Stat(filepath.Join(h.dataDir, "summer.zip"))
	assert.True(t, os.IsNotExist(statErr), "source archive not cleaned up")
	assert.Equal(t, "10", h.counter())
}

func TestProcessor_ProcessArchive(t *testing.T) {
	h := newPipelineHarness(t)
	archivePath := h.writeArchive("oneshot.zip", "a.mp3")
	store := mocks.NewMetadataStoreMock(t)

	result, err := newTestProcessor(h, store, ProcessorOptions{KeepOriginal: true}).
		ProcessArchive(context.Background(), archivePath)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/11/oneshot.zip", result.PublicURL)

	_, err = os.Stat(archivePath)
	assert.NoError(t, err)
}

func TestResolveArchivePath(t *testing.T) {
	tests := []struct {
		name     string
		dataDir  string
		location string
		expected string
	}{
		{name: "url", dataDir: "/data", location: "https://tapes.example/uploads/2024/summer.zip", expected: "/data/summer.zip"},
		{name: "url with query", dataDir: "/data", location: "https://tapes.example/summer.zip?ver=2", expected: "/data/summer.zip"},
		{name: "absolute path", dataDir: "/data", location: "/var/uploads/summer.zip", expected: "/data/summer.zip"},
		{name: "bare name", dataDir: "/data", location: "summer.zip", expected: "/data/summer.zip"},
		{name: "no data dir", dataDir: "", location: "/var/uploads/summer.zip", expected: "/var/uploads/summer.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), ResolveArchivePath(tt.dataDir, tt.location))
		})
	}
}

func TestClearDataDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.ZIP", "c.zip", ".hidden", "d.mp3"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	require.NoError(t, ClearDataDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{".hidden", "b.ZIP", "c.zip", "sub"}, names)
}
