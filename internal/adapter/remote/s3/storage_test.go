package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mixtaped/internal/domain"
)

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(Options{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}

func TestStorage_Keys(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		remotePath string
		wantKey    string
	}{
		{name: "no prefix", prefix: "", remotePath: "12/a.mp3", wantKey: "12/a.mp3"},
		{name: "prefix", prefix: "mixtapes", remotePath: "12/128/a.mp3", wantKey: "mixtapes/12/128/a.mp3"},
		{name: "slashes trimmed", prefix: "/mixtapes/", remotePath: "/12/a.mp3", wantKey: "mixtapes/12/a.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(Options{Endpoint: "localhost:9000", Bucket: "tapes", Prefix: tt.prefix})
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, s.key(tt.remotePath))
		})
	}
}

func TestStorage_Location(t *testing.T) {
	s, err := New(Options{Endpoint: "localhost:9000", Bucket: "tapes", Prefix: "mixtapes"})
	require.NoError(t, err)
	assert.Equal(t, "s3://tapes/mixtapes/12", s.Location("12"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/zip", contentType("/work/tape.zip"))
	assert.Equal(t, "audio/mpeg", contentType("/work/128/A.MP3"))
	assert.Equal(t, "image/png", contentType("/work/cover.png"))
	assert.Equal(t, "application/octet-stream", contentType("/work/noext"))
}

// fakeObjects is an in-memory bucket.
type fakeObjects struct {
	mu      sync.Mutex
	keys    map[string]bool
	listErr error
	putErr  error
}

func newFakeObjects(keys ...string) *fakeObjects {
	f := &fakeObjects{keys: make(map[string]bool)}
	for _, k := range keys {
		f.keys[k] = true
	}
	return f
}

func (f *fakeObjects) ListObjects(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan minio.ObjectInfo, len(f.keys)+1)
	if f.listErr != nil {
		ch <- minio.ObjectInfo{Err: f.listErr}
	} else {
		for k := range f.keys {
			if strings.HasPrefix(k, opts.Prefix) {
				ch <- minio.ObjectInfo{Key: k}
			}
		}
	}
	close(ch)
	return ch
}

func (f *fakeObjects) PutObject(_ context.Context, _, objectName string, _ io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	f.keys[objectName] = true
	return minio.UploadInfo{Key: objectName}, nil
}

func (f *fakeObjects) FPutObject(_ context.Context, _, objectName, _ string, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[objectName] = true
	return minio.UploadInfo{Key: objectName}, nil
}

func (f *fakeObjects) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.keys[key]
}

func TestStorage_CreateNamespace(t *testing.T) {
	objects := newFakeObjects("mixtapes/11/a.mp3")
	s := &Storage{client: objects, bucket: "tapes", prefix: "mixtapes"}
	ctx := context.Background()

	assert.ErrorIs(t, s.CreateNamespace(ctx, "11"), domain.ErrNamespaceExists)

	require.NoError(t, s.CreateNamespace(ctx, "12"))
	assert.True(t, objects.has("mixtapes/12/.namespace"))

	// claimed but never uploaded to: still taken
	assert.ErrorIs(t, s.CreateNamespace(ctx, "12"), domain.ErrNamespaceExists)

	// a prefix that merely shares leading digits is a different namespace
	require.NoError(t, s.CreateNamespace(ctx, "1"))
}

func TestStorage_CreateNamespace_Errors(t *testing.T) {
	ctx := context.Background()

	listing := newFakeObjects()
	listing.listErr = errors.New("access denied")
	s := &Storage{client: listing, bucket: "tapes"}
	err := s.CreateNamespace(ctx, "12")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNamespaceExists)

	claiming := newFakeObjects()
	claiming.putErr = errors.New("quota exceeded")
	s = &Storage{client: claiming, bucket: "tapes"}
	assert.ErrorContains(t, s.CreateNamespace(ctx, "12"), "claim namespace 12")
}

func TestStorage_Put(t *testing.T) {
	objects := newFakeObjects()
	s := &Storage{client: objects, bucket: "tapes", prefix: "mixtapes"}

	require.NoError(t, s.Put(context.Background(), "/work/full/a.mp3", "12/128/a.mp3"))
	assert.True(t, objects.has("mixtapes/12/128/a.mp3"))
}
