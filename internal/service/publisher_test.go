package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/port/mocks"
)

func fastPolicy(attempts uint64) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, MinBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond}
}

func TestStatusPublisher_Publish(t *testing.T) {
	errLocked := errors.New("database is locked")

	tests := []struct {
		name      string
		attempts  uint64
		setup     func(store *mocks.MetadataStoreMock)
		wantErr   error
		wantCalls int
	}{
		{
			name:     "first attempt succeeds",
			attempts: 5,
			setup: func(store *mocks.MetadataStoreMock) {
				store.EXPECT().MarkPublished(mock.Anything, int64(4), "https://cdn.example/1/t.zip").Return(nil).Once()
			},
		},
		{
			name:     "transient errors are retried",
			attempts: 5,
			setup: func(store *mocks.MetadataStoreMock) {
				store.EXPECT().MarkPublished(mock.Anything, int64(4), mock.Anything).Return(errLocked).Twice()
				store.EXPECT().MarkPublished(mock.Anything, int64(4), mock.Anything).Return(nil).Once()
			},
		},
		{
			name:     "gives up after max attempts",
			attempts: 3,
			setup: func(store *mocks.MetadataStoreMock) {
				store.EXPECT().MarkPublished(mock.Anything, int64(4), mock.Anything).Return(errLocked).Times(3)
			},
			wantErr: errLocked,
		},
		{
			name:     "missing post is not retried",
			attempts: 5,
			setup: func(store *mocks.MetadataStoreMock) {
				store.EXPECT().MarkPublished(mock.Anything, int64(4), mock.Anything).Return(domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMetadataStoreMock(t)
			tt.setup(store)

			err := NewStatusPublisher(store, fastPolicy(tt.attempts)).
				Publish(context.Background(), 4, "https://cdn.example/1/t.zip")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatusPublisher_UnboundedStopsOnContext(t *testing.T) {
	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().MarkPublished(mock.Anything, int64(1), mock.Anything).Return(errors.New("down")).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewStatusPublisher(store, fastPolicy(0)).Publish(ctx, 1, "u")
	require.Error(t, err)
}

func TestStatusPublisher_MarkFailed(t *testing.T) {
	store := mocks.NewMetadataStoreMock(t)
	store.EXPECT().MarkFailed(mock.Anything, int64(2), "extract: boom").Return(errors.New("locked")).Once()
	store.EXPECT().MarkFailed(mock.Anything, int64(2), "extract: boom").Return(nil).Once()

	require.NoError(t, NewStatusPublisher(store, fastPolicy(3)).MarkFailed(context.Background(), 2, "extract: boom"))
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, uint64(DefaultPublishAttempts), p.MaxAttempts)
	assert.Equal(t, DefaultPublishMinBackoff, p.MinBackoff)
	assert.Equal(t, DefaultPublishMaxBackoff, p.MaxBackoff)
}
