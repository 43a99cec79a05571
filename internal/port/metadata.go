package port

import (
	"context"

	"github.com/bnema/mixtaped/internal/domain"
)

type MetadataStore interface {
	Lookup(ctx context.Context, jobID int64) (*domain.Job, error)
	MarkPublished(ctx context.Context, jobID int64, url string) error
	MarkFailed(ctx context.Context, jobID int64, reason string) error
}
