package port

import (
	"context"

	"github.com/bnema/mixtaped/internal/domain"
)

type Archiver interface {
	Extract(ctx context.Context, archivePath string, targets domain.ExtractTargets) (*domain.Extraction, error)
	Pack(ctx context.Context, destPath string, files []string) error
}
