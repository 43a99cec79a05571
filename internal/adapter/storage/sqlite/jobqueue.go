package sqlite

import (
	"context"
	"fmt"

	"github.com/bnema/mixtaped/internal/adapter/storage/sqlite/sqlitedb"
)

// PendingJobs lists posts registered for processing that never reached a
// terminal zipping status, oldest first. The server resubmits them on start.
func (s *Store) PendingJobs(ctx context.Context) ([]int64, error) {
	ids, err := s.queries.ListPostIDsByMeta(ctx, sqlitedb.ListPostIDsByMetaParams{
		MetaKey:   MetaZippingStatus,
		MetaValue: ZippingPending,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending posts: %w", err)
	}
	return ids, nil
}
