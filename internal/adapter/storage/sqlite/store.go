package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"

	"github.com/bnema/mixtaped/internal/adapter/storage/sqlite/sqlitedb"
	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "publish"

	MetaFileURL       = "file_url"
	MetaZippingStatus = "zipping_status"
	MetaZippingError  = "zipping_error"

	ZippingPending   = "pending"
	ZippingProcessed = "processed"
	ZippingFailed    = "failed"
)

// Store is the metadata store: one post per mixtape, with its archive
// location and processing status kept as post meta.
type Store struct {
	db      *sql.DB
	queries *sqlitedb.Queries
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dbPath string) (*Store, error) {
	registerHook()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		db:      db,
		queries: sqlitedb.New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Lookup(ctx context.Context, jobID int64) (*domain.Job, error) {
	row, err := s.queries.GetPostWithMeta(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", jobID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup post %d: %w", jobID, err)
	}
	if row.FileUrl == "" {
		return nil, fmt.Errorf("post %d has no %s: %w", jobID, MetaFileURL, domain.ErrNotFound)
	}
	return &domain.Job{
		ID:              row.ID,
		ArchiveLocation: row.FileUrl,
		DisplayName:     row.Title,
	}, nil
}

// MarkPublished publishes the post and points its file_url at the uploaded archive.
func (s *Store) MarkPublished(ctx context.Context, jobID int64, url string) error {
	return s.withTx(ctx, func(q *sqlitedb.Queries) error {
		if err := updateStatus(ctx, q, jobID, PostStatusPublished); err != nil {
			return err
		}
		if err := setMeta(ctx, q, jobID, MetaFileURL, url); err != nil {
			return err
		}
		return setMeta(ctx, q, jobID, MetaZippingStatus, ZippingProcessed)
	})
}

func (s *Store) MarkFailed(ctx context.Context, jobID int64, reason string) error {
	return s.withTx(ctx, func(q *sqlitedb.Queries) error {
		if _, err := s.lookupPost(ctx, q, jobID); err != nil {
			return err
		}
		if err := setMeta(ctx, q, jobID, MetaZippingStatus, ZippingFailed); err != nil {
			return err
		}
		return setMeta(ctx, q, jobID, MetaZippingError, reason)
	})
}

// Register creates a draft post whose archive is waiting to be processed and
// returns its id, which doubles as the job id.
func (s *Store) Register(ctx context.Context, title, fileURL string) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(q *sqlitedb.Queries) error {
		post, err := q.InsertPost(ctx, sqlitedb.InsertPostParams{
			Title:  title,
			Name:   slug(title),
			Status: PostStatusDraft,
		})
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
		id = post.ID
		if err := setMeta(ctx, q, id, MetaFileURL, fileURL); err != nil {
			return err
		}
		return setMeta(ctx, q, id, MetaZippingStatus, ZippingPending)
	})
	return id, err
}

// ZippingStatus returns the processing status meta of a post.
func (s *Store) ZippingStatus(ctx context.Context, jobID int64) (string, error) {
	row, err := s.lookupPost(ctx, s.queries, jobID)
	if err != nil {
		return "", err
	}
	return row.ZippingStatus, nil
}

func (s *Store) lookupPost(ctx context.Context, q *sqlitedb.Queries, jobID int64) (sqlitedb.PostWithMeta, error) {
	row, err := q.GetPostWithMeta(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, fmt.Errorf("post %d: %w", jobID, domain.ErrNotFound)
		}
		return row, fmt.Errorf("lookup post %d: %w", jobID, err)
	}
	return row, nil
}

func (s *Store) withTx(ctx context.Context, fn func(q *sqlitedb.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(s.queries.WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func updateStatus(ctx context.Context, q *sqlitedb.Queries, id int64, status string) error {
	n, err := q.UpdatePostStatus(ctx, sqlitedb.UpdatePostStatusParams{Status: status, ID: id})
	if err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func setMeta(ctx context.Context, q *sqlitedb.Queries, id int64, key, value string) error {
	err := q.UpsertPostMeta(ctx, sqlitedb.UpsertPostMetaParams{PostID: id, MetaKey: key, MetaValue: value})
	if err != nil {
		return fmt.Errorf("set %s on post %d: %w", key, id, err)
	}
	return nil
}

func slug(title string) string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}

var _ port.MetadataStore = (*Store)(nil)
