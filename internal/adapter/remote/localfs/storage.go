// Package localfs uploads artifacts by copying them into a mounted directory
// tree, typically a bucket exposed through a FUSE mount.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/port"
)

var ErrOutsideRoot = errors.New("remote path escapes storage root")

type Storage struct {
	root string
}

func New(root string) *Storage {
	return &Storage{root: root}
}

func (s *Storage) CreateNamespace(_ context.Context, namespace string) error {
	dir, err := s.resolve(namespace)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create storage root: %w", err)
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrNamespaceExists, namespace)
		}
		return fmt.Errorf("create namespace: %w", err)
	}
	return nil
}

func (s *Storage) Put(ctx context.Context, localPath, remotePath string) error {
	dest, err := s.resolve(remotePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create remote directory: %w", err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = src.Close() }()

	tmp := dest + ".part"
	dst, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create remote file: %w", err)
	}
	if _, err := io.Copy(dst, &ctxReader{ctx: ctx, r: src}); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("copy artifact: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close remote file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename remote file: %w", err)
	}
	return nil
}

func (s *Storage) Location(namespace string) string {
	return filepath.Join(s.root, filepath.FromSlash(namespace))
}

func (s *Storage) resolve(remotePath string) (string, error) {
	p := filepath.Join(s.root, filepath.FromSlash(remotePath))
	rel, err := filepath.Rel(s.root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, remotePath)
	}
	return p, nil
}

// ctxReader stops a copy once the context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

var _ port.RemoteStorage = (*Storage)(nil)
