package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

// UploadSession pushes the artifacts of one job into a fresh namespace.
// The namespace counter is committed exactly once, on Close.
type UploadSession struct {
	counter   port.NamespaceCounter
	remote    port.RemoteStorage
	baseURL   string
	value     int64
	namespace string

	mu       sync.Mutex
	uploaded map[string]bool
	closed   bool
	closeErr error
}

// OpenUploadSession reserves the next namespace and creates it remotely. A
// namespace that already exists is an error: namespaces are never reused.
func OpenUploadSession(ctx context.Context, counter port.NamespaceCounter, remote port.RemoteStorage, baseURL string) (*UploadSession, error) {
	value, err := counter.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("reserve namespace: %w", err)
	}

	s := &UploadSession{
		counter:   counter,
		remote:    remote,
		baseURL:   baseURL,
		value:     value,
		namespace: strconv.FormatInt(value, 10),
		uploaded:  make(map[string]bool),
	}

	if err := remote.CreateNamespace(ctx, s.namespace); err != nil {
		// the value is burnt either way
		if closeErr := s.Close(ctx); closeErr != nil {
			logger.Error.Printf("commit namespace %s after failed open: %v", s.namespace, closeErr)
		}
		return nil, fmt.Errorf("create namespace %s: %w", s.namespace, err)
	}
	logger.Info.Printf("opened upload namespace %s", s.namespace)
	return s, nil
}

func (s *UploadSession) Upload(ctx context.Context, artifact domain.Artifact) error {
	remotePath := artifact.RemotePath(s.namespace)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	if s.uploaded[remotePath] {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", remotePath, domain.ErrAlreadyUploaded)
	}
	s.uploaded[remotePath] = true
	s.mu.Unlock()

	if err := s.remote.Put(ctx, artifact.LocalPath, remotePath); err != nil {
		s.mu.Lock()
		delete(s.uploaded, remotePath)
		s.mu.Unlock()
		return fmt.Errorf("upload %s: %w", artifact.Kind, err)
	}
	logger.Debug.Printf("uploaded %s to %s", artifact.Kind, logger.SanitizeForLog(remotePath))
	return nil
}

// Close commits the namespace counter. Later calls return the first result.
func (s *UploadSession) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.closeErr
	}
	s.closed = true
	if err := s.counter.Commit(ctx, s.value); err != nil {
		s.closeErr = fmt.Errorf("commit namespace %s: %w", s.namespace, err)
	}
	return s.closeErr
}

func (s *UploadSession) Namespace() string {
	return s.namespace
}

// Location is where the remote backend keeps the namespace.
func (s *UploadSession) Location() string {
	return s.remote.Location(s.namespace)
}

func (s *UploadSession) URL() string {
	base := s.baseURL
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + s.namespace + "/"
}
