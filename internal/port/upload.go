package port

import "context"

// RemoteStorage is the artifact transport. Remote paths are slash separated and
// always start with the namespace.
type RemoteStorage interface {
	// CreateNamespace fails with domain.ErrNamespaceExists if the namespace is
	// already in use.
	CreateNamespace(ctx context.Context, namespace string) error
	Put(ctx context.Context, localPath, remotePath string) error
	Location(namespace string) string
}

// NamespaceCounter hands out upload namespaces. Next reserves the following
// value; Commit persists it and must be called exactly once after Next.
type NamespaceCounter interface {
	Next(ctx context.Context) (int64, error)
	Commit(ctx context.Context, value int64) error
}
