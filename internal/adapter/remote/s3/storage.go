// Package s3 uploads artifacts to an S3-compatible bucket.
package s3

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	// Prefix is prepended to every object key.
	Prefix string
	UseSSL bool
}

// namespaceMarker is written into every claimed namespace so a namespace
// stays taken even when none of its uploads succeeded.
const namespaceMarker = ".namespace"

// objectAPI is the subset of *minio.Client the storage uses.
type objectAPI interface {
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Storage struct {
	client objectAPI
	bucket string
	prefix string
}

func New(opts Options) (*Storage, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connection: %w", err)
	}
	return &Storage{
		client: client,
		bucket: opts.Bucket,
		prefix: strings.Trim(opts.Prefix, "/"),
	}, nil
}

// CreateNamespace claims a key prefix. S3 has no directories, so a namespace
// is taken once any object lives under it; claiming writes a marker object.
// Check and claim are not atomic; the counter lock serialises claimers.
func (s *Storage) CreateNamespace(ctx context.Context, namespace string) error {
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	objects := s.client.ListObjects(listCtx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.key(namespace) + "/",
		Recursive: true,
		MaxKeys:   1,
	})
	for obj := range objects {
		if obj.Err != nil {
			return fmt.Errorf("list namespace %s: %w", namespace, obj.Err)
		}
		return fmt.Errorf("%w: %s", domain.ErrNamespaceExists, namespace)
	}

	marker := s.key(path.Join(namespace, namespaceMarker))
	if _, err := s.client.PutObject(ctx, s.bucket, marker, strings.NewReader(""), 0, minio.PutObjectOptions{
		ContentType: "text/plain",
	}); err != nil {
		return fmt.Errorf("claim namespace %s: %w", namespace, err)
	}
	return nil
}

func (s *Storage) Put(ctx context.Context, localPath, remotePath string) error {
	info, err := s.client.FPutObject(ctx, s.bucket, s.key(remotePath), localPath, minio.PutObjectOptions{
		ContentType: contentType(localPath),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", remotePath, err)
	}
	logger.Debug.Printf("uploaded s3://%s/%s (%d bytes)", s.bucket, info.Key, info.Size)
	return nil
}

func (s *Storage) Location(namespace string) string {
	return "s3://" + s.bucket + "/" + s.key(namespace)
}

func (s *Storage) key(remotePath string) string {
	remotePath = strings.Trim(remotePath, "/")
	if s.prefix == "" {
		return remotePath
	}
	return path.Join(s.prefix, remotePath)
}

// artifactTypes covers extensions the system mime table may lack.
var artifactTypes = map[string]string{
	".mp3": "audio/mpeg",
	".mp4": "video/mp4",
	".zip": "application/zip",
}

func contentType(localPath string) string {
	ext := strings.ToLower(filepath.Ext(localPath))
	if t, ok := artifactTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

var _ port.RemoteStorage = (*Storage)(nil)
