package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports every problem found, not just the first.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(c.Server.Listen) == "" {
		add("server.listen is required")
	}
	if c.Server.MaxRequestBytes <= 0 {
		add("server.max_request_bytes must be positive")
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		add("server.read_timeout_seconds must be positive")
	}
	if c.Paths.DataDir == "" {
		add("paths.data_dir is required")
	}
	if c.Paths.WorkDir == "" {
		add("paths.work_dir is required")
	}
	if c.Transcoder.TimeoutSeconds < 0 {
		add("transcoder.timeout_seconds must not be negative")
	}
	if c.Hook.TimeoutSeconds < 0 {
		add("hook.timeout_seconds must not be negative")
	}
	if strings.HasPrefix(c.Pipeline.StripSubpath, "/") {
		add("pipeline.strip_subpath must be relative")
	}

	switch c.Upload.Backend {
	case BackendLocal:
		if c.Upload.LocalRoot == "" {
			add("upload.local_root is required for the local backend")
		}
	case BackendS3:
		if c.Upload.S3.Endpoint == "" || c.Upload.S3.Bucket == "" {
			add("upload.s3.endpoint and upload.s3.bucket are required for the s3 backend")
		}
	default:
		add("upload.backend must be %q or %q, got %q", BackendLocal, BackendS3, c.Upload.Backend)
	}

	switch c.Counter.Backend {
	case BackendFile:
		if c.Counter.Path == "" {
			add("counter.path is required for the file backend")
		}
	case BackendRedis:
		if c.Counter.Redis.Addr == "" {
			add("counter.redis.addr is required for the redis backend")
		}
	default:
		add("counter.backend must be %q or %q, got %q", BackendFile, BackendRedis, c.Counter.Backend)
	}

	if c.Store.DatabasePath == "" {
		add("store.database_path is required")
	}
	if c.Publish.MinBackoffMillis < 0 || c.Publish.MaxBackoffSeconds < 0 {
		add("publish backoff values must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		add("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	return errors.Join(errs...)
}
