package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mixtaped.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Server.Listen, cfg.Server.Listen)
	assert.Equal(t, BackendLocal, cfg.Upload.Backend)
	assert.Equal(t, BackendFile, cfg.Counter.Backend)
	assert.Equal(t, "128/", cfg.Pipeline.StripSubpath)
	assert.Equal(t, uint64(20), cfg.Publish.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 500*time.Millisecond, cfg.Publish.MinBackoff())
	assert.Zero(t, cfg.Transcoder.Timeout())
	assert.False(t, cfg.Pipeline.KeepDirectories)
	assert.False(t, cfg.Pipeline.KeepOriginal)
	assert.False(t, cfg.Pipeline.SaveRest)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
listen = "127.0.0.1:9000"
read_timeout_seconds = 5

[pipeline]
keep_dirs = true
render_video = true

[upload]
backend = "S3"
base_url = "https://cdn.example.com/"

[upload.s3]
endpoint = "minio:9000"
bucket = "mixtapes"

[counter]
backend = "redis"

[counter.redis]
addr = "redis:6379"
db = 2

[hook]
command = "/usr/local/bin/warm-cache --quiet"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Listen)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout())
	assert.True(t, cfg.Pipeline.KeepDirectories)
	assert.True(t, cfg.Pipeline.RenderVideo)
	assert.Equal(t, BackendS3, cfg.Upload.Backend)
	assert.Equal(t, "mixtapes", cfg.Upload.S3.Bucket)
	assert.Equal(t, BackendRedis, cfg.Counter.Backend)
	assert.Equal(t, 2, cfg.Counter.Redis.DB)
	assert.Equal(t, "/usr/local/bin/warm-cache --quiet", cfg.Hook.Command)
	assert.Equal(t, 300*time.Second, cfg.Hook.Timeout())
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `
[server]
listn = ":9000"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[paths]
data_dir = "/srv/data"
`)
	t.Setenv("MIXTAPED_DATA_DIR", "/mnt/incoming/")
	t.Setenv("MIXTAPED_LOG_LEVEL", "DEBUG")
	t.Setenv("MIXTAPED_TRANSCODER_TIMEOUT_SECONDS", "90")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/mnt/incoming", cfg.Paths.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 90*time.Second, cfg.Transcoder.Timeout())
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("MIXTAPED_REDIS_DB", "two")

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MIXTAPED_REDIS_DB")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown upload backend",
			mutate:  func(c *Config) { c.Upload.Backend = "ftp" },
			wantErr: "upload.backend",
		},
		{
			name:    "s3 without bucket",
			mutate:  func(c *Config) { c.Upload.Backend = BackendS3; c.Upload.S3.Endpoint = "minio:9000" },
			wantErr: "upload.s3.bucket",
		},
		{
			name:    "unknown counter backend",
			mutate:  func(c *Config) { c.Counter.Backend = "etcd" },
			wantErr: "counter.backend",
		},
		{
			name:    "redis without addr",
			mutate:  func(c *Config) { c.Counter.Backend = BackendRedis; c.Counter.Redis.Addr = "" },
			wantErr: "counter.redis.addr",
		},
		{
			name:    "negative transcoder timeout",
			mutate:  func(c *Config) { c.Transcoder.TimeoutSeconds = -1 },
			wantErr: "transcoder.timeout_seconds",
		},
		{
			name:    "absolute strip subpath",
			mutate:  func(c *Config) { c.Pipeline.StripSubpath = "/128/" },
			wantErr: "strip_subpath",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Server.Listen = ""
	cfg.Paths.WorkDir = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen")
	assert.Contains(t, err.Error(), "paths.work_dir")
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(root, "data")
	cfg.Paths.WorkDir = filepath.Join(root, "work")
	cfg.Store.DatabasePath = filepath.Join(root, "db", "mixtaped.db")
	cfg.Counter.Path = filepath.Join(root, "state", "counter")

	require.NoError(t, cfg.EnsureDirectories())

	for _, dir := range []string{"data", "work", "db", "state"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
