// Package config loads mixtaped settings: built-in defaults, then an optional
// TOML file, then MIXTAPED_* environment variables, then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Server struct {
	Listen               string `toml:"listen"`
	MaxRequestBytes      int    `toml:"max_request_bytes"`
	ReadTimeoutSeconds   int    `toml:"read_timeout_seconds"`
	ShutdownGraceSeconds int    `toml:"shutdown_grace_seconds"`
	// ResumePending resubmits posts still marked pending at startup.
	ResumePending bool `toml:"resume_pending"`
}

type Paths struct {
	DataDir string `toml:"data_dir"`
	WorkDir string `toml:"work_dir"`
}

type Pipeline struct {
	KeepDirectories bool   `toml:"keep_dirs"`
	KeepOriginal    bool   `toml:"keep_orig"`
	SaveRest        bool   `toml:"save_rest"`
	VerifyContent   bool   `toml:"verify_content"`
	UploadPreviews  bool   `toml:"upload_previews"`
	RenderVideo     bool   `toml:"render_video"`
	StripSubpath    string `toml:"strip_subpath"`
}

// Hook runs Command with the uploaded namespace location appended.
type Hook struct {
	Command        string `toml:"command"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Transcoder struct {
	Binary                 string `toml:"binary"`
	Bitrate                string `toml:"bitrate"`
	PreviewDurationSeconds int    `toml:"preview_duration_seconds"`
	// TimeoutSeconds bounds one invocation; 0 means unbounded.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type S3 struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Region    string `toml:"region"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	UseSSL    bool   `toml:"use_ssl"`
}

type Upload struct {
	Backend   string `toml:"backend"`
	BaseURL   string `toml:"base_url"`
	LocalRoot string `toml:"local_root"`
	S3        S3     `toml:"s3"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
}

type Counter struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	Redis   Redis  `toml:"redis"`
}

type Store struct {
	DatabasePath string `toml:"database_path"`
}

type Publish struct {
	// MaxAttempts of 0 retries forever.
	MaxAttempts       uint64 `toml:"max_attempts"`
	MinBackoffMillis  int    `toml:"min_backoff_ms"`
	MaxBackoffSeconds int    `toml:"max_backoff_seconds"`
}

type Tags struct {
	FilterList string `toml:"filter_list"`
	Comment    string `toml:"comment"`
}

type Logging struct {
	Level string `toml:"level"`
}

type Config struct {
	Server     Server     `toml:"server"`
	Paths      Paths      `toml:"paths"`
	Pipeline   Pipeline   `toml:"pipeline"`
	Transcoder Transcoder `toml:"transcoder"`
	Upload     Upload     `toml:"upload"`
	Counter    Counter    `toml:"counter"`
	Store      Store      `toml:"store"`
	Publish    Publish    `toml:"publish"`
	Tags       Tags       `toml:"tags"`
	Hook       Hook       `toml:"hook"`
	Logging    Logging    `toml:"logging"`
}

const (
	BackendLocal = "local"
	BackendS3    = "s3"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Load applies the config file at path (if it exists) and the environment on
// top of the defaults. An empty path looks for ./mixtaped.toml.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = "mixtaped.toml"
	}
	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("open config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Upload.Backend = strings.ToLower(strings.TrimSpace(c.Upload.Backend))
	c.Counter.Backend = strings.ToLower(strings.TrimSpace(c.Counter.Backend))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	for _, p := range []*string{&c.Paths.DataDir, &c.Paths.WorkDir, &c.Upload.LocalRoot, &c.Counter.Path, &c.Store.DatabasePath} {
		if *p != "" {
			*p = filepath.Clean(*p)
		}
	}
}

// EnsureDirectories creates the directories the server writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.WorkDir, filepath.Dir(c.Store.DatabasePath)}
	if c.Counter.Backend == BackendFile {
		dirs = append(dirs, filepath.Dir(c.Counter.Path))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func (s Server) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s Server) ShutdownGrace() time.Duration {
	return time.Duration(s.ShutdownGraceSeconds) * time.Second
}

func (t Transcoder) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

func (t Transcoder) PreviewDuration() time.Duration {
	return time.Duration(t.PreviewDurationSeconds) * time.Second
}

func (h Hook) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

func (p Publish) MinBackoff() time.Duration {
	return time.Duration(p.MinBackoffMillis) * time.Millisecond
}

func (p Publish) MaxBackoff() time.Duration {
	return time.Duration(p.MaxBackoffSeconds) * time.Second
}
