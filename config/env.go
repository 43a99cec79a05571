package config

import (
	"fmt"
	"os"
	"strconv"
)

const envPrefix = "MIXTAPED_"

// applyEnv overrides file values with MIXTAPED_* variables when they are set.
func (c *Config) applyEnv() error {
	c.Server.Listen = getEnv("LISTEN", c.Server.Listen)
	c.Paths.DataDir = getEnv("DATA_DIR", c.Paths.DataDir)
	c.Paths.WorkDir = getEnv("WORK_DIR", c.Paths.WorkDir)
	c.Transcoder.Binary = getEnv("FFMPEG", c.Transcoder.Binary)
	c.Upload.Backend = getEnv("UPLOAD_BACKEND", c.Upload.Backend)
	c.Upload.BaseURL = getEnv("BASE_URL", c.Upload.BaseURL)
	c.Upload.LocalRoot = getEnv("LOCAL_ROOT", c.Upload.LocalRoot)
	c.Upload.S3.Endpoint = getEnv("S3_ENDPOINT", c.Upload.S3.Endpoint)
	c.Upload.S3.AccessKey = getEnv("S3_ACCESS_KEY", c.Upload.S3.AccessKey)
	c.Upload.S3.SecretKey = getEnv("S3_SECRET_KEY", c.Upload.S3.SecretKey)
	c.Upload.S3.Bucket = getEnv("S3_BUCKET", c.Upload.S3.Bucket)
	c.Counter.Backend = getEnv("COUNTER_BACKEND", c.Counter.Backend)
	c.Counter.Path = getEnv("COUNTER_PATH", c.Counter.Path)
	c.Counter.Redis.Addr = getEnv("REDIS_ADDR", c.Counter.Redis.Addr)
	c.Counter.Redis.Password = getEnv("REDIS_PASSWORD", c.Counter.Redis.Password)
	c.Store.DatabasePath = getEnv("DATABASE_PATH", c.Store.DatabasePath)
	c.Tags.FilterList = getEnv("FILTER_LIST", c.Tags.FilterList)
	c.Tags.Comment = getEnv("TAG_COMMENT", c.Tags.Comment)
	c.Hook.Command = getEnv("HOOK_COMMAND", c.Hook.Command)
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)

	var err error
	if c.Transcoder.TimeoutSeconds, err = getEnvInt("TRANSCODER_TIMEOUT_SECONDS", c.Transcoder.TimeoutSeconds); err != nil {
		return err
	}
	if c.Server.MaxRequestBytes, err = getEnvInt("MAX_REQUEST_BYTES", c.Server.MaxRequestBytes); err != nil {
		return err
	}
	if c.Counter.Redis.DB, err = getEnvInt("REDIS_DB", c.Counter.Redis.DB); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return n, nil
}
