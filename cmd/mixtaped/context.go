package main

import (
	"strings"
	"sync"

	"github.com/bnema/mixtaped/config"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig loads the config once, creates its directories and applies
// the log level. A --log-level flag wins over the file and environment.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && *c.logLevelFlag != "" {
			cfg.Logging.Level = strings.ToLower(*c.logLevelFlag)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		logger.SetLevel(cfg.Logging.Level)
		c.config = cfg
	})
	return c.config, c.configErr
}
