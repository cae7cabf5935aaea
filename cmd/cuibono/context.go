package main

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harshitk-cp/cuibono/internal/config"
)

type commandContext struct {
	configOnce sync.Once
	configErr  error

	logger *zap.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

// ensureConfig loads the environment files and builds the stderr logger.
func (c *commandContext) ensureConfig() error {
	c.configOnce.Do(func() {
		if err := config.Load(); err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		logger, err := newLogger(config.LogLevel())
		if err != nil {
			c.configErr = err
			return
		}
		c.logger = logger
	})
	return c.configErr
}

func (c *commandContext) loggerValue() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

func (c *commandContext) sync() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
