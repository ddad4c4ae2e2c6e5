package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ukaji3/sheetsplit-go/internal/config"
	"github.com/ukaji3/sheetsplit-go/internal/logging"
)

// cliContext carries state shared by all commands of one invocation.
type cliContext struct {
	configPath string
	logLevel   string
	logFormat  string

	logger    *slog.Logger
	closeLog  func() error
	logOutput io.Writer
	stdout    io.Writer
	now       func() time.Time
}

func newCLIContext() *cliContext {
	return &cliContext{
		logger:    logging.Fallback(),
		logOutput: os.Stderr,
		stdout:    os.Stdout,
		now:       time.Now,
	}
}

// loadConfig reads the configuration, applies command-line overrides and
// replaces the fallback logger with the configured one.
func (c *cliContext) loadConfig(overrides config.Overrides) (*config.Config, error) {
	cfg, path, exists, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	if c.logLevel != "" {
		overrides.LogLevel = &c.logLevel
	}
	if c.logFormat != "" {
		overrides.LogFormat = &c.logFormat
	}
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Output: c.logOutput,
	})
	if err != nil {
		return nil, err
	}
	c.close()
	c.logger = logger
	c.closeLog = closeLog

	if exists {
		logger.Debug("config loaded", "path", path)
	} else {
		logger.Debug("no config file found, using defaults", "path", path)
	}
	return cfg, nil
}

// close releases the configured log file.
func (c *cliContext) close() {
	if c.closeLog == nil {
		return
	}
	if err := c.closeLog(); err != nil {
		c.logger.Warn("close log file failed", "error", err)
	}
	c.closeLog = nil
}
