package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. Errors wrap
// sheetsplit.ErrInvalidConfig.
func (c *Config) Validate() error {
	for _, check := range []func() error{
		c.validatePaths,
		c.validateSplit,
		c.validateBackup,
		c.validateLogging,
	} {
		if err := check(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.InputDir == "" {
		return errors.New("paths.input_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if strings.ContainsAny(c.Paths.InputFile, `/\`) {
		return fmt.Errorf("paths.input_file %q must be a file name, not a path", c.Paths.InputFile)
	}
	return nil
}

func (c *Config) validateSplit() error {
	if c.Split.Prefix == "" {
		return errors.New("split.prefix must be set")
	}
	if strings.ContainsAny(c.Split.Prefix, `/\`) {
		return fmt.Errorf("split.prefix %q must not contain path separators", c.Split.Prefix)
	}
	if c.Split.MaxRows <= 0 {
		return fmt.Errorf("split.max_rows must be positive, got %d", c.Split.MaxRows)
	}
	return nil
}

func (c *Config) validateBackup() error {
	if len(c.Backup.Extensions) == 0 {
		return errors.New("backup.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
