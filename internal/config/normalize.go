package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	envInputDir  = "SHEETSPLIT_INPUT_DIR"
	envOutputDir = "SHEETSPLIT_OUTPUT_DIR"
	envPrefix    = "SHEETSPLIT_PREFIX"
	envMaxRows   = "SHEETSPLIT_MAX_ROWS"
)

func (c *Config) normalize() error {
	if err := c.applyEnv(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Split.Prefix = strings.TrimSpace(c.Split.Prefix)
	c.Split.Sheet = strings.TrimSpace(c.Split.Sheet)
	c.normalizeBackup()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() error {
	if value, ok := lookupEnv(envInputDir); ok {
		c.Paths.InputDir = value
	}
	if value, ok := lookupEnv(envOutputDir); ok {
		c.Paths.OutputDir = value
	}
	if value, ok := lookupEnv(envPrefix); ok {
		c.Split.Prefix = value
	}
	if value, ok := lookupEnv(envMaxRows); ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", envMaxRows, value)
		}
		c.Split.MaxRows = n
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InputDir, err = expandPath(strings.TrimSpace(c.Paths.InputDir)); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	c.Paths.InputFile = strings.TrimSpace(c.Paths.InputFile)
	if c.Paths.InputFile == "" {
		c.Paths.InputFile = defaultInputFile
	}
	return nil
}

func (c *Config) normalizeBackup() {
	seen := make(map[string]struct{}, len(c.Backup.Extensions))
	exts := make([]string, 0, len(c.Backup.Extensions))
	for _, ext := range c.Backup.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	c.Backup.Extensions = exts
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
