package config

import (
	"fmt"
	"strings"
)

// Overrides carries command-line values. Nil fields leave the loaded value
// in place.
type Overrides struct {
	InputDir  *string
	OutputDir *string
	InputFile *string
	Prefix    *string
	MaxRows   *int
	Sheet     *string
	LogLevel  *string
	LogFormat *string
}

// Apply merges the overrides into the configuration and validates the result.
func (c *Config) Apply(o Overrides) error {
	var err error
	if o.InputDir != nil {
		if c.Paths.InputDir, err = expandPath(strings.TrimSpace(*o.InputDir)); err != nil {
			return invalid(fmt.Errorf("--input-dir: %w", err))
		}
	}
	if o.OutputDir != nil {
		if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(*o.OutputDir)); err != nil {
			return invalid(fmt.Errorf("--output-dir: %w", err))
		}
	}
	if o.InputFile != nil {
		c.Paths.InputFile = strings.TrimSpace(*o.InputFile)
	}
	if o.Prefix != nil {
		c.Split.Prefix = strings.TrimSpace(*o.Prefix)
	}
	if o.MaxRows != nil {
		c.Split.MaxRows = *o.MaxRows
	}
	if o.Sheet != nil {
		c.Split.Sheet = strings.TrimSpace(*o.Sheet)
	}
	if o.LogLevel != nil {
		c.Logging.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		c.Logging.Format = *o.LogFormat
	}
	c.normalizeLogging()
	return c.Validate()
}
