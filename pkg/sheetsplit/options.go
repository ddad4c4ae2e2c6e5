// Package sheetsplit splits a worksheet into several workbooks of bounded size.
package sheetsplit

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultInputFile is the input workbook name looked up in the input directory.
	DefaultInputFile = "input.xlsx"
	// TimestampLayout formats run timestamps in file and directory names.
	TimestampLayout = "20060102_150405"
	// OutputSheetName is the single worksheet name of every part file.
	OutputSheetName = "Sheet1"
	// LockFileName is the advisory lock file kept in the output directory.
	LockFileName = ".sheetsplit.lock"
)

// DefaultBackupExtensions lists the file extensions moved by backup rotation.
var DefaultBackupExtensions = []string{".xlsx"}

// SplitOptions configures a split.
type SplitOptions struct {
	// MaxRows is the maximum number of data rows per output file.
	MaxRows int
	// OutputDir receives the part files.
	OutputDir string
	// Prefix starts every part file name.
	Prefix string
	// Sheet selects the source worksheet. Empty means the first sheet.
	Sheet string
	// Timestamp is formatted once and shared by every part file name.
	Timestamp time.Time
	// Logger receives per-part debug records. Nil discards them.
	Logger *slog.Logger
}

func (o SplitOptions) validate() error {
	if o.MaxRows <= 0 {
		return invalidConfig("max rows per file must be positive, got %d", o.MaxRows)
	}
	if strings.TrimSpace(o.OutputDir) == "" {
		return invalidConfig("output directory is required")
	}
	if strings.TrimSpace(o.Prefix) == "" {
		return invalidConfig("output prefix is required")
	}
	if strings.ContainsAny(o.Prefix, `/\`) {
		return invalidConfig("output prefix %q must not contain path separators", o.Prefix)
	}
	return nil
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

// RunConfig configures a complete run: prepare, back up, validate, split.
type RunConfig struct {
	InputDir  string
	OutputDir string
	// InputFile is the workbook name inside InputDir. Empty means DefaultInputFile.
	InputFile string
	Prefix    string
	MaxRows   int
	Sheet     string
	// BackupExtensions overrides DefaultBackupExtensions when non-empty.
	BackupExtensions []string
	// Now supplies the run timestamp. Nil means time.Now.
	Now    func() time.Time
	Logger *slog.Logger
	// DryRun reads the input and plans partitions without touching the filesystem.
	DryRun bool
}

// InputPath returns the full input workbook path.
func (c RunConfig) InputPath() string {
	name := c.InputFile
	if strings.TrimSpace(name) == "" {
		name = DefaultInputFile
	}
	return filepath.Join(c.InputDir, name)
}

func (c RunConfig) validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return invalidConfig("input directory is required")
	}
	return c.splitOptions(time.Time{}, nil).validate()
}

func (c RunConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c RunConfig) backupExtensions() []string {
	if len(c.BackupExtensions) > 0 {
		return c.BackupExtensions
	}
	return DefaultBackupExtensions
}

func (c RunConfig) splitOptions(ts time.Time, logger *slog.Logger) SplitOptions {
	return SplitOptions{
		MaxRows:   c.MaxRows,
		OutputDir: c.OutputDir,
		Prefix:    c.Prefix,
		Sheet:     c.Sheet,
		Timestamp: ts,
		Logger:    logger,
	}
}
