package models

import "time"

// RunResult summarises a complete run.
type RunResult struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`
	// Timestamp is the single instant used for backup and part file names.
	Timestamp time.Time `json:"timestamp"`
	// Input is the input workbook path.
	Input string `json:"input"`
	// DryRun is true when nothing was written.
	DryRun bool `json:"dry_run"`
	// Backup is nil when no previous outputs were rotated.
	Backup *Backup `json:"backup,omitempty"`
	// Sheet is the source worksheet extent.
	Sheet SheetData `json:"sheet"`
	// Plan is the partition plan. Filled for dry runs and real runs alike.
	Plan []Partition `json:"plan"`
	// Outputs lists the written part files.
	Outputs []OutputFile `json:"outputs,omitempty"`
}
