package sheetsplit

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"
)

// Run prepares the directories, rotates previous outputs into a backup,
// validates the input and splits it. One timestamp, taken at the start, names
// both the backup directory and every part file. The output directory is
// held under an advisory lock for the duration of the run.
func Run(ctx context.Context, cfg RunConfig) (*models.RunResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ts := cfg.now()
	runID := uuid.NewString()
	logger := loggerOrDiscard(cfg.Logger).With("run_id", runID)
	inputPath := cfg.InputPath()

	result := &models.RunResult{
		RunID:     runID,
		Timestamp: ts,
		Input:     inputPath,
		DryRun:    cfg.DryRun,
	}

	if cfg.DryRun {
		if err := ValidateInput(inputPath); err != nil {
			return result, err
		}
		sheet, err := LoadSheet(inputPath, cfg.Sheet)
		if err != nil {
			return result, err
		}
		result.Sheet = sheetSummary(sheet)
		result.Plan = PlanPartitions(sheet.TotalRows, cfg.MaxRows)
		logger.Info("split planned", "sheet", sheet.Name, "data_rows", sheet.DataRows(), "parts", len(result.Plan))
		return result, nil
	}

	if err := PrepareDirs(cfg.InputDir, cfg.OutputDir); err != nil {
		return result, err
	}

	lock := flock.New(filepath.Join(cfg.OutputDir, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return result, NewOpError("lock", lock.Path(), err)
	}
	if !locked {
		return result, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release lock failed", "path", lock.Path(), "error", err)
		}
	}()

	backup, err := RotateBackups(cfg.OutputDir, ts, cfg.backupExtensions())
	result.Backup = backup
	if err != nil {
		return result, err
	}
	if backup != nil {
		logger.Info("previous outputs moved to backup", "dir", backup.Dir, "files", len(backup.Files))
	}

	if err := ValidateInput(inputPath); err != nil {
		return result, err
	}

	sheet, err := LoadSheet(inputPath, cfg.Sheet)
	if err != nil {
		return result, err
	}
	result.Sheet = sheetSummary(sheet)
	result.Plan = PlanPartitions(sheet.TotalRows, cfg.MaxRows)

	split, err := WriteParts(ctx, sheet, cfg.splitOptions(ts, logger))
	if split != nil {
		result.Outputs = split.Outputs
	}
	if err != nil {
		return result, err
	}

	logger.Info("split complete",
		"sheet", sheet.Name,
		"data_rows", sheet.DataRows(),
		"parts", len(result.Outputs),
		"output_dir", cfg.OutputDir,
	)
	return result, nil
}
