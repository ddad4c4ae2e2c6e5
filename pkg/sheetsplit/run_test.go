package sheetsplit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"
)

func runConfig(root string) RunConfig {
	return RunConfig{
		InputDir:  filepath.Join(root, "input"),
		OutputDir: filepath.Join(root, "output"),
		Prefix:    "report",
		MaxRows:   10,
		Now:       func() time.Time { return fixedTime },
	}
}

func TestRunBacksUpAndSplits(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)
	writeWorkbook(t, cfg.InputPath(), sampleRows(25))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, filepath.Join(cfg.OutputDir, "report_20240101_000000_Parte1.xlsx"))
	touch(t, filepath.Join(cfg.OutputDir, "readme.txt"))

	result, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.RunID == "" {
		t.Error("expected a run id")
	}
	if !result.Timestamp.Equal(fixedTime) {
		t.Errorf("timestamp = %v, expected %v", result.Timestamp, fixedTime)
	}
	if result.Backup == nil {
		t.Fatal("expected a backup")
	}
	backupDir := filepath.Join(cfg.OutputDir, "backup_20240305_140709")
	if result.Backup.Dir != backupDir {
		t.Errorf("backup dir = %q, expected %q", result.Backup.Dir, backupDir)
	}
	if diff := cmp.Diff([]string{"report_20240101_000000_Parte1.xlsx"}, listFiles(t, backupDir)); diff != "" {
		t.Errorf("backup contents mismatch (-want +got):\n%s", diff)
	}

	wantRoot := []string{
		LockFileName,
		"readme.txt",
		"report_20240305_140709_Parte1.xlsx",
		"report_20240305_140709_Parte2.xlsx",
		"report_20240305_140709_Parte3.xlsx",
	}
	if diff := cmp.Diff(wantRoot, listFiles(t, cfg.OutputDir)); diff != "" {
		t.Errorf("output dir mismatch (-want +got):\n%s", diff)
	}
	if len(result.Plan) != 3 || len(result.Outputs) != 3 {
		t.Errorf("expected 3 planned and written parts, got %d and %d", len(result.Plan), len(result.Outputs))
	}
	if result.Sheet.DataRows() != 25 {
		t.Errorf("expected 25 data rows, got %d", result.Sheet.DataRows())
	}
}

func TestRunTwiceRotatesPreviousParts(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)
	writeWorkbook(t, cfg.InputPath(), sampleRows(3))

	if _, err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	later := fixedTime.Add(time.Minute)
	cfg.Now = func() time.Time { return later }
	result, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	backupDir := filepath.Join(cfg.OutputDir, "backup_20240305_140809")
	if result.Backup == nil || result.Backup.Dir != backupDir {
		t.Fatalf("unexpected backup %+v", result.Backup)
	}
	if diff := cmp.Diff([]string{"report_20240305_140709_Parte1.xlsx"}, listFiles(t, backupDir)); diff != "" {
		t.Errorf("backup contents mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{LockFileName, "report_20240305_140809_Parte1.xlsx"}, listFiles(t, cfg.OutputDir)); diff != "" {
		t.Errorf("output dir mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSameSecondKeepsEveryBackup(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)
	writeWorkbook(t, cfg.InputPath(), sampleRows(3))

	for i := 0; i < 3; i++ {
		if _, err := Run(context.Background(), cfg); err != nil {
			t.Fatalf("Run %d: %v", i+1, err)
		}
	}

	part := "report_20240305_140709_Parte1.xlsx"
	for _, name := range []string{"backup_20240305_140709", "backup_20240305_140709_2"} {
		if diff := cmp.Diff([]string{part}, listFiles(t, filepath.Join(cfg.OutputDir, name))); diff != "" {
			t.Errorf("%s contents mismatch (-want +got):\n%s", name, diff)
		}
	}
	if diff := cmp.Diff([]string{LockFileName, part}, listFiles(t, cfg.OutputDir)); diff != "" {
		t.Errorf("output dir mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMissingInput(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)

	_, err := Run(context.Background(), cfg)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}

	for _, name := range listFiles(t, cfg.OutputDir) {
		if filepath.Ext(name) == ".xlsx" {
			t.Errorf("unexpected output file %s", name)
		}
	}
	if _, err := os.Stat(cfg.InputDir); err != nil {
		t.Errorf("expected input dir to be created: %v", err)
	}
}

func TestRunInvalidConfigTouchesNothing(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)
	cfg.MaxRows = 0

	if _, err := Run(context.Background(), cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Errorf("output dir should not exist, stat err = %v", err)
	}
}

func TestRunDryRun(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)
	cfg.DryRun = true
	writeWorkbook(t, cfg.InputPath(), sampleRows(25))

	result, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.DryRun {
		t.Error("expected DryRun in result")
	}
	if len(result.Plan) != 3 || len(result.Outputs) != 0 {
		t.Errorf("expected 3 planned and 0 written parts, got %d and %d", len(result.Plan), len(result.Outputs))
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Errorf("dry run created the output dir, stat err = %v", err)
	}
}

func TestRunLockedOutputDir(t *testing.T) {
	root := t.TempDir()
	cfg := runConfig(root)
	writeWorkbook(t, cfg.InputPath(), sampleRows(3))
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	held := flock.New(filepath.Join(cfg.OutputDir, LockFileName))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock = %v, %v", ok, err)
	}
	defer held.Unlock()

	if _, err := Run(context.Background(), cfg); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if diff := cmp.Diff([]string{LockFileName}, listFiles(t, cfg.OutputDir)); diff != "" {
		t.Errorf("output dir changed while locked (-want +got):\n%s", diff)
	}
}

func TestRunConfigInputPath(t *testing.T) {
	cfg := RunConfig{InputDir: "/data"}
	if got := cfg.InputPath(); got != filepath.Join("/data", DefaultInputFile) {
		t.Errorf("InputPath = %q", got)
	}
	cfg.InputFile = "sales.xlsx"
	if got := cfg.InputPath(); got != filepath.Join("/data", "sales.xlsx") {
		t.Errorf("InputPath = %q", got)
	}
}
