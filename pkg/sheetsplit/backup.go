package sheetsplit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"
)

// BackupDirName returns the backup directory name for the given instant.
func BackupDirName(ts time.Time) string {
	return "backup_" + ts.Format(TimestampLayout)
}

// RotateBackups moves spreadsheet files found directly inside outputDir into
// a new backup_YYYYMMDD_HHmmss subdirectory. When that directory already
// exists, a numeric suffix (_2, _3, ...) picks a fresh one, so earlier
// backups are never written into. Extensions are matched case-insensitively;
// an empty list uses DefaultBackupExtensions. It returns nil without creating
// anything when there is nothing to move.
func RotateBackups(outputDir string, ts time.Time, exts []string) (*models.Backup, error) {
	if len(exts) == 0 {
		exts = DefaultBackupExtensions
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, NewOpError("backup", outputDir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if hasExtension(entry.Name(), exts) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	backupDir, err := createBackupDir(outputDir, BackupDirName(ts))
	if err != nil {
		return nil, err
	}

	backup := &models.Backup{Dir: backupDir}
	for _, name := range names {
		src := filepath.Join(outputDir, name)
		dst := filepath.Join(backupDir, name)
		if err := os.Rename(src, dst); err != nil {
			return backup, NewOpError("move", src, err)
		}
		backup.Files = append(backup.Files, dst)
	}
	return backup, nil
}

// maxBackupDirsPerStamp bounds the suffix search for one timestamp.
const maxBackupDirsPerStamp = 1000

// createBackupDir creates outputDir/base, or the first free base_N.
func createBackupDir(outputDir, base string) (string, error) {
	for n := 1; n <= maxBackupDirsPerStamp; n++ {
		name := base
		if n > 1 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		dir := filepath.Join(outputDir, name)
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", NewOpError("mkdir", dir, err)
		}
	}
	return "", NewOpError("backup", filepath.Join(outputDir, base), fs.ErrExist)
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
