package sheetsplit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/parser"
)

var fixedTime = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

var testHeader = []interface{}{"id", "name", "score", "active"}

// sampleRows returns the header followed by n data rows of mixed types.
func sampleRows(n int) [][]interface{} {
	rows := [][]interface{}{testHeader}
	for i := 1; i <= n; i++ {
		rows = append(rows, []interface{}{
			int64(i),
			fmt.Sprintf("name-%d", i),
			float64(i) + 0.5,
			i%2 == 0,
		})
	}
	return rows
}

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		values := row
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

func readWorkbook(t *testing.T, path string) [][]interface{} {
	t.Helper()

	sheet, err := parser.ReadSheet(path, "")
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if sheet.Name != OutputSheetName {
		t.Fatalf("expected sheet %q in %s, got %q", OutputSheetName, path, sheet.Name)
	}
	return sheet.Rows
}

// listFiles returns the names of regular files directly inside dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
