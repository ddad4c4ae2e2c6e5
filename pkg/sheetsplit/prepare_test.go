package sheetsplit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPrepareDirs(t *testing.T) {
	root := t.TempDir()
	inputDir := filepath.Join(root, "in", "nested")
	outputDir := filepath.Join(root, "out")

	for i := 0; i < 2; i++ {
		if err := PrepareDirs(inputDir, outputDir); err != nil {
			t.Fatalf("PrepareDirs call %d: %v", i+1, err)
		}
	}

	for _, dir := range []string{inputDir, outputDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", dir)
		}
	}
}

func TestPrepareDirsFailsOnFile(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	touch(t, blocker)

	err := PrepareDirs(filepath.Join(blocker, "in"), filepath.Join(root, "out"))
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError, got %v", err)
	}
	if opErr.Op != "mkdir" {
		t.Errorf("expected mkdir op, got %q", opErr.Op)
	}
}

func TestValidateInput(t *testing.T) {
	root := t.TempDir()

	missing := filepath.Join(root, "input.xlsx")
	if err := ValidateInput(missing); !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}

	touch(t, missing)
	if err := ValidateInput(missing); err != nil {
		t.Fatalf("expected no error for existing file, got %v", err)
	}

	var opErr *OpError
	if err := ValidateInput(root); !errors.As(err, &opErr) {
		t.Fatalf("expected *OpError for directory, got %v", err)
	}
}
