package sheetsplit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PrepareDirs creates the input and output directories when absent.
func PrepareDirs(inputDir, outputDir string) error {
	for _, dir := range []string{inputDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewOpError("mkdir", dir, err)
		}
	}
	return nil
}

// ValidateInput checks that the input workbook exists and is a regular file.
func ValidateInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return NewOpError("stat", path, err)
	}
	if info.IsDir() {
		return NewOpError("stat", path, errors.New("is a directory"))
	}
	return nil
}
