package sheetsplit

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrEmptySheet indicates the worksheet has no usable extent.
var ErrEmptySheet = errors.New("sheet is empty or could not be loaded")

// ErrSheetNotFound indicates the requested worksheet is not in the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidConfig indicates a missing or malformed setting.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrLocked indicates another run holds the output directory lock.
var ErrLocked = errors.New("output directory is locked by another run")

// OpError represents a filesystem or workbook operation failure.
type OpError struct {
	Op   string // "mkdir", "stat", "backup", "move", "open", "read", "write", "save", "lock"
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError creates a new OpError.
func NewOpError(op, path string, err error) *OpError {
	return &OpError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
