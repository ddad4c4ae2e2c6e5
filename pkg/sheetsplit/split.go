package sheetsplit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"
	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/parser"
	"github.com/xuri/excelize/v2"
)

// PartFileName returns the name of the index-th part file of a run.
func PartFileName(prefix, stamp string, index int) string {
	return fmt.Sprintf("%s_%s_Parte%d.xlsx", prefix, stamp, index)
}

// Split reads one worksheet of inputPath and writes it out as part files of
// at most opts.MaxRows data rows, each starting with the header row.
// Parts already written stay on disk when a later part fails.
func Split(ctx context.Context, inputPath string, opts SplitOptions) (*models.SplitResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	sheet, err := LoadSheet(inputPath, opts.Sheet)
	if err != nil {
		return nil, err
	}

	return WriteParts(ctx, sheet, opts)
}

// LoadSheet reads a worksheet and rejects sheets without a usable extent.
func LoadSheet(inputPath, sheetName string) (*models.SheetData, error) {
	sheet, err := parser.ReadSheet(inputPath, sheetName)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			return nil, err
		}
		return nil, NewOpError("read", inputPath, err)
	}
	if sheet.TotalRows == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySheet, sheet.Name)
	}
	return sheet, nil
}

// WriteParts writes the partitions of an already loaded sheet. Each part is
// saved and closed before the next one is built.
func WriteParts(ctx context.Context, sheet *models.SheetData, opts SplitOptions) (*models.SplitResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	logger := loggerOrDiscard(opts.Logger)
	stamp := opts.Timestamp.Format(TimestampLayout)
	result := &models.SplitResult{Sheet: sheetSummary(sheet)}

	for _, part := range PlanPartitions(sheet.TotalRows, opts.MaxRows) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		path := filepath.Join(opts.OutputDir, PartFileName(opts.Prefix, stamp, part.Index))
		out, err := writePart(path, sheet, part)
		if err != nil {
			return result, err
		}
		result.Outputs = append(result.Outputs, out)

		logger.Debug("part written",
			"part", part.Index,
			"first_row", part.StartRow,
			"rows", part.RowCount,
			"path", path,
		)
	}

	return result, nil
}

func writePart(path string, sheet *models.SheetData, part models.Partition) (out models.OutputFile, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = NewOpError("save", path, cerr)
		}
	}()

	sw, err := f.NewStreamWriter(OutputSheetName)
	if err != nil {
		return out, NewOpError("write", path, err)
	}

	if err := sw.SetRow("A1", sheet.Header()); err != nil {
		return out, NewOpError("write", path, err)
	}
	for i := 0; i < part.RowCount; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return out, NewOpError("write", path, err)
		}
		if err := sw.SetRow(cell, sheet.Rows[part.StartRow-1+i]); err != nil {
			return out, NewOpError("write", path, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return out, NewOpError("write", path, err)
	}

	if err := f.SaveAs(path); err != nil {
		return out, NewOpError("save", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return out, NewOpError("stat", path, err)
	}

	return models.OutputFile{
		Path:      path,
		Partition: part,
		Size:      info.Size(),
	}, nil
}

func sheetSummary(sheet *models.SheetData) models.SheetData {
	summary := *sheet
	summary.Rows = nil
	return summary
}
