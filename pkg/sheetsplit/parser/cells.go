// Package parser provides worksheet reading utilities.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet reads the used range of a worksheet with typed cell values.
// An empty sheetName selects the first sheet. A sheet without any non-empty
// cell yields TotalRows == 0.
func ReadSheet(xlsxPath, sheetName string) (*models.SheetData, error) {
	name, raw, err := readRawRows(xlsxPath, sheetName)
	if err != nil {
		return nil, err
	}

	totalRows, totalCols := usedRange(raw)
	sheet := &models.SheetData{
		Name:         name,
		TotalRows:    totalRows,
		TotalColumns: totalCols,
	}
	if totalRows == 0 {
		return sheet, nil
	}

	types, err := ScanCellTypes(xlsxPath, name)
	if err != nil {
		return nil, fmt.Errorf("scan cell types: %w", err)
	}

	sheet.Rows = make([][]interface{}, totalRows)
	for rowIdx := 0; rowIdx < totalRows; rowIdx++ {
		rawRow := raw[rowIdx]
		width := len(rawRow)
		if width > totalCols {
			width = totalCols
		}
		row := make([]interface{}, width)
		for colIdx := 0; colIdx < width; colIdx++ {
			row[colIdx] = typedValue(rawRow[colIdx], types.Get(rowIdx+1, colIdx+1))
		}
		sheet.Rows[rowIdx] = row
	}

	return sheet, nil
}

// readRawRows loads unformatted cell text and releases the workbook before returning.
func readRawRows(xlsxPath, sheetName string) (string, [][]string, error) {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	name, err := resolveSheetName(f, sheetName)
	if err != nil {
		return "", nil, err
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return "", nil, err
	}
	return name, rows, nil
}

func resolveSheetName(f *excelize.File, sheetName string) (string, error) {
	sheets := f.GetSheetList()
	if sheetName == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, name := range sheets {
		if strings.EqualFold(name, sheetName) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
}

// typedValue converts raw cell text to a Go value according to the cell type
// attribute. Empty text yields nil.
func typedValue(raw, cellType string) interface{} {
	if raw == "" {
		return nil
	}
	switch cellType {
	case "b":
		return raw == "1" || strings.EqualFold(raw, "true")
	case "", "n":
		return parseValue(raw)
	case "d":
		return parseDate(raw)
	default:
		// s, inlineStr, str, e
		return raw
	}
}

// isoDateLayouts are the ISO 8601 forms found in t="d" cells.
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate returns a time.Time for an ISO 8601 date cell, or the raw text
// when it matches none of the known layouts.
func parseDate(s string) interface{} {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return s
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
