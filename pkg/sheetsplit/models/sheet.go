// Package models defines data structures for spreadsheet splitting.
package models

// SheetData represents the used range of a single worksheet.
type SheetData struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows holds typed cell values in row order; Rows[0] is the header row.
	// Empty cells are nil.
	Rows [][]interface{} `json:"-"`
	// TotalRows is the number of rows in the used range, header included.
	TotalRows int `json:"total_rows"`
	// TotalColumns is the number of columns in the used range.
	TotalColumns int `json:"total_columns"`
}

// Header returns the header row, or nil when the sheet has no rows.
func (s *SheetData) Header() []interface{} {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns the number of rows after the header.
func (s *SheetData) DataRows() int {
	if s.TotalRows < 1 {
		return 0
	}
	return s.TotalRows - 1
}
