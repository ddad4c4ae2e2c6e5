package models

// Partition is a contiguous run of data rows assigned to one output file.
type Partition struct {
	// Index is the 1-based part number used in the output file name.
	Index int `json:"index"`
	// StartRow is the first sheet row (1-based) of the partition.
	StartRow int `json:"start_row"`
	// RowCount is the number of data rows in the partition.
	RowCount int `json:"row_count"`
}

// EndRow returns the last sheet row (1-based, inclusive) of the partition.
func (p Partition) EndRow() int {
	return p.StartRow + p.RowCount - 1
}
