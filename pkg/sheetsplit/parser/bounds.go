package parser

// usedRange returns the extent of the non-empty cells anchored at A1:
// the 1-based index of the last non-empty row and of the last non-empty
// column. Both are zero when every cell is empty.
func usedRange(rows [][]string) (totalRows, totalCols int) {
	maxRow, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return maxRow + 1, maxCol + 1
}
