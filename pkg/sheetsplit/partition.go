package sheetsplit

import "github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"

// PlanPartitions divides data rows 2..totalRows into consecutive partitions
// of at most maxRows rows. Only the last partition may be shorter. It returns
// nil when there are no data rows or maxRows is not positive.
func PlanPartitions(totalRows, maxRows int) []models.Partition {
	if totalRows < 2 || maxRows <= 0 {
		return nil
	}

	dataRows := totalRows - 1
	parts := make([]models.Partition, 0, (dataRows+maxRows-1)/maxRows)
	index := 1
	for start := 2; start <= totalRows; start += maxRows {
		count := maxRows
		if remaining := totalRows - start + 1; remaining < count {
			count = remaining
		}
		parts = append(parts, models.Partition{
			Index:    index,
			StartRow: start,
			RowCount: count,
		})
		index++
	}
	return parts
}
