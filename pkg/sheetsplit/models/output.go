package models

// OutputFile describes one written part file.
type OutputFile struct {
	// Path is the full path of the written workbook.
	Path string `json:"path"`
	// Partition is the slice of data rows the file holds.
	Partition Partition `json:"partition"`
	// Size is the file size in bytes after save.
	Size int64 `json:"size"`
}

// SplitResult holds the outcome of splitting one input workbook.
type SplitResult struct {
	// Sheet is the source worksheet extent.
	Sheet SheetData `json:"sheet"`
	// Outputs lists part files in write order. On failure it holds the
	// parts written before the error.
	Outputs []OutputFile `json:"outputs"`
}

// Backup describes a backup rotation of previous outputs.
type Backup struct {
	// Dir is the backup directory created under the output directory.
	Dir string `json:"dir"`
	// Files are the destination paths of the moved files.
	Files []string `json:"files"`
}
