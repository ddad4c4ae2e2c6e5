package main

import (
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit"
	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var (
	planHeaders   = []string{"Part", "First row", "Last row", "Rows", "File"}
	planAligns    = []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft}
	outputHeaders = []string{"Part", "First row", "Last row", "Rows", "Size", "File"}
	outputAligns  = []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}
)

func planRows(plan []models.Partition, prefix, stamp string) [][]string {
	rows := make([][]string, 0, len(plan))
	for _, p := range plan {
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			strconv.Itoa(p.StartRow),
			strconv.Itoa(p.EndRow()),
			humanize.Comma(int64(p.RowCount)),
			sheetsplit.PartFileName(prefix, stamp, p.Index),
		})
	}
	return rows
}

func outputRows(outputs []models.OutputFile) [][]string {
	rows := make([][]string, 0, len(outputs))
	for _, out := range outputs {
		p := out.Partition
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			strconv.Itoa(p.StartRow),
			strconv.Itoa(p.EndRow()),
			humanize.Comma(int64(p.RowCount)),
			humanize.Bytes(uint64(out.Size)),
			filepath.Base(out.Path),
		})
	}
	return rows
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
