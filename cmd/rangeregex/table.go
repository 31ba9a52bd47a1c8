package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// column is one table column: its header and cell alignment.
type column struct {
	title string
	align text.Align
}

var (
	branchColumns = []column{
		{"#", text.AlignRight},
		{"Sign", text.AlignLeft},
		{"Arm", text.AlignLeft},
		{"Spans", text.AlignLeft},
		{"Count", text.AlignRight},
	}
	mismatchColumns = []column{
		{"Value", text.AlignRight},
		{"In range", text.AlignLeft},
		{"Matched", text.AlignLeft},
	}
)

// renderTable draws rows under cols in the rounded style. Short rows are
// padded with empty cells.
func renderTable(cols []column, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(cols))
	configs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: c.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
