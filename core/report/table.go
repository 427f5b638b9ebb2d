package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tristendillon/relscan/core/models"
)

// TableReporter renders one row per implementing class, followed by a footer
// with scan totals.
type TableReporter struct {
	out  io.Writer
	rows []table.Row
}

func NewTableReporter(out io.Writer) *TableReporter {
	return &TableReporter{out: out}
}

func (r *TableReporter) Report(file *models.FileReport) error {
	extends := map[string][]string{}
	for _, rel := range file.Extends {
		extends[rel.Class] = append(extends[rel.Class], rel.Related...)
	}

	for _, rel := range file.Implementations {
		r.rows = append(r.rows, table.Row{
			file.Path,
			rel.Class,
			strings.Join(rel.Related, ", "),
			strings.Join(extends[rel.Class], ", "),
			len(file.Imports),
		})
	}
	return nil
}

func (r *TableReporter) Flush(summary *models.ScanSummary) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"File", "Class", "Implements", "Extends", "Imports"})
	tw.AppendRows(r.rows)
	if summary != nil {
		tw.AppendFooter(table.Row{
			fmt.Sprintf("%d/%d files", summary.FilesReported, summary.FilesScanned),
			fmt.Sprintf("%d classes", len(r.rows)),
			"", "", "",
		})
	}
	tw.Render()
	return nil
}
