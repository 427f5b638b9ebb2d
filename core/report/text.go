package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/tristendillon/relscan/core/models"
)

// TextReporter prints a four-line block per file, with lists rendered as
// bracketed literals:
//
//	src/colorSupplier.ts
//	IMPORT ['ColorSupplier']
//	IMPLEMENT [('ConstantColorSupplier', ['ColorSupplier'])]
//	EXTENDS []
type TextReporter struct {
	out io.Writer
}

func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{out: out}
}

func (r *TextReporter) Report(file *models.FileReport) error {
	_, err := fmt.Fprintf(r.out, "%s\nIMPORT %s\nIMPLEMENT %s\nEXTENDS %s\n\n",
		file.Path,
		formatNames(file.Imports),
		formatRelations(file.Implementations),
		formatRelations(file.Extends),
	)
	if err != nil {
		return fmt.Errorf("failed to write report for %s: %w", file.Path, err)
	}
	return nil
}

func (r *TextReporter) Flush(*models.ScanSummary) error {
	return nil
}

func formatNames(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quote(name)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func formatRelations(relations []models.Relation) string {
	parts := make([]string, len(relations))
	for i, rel := range relations {
		parts[i] = fmt.Sprintf("(%s, %s)", quote(rel.Class), formatNames(rel.Related))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// quote uses single quotes unless the name itself holds one.
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
