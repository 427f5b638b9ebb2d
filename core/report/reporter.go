package report

import (
	"fmt"
	"io"

	"github.com/tristendillon/relscan/core/config"
	"github.com/tristendillon/relscan/core/models"
)

// Reporter receives every reportable file in scan order. Flush is called once
// after the last file.
type Reporter interface {
	Report(file *models.FileReport) error
	Flush(summary *models.ScanSummary) error
}

func New(format string, out io.Writer) (Reporter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextReporter(out), nil
	case config.FormatYAML:
		return NewYAMLReporter(out), nil
	case config.FormatTable:
		return NewTableReporter(out), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownFormat, format)
	}
}
