package report

import (
	"fmt"
	"io"

	"github.com/tristendillon/relscan/core/models"
	"gopkg.in/yaml.v3"
)

// YAMLReporter buffers every report and writes them as one YAML document on
// Flush.
type YAMLReporter struct {
	out   io.Writer
	files []*models.FileReport
}

func NewYAMLReporter(out io.Writer) *YAMLReporter {
	return &YAMLReporter{out: out}
}

func (r *YAMLReporter) Report(file *models.FileReport) error {
	r.files = append(r.files, file)
	return nil
}

func (r *YAMLReporter) Flush(*models.ScanSummary) error {
	doc := struct {
		Files []*models.FileReport `yaml:"files"`
	}{Files: r.files}
	if doc.Files == nil {
		doc.Files = []*models.FileReport{}
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml report: %w", err)
	}
	return enc.Close()
}
