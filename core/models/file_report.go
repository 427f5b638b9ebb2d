package models

type FileReport struct {
	Path            string     `yaml:"path"`
	Imports         []string   `yaml:"imports"`
	Implementations []Relation `yaml:"implements"`
	Extends         []Relation `yaml:"extends"`
}

// Reportable reports whether the file declares at least one implements
// relation. Files with only extends relations are not printed.
func (r *FileReport) Reportable() bool {
	return len(r.Implementations) > 0
}

type ScanSummary struct {
	FilesScanned  int
	FilesReported int
	BytesRead     int64
	Skipped       int
}
