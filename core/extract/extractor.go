package extract

import (
	"fmt"

	"github.com/tristendillon/relscan/core/logger"
	"github.com/tristendillon/relscan/core/models"
)

type Options struct {
	IncludeFunctions bool
	// SkipMalformed turns a malformed class line into a warning instead of
	// aborting the file.
	SkipMalformed bool
}

// Extractor runs the import and both relation passes over one file. It holds
// no state between files.
type Extractor struct {
	opts Options
}

func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Extract returns the report for file and the number of malformed lines
// skipped while building it.
func (e *Extractor) Extract(file models.SourceFile) (*models.FileReport, int, error) {
	skipped := 0
	var onMalformed func(*MalformedLineError)
	if e.opts.SkipMalformed {
		onMalformed = func(err *MalformedLineError) {
			skipped++
			logger.Warn("%s: skipping %v", file.Path, err)
		}
	}

	implementations, err := extractRelations(file.Lines, models.Implements, onMalformed)
	if err != nil {
		return nil, skipped, fmt.Errorf("failed to extract implementations from %s: %w", file.Path, err)
	}

	extends, err := extractRelations(file.Lines, models.Extends, onMalformed)
	if err != nil {
		return nil, skipped, fmt.Errorf("failed to extract extends from %s: %w", file.Path, err)
	}

	report := &models.FileReport{
		Path:            file.Path,
		Imports:         ExtractImports(file.Lines, e.opts.IncludeFunctions),
		Implementations: implementations,
		Extends:         extends,
	}
	logger.Debug("Extracted %s: %d imports, %d implements, %d extends",
		file.Path, len(report.Imports), len(implementations), len(extends))

	return report, skipped, nil
}
