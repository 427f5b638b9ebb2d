package scanner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/tristendillon/relscan/core/config"
	"github.com/tristendillon/relscan/core/extract"
	"github.com/tristendillon/relscan/core/logger"
	"github.com/tristendillon/relscan/core/models"
	"github.com/tristendillon/relscan/core/report"
	"github.com/tristendillon/relscan/core/walker"
)

var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Scanner runs one sequential pass: discover, read, extract, report. Any error
// stops the pass; there is no per-file isolation.
type Scanner struct {
	Walker    walker.SourceWalker
	Extractor *extract.Extractor
	Reporter  report.Reporter
}

func New(cfg *config.Config, out io.Writer) (*Scanner, error) {
	w, err := walker.NewSourceWalker(cfg.Extension, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	reporter, err := report.New(cfg.Format, out)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		Walker: w,
		Extractor: extract.NewExtractor(extract.Options{
			IncludeFunctions: cfg.IncludeFunctions,
			SkipMalformed:    cfg.SkipMalformed,
		}),
		Reporter: reporter,
	}, nil
}

func (s *Scanner) Scan(root string) (*models.ScanSummary, error) {
	start := time.Now()

	files, err := s.Walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover source files: %w", err)
	}

	summary := &models.ScanSummary{}
	for _, path := range files {
		source, size, err := ReadSourceFile(path)
		if err != nil {
			return nil, err
		}
		summary.FilesScanned++
		summary.BytesRead += size

		fileReport, skipped, err := s.Extractor.Extract(*source)
		summary.Skipped += skipped
		if err != nil {
			return nil, err
		}

		if !fileReport.Reportable() {
			continue
		}

		if err := s.Reporter.Report(fileReport); err != nil {
			return nil, err
		}
		summary.FilesReported++
	}

	if err := s.Reporter.Flush(summary); err != nil {
		return nil, err
	}

	logger.Debug("Scanned %d files (%s) in %s, reported %d, skipped %d malformed lines",
		summary.FilesScanned, humanize.Bytes(uint64(summary.BytesRead)),
		time.Since(start).Round(time.Millisecond), summary.FilesReported, summary.Skipped)

	return summary, nil
}

// ReadSourceFile reads path once and splits it into lines without their
// terminators. The handle is closed before returning.
func ReadSourceFile(path string) (*models.SourceFile, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	return &models.SourceFile{Path: path, Lines: splitLines(string(data))}, int64(len(data)), nil
}

func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
