package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tristendillon/relscan/core/config"
	"github.com/tristendillon/relscan/core/models"
)

var sample = &models.FileReport{
	Path:    "src/colorSupplier.ts",
	Imports: []string{"ColorSupplier", "Config"},
	Implementations: []models.Relation{
		{Class: "ConstantColorSupplier", Related: []string{"ColorSupplier"}},
		{Class: "CountingColorSupplier", Related: []string{"ColorSupplier", "Resettable"}},
	},
	Extends: []models.Relation{
		{Class: "CountingColorSupplier", Related: []string{"BaseSupplier"}},
	},
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewTextReporter(&buf)
	require.NoError(t, r.Report(sample))
	require.NoError(t, r.Flush(&models.ScanSummary{}))

	want := "src/colorSupplier.ts\n" +
		"IMPORT ['ColorSupplier', 'Config']\n" +
		"IMPLEMENT [('ConstantColorSupplier', ['ColorSupplier']), ('CountingColorSupplier', ['ColorSupplier', 'Resettable'])]\n" +
		"EXTENDS [('CountingColorSupplier', ['BaseSupplier'])]\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_EmptyLists(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewTextReporter(&buf)
	require.NoError(t, r.Report(&models.FileReport{
		Path:            "src/a.ts",
		Implementations: []models.Relation{{Class: "A", Related: []string{"B"}}},
	}))

	assert.Equal(t, "src/a.ts\nIMPORT []\nIMPLEMENT [('A', ['B'])]\nEXTENDS []\n\n", buf.String())
}

func TestQuote(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "'Foo'", quote("Foo"))
	assert.Equal(t, `"it's"`, quote("it's"))
	assert.Equal(t, `'a\'b"c'`, quote(`a'b"c`))
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewYAMLReporter(&buf)
	require.NoError(t, r.Report(sample))
	require.NoError(t, r.Flush(&models.ScanSummary{FilesScanned: 3, FilesReported: 1}))

	var doc struct {
		Files []models.FileReport `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Files, 1)
	assert.Equal(t, *sample, doc.Files[0])
}

func TestYAMLReporter_NoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewYAMLReporter(&buf)
	require.NoError(t, r.Flush(&models.ScanSummary{}))
	assert.Equal(t, "files: []\n", buf.String())
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewTableReporter(&buf)
	require.NoError(t, r.Report(sample))
	require.NoError(t, r.Flush(&models.ScanSummary{FilesScanned: 4, FilesReported: 1}))

	out := buf.String()
	assert.Contains(t, out, "CountingColorSupplier")
	assert.Contains(t, out, "ColorSupplier, Resettable")
	assert.Contains(t, out, "BaseSupplier")
	assert.Contains(t, out, "1/4 files")
	assert.Contains(t, out, "2 classes")
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	for format, want := range map[string]Reporter{
		config.FormatText:  &TextReporter{},
		"":                 &TextReporter{},
		config.FormatYAML:  &YAMLReporter{},
		config.FormatTable: &TableReporter{},
	} {
		r, err := New(format, &buf)
		require.NoError(t, err, format)
		assert.IsType(t, want, r, format)
	}

	_, err := New("json", &buf)
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}
