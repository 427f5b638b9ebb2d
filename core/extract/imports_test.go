package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImports_TypeNamesOnly(t *testing.T) {
	t.Parallel()

	lines := []string{`import { Foo, bar, Baz } from 'x'`}
	assert.Equal(t, []string{"Foo", "Baz"}, ExtractImports(lines, false))
}

func TestExtractImports_IncludeFunctions(t *testing.T) {
	t.Parallel()

	lines := []string{`import { Foo, bar, Baz } from 'x'`}
	assert.Equal(t, []string{"Foo", "bar", "Baz"}, ExtractImports(lines, true))
}

func TestExtractImports_IgnoredLines(t *testing.T) {
	t.Parallel()

	lines := []string{
		`import Default from './default'`,
		`import * as ns from './ns'`,
		`import {`,
		`  Split,`,
		`} from './split'`,
		`  import { Indented } from './indented'`,
		`export { Reexported } from './re'`,
		`const x = { Foo: 1 }`,
		``,
	}
	assert.Empty(t, ExtractImports(lines, false))
	assert.Empty(t, ExtractImports(lines, true))
}

func TestExtractImports_OrderAndDuplicatesPreserved(t *testing.T) {
	t.Parallel()

	lines := []string{
		`import { Style, StyleableUIElement } from "../style";`,
		`let a = 1;`,
		`import { ReorderableRow, ReorderableRowContent } from "./reorderableRow";`,
		`import { Style } from "../style";`,
	}
	assert.Equal(t,
		[]string{"Style", "StyleableUIElement", "ReorderableRow", "ReorderableRowContent", "Style"},
		ExtractImports(lines, false))
}

func TestExtractImports_FirstBracePair(t *testing.T) {
	t.Parallel()

	lines := []string{`import { A, B } from './a'; const c = { D }`}
	assert.Equal(t, []string{"A", "B"}, ExtractImports(lines, false))
}

func TestExtractImports_EmptyPieces(t *testing.T) {
	t.Parallel()

	lines := []string{`import { A, , B, } from './a'`}
	assert.Equal(t, []string{"A", "B"}, ExtractImports(lines, false))
	assert.Equal(t, []string{"A", "", "B", ""}, ExtractImports(lines, true))
}

func TestExtractImports_TypeKeywordAndAliases(t *testing.T) {
	t.Parallel()

	// "type Foo" starts lowercase and "Bar as baz" starts uppercase; both are
	// known misclassifications of the uppercase heuristic.
	lines := []string{`import { type Foo, Bar as baz } from './x'`}
	assert.Equal(t, []string{"Bar as baz"}, ExtractImports(lines, false))
}

func TestExtractImports_UnicodeUppercase(t *testing.T) {
	t.Parallel()

	lines := []string{`import { Élan, ärger } from './u'`}
	assert.Equal(t, []string{"Élan"}, ExtractImports(lines, false))
}

func TestExtractImports_Idempotent(t *testing.T) {
	t.Parallel()

	lines := []string{`import { Foo, bar, Baz } from 'x'`, `import { Qux } from 'y'`}
	assert.Equal(t, ExtractImports(lines, false), ExtractImports(lines, false))
}
