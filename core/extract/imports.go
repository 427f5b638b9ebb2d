package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const importKeyword = "import"

// ExtractImports collects the names listed in single-line grouped imports
// such as `import { Foo, Bar } from "./foo"`.
//
// This is a heuristic, not a parser. A line qualifies when it starts with
// "import" and contains both braces; the names are whatever sits between the
// first "{" and the next "}". Unless includeFunctions is set, only names
// starting with an uppercase letter are kept, on the assumption that those
// are types or classes. Multi-line, default and namespace imports are not
// seen at all.
func ExtractImports(lines []string, includeFunctions bool) []string {
	imports := []string{}
	for _, line := range lines {
		if !strings.HasPrefix(line, importKeyword) ||
			!strings.Contains(line, "{") || !strings.Contains(line, "}") {
			continue
		}

		_, afterBrace, _ := strings.Cut(line, "{")
		group, _, _ := strings.Cut(afterBrace, "}")

		for _, name := range strings.Split(group, ",") {
			name = strings.TrimSpace(name)
			if includeFunctions || startsUpper(name) {
				imports = append(imports, name)
			}
		}
	}
	return imports
}

func startsUpper(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
