package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tristendillon/relscan/core/models"
)

const classKeyword = "class"

var ErrClassTokenNotFound = errors.New("no class name after a standalone \"class\" token")

// MalformedLineError reports a line that passed the substring test for
// "class" and the relation keyword but has no usable class token, e.g.
// `new (class implements Foo {` or a comment mentioning a subclass.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, ErrClassTokenNotFound, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrClassTokenNotFound
}

// ExtractRelations returns one Relation per line containing both "class" and
// the kind's keyword, in line order.
//
// The class name is the token after the first standalone "class" token when
// the line is split on single spaces. The related names are everything after
// the first occurrence of the keyword, split on commas; a "{" in the last name
// and everything after it is dropped. The first malformed line aborts
// extraction with a *MalformedLineError.
func ExtractRelations(lines []string, kind models.RelationKind) ([]models.Relation, error) {
	return extractRelations(lines, kind, nil)
}

func ExtractImplementations(lines []string) ([]models.Relation, error) {
	return ExtractRelations(lines, models.Implements)
}

func ExtractExtends(lines []string) ([]models.Relation, error) {
	return ExtractRelations(lines, models.Extends)
}

// extractRelations skips malformed lines through onMalformed when it is set,
// and fails on the first one otherwise.
func extractRelations(lines []string, kind models.RelationKind, onMalformed func(*MalformedLineError)) ([]models.Relation, error) {
	keyword := kind.Keyword()
	relations := []models.Relation{}

	for i, line := range lines {
		if !strings.Contains(line, classKeyword) || !strings.Contains(line, keyword) {
			continue
		}

		className, ok := classNameOf(line)
		if !ok {
			malformed := &MalformedLineError{Line: i + 1, Text: line}
			if onMalformed == nil {
				return nil, malformed
			}
			onMalformed(malformed)
			continue
		}

		relations = append(relations, models.Relation{
			Class:   className,
			Related: relatedNames(line, keyword),
		})
	}

	return relations, nil
}

func classNameOf(line string) (string, bool) {
	segments := strings.Split(line, " ")
	for i, segment := range segments {
		if segment != classKeyword {
			continue
		}
		if i+1 >= len(segments) {
			return "", false
		}
		return segments[i+1], true
	}
	return "", false
}

func relatedNames(line, keyword string) []string {
	_, rest, _ := strings.Cut(line, keyword)

	names := strings.Split(rest, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	last := len(names) - 1
	if before, _, found := strings.Cut(names[last], "{"); found {
		names[last] = strings.TrimSpace(before)
	}
	return names
}
