package models

type RelationKind string

const (
	Implements RelationKind = "implements"
	Extends    RelationKind = "extends"
)

func (k RelationKind) Keyword() string {
	return string(k)
}

// Relation is one class declaration line: the declaring class and the names
// listed after the relation keyword.
type Relation struct {
	Class   string   `yaml:"class"`
	Related []string `yaml:"related"`
}
