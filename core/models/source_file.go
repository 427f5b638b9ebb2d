package models

// SourceFile is a file read once for extraction and dropped afterwards.
type SourceFile struct {
	Path  string
	Lines []string
}
