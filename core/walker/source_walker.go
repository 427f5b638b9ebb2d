package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/tristendillon/relscan/core/logger"
)

type SourceWalker interface {
	Walk(root string) ([]string, error)
}

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

type SourceWalkerImpl struct {
	Extension string
	exclude   []compiledPattern
}

// NewSourceWalker builds a walker matching files ending in extension. Exclude
// patterns are globs over the slash-separated path relative to the walk root.
func NewSourceWalker(extension string, exclude []string) (*SourceWalkerImpl, error) {
	w := &SourceWalkerImpl{Extension: extension}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		w.exclude = append(w.exclude, compiledPattern{pattern: pattern, glob: g})
	}

	return w, nil
}

// Walk returns every regular file under root whose name ends with the
// extension, in lexical walk order. The first filesystem error aborts the
// walk, including a missing root.
func (w *SourceWalkerImpl) Walk(root string) ([]string, error) {
	discovered := []string{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && w.isExcluded(relPath) {
				logger.Debug("Excluding directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(info.Name(), w.Extension) {
			return nil
		}

		regular, err := isRegularFile(path, info)
		if err != nil {
			return err
		}
		if !regular {
			return nil
		}

		if w.isExcluded(relPath) {
			logger.Debug("Excluding file: %s", relPath)
			return nil
		}

		discovered = append(discovered, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Discovered %d %s files under %s", len(discovered), w.Extension, root)
	return discovered, nil
}

// isRegularFile follows symlinks so a link to a source file still counts and
// a link to a directory does not.
func isRegularFile(path string, info os.FileInfo) (bool, error) {
	if info.Mode().IsRegular() {
		return true, nil
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false, nil
	}
	target, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return target.Mode().IsRegular(), nil
}

func (w *SourceWalkerImpl) isExcluded(relPath string) bool {
	for _, cp := range w.exclude {
		if cp.glob.Match(relPath) || cp.glob.Match(relPath+"/**") {
			return true
		}
	}

	// "**/x" should also match "x" at the root.
	if !strings.Contains(relPath, "/") {
		for _, cp := range w.exclude {
			if !strings.HasPrefix(cp.pattern, "**/") {
				continue
			}
			if g, err := glob.Compile(strings.TrimPrefix(cp.pattern, "**/"), '/'); err == nil && g.Match(relPath) {
				return true
			}
		}
	}

	return false
}
