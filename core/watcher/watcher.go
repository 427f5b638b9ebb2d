package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/tristendillon/relscan/core/logger"
)

const DefaultDebounce = 500 * time.Millisecond

// FileWatcher reruns OnChange after source files under RootDir stop changing
// for Debounce. Runs never overlap.
type FileWatcher struct {
	Watcher   *fsnotify.Watcher
	RootDir   string
	Extension string
	Debounce  time.Duration
	OnChange  func() error

	exclude       []glob.Glob
	debounceTimer *time.Timer
	mu            sync.Mutex
	runMu         sync.Mutex
}

func NewFileWatcher(rootDir, extension string, excludePatterns []string) (*FileWatcher, error) {
	var exclude []glob.Glob
	for _, pattern := range excludePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		exclude = append(exclude, g)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcher{
		Watcher:   w,
		RootDir:   rootDir,
		Extension: extension,
		Debounce:  DefaultDebounce,
		OnChange:  func() error { return fmt.Errorf("OnChange not set") },
		exclude:   exclude,
	}, nil
}

// Watch blocks until ctx is cancelled or the fsnotify channels close.
func (fw *FileWatcher) Watch(ctx context.Context) error {
	if err := fw.addWatchersRecursively(fw.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if fw.shouldExcludePath(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					if err := fw.addWatchersRecursively(event.Name); err != nil {
						logger.Warn("Failed to watch %s: %v", event.Name, err)
					}
					fw.debounceRun()
					continue
				}
			}

			if fw.isRelevant(event) {
				fw.debounceRun()
			}

		case err, ok := <-fw.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

// isRelevant keeps source file events plus removals and renames, which may be
// whole directories of source files.
func (fw *FileWatcher) isRelevant(event fsnotify.Event) bool {
	if strings.HasSuffix(event.Name, fw.Extension) {
		return event.Op != fsnotify.Chmod
	}
	return event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (fw *FileWatcher) debounceRun() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(fw.Debounce, func() {
		fw.runMu.Lock()
		defer fw.runMu.Unlock()

		logger.Debug("File changes detected, rescanning...")
		if err := fw.OnChange(); err != nil {
			logger.Error("Rescan failed: %v", err)
		}
	})
}

func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.mu.Unlock()

	// wait for an in-flight rescan
	fw.runMu.Lock()
	defer fw.runMu.Unlock()

	return fw.Watcher.Close()
}

func (fw *FileWatcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(fw.RootDir, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(filepath.Clean(relPath))
	if relPath == "." {
		return false
	}

	for _, g := range fw.exclude {
		if g.Match(relPath) || g.Match(relPath+"/**") {
			return true
		}
	}
	return false
}

func (fw *FileWatcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if fw.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.Watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
