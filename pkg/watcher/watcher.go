package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when none is configured
const DefaultDebounce = 250 * time.Millisecond

// FileWatcher watches files for changes and reports each burst of
// changes once, after the debounce period passed without further events.
//
// Parent directories are watched rather than the files themselves so that
// editors replacing a file through a rename are still noticed.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]struct{}
	timer *time.Timer
}

// NewFileWatcher creates a new file watcher. A nil logger uses slog.Default
// and a non-positive debounce uses DefaultDebounce.
func NewFileWatcher(debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		debounce: debounce,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}, nil
}

// Watch adds files to the watch list
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if _, ok := fw.dirs[dir]; !ok {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = struct{}{}
		}
		fw.files[absPath] = struct{}{}
		fw.logger.Debug("watching file", "path", absPath)
	}

	return nil
}

// Files returns the watched files
func (fw *FileWatcher) Files() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	files := make([]string, 0, len(fw.files))
	for f := range fw.files {
		files = append(files, f)
	}
	return files
}

// Run delivers debounced changes to onChange until ctx is done, then
// closes the watcher. onChange receives the last changed path of a burst
// and is never called concurrently with itself.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	defer fw.watcher.Close()

	fire := make(chan string, 1)

	for {
		select {
		case <-ctx.Done():
			fw.stopTimer()
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !fw.isWatched(event.Name) {
				continue
			}
			path := filepath.Clean(event.Name)
			fw.schedule(func() {
				select {
				case fire <- path:
				default:
				}
			})

		case path := <-fire:
			fw.logger.Debug("file changed", "path", path)
			onChange(path)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) isWatched(path string) bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	_, ok := fw.files[filepath.Clean(path)]
	return ok
}

// schedule restarts the debounce timer
func (fw *FileWatcher) schedule(f func()) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, f)
}

func (fw *FileWatcher) stopTimer() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
}

// Close stops the watcher without running it
func (fw *FileWatcher) Close() error {
	fw.stopTimer()
	return fw.watcher.Close()
}
