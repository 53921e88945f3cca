// Package watch reports batches of changed files under a set of directories.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/imyousuf/CodeMetrics/internal/discover"
)

// DefaultDebounce is the quiet period that closes a batch of changes.
const DefaultDebounce = 200 * time.Millisecond

// Config holds configuration for the Watcher.
type Config struct {
	// Roots are the directories watched recursively.
	Roots []string
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	Verbose  bool
	Logger   func(format string, args ...any) // optional logger, defaults to fmt.Fprintf(os.Stderr, ...)
}

// Watcher watches directory trees for created and written files.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	verbose  bool
	log      func(format string, args ...any)

	mu     sync.Mutex
	closed bool
}

// New starts watching every root and the directories below it, skipping the
// directories a discover walk skips.
func New(cfg Config) (*Watcher, error) {
	logFn := cfg.Logger
	if logFn == nil {
		logFn = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{fsw: fsw, debounce: debounce, verbose: cfg.Verbose, log: logFn}
	for _, root := range cfg.Roots {
		if err := w.addRecursive(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("watch %s: %w", root, err)
			}
			return nil // skip inaccessible entries
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && discover.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run blocks until ctx is done, calling fn with the sorted set of files
// created or written since the previous call once no change has arrived for
// the debounce period. fn runs on the Run goroutine.
func (w *Watcher) Run(ctx context.Context, fn func(paths []string)) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
				continue
			}
			info, err := os.Stat(ev.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if ev.Op.Has(fsnotify.Create) && !discover.SkipDir(info.Name()) {
					if err := w.addRecursive(ev.Name); err != nil {
						w.log("watch: %v", err)
					}
				}
				continue
			}
			pending[filepath.Clean(ev.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log("watch: %v", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)
			if w.verbose {
				w.log("watch: %d changed files", len(paths))
			}
			fn(paths)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.fsw.Close()
}
