// Package watcher reruns a callback when watched files change.
package watcher

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches files and directory trees for changes.
type Watcher struct {
	paths    []string
	onChange func(path string)
	debounce time.Duration

	mu      sync.Mutex // serializes onChange
	onReady func()
}

// New creates a watcher for paths. Directories are watched recursively.
func New(onChange func(path string), paths ...string) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch blocks until the context is cancelled or the watcher fails.
// Bursts of events are coalesced into one onChange call.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	files := make(map[string]bool)
	var roots []string

	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := addTree(fw, abs); err != nil {
				return err
			}
			roots = append(roots, abs)
		} else {
			// Watch the parent so replaced files (editor saves) are seen.
			if err := fw.Add(filepath.Dir(abs)); err != nil {
				return err
			}
			files[abs] = true
		}
		log.Printf("Watching %s for changes", abs)
	}

	if w.onReady != nil {
		w.onReady()
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			inTree := underAny(name, roots)
			if !files[name] && !inTree {
				continue
			}
			if event.Op&fsnotify.Chmod == event.Op {
				continue
			}

			if inTree && event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(name); err == nil && info.IsDir() {
					if err := addTree(fw, name); err != nil {
						log.Printf("Failed to watch %s: %v", name, err)
					}
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				w.mu.Lock()
				defer w.mu.Unlock()
				if ctx.Err() != nil {
					return
				}
				log.Printf("File changed: %s", name)
				w.onChange(name)
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(p)
		}
		return nil
	})
}

func underAny(p string, roots []string) bool {
	for _, r := range roots {
		if p == r || strings.HasPrefix(p, r+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
