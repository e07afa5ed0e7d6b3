package files

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reports changes to source files below a set of paths. Bursts of
// events are coalesced into a single notification.
type Watcher struct {
	w        *fsnotify.Watcher
	Debounce time.Duration
}

func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if err := addTree(w, path); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	return &Watcher{w: w, Debounce: 100 * time.Millisecond}, nil
}

// addTree watches path and, for directories, every directory below it. Files
// are watched through their parent so editors that replace on save still work.
func addTree(w *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "watch %v", path)
	}
	if !info.IsDir() {
		return errors.Wrapf(w.Add(filepath.Dir(path)), "watch %v", path)
	}
	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return errors.Wrapf(w.Add(p), "watch %v", p)
		}
		return nil
	})
}

// Run calls onChange with the changed source paths after each quiet period
// until ctx is done or the watcher fails.
func (fw *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	pending := map[string]struct{}{}
	var timer <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(fw.w, ev.Name); err != nil {
						return err
					}
				}
			}
			if !IsSource(ev.Name) || ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer = time.After(fw.Debounce)
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watch")
		case <-timer:
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			slices.Sort(changed)
			clear(pending)
			timer = nil
			onChange(changed)
		}
	}
}

func (fw *Watcher) Close() error {
	return fw.w.Close()
}
