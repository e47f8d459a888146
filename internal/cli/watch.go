package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/transducer"
	"github.com/aretw0/transducer/internal/presentation/tui"
	"github.com/aretw0/transducer/pkg/runner"
	"github.com/fsnotify/fsnotify"
)

// settleDelay lets bursts of editor writes collapse into a single reload.
const settleDelay = 100 * time.Millisecond

// RunWatch executes the definition in development mode, rerunning it every
// time the file changes. Load errors are reported and the watcher keeps going.
func RunWatch(opts RunOptions) error {
	sm := runner.NewSignalManager(context.Background())
	defer sm.Stop()
	return watch(sm, opts)
}

// watch reruns the definition until sm is interrupted.
func watch(sm *runner.SignalManager, opts RunOptions) error {
	ctx := sm.Context()

	if opts.Output == "" || opts.Output == OutputText {
		tui.PrintBanner(opts.stderr(), transducer.Version)
	}

	changes, err := NewFileWatcher(opts.Path).Watch(ctx)
	if err != nil {
		return err
	}
	printSystemMessage(opts.stderr(), "Watching '%s'.", opts.Path)

	for {
		select {
		case <-ctx.Done():
			printSystemMessage(opts.stderr(), "Stopped watching.")
			return nil
		case _, ok := <-changes:
			if !ok {
				printSystemMessage(opts.stderr(), "Stopped watching.")
				return nil
			}
			if err := execute(ctx, opts, false); err != nil && !sm.Interrupted() {
				printSystemMessage(opts.stderr(), "Error: %v", err)
			}
			if !sm.Interrupted() {
				printSystemMessage(opts.stderr(), "Waiting for changes...")
			}
		}
	}
}

// FileWatcher reports writes to a single file.
type FileWatcher struct {
	path string
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: path}
}

// Watch emits once immediately and then once per settled change of the file.
// The parent directory is watched so that editors replacing the file through
// a rename are still noticed. The channel is closed when ctx ends.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		notify := func() bool {
			select {
			case out <- struct{}{}:
				return true
			case <-ctx.Done():
				return false
			}
		}

		// Initial run
		if !notify() {
			return
		}

		var settle <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				settle = time.After(settleDelay)

			case <-settle:
				settle = nil
				if !notify() {
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
