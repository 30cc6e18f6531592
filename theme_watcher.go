package backdrop

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"backdrop/misc"
)

// ThemeWatcher reloads theme file whenever it changes on disk.
//
// Parsed themes are delivered through Themes() so the frame loop
// picks them up on its own thread.
type ThemeWatcher struct {
	mu      sync.Mutex
	running bool

	path    string
	watcher *fsnotify.Watcher

	themes chan Theme
	stopCh chan struct{}
	doneCh chan struct{}
}

func NewThemeWatcher(path string) (*ThemeWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &ThemeWatcher{
		path:    abs,
		watcher: watcher,
		themes:  make(chan Theme, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start watches directory of the theme file,
// editors often replace the file instead of writing to it.
func (tw *ThemeWatcher) Start(ctx context.Context) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.running {
		return nil
	}

	if err := tw.watcher.Add(filepath.Dir(tw.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", tw.path, err)
	}

	tw.running = true
	go tw.run(ctx)

	misc.InfoLogger.Infof("watching theme %s", tw.path)

	return nil
}

// Stop ends watching and waits for the watch goroutine to exit.
func (tw *ThemeWatcher) Stop() {
	tw.mu.Lock()
	if !tw.running {
		tw.mu.Unlock()
		_ = tw.watcher.Close()
		return
	}
	tw.running = false
	tw.mu.Unlock()

	close(tw.stopCh)
	<-tw.doneCh

	if err := tw.watcher.Close(); err != nil {
		misc.ErrLogger.Errorf("failed to close theme watcher: %v", err)
	}
}

// Themes delivers freshly loaded themes, only the latest one is kept.
func (tw *ThemeWatcher) Themes() <-chan Theme {
	return tw.themes
}

func (tw *ThemeWatcher) run(ctx context.Context) {
	defer close(tw.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-tw.stopCh:
			return
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			misc.ErrLogger.Errorf("theme watcher: %v", err)
		}
	}
}

func (tw *ThemeWatcher) reload() {
	theme, err := LoadTheme(tw.path)
	if err != nil {
		// half written file, next write event will fix it
		misc.WarnLogger.Warnf("failed to reload theme: %v", err)
		return
	}

	// drop stale theme nobody picked up yet
	select {
	case <-tw.themes:
	default:
	}
	tw.themes <- theme

	misc.InfoLogger.Infof("reloaded theme %s", tw.path)
}
