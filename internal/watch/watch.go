// Package watch regenerates reports when dataset files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"cognia/internal/app"
	"cognia/internal/logger"
)

// DefaultDebounce absorbs the bursts of write events most tools emit
// while a file is still being copied in.
const DefaultDebounce = 500 * time.Millisecond

// Watcher re-analyzes datasets dropped into a directory.
type Watcher struct {
	dir      string
	outDir   string
	profile  string
	service  *app.App
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New builds a watcher over dir; reports land next to the dataset when
// outDir is empty.
func New(service *app.App, dir, outDir, profile string, debounce time.Duration) (*Watcher, error) {
	if service == nil {
		return nil, fmt.Errorf("watcher requires a service")
	}
	if dir == "" {
		return nil, fmt.Errorf("watcher requires a directory")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      dir,
		outDir:   outDir,
		profile:  profile,
		service:  service,
		debounce: debounce,
		timers:   map[string]*time.Timer{},
	}, nil
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Infof("watching %s for dataset changes", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isDataset(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch error: %v", err)
		}
	}
}

// schedule resets the per-file debounce timer so only the last event
// in a burst triggers an analysis.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.analyze(ctx, path)
	})
}

func (w *Watcher) analyze(ctx context.Context, path string) {
	result, err := w.service.Analyze(ctx, app.AnalyzeRequest{
		Input:   path,
		Output:  w.outputFor(path),
		Profile: w.profile,
	})
	if err != nil {
		logger.Errorf("re-analyze %s: %v", path, err)
		return
	}
	logger.Infof("report refreshed: %s", result.OutputPath)
}

func (w *Watcher) outputFor(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "_report.html"
	if w.outDir != "" {
		return filepath.Join(w.outDir, base)
	}
	return filepath.Join(filepath.Dir(path), base)
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

func isDataset(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".json", ".ndjson":
		return true
	}
	return false
}
