package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a newly created file must be quiet before
// processing. Writers drop PDFs in chunks; reacting to the first event
// would read a partial file.
const settleDelay = 500 * time.Millisecond

// Watcher processes PDFs as they appear in the input directory.
type Watcher struct {
	runner *Runner
}

// NewWatcher creates a watcher over the runner's input directory.
func NewWatcher(runner *Runner) *Watcher {
	return &Watcher{runner: runner}
}

// Watch runs an initial pass over the existing files, then blocks
// processing new arrivals until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	if _, err := w.runner.Run(ctx); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.runner.config.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", w.runner.config.InputDir, err)
	}

	log := w.runner.logger
	log.Info("watching for new documents", "dir", w.runner.config.InputDir)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settleDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !isPDF(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < settleDelay {
					continue
				}
				delete(pending, path)
				if err := w.runner.ProcessFile(ctx, path); err != nil {
					log.Error("processing failed", "path", path, "error", err)
				}
			}
		}
	}
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
