package fetch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// debounceWindow coalesces the burst of filesystem events an editor save or
// file copy produces into a single reload.
const debounceWindow = 250 * time.Millisecond

// Watcher observes a library folder and invokes a callback with fresh
// payloads whenever a json payload in it changes.
type Watcher struct {
	dir     string
	sources []domain.SourceFile
	onLoad  func(context.Context, []domain.RawSource)
}

// NewWatcher creates a watcher over dir. onLoad receives the full rescanned
// payload set after every relevant change. A nil sources slice watches the
// default source list.
func NewWatcher(dir string, sources []domain.SourceFile, onLoad func(context.Context, []domain.RawSource)) *Watcher {
	if sources == nil {
		sources = domain.DefaultSources
	}
	return &Watcher{dir: dir, sources: sources, onLoad: onLoad}
}

// Watch blocks until the context is cancelled, rescanning the folder after
// each debounced batch of changes to json files.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	logger.Info("watching %s for library changes", w.dir)

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("library change: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-timerC:
			timer = nil
			timerC = nil
			w.rescan(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".json")
}

func (w *Watcher) rescan(ctx context.Context) {
	raws, err := ScanFolder(w.dir, w.sources)
	if err != nil {
		logger.Warn("rescan failed: %v", err)
		return
	}
	if len(raws) == 0 {
		return
	}
	w.onLoad(ctx, raws)
}
