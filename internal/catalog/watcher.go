package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce groups bursts of editor writes into one reload.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads the store when JSON documents under a data directory change.
type Watcher struct {
	dir      string
	debounce time.Duration
	reload   func(ctx context.Context) error
	logger   zerolog.Logger

	// reloading keeps debounced reloads from overlapping when a reload
	// outlasts the debounce window.
	reloading sync.Mutex
}

// NewWatcher creates a watcher for dir ("products" and "projects"
// subdirectories are watched). reload is usually Store.Reload.
func NewWatcher(dir string, debounce time.Duration, reload func(ctx context.Context) error, logger zerolog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		reload:   reload,
		logger:   logger.With().Str("component", "catalog-watcher").Str("dir", dir).Logger(),
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	for _, sub := range []string{"products", "projects"} {
		path := filepath.Join(w.dir, sub)
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	w.logger.Info().Dur("debounce", w.debounce).Msg("watching catalog data")

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() { w.apply(ctx) })
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("catalog file changed")
			schedule()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// apply runs one reload; concurrent calls wait for the running one.
func (w *Watcher) apply(ctx context.Context) {
	w.reloading.Lock()
	defer w.reloading.Unlock()

	if ctx.Err() != nil {
		return
	}
	if err := w.reload(ctx); err != nil {
		w.logger.Error().Err(err).Msg("catalog reload failed, keeping previous data")
		return
	}
	w.logger.Info().Msg("catalog reloaded after change")
}

func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
