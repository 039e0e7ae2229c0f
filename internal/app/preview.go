package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// PreviewWatcher re-runs a render callback whenever the watched config file
// changes, so a single preview frame can be iterated on without restarting
// the CLI. Events are debounced because editors commonly emit several
// writes per save.
type PreviewWatcher struct {
	configPath    string
	debounceDelay time.Duration
	render        func(ctx context.Context) error
	log           zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewPreviewWatcher builds a watcher for the given config file. render is
// called once up front and again after each debounced change.
func NewPreviewWatcher(configPath string, render func(ctx context.Context) error, log zerolog.Logger) *PreviewWatcher {
	return &PreviewWatcher{
		configPath:    configPath,
		debounceDelay: 500 * time.Millisecond,
		render:        render,
		log:           log,
	}
}

// Run blocks until the context is cancelled. Render failures are logged and
// watching continues; a broken config edit should not kill the session.
func (w *PreviewWatcher) Run(ctx context.Context) error {
	w.renderOnce(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which drops file-level watches.
	if err := watcher.Add(filepath.Dir(w.configPath)); err != nil {
		return err
	}

	renderCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.configPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleRender(renderCh)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("preview watcher error")

		case <-renderCh:
			w.renderOnce(ctx)
		}
	}
}

func (w *PreviewWatcher) scheduleRender(renderCh chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		select {
		case renderCh <- struct{}{}:
		default:
		}
	})
}

func (w *PreviewWatcher) renderOnce(ctx context.Context) {
	start := time.Now()
	if err := w.render(ctx); err != nil {
		w.log.Error().Err(err).Msg("preview render failed")
		return
	}
	w.log.Info().Dur("took", time.Since(start)).Msg("preview rendered")
}
