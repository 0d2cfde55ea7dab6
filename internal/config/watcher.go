package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk and publishes
// the validated result on Updates. The parent directory is watched so
// editors that replace the file on save are handled.
type Watcher struct {
	mu       sync.Mutex
	path     string
	fsw      *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration
	updates  chan RunicConfig
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for path. logger may be nil.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:     abs,
		fsw:      fsw,
		logger:   logger,
		debounce: DefaultDebounce,
		updates:  make(chan RunicConfig, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce changes the debounce interval. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Updates delivers reloaded configurations. Only the newest pending value
// is kept.
func (w *Watcher) Updates() <-chan RunicConfig {
	return w.updates
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("config: cannot watch %s: %w", w.path, err)
	}
	w.running = true
	go w.run(ctx)
	w.logger.Debug("watching config", "path", w.path)
	return nil
}

// Stop ends the watch loop and releases the file watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "err", err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadRunic(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "err", err)
		return
	}
	if err := ApplyEnv(&cfg); err != nil {
		w.logger.Warn("config env override failed", "err", err)
	}

	// Replace any unread value with the newest one.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", "path", w.path)
}
