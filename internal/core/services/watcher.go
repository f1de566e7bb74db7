package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/core/ports/driving"
	"github.com/helicon-labs/minuta-cli/internal/logger"
)

// defaultRefreshInterval throttles watcher-triggered refreshes. Cache
// writers rewrite the file in bursts; one refresh per interval is plenty.
const defaultRefreshInterval = 30 * time.Second

// CacheWatcher watches the enrichment cache file and triggers a refresh
// when it changes. Watcher failures are logged, never fatal: the cache
// can still be refreshed manually.
type CacheWatcher struct {
	path    string
	refresh driving.RefreshService
	limiter *rate.Limiter
}

// NewCacheWatcher creates a watcher for the cache file at path.
// interval throttles refreshes; values at or below zero use
// defaultRefreshInterval.
func NewCacheWatcher(path string, refresh driving.RefreshService, interval time.Duration) *CacheWatcher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &CacheWatcher{
		path:    path,
		refresh: refresh,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run blocks watching the cache file until the context is cancelled.
// The parent directory is watched rather than the file itself: cache
// writers typically replace the file atomically, which would drop a
// direct file watch.
func (w *CacheWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create cache watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching enrichment cache %s", w.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.isCacheEvent(event) {
				continue
			}
			if !w.limiter.Allow() {
				logger.Debug("Cache changed, refresh throttled")
				continue
			}
			w.triggerRefresh(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Cache watcher error: %v", err)
		}
	}
}

func (w *CacheWatcher) isCacheEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

func (w *CacheWatcher) triggerRefresh(ctx context.Context) {
	stats, err := w.refresh.Refresh(ctx)
	switch {
	case errors.Is(err, domain.ErrRefreshInProgress):
		logger.Debug("Cache changed, refresh already running")
	case err != nil:
		logger.Warn("Watcher-triggered refresh failed: %v", err)
	default:
		logger.Info("Watcher-triggered refresh: %d documents with attendees", stats.DocumentsWithAttendees)
	}
}
