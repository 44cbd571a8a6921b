package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-networks/internal/config"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// ValueFileWatcher reports writes to .env, .env.local and the vars file.
// Directories are watched rather than files so editors that replace files on save are seen.
type ValueFileWatcher struct {
	paths []string
	log   *slog.Logger
}

// NewValueFileWatcher creates a watcher for the project's value files
func NewValueFileWatcher(cfg *domainconfig.RuntimeConfig, log *slog.Logger) *ValueFileWatcher {
	paths := lo.Map(config.ValueFiles(cfg.ProjectRoot, cfg.VarsFile), func(p string, _ int) string {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return filepath.Clean(p)
	})
	return &ValueFileWatcher{
		paths: paths,
		log:   log.With("component", "watcher"),
	}
}

// Paths returns the watched files
func (w *ValueFileWatcher) Paths() []string {
	return append([]string(nil), w.paths...)
}

// Watch calls onChange for every write, create, rename or removal of a watched file until ctx is done
func (w *ValueFileWatcher) Watch(ctx context.Context, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	dirs := lo.Uniq(lo.Map(w.paths, func(p string, _ int) string { return filepath.Dir(p) }))
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	watched := lo.SliceToMap(w.paths, func(p string) (string, struct{}) { return p, struct{}{} })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, ok := watched[filepath.Clean(event.Name)]; !ok {
				continue
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			w.log.Debug("value file event", "path", event.Name, "op", event.Op.String())
			onChange(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}

var _ usecase.ValueWatcher = (*ValueFileWatcher)(nil)
