package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

// WatchEvent describes one reload triggered by file changes
type WatchEvent struct {
	Paths    []string  // files that changed since the previous reload
	Snapshot *Snapshot // nil when the reload failed
	Changed  []string  // networks whose endpoint or verification status changed
	Err      error
}

// WatchValuesParams contains parameters for watching value files
type WatchValuesParams struct {
	OnReload func(event WatchEvent)
}

// WatchValues reloads the catalog whenever one of the value files changes.
// Bursts of writes are collapsed into a single reload.
type WatchValues struct {
	catalog *Catalog
	watcher ValueWatcher
	config  *config.RuntimeConfig
	log     *slog.Logger
}

// NewWatchValues creates a new WatchValues use case
func NewWatchValues(catalog *Catalog, watcher ValueWatcher, cfg *config.RuntimeConfig, log *slog.Logger) *WatchValues {
	return &WatchValues{
		catalog: catalog,
		watcher: watcher,
		config:  cfg,
		log:     log.With("component", "watch"),
	}
}

// Paths returns the files being watched
func (uc *WatchValues) Paths() []string {
	return uc.watcher.Paths()
}

// Run blocks until ctx is cancelled or the watcher fails
func (uc *WatchValues) Run(ctx context.Context, params WatchValuesParams) error {
	debounce := uc.config.WatchDebounce
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending []string
	)

	reload := func() {
		mu.Lock()
		paths := lo.Uniq(pending)
		pending = nil
		mu.Unlock()

		if ctx.Err() != nil {
			return
		}

		previous := uc.catalog.Snapshot()
		next, err := uc.catalog.Reload(ctx)

		event := WatchEvent{Paths: paths, Err: err}
		if err != nil {
			uc.log.Warn("reload failed, keeping previous configuration", "error", err)
		} else {
			event.Snapshot = next
			event.Changed = changedNetworks(previous, next)
		}

		if params.OnReload != nil {
			params.OnReload(event)
		}
	}

	err := uc.watcher.Watch(ctx, func(path string) {
		mu.Lock()
		defer mu.Unlock()

		uc.log.Debug("value file changed", "path", path)
		pending = append(pending, path)
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, reload)
	})

	mu.Lock()
	if timer != nil {
		timer.Stop()
	}
	mu.Unlock()

	if ctx.Err() != nil {
		return nil
	}
	return err
}

// changedNetworks lists networks whose RPC URL or verification availability differs between snapshots
func changedNetworks(previous, next *Snapshot) []string {
	if previous == nil {
		return nil
	}

	var changed []string
	for _, network := range next.Networks.List() {
		old, err := previous.Networks.Get(network.Name)
		if err != nil {
			changed = append(changed, network.Name)
			continue
		}
		if old.RPCURL != network.RPCURL ||
			verificationTarget(previous, old).Available != verificationTarget(next, network).Available {
			changed = append(changed, network.Name)
		}
	}

	sort.Strings(changed)
	return changed
}
