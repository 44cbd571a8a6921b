package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trebuchet-org/treb-networks/internal/domain"
)

// Snapshot is one consistent, validated view of every table.
// It is never mutated after Build returns it.
type Snapshot struct {
	Values      ValueResolver
	Networks    NetworkRegistry
	Explorers   ExplorerRouter
	Credentials CredentialProvider
	Features    domain.Features
	Sources     []string
	BuiltAt     time.Time
}

// SnapshotBuilderFunc adapts a function to SnapshotBuilder
type SnapshotBuilderFunc func(ctx context.Context) (*Snapshot, error)

// Build calls f(ctx)
func (f SnapshotBuilderFunc) Build(ctx context.Context) (*Snapshot, error) {
	return f(ctx)
}

// Catalog holds the current snapshot. Readers never lock; Reload swaps the pointer.
type Catalog struct {
	builder SnapshotBuilder
	current atomic.Pointer[Snapshot]
	reload  sync.Mutex
	log     *slog.Logger
}

// NewCatalog builds the first snapshot. Integrity errors abort construction.
func NewCatalog(builder SnapshotBuilder, log *slog.Logger) (*Catalog, error) {
	c := &Catalog{
		builder: builder,
		log:     log.With("component", "catalog"),
	}
	if _, err := c.Reload(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

// Snapshot returns the current snapshot
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Reload rebuilds every table and swaps the snapshot.
// On failure the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) (*Snapshot, error) {
	c.reload.Lock()
	defer c.reload.Unlock()

	next, err := c.builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build network catalog: %w", err)
	}
	if next.BuiltAt.IsZero() {
		next.BuiltAt = time.Now()
	}

	previous := c.current.Swap(next)
	if previous != nil {
		c.log.Info("network catalog reloaded", "networks", len(next.Networks.List()), "sources", next.Sources)
	} else {
		c.log.Debug("network catalog built", "networks", len(next.Networks.List()), "sources", next.Sources)
	}

	return next, nil
}
