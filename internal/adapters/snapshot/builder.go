package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trebuchet-org/treb-networks/internal/adapters/credentials"
	"github.com/trebuchet-org/treb-networks/internal/adapters/explorer"
	"github.com/trebuchet-org/treb-networks/internal/adapters/network"
	"github.com/trebuchet-org/treb-networks/internal/config"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// GasReportingKey enables gas reporting when supplied with any value
const GasReportingKey = "REPORT_GAS"

// StoreLoader produces a fresh value store
type StoreLoader func() (*config.ValueStore, error)

// Builder assembles snapshots from the operator's value files
type Builder struct {
	load   StoreLoader
	strict bool
	log    *slog.Logger
}

// NewBuilder creates a builder reading the project's value files
func NewBuilder(cfg *domainconfig.RuntimeConfig, log *slog.Logger) *Builder {
	return &Builder{
		load: func() (*config.ValueStore, error) {
			return config.LoadValueStore(cfg.ProjectRoot, cfg.VarsFile)
		},
		strict: cfg.StrictCredentials,
		log:    log,
	}
}

// NewBuilderWithLoader creates a builder over a custom value source
func NewBuilderWithLoader(load StoreLoader, strict bool, log *slog.Logger) *Builder {
	return &Builder{load: load, strict: strict, log: log}
}

// Build loads values, builds the registry and explorer router, and checks their integrity
func (b *Builder) Build(ctx context.Context) (*usecase.Snapshot, error) {
	store, err := b.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration values: %w", err)
	}

	registry, err := network.NewRegistry(store)
	if err != nil {
		return nil, fmt.Errorf("invalid network table: %w", err)
	}

	router, err := explorer.NewRouter(store)
	if err != nil {
		return nil, fmt.Errorf("invalid explorer table: %w", err)
	}

	if err := router.Validate(registry); err != nil {
		return nil, fmt.Errorf("explorer table does not match network registry: %w", err)
	}

	return &usecase.Snapshot{
		Values:      store,
		Networks:    registry,
		Explorers:   router,
		Credentials: credentials.NewEnvProvider(store, b.strict, b.log),
		Features:    domain.Features{GasReporting: store.Has(GasReportingKey)},
		Sources:     store.Sources(),
		BuiltAt:     time.Now(),
	}, nil
}

var _ usecase.SnapshotBuilder = (*Builder)(nil)
