package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

// ValueResolver looks up operator-supplied values with a built-in fallback
type ValueResolver interface {
	Resolve(key, def string) string
	Has(key string) bool
	Origin(key string) string
	Referenceable(key string) bool
}

// NetworkRegistry is the read-only table of deployable networks
type NetworkRegistry interface {
	List() []*domain.Network
	Get(name string) (*domain.Network, error)
	ByChainID(chainID uint64) (*domain.Network, bool)
	Names() []string
}

// ExplorerRouter maps network names to verification routes
type ExplorerRouter interface {
	Get(name string) (*domain.Explorer, bool)
	List() []*domain.Explorer
	Sourcify() domain.SourcifyConfig
	Validate(registry NetworkRegistry) error
}

// CredentialProvider resolves a credential reference into a signing key
type CredentialProvider interface {
	Credential(ctx context.Context, ref string) (*domain.Credential, error)
}

// SnapshotBuilder assembles a consistent, validated view of all tables
type SnapshotBuilder interface {
	Build(ctx context.Context) (*Snapshot, error)
}

// ChainIDProbe asks an RPC endpoint for its chain id
type ChainIDProbe interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// FoundryConfigStore reads and writes the network sections of foundry.toml
type FoundryConfigStore interface {
	Load(ctx context.Context) (*config.FoundryConfig, error)
	Save(ctx context.Context, cfg *config.FoundryConfig) error
	GetPath() string
}

// LocalConfigRepository handles persistence of local config
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// NetworkSelector handles interactive selection of networks
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []*domain.Network, prompt string) (*domain.Network, error)
}

// ValueWatcher reports changes to the files operator values are read from
type ValueWatcher interface {
	Watch(ctx context.Context, onChange func(path string)) error
	Paths() []string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
