package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/treb-networks/internal/adapters/blockchain"
	internalconfig "github.com/trebuchet-org/treb-networks/internal/adapters/config"
	"github.com/trebuchet-org/treb-networks/internal/adapters/fs"
	"github.com/trebuchet-org/treb-networks/internal/adapters/interactive"
	"github.com/trebuchet-org/treb-networks/internal/adapters/snapshot"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),

	fs.NewValueFileWatcher,
	wire.Bind(new(usecase.ValueWatcher), new(*fs.ValueFileWatcher)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewFoundryManager,
	wire.Bind(new(usecase.FoundryConfigStore), new(*internalconfig.FoundryManager)),

	snapshot.NewBuilder,
	wire.Bind(new(usecase.SnapshotBuilder), new(*snapshot.Builder)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainIDProbe), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ConfigSet,
	InteractiveSet,
	BlockchainSet,
)
