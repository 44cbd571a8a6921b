//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-networks/internal/adapters"
	"github.com/trebuchet-org/treb-networks/internal/config"
	"github.com/trebuchet-org/treb-networks/internal/logging"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Catalog
		usecase.NewCatalog,

		// Use cases
		usecase.NewResolveNetwork,
		usecase.NewListNetworks,
		usecase.NewCheckNetworks,
		usecase.NewExportFoundry,
		usecase.NewWatchValues,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
