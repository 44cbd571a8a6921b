package app

import (
	"log/slog"

	"github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Catalog  *usecase.Catalog
	Selector usecase.NetworkSelector

	// Use cases
	ResolveNetwork *usecase.ResolveNetwork
	ListNetworks   *usecase.ListNetworks
	CheckNetworks  *usecase.CheckNetworks
	ExportFoundry  *usecase.ExportFoundry
	WatchValues    *usecase.WatchValues
	ShowConfig     *usecase.ShowConfig
	SetConfig      *usecase.SetConfig
	RemoveConfig   *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	catalog *usecase.Catalog,
	selector usecase.NetworkSelector,
	resolveNetwork *usecase.ResolveNetwork,
	listNetworks *usecase.ListNetworks,
	checkNetworks *usecase.CheckNetworks,
	exportFoundry *usecase.ExportFoundry,
	watchValues *usecase.WatchValues,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		Catalog:        catalog,
		Selector:       selector,
		ResolveNetwork: resolveNetwork,
		ListNetworks:   listNetworks,
		CheckNetworks:  checkNetworks,
		ExportFoundry:  exportFoundry,
		WatchValues:    watchValues,
		ShowConfig:     showConfig,
		SetConfig:      setConfig,
		RemoveConfig:   removeConfig,
	}, nil
}
