package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool
	Effective  EffectiveConfig
}

// EffectiveConfig is the configuration the current process runs with,
// after flags, environment and the local config file are combined
type EffectiveConfig struct {
	Network           string                `json:"network,omitempty" yaml:"network,omitempty"`
	VarsFile          string                `json:"varsFile,omitempty" yaml:"varsFile,omitempty"`
	StrictCredentials bool                  `json:"strictCredentials" yaml:"strictCredentials"`
	DeployerRef       string                `json:"deployerRef,omitempty" yaml:"deployerRef,omitempty"`
	DeployerSupplied  bool                  `json:"deployerSupplied" yaml:"deployerSupplied"`
	Sources           []string              `json:"sources" yaml:"sources"`
	Features          domain.Features       `json:"features" yaml:"features"`
	Sourcify          domain.SourcifyConfig `json:"sourcify" yaml:"sourcify"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	store   LocalConfigRepository
	catalog *Catalog
	config  *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(store LocalConfigRepository, catalog *Catalog, cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		store:   store,
		catalog: catalog,
		config:  cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	snap := uc.catalog.Snapshot()
	ref := deployerRef(snap)

	return &ShowConfigResult{
		Config:     local,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
		Effective: EffectiveConfig{
			Network:           uc.config.Network,
			VarsFile:          uc.config.VarsFile,
			StrictCredentials: uc.config.StrictCredentials,
			DeployerRef:       ref,
			DeployerSupplied:  ref != "" && snap.Values.Has(ref),
			Sources:           snap.Sources,
			Features:          snap.Features,
			Sourcify:          snap.Explorers.Sourcify(),
		},
	}, nil
}

// deployerRef returns the credential shared by the remote networks
func deployerRef(snap *Snapshot) string {
	for _, network := range snap.Networks.List() {
		if network.NeedsSigner() {
			return network.CredentialRef
		}
	}
	return ""
}
