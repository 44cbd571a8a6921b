package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-networks/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	Search         string // fuzzy match on the network name
	LocalOnly      bool
	VerifiableOnly bool // only networks with an explorer route
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Sources  []string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name           string               `json:"name" yaml:"name"`
	ChainID        uint64               `json:"chainId" yaml:"chainId"`
	RPCURL         string               `json:"rpcUrl" yaml:"rpcUrl"`
	RPCOverridden  bool                 `json:"rpcOverridden" yaml:"rpcOverridden"`
	Local          bool                 `json:"local" yaml:"local"`
	ExplorerClass  domain.ExplorerClass `json:"explorer,omitempty" yaml:"explorer,omitempty"`
	Chain          string               `json:"chain,omitempty" yaml:"chain,omitempty"`
	Verifiable     bool                 `json:"verifiable" yaml:"verifiable"`
	VerifyDisabled error                `json:"-" yaml:"-"`
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	catalog *Catalog
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(catalog *Catalog) *ListNetworks {
	return &ListNetworks{
		catalog: catalog,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	snap := uc.catalog.Snapshot()

	networks := snap.Networks.List()
	if params.Search != "" {
		networks = search(networks, params.Search)
	}

	statuses := make([]NetworkStatus, 0, len(networks))
	for _, network := range networks {
		if params.LocalOnly && !network.Local {
			continue
		}

		status := NetworkStatus{
			Name:          network.Name,
			ChainID:       network.ChainID,
			RPCURL:        network.RPCURL,
			RPCOverridden: network.RPCKey != "" && snap.Values.Has(network.RPCKey),
			Local:         network.Local,
		}

		if explorer, ok := snap.Explorers.Get(network.Name); ok && explorer.Network == network.Name {
			status.ExplorerClass = explorer.Class()
			status.Chain = explorer.Chain
		} else if params.VerifiableOnly {
			continue
		}

		target := verificationTarget(snap, network)
		status.Verifiable = target.Available
		status.VerifyDisabled = target.Skipped

		statuses = append(statuses, status)
	}

	return &ListNetworksResult{
		Networks: statuses,
		Sources:  snap.Sources,
	}, nil
}

// search keeps networks whose name fuzzy-matches pattern, best match first
func search(networks []*domain.Network, pattern string) []*domain.Network {
	names := lo.Map(networks, func(n *domain.Network, _ int) string { return n.Name })
	matches := fuzzy.Find(strings.TrimSpace(pattern), names)
	return lo.Map(matches, func(m fuzzy.Match, _ int) *domain.Network { return networks[m.Index] })
}
