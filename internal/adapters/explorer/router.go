package explorer

import (
	"errors"
	"fmt"

	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// Router maps network names to verification routes
type Router struct {
	explorers []*domain.Explorer
	byNetwork map[string]*domain.Explorer
	byChain   map[string]*domain.Explorer
	sourcify  domain.SourcifyConfig
}

// NewRouter builds the router from the default tables
func NewRouter(values usecase.ValueResolver) (*Router, error) {
	return Build(values, NativeTable, CustomTable)
}

// Build merges the native and custom tables, resolving API keys against values.
// A network may appear only once across both tables.
func Build(values usecase.ValueResolver, native []NativeEntry, custom []CustomEntry) (*Router, error) {
	r := &Router{
		explorers: make([]*domain.Explorer, 0, len(native)+len(custom)),
		byNetwork: make(map[string]*domain.Explorer, len(native)+len(custom)),
		byChain:   make(map[string]*domain.Explorer, len(native)+len(custom)),
		sourcify: domain.SourcifyConfig{
			Enabled:    true,
			APIURL:     SourcifyAPIURL,
			BrowserURL: SourcifyBrowserURL,
		},
	}

	for _, entry := range native {
		explorer := &domain.Explorer{
			Network:   entry.Network,
			Chain:     entry.Chain,
			Aliases:   entry.Aliases,
			APIKeyRef: entry.KeyRef,
			APIKey:    domain.Secret(values.Resolve(entry.KeyRef, "")),
		}
		if err := r.add(explorer); err != nil {
			return nil, err
		}
	}

	for _, entry := range custom {
		explorer := &domain.Explorer{
			Network:   entry.Network,
			Chain:     entry.Chain,
			APIKeyRef: entry.KeyRef,
			APIKey:    domain.Secret(values.Resolve(entry.KeyRef, "")),
			CustomChain: &domain.CustomChain{
				ChainID:    entry.ChainID,
				APIURL:     entry.APIURL,
				BrowserURL: entry.BrowserURL,
			},
		}
		if err := r.add(explorer); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Router) add(explorer *domain.Explorer) error {
	if explorer.Network == "" {
		return fmt.Errorf("explorer route %s has no network", explorer.Chain)
	}
	if existing, ok := r.byNetwork[explorer.Network]; ok {
		if existing.Class() != explorer.Class() {
			return fmt.Errorf("%w: %s is listed as both native and custom explorer", domain.ErrDuplicateNetwork, explorer.Network)
		}
		return fmt.Errorf("%w: %s has more than one %s explorer route", domain.ErrDuplicateNetwork, explorer.Network, explorer.Class())
	}

	keys := append([]string{explorer.Chain}, explorer.Aliases...)
	for _, key := range keys {
		if key == "" {
			continue
		}
		if existing, ok := r.byChain[key]; ok {
			return fmt.Errorf("explorer chain %s is used by both %s and %s", key, existing.Network, explorer.Network)
		}
		r.byChain[key] = explorer
	}

	r.explorers = append(r.explorers, explorer)
	r.byNetwork[explorer.Network] = explorer
	return nil
}

// Get returns the route for a network name, falling back to the verifier's chain identifier or an alias
func (r *Router) Get(name string) (*domain.Explorer, bool) {
	if explorer, ok := r.byNetwork[name]; ok {
		return explorer, true
	}
	explorer, ok := r.byChain[name]
	return explorer, ok
}

// List returns native routes first, then custom routes, each in table order
func (r *Router) List() []*domain.Explorer {
	return append([]*domain.Explorer(nil), r.explorers...)
}

// Sourcify returns the key-less secondary verifier settings
func (r *Router) Sourcify() domain.SourcifyConfig {
	return r.sourcify
}

// Validate checks every route against the registry.
// Routes must point at a registered network and custom chain ids must equal the registry's.
func (r *Router) Validate(registry usecase.NetworkRegistry) error {
	var errs []error

	for _, explorer := range r.explorers {
		network, err := registry.Get(explorer.Network)
		if err != nil {
			errs = append(errs, fmt.Errorf("explorer route %s: %w", explorer.Chain, err))
			continue
		}

		if explorer.CustomChain == nil {
			continue
		}
		if explorer.CustomChain.ChainID != network.ChainID {
			errs = append(errs, domain.ChainIDMismatchError{
				Network:  network.Name,
				Chain:    explorer.Chain,
				Expected: network.ChainID,
				Actual:   explorer.CustomChain.ChainID,
			})
		}
	}

	return errors.Join(errs...)
}

var _ usecase.ExplorerRouter = (*Router)(nil)
