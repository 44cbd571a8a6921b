package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

const maxSuggestions = 3

// Registry is the immutable name -> network table
type Registry struct {
	networks      []*domain.Network
	byName        map[string]*domain.Network
	byLowerName   map[string]*domain.Network // only feeds suggestions
	chainIDLookup map[uint64]*domain.Network
	names         []string
}

// NewRegistry builds the registry from the default table
func NewRegistry(values usecase.ValueResolver) (*Registry, error) {
	return Build(values, DefaultTable)
}

// Build resolves every entry against values.
// Duplicate names and duplicate pinned chain ids are authoring errors.
func Build(values usecase.ValueResolver, entries []Entry) (*Registry, error) {
	r := &Registry{
		networks:      make([]*domain.Network, 0, len(entries)),
		byName:        make(map[string]*domain.Network, len(entries)),
		byLowerName:   make(map[string]*domain.Network, len(entries)),
		chainIDLookup: make(map[uint64]*domain.Network, len(entries)),
	}

	if err := checkChainIDs(entries); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("network table entry with chain ID %d has no name", entry.ChainID)
		}
		if _, exists := r.byName[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateNetwork, entry.Name)
		}

		network := resolveEntry(values, entry)
		r.networks = append(r.networks, network)
		r.byName[network.Name] = network
		r.byLowerName[strings.ToLower(network.Name)] = network
		if network.Pinned() {
			r.chainIDLookup[network.ChainID] = network
		}
	}

	r.names = lo.Map(r.networks, func(n *domain.Network, _ int) string { return n.Name })

	return r, nil
}

func resolveEntry(values usecase.ValueResolver, entry Entry) *domain.Network {
	network := &domain.Network{
		Name:    entry.Name,
		ChainID: entry.ChainID,
		RPCKey:  entry.URLKey,
		Local:   entry.Local,
	}

	if entry.InProcess {
		network.Fork = &domain.ForkConfig{
			URL:            values.Resolve(ForkURLKey, ForkURLDefault),
			Enabled:        false,
			Hardfork:       ForkHardfork,
			InitialBaseFee: ForkInitialFee,
		}
	} else {
		url := entry.URLDefault
		if entry.URLKey != "" {
			url = values.Resolve(entry.URLKey, entry.URLDefault)
		}
		network.RPCURL = entry.URLPrefix + url
		if entry.URLPrefix == "" {
			network.DefaultRPCURL = entry.URLDefault
		}
		network.Unconfigured = entry.URLPrefix != "" && !values.Has(entry.URLKey)
	}

	if !entry.Local {
		network.CredentialRef = DeployerRef
	}

	return network
}

func checkChainIDs(entries []Entry) error {
	pinned := lo.Filter(entries, func(e Entry, _ int) bool { return e.ChainID != 0 })
	groups := lo.GroupBy(pinned, func(e Entry) uint64 { return e.ChainID })

	ids := lo.Keys(groups)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if group := groups[id]; len(group) > 1 {
			return domain.DuplicateChainIDError{
				ChainID:  id,
				Networks: lo.Map(group, func(e Entry, _ int) string { return e.Name }),
			}
		}
	}
	return nil
}

// List returns networks in table order
func (r *Registry) List() []*domain.Network {
	return append([]*domain.Network(nil), r.networks...)
}

// Names returns network names in table order
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Get looks a network up by its exact name. Names are the stable key, so
// case variants and chain ids are never accepted here.
func (r *Registry) Get(name string) (*domain.Network, error) {
	if network, ok := r.byName[name]; ok {
		return network, nil
	}
	return nil, domain.UnknownNetworkError{Name: name, Suggestions: r.suggest(name)}
}

// ByChainID returns the network pinned to chainID
func (r *Registry) ByChainID(chainID uint64) (*domain.Network, bool) {
	network, ok := r.chainIDLookup[chainID]
	return network, ok
}

func (r *Registry) suggest(name string) []string {
	if name == "" {
		return nil
	}
	suggestions := make([]string, 0, maxSuggestions)
	if network, ok := r.byLowerName[strings.ToLower(name)]; ok {
		suggestions = append(suggestions, network.Name)
	}

	for _, match := range fuzzy.Find(name, r.names) {
		if len(suggestions) == maxSuggestions {
			break
		}
		if !lo.Contains(suggestions, match.Str) {
			suggestions = append(suggestions, match.Str)
		}
	}
	return suggestions
}

var _ usecase.NetworkRegistry = (*Registry)(nil)
