package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

// ExportFoundryParams contains parameters for exporting foundry.toml sections
type ExportFoundryParams struct {
	Write bool // write into foundry.toml instead of returning the sections
	Merge bool // keep existing entries that point at an env var or are unknown to the registry
}

// ExportFoundryResult contains the exported sections
type ExportFoundryResult struct {
	Config     *config.FoundryConfig
	Path       string
	Written    bool
	Kept       []string // existing entries preserved by Merge
	NoAPIKey   []string // explorer routes left out because their key is not set
	InProcess  []string // networks without an RPC endpoint
	Overridden int      // endpoints written as ${KEY} references
	FileOnly   []string // keys set only in the vars file, which forge cannot expand
}

// ExportFoundry renders the registry as foundry.toml [rpc_endpoints] and [etherscan] tables.
// Operator-supplied values are referenced as ${KEY} so secrets never reach the file.
type ExportFoundry struct {
	catalog *Catalog
	store   FoundryConfigStore
}

// NewExportFoundry creates a new ExportFoundry use case
func NewExportFoundry(catalog *Catalog, store FoundryConfigStore) *ExportFoundry {
	return &ExportFoundry{
		catalog: catalog,
		store:   store,
	}
}

// Run executes the use case
func (uc *ExportFoundry) Run(ctx context.Context, params ExportFoundryParams) (*ExportFoundryResult, error) {
	snap := uc.catalog.Snapshot()

	result := &ExportFoundryResult{
		Config: &config.FoundryConfig{
			RpcEndpoints: make(map[string]string),
			Etherscan:    make(map[string]config.EtherscanConfig),
		},
		Path: uc.store.GetPath(),
	}

	for _, network := range snap.Networks.List() {
		if network.RPCURL == "" {
			result.InProcess = append(result.InProcess, network.Name)
			continue
		}
		if url, ok := uc.endpoint(snap, network, result); ok {
			result.Config.RpcEndpoints[network.Name] = url
		}
	}

	for _, explorer := range snap.Explorers.List() {
		network, err := snap.Networks.Get(explorer.Network)
		if err != nil {
			return nil, fmt.Errorf("explorer route %s: %w", explorer.Chain, err)
		}
		if !snap.Values.Has(explorer.APIKeyRef) {
			result.NoAPIKey = append(result.NoAPIKey, network.Name)
			continue
		}
		if !snap.Values.Referenceable(explorer.APIKeyRef) {
			result.addFileOnly(snap, explorer.APIKeyRef)
			continue
		}

		entry := config.EtherscanConfig{
			Key:   config.EnvRef(explorer.APIKeyRef),
			Chain: network.ChainID,
		}
		if explorer.CustomChain != nil {
			entry.URL = explorer.CustomChain.APIURL
		}
		result.Config.Etherscan[network.Name] = entry
	}

	if params.Merge || params.Write {
		existing, err := uc.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", uc.store.GetPath(), err)
		}
		if params.Merge {
			result.Kept = merge(result.Config, existing)
		}
		result.Config.Profile = existing.Profile
	}

	if params.Write {
		if err := uc.store.Save(ctx, result.Config); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", uc.store.GetPath(), err)
		}
		result.Written = true
	}

	return result, nil
}

// endpoint references the operator value as ${KEY} when forge can expand it.
// Values only found in the vars file fall back to the public default, and
// prefix-only URLs without a default are left out.
func (uc *ExportFoundry) endpoint(snap *Snapshot, network *domain.Network, result *ExportFoundryResult) (string, bool) {
	key := network.RPCKey
	if key == "" || !snap.Values.Has(key) {
		return network.RPCURL, true
	}

	if !snap.Values.Referenceable(key) {
		result.addFileOnly(snap, key)
		return network.DefaultRPCURL, network.DefaultRPCURL != ""
	}
	result.Overridden++

	// prefixed endpoints (tenderly forks) keep their prefix in front of the reference
	if prefix, ok := strings.CutSuffix(network.RPCURL, snap.Values.Resolve(key, "")); ok {
		return prefix + config.EnvRef(key), true
	}
	return config.EnvRef(key), true
}

func (r *ExportFoundryResult) addFileOnly(snap *Snapshot, key string) {
	entry := fmt.Sprintf("%s (%s)", key, snap.Values.Origin(key))
	if !lo.Contains(r.FileOnly, entry) {
		r.FileOnly = append(r.FileOnly, entry)
	}
}

// merge keeps existing entries the export would otherwise replace or drop.
// Pure ${VAR} references and entries for unknown networks are left alone.
func merge(out, existing *config.FoundryConfig) []string {
	var kept []string

	for name, value := range existing.RpcEndpoints {
		_, known := out.RpcEndpoints[name]
		if _, isRef := config.DetectEnvVar(value); isRef || !known {
			out.RpcEndpoints[name] = value
			kept = append(kept, "rpc_endpoints."+name)
		}
	}

	for name, entry := range existing.Etherscan {
		_, known := out.Etherscan[name]
		if _, isRef := config.DetectEnvVar(entry.Key); isRef || !known {
			out.Etherscan[name] = entry
			kept = append(kept, "etherscan."+name)
		}
	}

	sort.Strings(kept)
	return kept
}
