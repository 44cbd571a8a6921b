package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/domain/config"
)

// ErrNoNetwork is returned when no network name was given and no default is configured
var ErrNoNetwork = errors.New("network not specified")

// ResolveNetwork turns a network name into deployment and verification parameters.
// Every call reads a single snapshot, so concurrent calls never observe a half-applied reload.
type ResolveNetwork struct {
	catalog *Catalog
	config  *config.RuntimeConfig
	log     *slog.Logger
}

// NewResolveNetwork creates a new ResolveNetwork use case
func NewResolveNetwork(catalog *Catalog, cfg *config.RuntimeConfig, log *slog.Logger) *ResolveNetwork {
	return &ResolveNetwork{
		catalog: catalog,
		config:  cfg,
		log:     log.With("component", "resolver"),
	}
}

// Network looks up a network by its exact name.
// An empty name falls back to the configured default network.
func (uc *ResolveNetwork) Network(name string) (*domain.Network, error) {
	return lookup(uc.catalog.Snapshot(), uc.nameOrDefault(name))
}

// NetworkByChainID looks up the network pinned to chainID.
// Callers must ask for this explicitly; names are never parsed as chain ids.
func (uc *ResolveNetwork) NetworkByChainID(chainID uint64) (*domain.Network, error) {
	network, ok := uc.catalog.Snapshot().Networks.ByChainID(chainID)
	if !ok {
		return nil, domain.UnknownChainIDError{ChainID: chainID}
	}
	return network, nil
}

// ResolveForDeployment returns the RPC endpoint, chain id and signer for a network.
// Local networks never need a signer; every other network must resolve one.
func (uc *ResolveNetwork) ResolveForDeployment(ctx context.Context, name string) (*domain.DeploymentTarget, error) {
	snap := uc.catalog.Snapshot()

	network, err := lookup(snap, uc.nameOrDefault(name))
	if err != nil {
		return nil, err
	}

	target := &domain.DeploymentTarget{
		Network: network.Name,
		ChainID: network.ChainID,
		RPCURL:  network.RPCURL,
		Local:   network.Local,

		RPCOverridden: network.RPCKey != "" && snap.Values.Has(network.RPCKey),
	}

	if !network.NeedsSigner() {
		return target, nil
	}

	cred, err := snap.Credentials.Credential(ctx, network.CredentialRef)
	if err != nil {
		var missing domain.MissingCredentialError
		if errors.As(err, &missing) {
			missing.Network = network.Name
			if missing.Ref == "" {
				missing.Ref = network.CredentialRef
			}
			return nil, missing
		}
		return nil, domain.MissingCredentialError{Network: network.Name, Ref: network.CredentialRef, Reason: err.Error()}
	}

	if cred.Unsafe {
		uc.log.Warn("deploying with the well-known default key, never fund it",
			"network", network.Name, "ref", cred.Ref, "address", cred.Address.Hex())
	}

	target.Signer = &domain.Signer{Credential: cred}
	return target, nil
}

// ResolveForVerification returns the explorer route for a network.
// A missing route or API key is reported in Skipped, not as an error.
func (uc *ResolveNetwork) ResolveForVerification(ctx context.Context, name string) (*domain.VerificationTarget, error) {
	snap := uc.catalog.Snapshot()

	network, err := lookup(snap, uc.nameOrDefault(name))
	if err != nil {
		return nil, err
	}

	return verificationTarget(snap, network), nil
}

func verificationTarget(snap *Snapshot, network *domain.Network) *domain.VerificationTarget {
	target := &domain.VerificationTarget{
		Network:  network.Name,
		ChainID:  network.ChainID,
		Sourcify: snap.Explorers.Sourcify(),
	}

	explorer, ok := snap.Explorers.Get(network.Name)
	if !ok || explorer.Network != network.Name {
		target.Skipped = domain.MissingVerificationKeyError{Network: network.Name}
		return target
	}

	target.Chain = explorer.Chain
	target.APIKey = explorer.APIKey
	if explorer.CustomChain != nil {
		custom := *explorer.CustomChain
		target.CustomChain = &custom
	}

	if explorer.APIKey.IsZero() {
		target.Skipped = domain.MissingVerificationKeyError{Network: network.Name, APIKeyRef: explorer.APIKeyRef}
		return target
	}

	target.Available = true
	return target
}

func (uc *ResolveNetwork) nameOrDefault(name string) string {
	if name == "" && uc.config != nil {
		return uc.config.Network
	}
	return name
}

func lookup(snap *Snapshot, name string) (*domain.Network, error) {
	if name == "" {
		return nil, ErrNoNetwork
	}
	return snap.Networks.Get(name)
}
