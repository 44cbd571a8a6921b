package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-networks/internal/adapters/credentials"
	"github.com/trebuchet-org/treb-networks/internal/adapters/snapshot"
	"github.com/trebuchet-org/treb-networks/internal/config"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

const testKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalog(t *testing.T, values map[string]string, strict bool) *usecase.Catalog {
	t.Helper()
	builder := snapshot.NewBuilderWithLoader(func() (*config.ValueStore, error) {
		return config.NewValueStore(config.Source{Name: "test", Values: values}), nil
	}, strict, discardLogger())

	catalog, err := usecase.NewCatalog(builder, discardLogger())
	require.NoError(t, err)
	return catalog
}

func newResolver(t *testing.T, values map[string]string, cfg *domainconfig.RuntimeConfig) *usecase.ResolveNetwork {
	t.Helper()
	if cfg == nil {
		cfg = &domainconfig.RuntimeConfig{}
	}
	return usecase.NewResolveNetwork(newCatalog(t, values, cfg.StrictCredentials), cfg, discardLogger())
}

func TestResolveForDeployment(t *testing.T) {
	tests := []struct {
		name        string
		values      map[string]string
		cfg         *domainconfig.RuntimeConfig
		network     string
		wantNetwork string
		wantChainID uint64
		wantURL     string
		wantSigner  bool
		wantUnsafe  bool
		wantErr     error
	}{
		{
			name:        "sepolia defaults",
			network:     "sepolia",
			wantNetwork: "sepolia",
			wantChainID: 11155111,
			wantURL:     "https://rpc.sepolia.org",
			wantSigner:  true,
			wantUnsafe:  true,
		},
		{
			name:        "sepolia override",
			values:      map[string]string{"ETH_SEPOLIA_TESTNET_URL": "https://sepolia.example.org", "CREATEX_DEPLOYER": testKey},
			network:     "sepolia",
			wantNetwork: "sepolia",
			wantChainID: 11155111,
			wantURL:     "https://sepolia.example.org",
			wantSigner:  true,
		},
		{
			name:        "default network from config",
			cfg:         &domainconfig.RuntimeConfig{Network: "baseMain"},
			wantNetwork: "baseMain",
			wantChainID: 8453,
			wantURL:     "https://mainnet.base.org",
			wantSigner:  true,
			wantUnsafe:  true,
		},
		{
			name:        "localhost has no signer",
			network:     "localhost",
			wantNetwork: "localhost",
			wantURL:     "http://127.0.0.1:8545",
		},
		{
			name:        "localhost has no signer even with a broken key",
			values:      map[string]string{"CREATEX_DEPLOYER": "0xbroken"},
			cfg:         &domainconfig.RuntimeConfig{StrictCredentials: true},
			network:     "localhost",
			wantNetwork: "localhost",
			wantURL:     "http://127.0.0.1:8545",
		},
		{
			name:    "strict mode refuses the default key",
			cfg:     &domainconfig.RuntimeConfig{StrictCredentials: true},
			network: "ethMain",
			wantErr: domain.ErrMissingCredential,
		},
		{
			name:    "malformed key blocks deployment",
			values:  map[string]string{"CREATEX_DEPLOYER": "0xbroken"},
			network: "ethMain",
			wantErr: domain.ErrMissingCredential,
		},
		{
			name:    "unknown network",
			network: "notachain",
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "chain id is not a name",
			network: "1",
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "polygon chain id is not a name",
			network: "137",
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "upper case name",
			network: "SEPOLIA",
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "mixed case name",
			network: "EthMain",
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "no network",
			wantErr: usecase.ErrNoNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newResolver(t, tt.values, tt.cfg)

			target, err := uc.ResolveForDeployment(context.Background(), tt.network)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, target)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNetwork, target.Network)
			assert.Equal(t, tt.wantChainID, target.ChainID)
			assert.Equal(t, tt.wantURL, target.RPCURL)
			if !tt.wantSigner {
				assert.Nil(t, target.Signer)
				assert.True(t, target.Local)
				return
			}
			require.NotNil(t, target.Signer)
			assert.Equal(t, tt.wantUnsafe, target.Signer.Unsafe())
			assert.NotEqual(t, "0x0000000000000000000000000000000000000000", target.Signer.Address().Hex())
		})
	}
}

func TestResolveForDeployment_MissingCredentialNamesNetwork(t *testing.T) {
	uc := newResolver(t, map[string]string{"CREATEX_DEPLOYER": "0x1234"}, nil)

	_, err := uc.ResolveForDeployment(context.Background(), "polygon")
	require.Error(t, err)

	var missing domain.MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "polygon", missing.Network)
	assert.Equal(t, "CREATEX_DEPLOYER", missing.Ref)
}

func TestResolveForDeployment_InjectedCredentials(t *testing.T) {
	cred, err := credentials.Parse("CREATEX_DEPLOYER", testKey)
	require.NoError(t, err)

	tests := []struct {
		name     string
		provider usecase.CredentialProvider
		wantErr  bool
	}{
		{name: "static credential", provider: credentials.StaticProvider{"CREATEX_DEPLOYER": cred}},
		{name: "no credentials", provider: credentials.StaticProvider{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := newCatalog(t, nil, false).Snapshot()
			builder := usecase.SnapshotBuilderFunc(func(ctx context.Context) (*usecase.Snapshot, error) {
				snap := *base
				snap.Credentials = tt.provider
				return &snap, nil
			})
			catalog, err := usecase.NewCatalog(builder, discardLogger())
			require.NoError(t, err)

			uc := usecase.NewResolveNetwork(catalog, &domainconfig.RuntimeConfig{}, discardLogger())
			target, err := uc.ResolveForDeployment(context.Background(), "arbitrumMain")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMissingCredential)
				return
			}
			require.NoError(t, err)
			assert.Same(t, cred, target.Signer.Credential)
			assert.False(t, target.Signer.Unsafe())

			local, err := uc.ResolveForDeployment(context.Background(), "hardhat")
			require.NoError(t, err)
			assert.Nil(t, local.Signer)
		})
	}
}

func TestResolveForVerification(t *testing.T) {
	tests := []struct {
		name          string
		values        map[string]string
		network       string
		wantChainID   uint64
		wantChain     string
		wantAvailable bool
		wantCustom    *domain.CustomChain
		wantSkipped   bool
		wantErr       error
	}{
		{
			name:        "holesky custom chain without key is skipped",
			network:     "holesky",
			wantChainID: 17000,
			wantChain:   "holesky",
			wantCustom: &domain.CustomChain{
				ChainID:    17000,
				APIURL:     "https://api-holesky.etherscan.io/api",
				BrowserURL: "https://holesky.etherscan.io",
			},
			wantSkipped: true,
		},
		{
			name:          "holesky with key",
			values:        map[string]string{"ETHERSCAN_API_KEY": "abc"},
			network:       "holesky",
			wantChainID:   17000,
			wantChain:     "holesky",
			wantAvailable: true,
			wantCustom: &domain.CustomChain{
				ChainID:    17000,
				APIURL:     "https://api-holesky.etherscan.io/api",
				BrowserURL: "https://holesky.etherscan.io",
			},
		},
		{
			name:          "native chain",
			values:        map[string]string{"OPTIMISM_API_KEY": "op"},
			network:       "optimismMain",
			wantChainID:   10,
			wantChain:     "optimisticEthereum",
			wantAvailable: true,
		},
		{
			name:        "local network has no explorer",
			network:     "localhost",
			wantSkipped: true,
		},
		{
			name:    "unknown network",
			network: "xdai",
			wantErr: domain.ErrUnknownNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newResolver(t, tt.values, nil)

			target, err := uc.ResolveForVerification(context.Background(), tt.network)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, target)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantChainID, target.ChainID)
			assert.Equal(t, tt.wantChain, target.Chain)
			assert.Equal(t, tt.wantAvailable, target.Available)
			assert.Equal(t, tt.wantCustom, target.CustomChain)
			assert.True(t, target.Sourcify.Enabled)
			if tt.wantSkipped {
				assert.ErrorIs(t, target.Skipped, domain.ErrMissingVerificationKey)
			} else {
				assert.NoError(t, target.Skipped)
			}
		})
	}
}

func TestResolveForVerification_CustomChainIsACopy(t *testing.T) {
	uc := newResolver(t, nil, nil)

	first, err := uc.ResolveForVerification(context.Background(), "holesky")
	require.NoError(t, err)
	first.CustomChain.ChainID = 1

	second, err := uc.ResolveForVerification(context.Background(), "holesky")
	require.NoError(t, err)
	assert.Equal(t, uint64(17000), second.CustomChain.ChainID)
}

func TestResolve_ConcurrentCallsAreEqual(t *testing.T) {
	uc := newResolver(t, map[string]string{"CREATEX_DEPLOYER": testKey, "ETHERSCAN_API_KEY": "k"}, nil)

	const workers = 32
	deployments := make([]*domain.DeploymentTarget, workers)
	verifications := make([]*domain.VerificationTarget, workers)
	errs := make([]error, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			deployments[i], errs[2*i] = uc.ResolveForDeployment(context.Background(), "sepolia")
			verifications[i], errs[2*i+1] = uc.ResolveForVerification(context.Background(), "sepolia")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	for i := 1; i < workers; i++ {
		assert.Equal(t, deployments[0], deployments[i])
		assert.Equal(t, verifications[0], verifications[i])
	}
}

func TestResolveNetwork_Network(t *testing.T) {
	uc := newResolver(t, nil, &domainconfig.RuntimeConfig{Network: "gnosis"})

	network, err := uc.Network("")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), network.ChainID)

	_, err = uc.Network("42161")
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)

	network, err = uc.NetworkByChainID(42161)
	require.NoError(t, err)
	assert.Equal(t, "arbitrumMain", network.Name)

	_, err = uc.NetworkByChainID(999999)
	assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
	var unknownID domain.UnknownChainIDError
	require.True(t, errors.As(err, &unknownID))
	assert.Equal(t, uint64(999999), unknownID.ChainID)

	_, err = uc.Network("arbitrum")
	var unknown domain.UnknownNetworkError
	require.True(t, errors.As(err, &unknown))
	assert.NotEmpty(t, unknown.Suggestions)
}
