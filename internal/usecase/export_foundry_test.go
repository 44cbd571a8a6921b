package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-networks/internal/adapters/snapshot"
	"github.com/trebuchet-org/treb-networks/internal/config"
	domainconfig "github.com/trebuchet-org/treb-networks/internal/domain/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// memoryFoundryStore keeps foundry.toml sections in memory
type memoryFoundryStore struct {
	cfg   *domainconfig.FoundryConfig
	saved *domainconfig.FoundryConfig
}

func (s *memoryFoundryStore) Load(ctx context.Context) (*domainconfig.FoundryConfig, error) {
	if s.cfg == nil {
		return &domainconfig.FoundryConfig{}, nil
	}
	return s.cfg, nil
}

func (s *memoryFoundryStore) Save(ctx context.Context, cfg *domainconfig.FoundryConfig) error {
	s.saved = cfg
	return nil
}

func (s *memoryFoundryStore) GetPath() string {
	return "/project/foundry.toml"
}

func TestExportFoundry(t *testing.T) {
	values := map[string]string{
		"ETH_SEPOLIA_TESTNET_URL": "https://sepolia.example.org/v2/secret",
		"TENDERLY_FORK_ID":        "abc-123",
		"ETHERSCAN_API_KEY":       "etherscan-secret",
	}
	store := &memoryFoundryStore{}
	uc := usecase.NewExportFoundry(newCatalog(t, values, false), store)

	result, err := uc.Run(context.Background(), usecase.ExportFoundryParams{})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Nil(t, store.saved)
	assert.Equal(t, "/project/foundry.toml", result.Path)

	endpoints := result.Config.RpcEndpoints
	assert.Equal(t, "${ETH_SEPOLIA_TESTNET_URL}", endpoints["sepolia"])
	assert.Equal(t, "https://rpc.tenderly.co/fork/${TENDERLY_FORK_ID}", endpoints["tenderly"])
	assert.Equal(t, "https://holesky.rpc.thirdweb.com", endpoints["holesky"])
	assert.Equal(t, "http://127.0.0.1:8545", endpoints["localhost"])
	assert.NotContains(t, endpoints, "hardhat")
	assert.Contains(t, result.InProcess, "hardhat")
	assert.Equal(t, 2, result.Overridden)

	for name, url := range endpoints {
		assert.NotContains(t, url, "secret", name)
		assert.NotContains(t, url, "abc-123", name)
	}

	etherscan := result.Config.Etherscan
	require.Contains(t, etherscan, "sepolia")
	assert.Equal(t, domainconfig.EtherscanConfig{Key: "${ETHERSCAN_API_KEY}", Chain: 11155111}, etherscan["sepolia"])
	assert.Equal(t, domainconfig.EtherscanConfig{
		Key:   "${ETHERSCAN_API_KEY}",
		URL:   "https://api-holesky.etherscan.io/api",
		Chain: 17000,
	}, etherscan["holesky"])
	assert.NotContains(t, etherscan, "polygon")
	assert.Contains(t, result.NoAPIKey, "polygon")
}

func TestExportFoundry_WriteAndMerge(t *testing.T) {
	existing := &domainconfig.FoundryConfig{
		Profile: map[string]any{"default": map[string]any{"src": "src"}},
		RpcEndpoints: map[string]string{
			"sepolia":  "${MY_SEPOLIA_RPC}",
			"ethMain":  "https://stale.example.org",
			"internal": "https://internal.example.org",
		},
		Etherscan: map[string]domainconfig.EtherscanConfig{
			"internal": {Key: "${INTERNAL_KEY}", URL: "https://internal.example.org/api"},
		},
	}

	tests := []struct {
		name        string
		params      usecase.ExportFoundryParams
		wantSepolia string
		wantEthMain string
		wantKept    []string
	}{
		{
			name:        "write replaces the network sections",
			params:      usecase.ExportFoundryParams{Write: true},
			wantSepolia: "https://rpc.sepolia.org",
			wantEthMain: "https://rpc.ankr.com/eth",
		},
		{
			name:        "merge keeps references and unknown entries",
			params:      usecase.ExportFoundryParams{Write: true, Merge: true},
			wantSepolia: "${MY_SEPOLIA_RPC}",
			wantEthMain: "https://rpc.ankr.com/eth",
			wantKept:    []string{"etherscan.internal", "rpc_endpoints.internal", "rpc_endpoints.sepolia"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryFoundryStore{cfg: existing}
			uc := usecase.NewExportFoundry(newCatalog(t, nil, false), store)

			result, err := uc.Run(context.Background(), tt.params)
			require.NoError(t, err)
			assert.True(t, result.Written)
			require.NotNil(t, store.saved)
			assert.Same(t, result.Config, store.saved)
			assert.Equal(t, existing.Profile, store.saved.Profile)

			assert.Equal(t, tt.wantSepolia, store.saved.RpcEndpoints["sepolia"])
			assert.Equal(t, tt.wantEthMain, store.saved.RpcEndpoints["ethMain"])
			assert.Equal(t, tt.wantKept, result.Kept)
			if tt.params.Merge {
				assert.Equal(t, "https://internal.example.org", store.saved.RpcEndpoints["internal"])
			} else {
				assert.NotContains(t, store.saved.RpcEndpoints, "internal")
			}
		})
	}
}

func TestExportFoundry_VarsFileValues(t *testing.T) {
	builder := snapshot.NewBuilderWithLoader(func() (*config.ValueStore, error) {
		return config.NewValueStore(
			config.Source{Name: "environment", Values: map[string]string{"ETH_MAINNET_URL": "https://eth.example.org"}},
			config.Source{Name: "vars.toml", FileOnly: true, Values: map[string]string{
				"ETH_SEPOLIA_TESTNET_URL": "https://sepolia.example.org/v2/secret",
				"TENDERLY_DEVNET_ID":      "dev-1",
				"ETHERSCAN_API_KEY":       "etherscan-secret",
			}},
		), nil
	}, false, discardLogger())
	catalog, err := usecase.NewCatalog(builder, discardLogger())
	require.NoError(t, err)

	result, err := usecase.NewExportFoundry(catalog, &memoryFoundryStore{}).Run(context.Background(), usecase.ExportFoundryParams{})
	require.NoError(t, err)

	endpoints := result.Config.RpcEndpoints
	assert.Equal(t, "https://rpc.sepolia.org", endpoints["sepolia"])
	assert.Equal(t, "${ETH_MAINNET_URL}", endpoints["ethMain"])
	assert.NotContains(t, endpoints, "devnet")
	assert.Equal(t, 1, result.Overridden)

	assert.NotContains(t, result.Config.Etherscan, "sepolia")
	assert.NotContains(t, result.NoAPIKey, "sepolia")

	assert.ElementsMatch(t, []string{
		"ETH_SEPOLIA_TESTNET_URL (vars.toml)",
		"TENDERLY_DEVNET_ID (vars.toml)",
		"ETHERSCAN_API_KEY (vars.toml)",
	}, result.FileOnly)

	for name, url := range endpoints {
		assert.NotContains(t, url, "secret", name)
		assert.NotContains(t, url, "dev-1", name)
	}
}
