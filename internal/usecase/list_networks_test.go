package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-networks/internal/domain"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

func TestListNetworks(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]string
		params   usecase.ListNetworksParams
		validate func(t *testing.T, statuses []usecase.NetworkStatus)
	}{
		{
			name: "all networks",
			validate: func(t *testing.T, statuses []usecase.NetworkStatus) {
				assert.Greater(t, len(statuses), 90)
				names := lo.Map(statuses, func(s usecase.NetworkStatus, _ int) string { return s.Name })
				assert.Contains(t, names, "hardhat")
				assert.Contains(t, names, "ethMain")
				assert.Len(t, lo.Uniq(names), len(names))
			},
		},
		{
			name:   "local only",
			params: usecase.ListNetworksParams{LocalOnly: true},
			validate: func(t *testing.T, statuses []usecase.NetworkStatus) {
				names := lo.Map(statuses, func(s usecase.NetworkStatus, _ int) string { return s.Name })
				assert.ElementsMatch(t, []string{"hardhat", "localhost", "tenderly"}, names)
				for _, s := range statuses {
					assert.False(t, s.Verifiable, s.Name)
					assert.Empty(t, s.ExplorerClass, s.Name)
				}
			},
		},
		{
			name:   "search",
			params: usecase.ListNetworksParams{Search: "sepolia"},
			validate: func(t *testing.T, statuses []usecase.NetworkStatus) {
				require.NotEmpty(t, statuses)
				assert.Equal(t, "sepolia", statuses[0].Name)
				for _, s := range statuses {
					assert.Contains(t, strings.ToLower(s.Name), "sepolia")
				}
			},
		},
		{
			name:   "verifiable only with key",
			values: map[string]string{"ETHERSCAN_API_KEY": "k", "ETH_SEPOLIA_TESTNET_URL": "https://sepolia.example.org/v2/secret"},
			params: usecase.ListNetworksParams{VerifiableOnly: true, Search: "sepolia"},
			validate: func(t *testing.T, statuses []usecase.NetworkStatus) {
				status, ok := lo.Find(statuses, func(s usecase.NetworkStatus) bool { return s.Name == "sepolia" })
				require.True(t, ok)
				assert.True(t, status.Verifiable)
				assert.True(t, status.RPCOverridden)
				assert.Equal(t, domain.ExplorerClassNative, status.ExplorerClass)
				assert.NoError(t, status.VerifyDisabled)

				for _, s := range statuses {
					assert.NotEmpty(t, s.Chain, s.Name)
				}
			},
		},
		{
			name:   "missing key disables verification",
			params: usecase.ListNetworksParams{Search: "holesky"},
			validate: func(t *testing.T, statuses []usecase.NetworkStatus) {
				require.NotEmpty(t, statuses)
				holesky := statuses[0]
				assert.Equal(t, "holesky", holesky.Name)
				assert.Equal(t, domain.ExplorerClassCustom, holesky.ExplorerClass)
				assert.False(t, holesky.Verifiable)
				assert.False(t, holesky.RPCOverridden)
				assert.ErrorIs(t, holesky.VerifyDisabled, domain.ErrMissingVerificationKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewListNetworks(newCatalog(t, tt.values, false))

			result, err := uc.Run(context.Background(), tt.params)
			require.NoError(t, err)
			if len(tt.values) > 0 {
				assert.Equal(t, []string{"test"}, result.Sources)
			} else {
				assert.Empty(t, result.Sources)
			}
			tt.validate(t, result.Networks)
		})
	}
}
