package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-networks/internal/cli/render"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var (
		searchTerm string
		localOnly  bool
		verifiable bool
		reveal     bool
	)

	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"ls"},
		Short:   "List supported networks",
		Long: `List every network in the registry with its chain ID, RPC endpoint and
block explorer route.

Endpoints supplied through operator values are masked unless --reveal is set.`,
		Example: `  # List all networks
  trebnet networks

  # Find the Optimism testnets
  trebnet networks --search opsep

  # Only networks that can be verified right now
  trebnet networks --verifiable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{
				Search:         searchTerm,
				LocalOnly:      localOnly,
				VerifiableOnly: verifiable,
			})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), outputFormat(app), reveal)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&searchTerm, "search", "", "Fuzzy match on the network name")
	cmd.Flags().BoolVar(&localOnly, "local", false, "Only show local networks")
	cmd.Flags().BoolVar(&verifiable, "verifiable", false, "Only show networks with a block explorer route")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show operator-supplied RPC URLs in full")

	return cmd
}
