package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-networks/internal/app"
	"github.com/trebuchet-org/treb-networks/internal/cli/render"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve deployment or verification parameters for a network",
		Long: `Resolve the parameters a deployment or verification run needs for one network.

The network is taken from the argument, --chain-id, --network or the configured
default, in that order. Names must match exactly. In interactive mode a picker is
shown when none of those is set.`,
	}

	cmd.AddCommand(newResolveDeployCmd())
	cmd.AddCommand(newResolveVerifyCmd())

	return cmd
}

func newResolveDeployCmd() *cobra.Command {
	var (
		reveal  bool
		chainID uint64
	)

	cmd := &cobra.Command{
		Use:   "deploy [network]",
		Short: "Resolve RPC endpoint, chain ID and signer",
		Example: `  trebnet resolve deploy sepolia
  trebnet resolve deploy --chain-id 11155111 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name, err := networkArg(cmd, app, args, chainID)
			if err != nil {
				return err
			}

			target, err := app.ResolveNetwork.ResolveForDeployment(cmd.Context(), name)
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentTargetRenderer(cmd.OutOrStdout(), outputFormat(app), reveal)
			return renderer.Render(target)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show operator-supplied RPC URLs in full")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "Select the network by chain ID instead of name")

	return cmd
}

func newResolveVerifyCmd() *cobra.Command {
	var (
		reveal  bool
		chainID uint64
	)

	cmd := &cobra.Command{
		Use:   "verify [network]",
		Short: "Resolve the block explorer route and API key",
		Example: `  trebnet resolve verify base
  trebnet resolve verify --network celo --yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name, err := networkArg(cmd, app, args, chainID)
			if err != nil {
				return err
			}

			target, err := app.ResolveNetwork.ResolveForVerification(cmd.Context(), name)
			if err != nil {
				return err
			}

			renderer := render.NewVerificationTargetRenderer(cmd.OutOrStdout(), outputFormat(app), reveal)
			return renderer.Render(target)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show the API key")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "Select the network by chain ID instead of name")

	return cmd
}

// networkArg picks the network from the argument, the chain id flag or the
// configured default, falling back to an interactive picker
func networkArg(cmd *cobra.Command, app *app.App, args []string, chainID uint64) (string, error) {
	if cmd.Flags().Changed("chain-id") {
		if len(args) == 1 {
			return "", fmt.Errorf("pass either a network name or --chain-id, not both")
		}
		network, err := app.ResolveNetwork.NetworkByChainID(chainID)
		if err != nil {
			return "", err
		}
		return network.Name, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if app.Config.Network != "" {
		return app.Config.Network, nil
	}

	if app.Config.NonInteractive {
		return "", fmt.Errorf("%w: pass a network name or use --network", usecase.ErrNoNetwork)
	}

	networks := app.Catalog.Snapshot().Networks.List()
	network, err := app.Selector.SelectNetwork(cmd.Context(), networks, "Select network")
	if err != nil {
		return "", err
	}
	return network.Name, nil
}
