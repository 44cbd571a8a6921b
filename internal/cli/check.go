package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-networks/internal/cli/render"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var (
		probeRPC     bool
		includeLocal bool
		reveal       bool
	)

	cmd := &cobra.Command{
		Use:   "check [network...]",
		Short: "Validate the network tables and probe RPC endpoints",
		Long: `Check that the network and explorer tables agree with each other.

With --rpc every selected endpoint is asked for its chain ID and the answer is
compared with the registry. Probes run concurrently; use --rpc-concurrency and
--rpc-rate-limit to stay under provider limits.`,
		Example: `  # Table integrity only
  trebnet check

  # Probe two endpoints
  trebnet check sepolia holesky --rpc

  # Probe everything, two requests per second
  trebnet check --rpc --rpc-rate-limit 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckNetworks.Run(cmd.Context(), usecase.CheckNetworksParams{
				Networks:     args,
				ProbeRPC:     probeRPC,
				IncludeLocal: includeLocal,
			})
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout(), outputFormat(app), reveal)
			if err := renderer.Render(result); err != nil {
				return err
			}

			if result.Integrity != nil {
				return fmt.Errorf("network tables are inconsistent")
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d network(s) failed the RPC check", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&probeRPC, "rpc", false, "Ask each RPC endpoint for its chain ID")
	cmd.Flags().BoolVar(&includeLocal, "include-local", false, "Also probe local endpoints")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show RPC URLs in full")
	cmd.Flags().Int("rpc-concurrency", 8, "Maximum concurrent probes")
	cmd.Flags().Float64("rpc-rate-limit", 0, "Maximum probes per second (0 for no limit)")
	cmd.Flags().Duration("rpc-timeout", 10*time.Second, "Timeout for each probe")

	return cmd
}
