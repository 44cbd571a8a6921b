package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-networks/internal/cli/render"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		write bool
		merge bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export [rpc_endpoints] and [etherscan] for foundry.toml",
		Long: `Render the registry as foundry.toml [rpc_endpoints] and [etherscan] tables.

Operator-supplied endpoints and API keys are written as ${KEY} references so
secrets never end up in the file. By default the tables are printed; --write
updates foundry.toml in place and leaves every other table untouched.`,
		Example: `  # Print the tables
  trebnet export

  # Update foundry.toml, keeping entries the registry does not know about
  trebnet export --write --merge`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportFoundry.Run(cmd.Context(), usecase.ExportFoundryParams{
				Write: write,
				Merge: merge,
			})
			if err != nil {
				return err
			}

			renderer := render.NewExportRenderer(cmd.OutOrStdout(), outputFormat(app))
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the tables into foundry.toml")
	cmd.Flags().BoolVar(&merge, "merge", false, "Keep existing entries that reference env vars or are unknown")

	return cmd
}
