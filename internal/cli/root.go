package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-networks/internal/adapters/progress"
	"github.com/trebuchet-org/treb-networks/internal/app"
	"github.com/trebuchet-org/treb-networks/internal/cli/render"
	"github.com/trebuchet-org/treb-networks/internal/config"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// commands that never need a project
var skipInit = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// commands that run until interrupted and get no timeout
var longRunning = map[string]bool{
	"watch": true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trebnet",
		Short: "Network and verification parameters for EVM deployments",
		Long: `trebnet resolves RPC endpoints, chain IDs, signing credentials and block
explorer routes for every supported EVM network.

Values are read from the process environment, .env.local, .env and an
optional vars file, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipInit[cmd.Name()] {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = usecase.NopProgress{}
			if !v.GetBool("json") && !v.GetBool("yaml") && !v.GetBool("non_interactive") {
				sink = progress.NewSpinnerProgressReporter()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 && !longRunning[cmd.Name()] {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().Bool("strict", false, "Refuse the well-known default deployer key on non-local networks")
	rootCmd.PersistentFlags().String("vars-file", "", "TOML file of additional operator values")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	resolveCmd := NewResolveCmd()
	resolveCmd.GroupID = "main"
	rootCmd.AddCommand(resolveCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "main"
	rootCmd.AddCommand(checkCmd)

	// Management commands
	exportCmd := NewExportCmd()
	exportCmd.GroupID = "management"
	rootCmd.AddCommand(exportCmd)

	watchCmd := NewWatchCmd()
	watchCmd.GroupID = "management"
	rootCmd.AddCommand(watchCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// outputFormat returns the format selected by --json or --yaml
func outputFormat(app *app.App) render.Format {
	return render.FormatFor(app.Config.JSON, app.Config.YAML)
}
