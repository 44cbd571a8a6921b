package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-networks/internal/cli/render"
	"github.com/trebuchet-org/treb-networks/internal/usecase"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload values when .env, .env.local or the vars file change",
		Long: `Watch the value files and rebuild every table when one of them changes.

Each reload reports the networks whose endpoint or verification status changed.
A reload that fails keeps the previous configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			renderer := render.NewWatchRenderer(cmd.OutOrStdout(), outputFormat(app))
			renderer.RenderStart(app.WatchValues.Paths())

			return app.WatchValues.Run(ctx, usecase.WatchValuesParams{
				OnReload: func(event usecase.WatchEvent) {
					if err := renderer.Render(event); err != nil {
						app.Log.Warn("failed to render reload", "error", err)
					}
				},
			})
		},
	}

	cmd.Flags().Duration("watch-debounce", 250*time.Millisecond, "Quiet period before reloading")

	return cmd
}
