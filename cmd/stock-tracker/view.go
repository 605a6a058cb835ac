package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreasstove999/stock-tracker/internal/client"
	"github.com/andreasstove999/stock-tracker/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the inventory of a running server in the terminal",
	Long: `Opens a full screen inventory viewer backed by GET /api/inventory.

Keys:
  type     filter by name, color, size or length
  ctrl+r   refresh
  enter    retry after an error
  esc      quit`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().String("url", "", "server base URL, overrides STOCK_TRACKER_URL")
	viewCmd.Flags().Duration("auto-refresh", 0, "refresh interval, 0 disables (overrides AUTO_REFRESH)")
}

func runView(cmd *cobra.Command, args []string) error {
	if u, _ := cmd.Flags().GetString("url"); u != "" {
		cfg.Viewer.ServerURL = u
	}
	interval := cfg.Viewer.AutoRefresh
	if cmd.Flags().Changed("auto-refresh") {
		interval, _ = cmd.Flags().GetDuration("auto-refresh")
	}
	if interval < 0 {
		return fmt.Errorf("auto refresh interval must not be negative, got %s", interval)
	}

	c, err := client.New(cfg.Viewer.ServerURL, nil)
	if err != nil {
		return err
	}
	// The viewer owns the terminal; keep the logger quiet unless something breaks.
	logger.Debug("starting viewer",
		zap.String("url", cfg.Viewer.ServerURL),
		zap.Duration("auto_refresh", interval),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	return viewer.Run(ctx, c, viewer.Options{AutoRefresh: interval})
}
