package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andreasstove999/stock-tracker/internal/config"
	httpapi "github.com/andreasstove999/stock-tracker/internal/http"
	"github.com/andreasstove999/stock-tracker/internal/inventory"
	"github.com/andreasstove999/stock-tracker/internal/sheets"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, overrides HTTP_ADDR")
}

// newReader picks the spreadsheet source named by the configuration.
func newReader(c config.Config, logger *zap.Logger) *inventory.Reader {
	if c.Source.Kind == config.SourceWorkbook {
		wb := sheets.Workbook{Dir: c.Source.WorkbookDir}
		return inventory.NewReader(c.Google, wb.Open, logger, inventory.WithoutCredentialCheck())
	}
	return inventory.NewReader(c.Google, sheets.OpenGoogle, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Source.Kind == config.SourceGoogle && !cfg.Google.Configured() {
		logger.Warn("google credentials not configured; inventory requests will fail until they are set")
	}

	h := httpapi.NewHandler(newReader(cfg, logger), logger)
	r := httpapi.NewRouter(h, httpapi.RouterConfig{
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		Logger:           logger,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("source", cfg.Source.Kind),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
