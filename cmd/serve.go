package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spriy4nshu/portfolio/internal/analytics"
	"github.com/spriy4nshu/portfolio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio and the contact endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		assets, err := server.Assets(cfg)
		if err != nil {
			return err
		}
		deps := server.Deps{Assets: assets}

		if cfg.Analytics.Enabled {
			store, err := analytics.Open(cfg.Analytics.DBPath)
			if err != nil {
				return fmt.Errorf("opening analytics database: %w", err)
			}
			defer store.Close()

			tracker, err := analytics.NewTracker(store, cfg.Analytics.Salt, cfg.Site.BasePath)
			if err != nil {
				return err
			}
			tracker.Cleanup(ctx, cfg.Analytics.RetentionDays)
			deps.Tracker = tracker
			log.Printf("Visitor analytics enabled: %s", cfg.Analytics.DBPath)
		}

		srv, err := server.New(cfg, deps)
		if err != nil {
			return err
		}

		errc := make(chan error, 1)
		go func() { errc <- srv.Start() }()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "HTTP listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
