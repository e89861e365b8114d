package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redpill/charting/pkg/httpapi"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the persistence API for the GUI front-end",
	Long: `Start the local JSON API the charting front-end invokes its commands on.
The server binds to loopback and shuts down cleanly on SIGINT/SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}
		if listenAddr != "" {
			cfg.Listen = listenAddr
		}

		// The config file may carry its own log level; --verbose still wins.
		if !verbose {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.Level(),
			}))
			slog.SetDefault(logger)
		}

		svc, err := newServiceWith(cfg)
		if err != nil {
			fatal("Failed to initialize service", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := httpapi.NewServer(svc, cfg.Listen, slog.Default())
		if err := server.Run(ctx); err != nil {
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (overrides config)")
}
