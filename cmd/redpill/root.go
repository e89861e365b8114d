package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/redpill/charting/internal/platform"
	"github.com/redpill/charting/pkg/core"
)

var (
	verbose  bool
	dataRoot string
	cfgPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "redpill",
	Short: "Persistence backend for the RedPill charting desktop app",
	Long: `redpill hosts the persistence gateway behind the RedPill charting GUI.
It stores chart drawing state and sticky notes as JSON files under the
per-user application data directory and serves them to the front-end.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "", "Override the data root directory")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a yaml config file")
}

// loadConfig resolves the effective configuration: file values first, then
// flag overrides on top.
func loadConfig() (platform.Config, error) {
	cfg := platform.DefaultConfig()
	if cfgPath != "" {
		loaded, err := platform.LoadConfig(cfgPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if dataRoot != "" {
		cfg.DataRoot = dataRoot
	}
	return cfg, nil
}

// newService builds the service most commands operate on.
func newService() (*core.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newServiceWith(cfg)
}

// newServiceWith builds the service from an already-loaded config, so
// commands that need the config themselves don't parse it twice.
func newServiceWith(cfg platform.Config) (*core.Service, error) {
	opts := []platform.Option{
		platform.WithLogger(slog.Default()),
	}
	if cfg.DataRoot != "" {
		opts = append(opts, platform.WithDataRoot(cfg.DataRoot))
	}
	return platform.New(opts...)
}
