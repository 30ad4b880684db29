package cmd

import (
	"fmt"
	"os"

	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-sync",
	Short: "Inventory Sync Utility",
	Long: `Inventory Sync keeps barcode-scanned inventory consistent across
multiple workstations. It exports a workstation's local store into a
portable bundle, imports foreign bundles with merge or replace semantics,
and consolidates a fleet of exports into a single master store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with debug level gives ISO8601 timestamps, which
		// suits an interactive CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger. When dbPath is
// non-empty it overrides the configured store location, matching the --db
// flag's meaning: operate on this sqlite file.
func bootstrap(dbPath string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath != "" {
		cfg.Database.Driver = database.DriverSQLite
		cfg.Database.Path = dbPath
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logg, nil
}
