// Root command for the backlog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backlog/internal/memory"
	"github.com/mesh-intelligence/backlog/internal/paths"
	"github.com/mesh-intelligence/backlog/internal/sqlite"
	"github.com/mesh-intelligence/backlog/pkg/backlog"
	"github.com/mesh-intelligence/backlog/pkg/types"
)

const (
	exitSuccess = 0
	exitError   = 1
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDriver and configDataDir hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configDriver  string
	configDataDir string
)

// driver is the attached storage driver, shared by all subcommands.
var driver types.Driver

var rootCmd = &cobra.Command{
	Use:     "backlog",
	Short:   "Backlog is a local-first task and backlog manager",
	Version: backlog.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDriver = cfg.GetString(cfgKeyDriver)
		configDataDir = cfg.GetString(cfgKeyDataDir)

		return attachDriver()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return detachDriver()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.backlog)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.backlog-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(newListCmd)
	rootCmd.AddCommand(listCmd)
}

// resolveConfigDir returns the configuration directory following precedence:
// --config-dir flag > BACKLOG_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory path following precedence:
// --data-dir flag > config.yaml data_dir > BACKLOG_DATA_DIR env > default $(CWD)/.backlog-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// attachDriver builds the runtime configuration, selects the storage driver
// named by config.yaml, and attaches it. The attached driver is held in the
// package-level driver variable until detachDriver releases it.
func attachDriver() error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Driver:  configDriver,
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var backend types.Driver
	switch cfg.Driver {
	case types.DriverSQLite:
		backend = sqlite.NewBackend()
	case types.DriverMemory:
		backend = memory.NewBackend()
	}

	if err := backend.Attach(cfg); err != nil {
		return fmt.Errorf("attach driver: %w", err)
	}

	driver = backend
	return nil
}

// detachDriver detaches the storage driver and releases resources.
func detachDriver() error {
	if driver != nil {
		return driver.Detach()
	}
	return nil
}
