// Root command for the satchel CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// logger is the CLI-wide logger. A no-op logger unless --verbose is given;
// the data model itself never logs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "Satchel is a local personal information manager",
	Long: `Satchel keeps an address book and a note collection on your machine.
Contacts carry validated phone numbers, emails, and birthdays; notes carry
tags. Everything is stored in a single local snapshot, saved after every
change.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return initLogger(cfg.GetString(cfgKeyLogLevel))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(birthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// initLogger builds the CLI logger. --verbose forces debug; otherwise the
// config.yaml log_level applies. With neither, the no-op logger stays.
func initLogger(configLevel string) error {
	if !flagVerbose && configLevel == "" {
		return nil
	}

	zcfg := zap.NewDevelopmentConfig()
	if flagVerbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		level, err := zap.ParseAtomicLevel(configLevel)
		if err != nil {
			return fmt.Errorf("parse log_level %q: %w", configLevel, err)
		}
		zcfg.Level = level
	}

	built, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	logger = built
	return nil
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > SATCHEL_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > SATCHEL_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
