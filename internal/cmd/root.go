// Package cmd holds the cobra commands behind the systools binaries.
package cmd

import (
	"fmt"

	"github.com/harrison/systools/internal/config"
	"github.com/harrison/systools/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// addCommonFlags registers the flags shared by every command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: $SYSTOOLS_CONFIG or ~/.systools/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress diagnostic log messages (overrides --log-level)")
}

// loadConfig loads the config file named by --config (or the default
// location) and applies --log-level on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		if !logger.IsValidLevel(level) {
			return nil, fmt.Errorf("invalid --log-level %q, must be one of: trace, debug, info, warn, error", level)
		}
		level = logger.NormalizeLevel(level)
		cfg.MergeWithFlags(&level, nil, nil)
	}

	return cfg, nil
}

// newLogger builds the diagnostic logger for a command. Diagnostics go to the
// command's error stream; --quiet discards them.
func newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return logger.NewNoOpLogger()
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Tracef("%s: log level %s", cmd.Name(), log.Level())
	return log
}
