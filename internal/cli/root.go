// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package cli implements the cpusched command.
package cli

import (
	"log/slog"

	"github.com/petenewcomb/cpusched-go/internal/config"
	"github.com/petenewcomb/cpusched-go/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg config.Config

	// baseLogger carries no attributes; logger tags records from the
	// commands themselves.
	baseLogger *slog.Logger
	logger     *slog.Logger
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Simulate CPU scheduling policies",
		Long: "cpusched runs a set of processes through FCFS, SJN, SRTF, Round Robin, and\n" +
			"priority scheduling, and reports the resulting timeline and metrics.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			baseLogger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			logger = baseLogger.With("component", "cli")
			logger.Debug("configured", "config", flagConfig, "quantum", cfg.Quantum, "coalesce", cfg.Coalesce)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newPoliciesCmd(),
		newExampleCmd(),
		newServeCmd(),
	)

	return root
}
