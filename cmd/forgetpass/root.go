// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forgetpass/forgetpass/internal/config"
	"github.com/forgetpass/forgetpass/internal/logging"
	"github.com/forgetpass/forgetpass/internal/xdg"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the ForgetPass CLI.
// Running it without a subcommand starts the interactive flow.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forgetpass",
		Short: "ForgetPass - deterministic password generator",
		Long: `ForgetPass regenerates strong passwords on demand from a master key
and a list of keywords. Nothing is stored and nothing leaves the
machine: the same inputs always produce the same password, so there
is no vault to lose, sync, or leak.

Run without arguments for the interactive flow, or use the generate
subcommand for scripted one-shot generation.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd.Context(), cmd, nil)
		},
	}

	// Global flags for config path and log routing. The log flag
	// defaults must match config.Default so an unset flag never
	// shadows a value from the config file.
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: XDG config dir)")
	cmd.PersistentFlags().String("log-format", "text", "log format (text or json)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, or error)")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewFingerprintCmd())

	return cmd
}

// loadAppConfig builds the effective configuration from file and flags
// and installs the default logger. An explicit --config path must
// exist; the default XDG path may be absent.
func loadAppConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFile
	if path == "" {
		path = xdg.ConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetDefault("forgetpass", version, cfg.Logging.Format, cfg.Logging.Level)
	return cfg, nil
}

// styledOutput reports whether w is a terminal that can take ANSI styling.
func styledOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
