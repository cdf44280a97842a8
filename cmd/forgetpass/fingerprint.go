// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgetpass/forgetpass/internal/render"
)

// fingerprintConfig holds configuration for the fingerprint command.
type fingerprintConfig struct {
	jsonOut bool
}

// NewFingerprintCmd creates the fingerprint subcommand.
func NewFingerprintCmd() *cobra.Command {
	cfg := &fingerprintConfig{}

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Show this machine's hardware fingerprint",
		Long: `Fingerprint prints the hardware-derived identifier used as the default
master key. Run it after an OS reinstall or hardware change to check
whether fingerprint-based passwords will still regenerate here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFingerprint(cmd.Context(), cfg, cmd, nil)
		},
	}

	cmd.Flags().BoolVar(&cfg.jsonOut, "json", false, "emit the result as JSON")

	return cmd
}

// runFingerprint resolves and prints the hardware fingerprint.
// If deps is nil, default implementations are used.
func runFingerprint(ctx context.Context, cfg *fingerprintConfig, cmd *cobra.Command, deps *AppDeps) error {
	if deps == nil {
		deps = &AppDeps{}
	}

	appCfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	deps.fillDefaults(appCfg)

	fp := deps.Secrets.Fingerprint(ctx)

	out := cmd.OutOrStdout()
	if cfg.jsonOut {
		payload := struct {
			Fingerprint string `json:"fingerprint"`
		}{fp}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	render.New(out, styledOutput(out)).Fingerprint(fp)
	return nil
}
