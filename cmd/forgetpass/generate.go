// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgetpass/forgetpass/internal/config"
	"github.com/forgetpass/forgetpass/internal/derive"
	"github.com/forgetpass/forgetpass/internal/prompt"
	"github.com/forgetpass/forgetpass/internal/render"
	"github.com/forgetpass/forgetpass/pkg/errutil"
)

// generateConfig holds configuration for the generate command.
type generateConfig struct {
	length         int
	useFingerprint bool
	masterKeyEnv   string
	copyToClip     bool
	jsonOut        bool
	quiet          bool
}

// Validate checks that the configuration is valid.
func (cfg *generateConfig) Validate() error {
	if cfg.length < derive.MinLength || cfg.length > derive.MaxLength {
		return fmt.Errorf("length must be between %d and %d, got %d", derive.MinLength, derive.MaxLength, cfg.length)
	}
	if cfg.jsonOut && cfg.quiet {
		return fmt.Errorf("--json and --quiet cannot be combined")
	}
	return nil
}

// NewGenerateCmd creates the generate subcommand.
func NewGenerateCmd() *cobra.Command {
	cfg := &generateConfig{}

	cmd := &cobra.Command{
		Use:   "generate <keyword>...",
		Short: "Generate a password from keywords without prompts",
		Long: `Generate derives a password from the given keywords in one shot.

The master key comes from --master-key-env, from the hardware
fingerprint with --use-fingerprint, or from a hidden prompt. The
result prints to stdout; prompts and notices go to stderr, so the
output stays pipeable.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cfg, cmd, args, nil)
		},
	}

	cmd.Flags().IntVarP(&cfg.length, "length", "l", 0, "password length (8-128; default from config)")
	cmd.Flags().BoolVar(&cfg.useFingerprint, "use-fingerprint", false, "derive the master key from this machine's hardware fingerprint")
	cmd.Flags().StringVar(&cfg.masterKeyEnv, "master-key-env", "", "environment variable holding the master key")
	cmd.Flags().BoolVar(&cfg.copyToClip, "copy", false, "copy the password to the clipboard and clear it after the configured delay")
	cmd.Flags().BoolVar(&cfg.jsonOut, "json", false, "emit the result as JSON")
	cmd.Flags().BoolVarP(&cfg.quiet, "quiet", "q", false, "print only the password")

	return cmd
}

// runGenerate derives a password non-interactively.
// If deps is nil, default implementations are used.
func runGenerate(ctx context.Context, cfg *generateConfig, cmd *cobra.Command, keywords []string, deps *AppDeps) error {
	if deps == nil {
		deps = &AppDeps{}
	}

	appCfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	deps.fillDefaults(appCfg)

	if !cmd.Flags().Changed("length") {
		cfg.length = appCfg.Defaults.Length
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	req := derive.Request{
		Keywords:       keywords,
		Length:         cfg.length,
		UseFingerprint: cfg.useFingerprint,
	}
	if !cfg.useFingerprint {
		key, err := resolveMasterKey(cfg, cmd)
		if err != nil {
			return err
		}
		req.MasterKey = key
	}

	slog.DebugContext(ctx, "generating password",
		"keyword_count", len(keywords),
		"length", cfg.length,
		"use_fingerprint", cfg.useFingerprint,
	)

	res, err := deps.Generator.Generate(ctx, req)
	if err != nil {
		errutil.LogError(slog.Default(), "password generation failed", err)
		return errors.New(userMessage(err))
	}

	if err := writeResult(cmd, cfg, res); err != nil {
		return err
	}

	if cfg.copyToClip {
		return copyResult(ctx, cfg, appCfg, deps, cmd, res)
	}
	return nil
}

// resolveMasterKey reads the manual master key from the environment or
// from a hidden prompt on stderr.
func resolveMasterKey(cfg *generateConfig, cmd *cobra.Command) (string, error) {
	if cfg.masterKeyEnv != "" {
		key := os.Getenv(cfg.masterKeyEnv)
		if key == "" {
			return "", fmt.Errorf("environment variable %s is not set or empty", cfg.masterKeyEnv)
		}
		return key, nil
	}

	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
	key, err := p.Secret("Master key (input hidden): ")
	if err != nil {
		return "", fmt.Errorf("failed to read master key: %w", err)
	}
	if key == "" {
		return "", fmt.Errorf("master key cannot be empty")
	}
	return key, nil
}

// writeResult prints the password in the selected format.
func writeResult(cmd *cobra.Command, cfg *generateConfig, res *derive.Result) error {
	out := cmd.OutOrStdout()
	switch {
	case cfg.jsonOut:
		payload := struct {
			Password     string `json:"password"`
			Length       int    `json:"length"`
			KeywordsUsed int    `json:"keywords_used"`
			Source       string `json:"source"`
		}{res.Password, res.Length, res.KeywordCount, res.Source}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case cfg.quiet:
		fmt.Fprintln(out, res.Password)
	default:
		render.New(out, styledOutput(out)).Result(res)
	}
	return nil
}

// copyResult copies the password and blocks until the scheduled clear
// so the clear cannot outlive the process. Interrupts clear immediately.
func copyResult(ctx context.Context, cfg *generateConfig, appCfg *config.Config, deps *AppDeps, cmd *cobra.Command, res *derive.Result) error {
	notices := render.New(cmd.ErrOrStderr(), styledOutput(cmd.ErrOrStderr()))
	secs := appCfg.Clipboard.ClearAfterSeconds

	if !cfg.quiet {
		if secs > 0 {
			notices.Info("Copying to clipboard; clearing in %d seconds (Ctrl-C clears now)...", secs)
		} else {
			notices.Info("Copying to clipboard...")
		}
	}

	if err := deps.CopyThenClear(ctx, res.Password, appCfg.ClearAfter()); err != nil {
		errutil.LogError(slog.Default(), "clipboard copy failed", err)
		return errors.New(userMessage(err))
	}

	if secs > 0 && !cfg.quiet {
		notices.Success("Clipboard cleared.")
	}
	return nil
}
