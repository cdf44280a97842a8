// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgetpass/forgetpass/internal/config"
	"github.com/forgetpass/forgetpass/internal/derive"
	"github.com/forgetpass/forgetpass/internal/prompt"
	"github.com/forgetpass/forgetpass/internal/render"
	"github.com/forgetpass/forgetpass/pkg/errutil"
)

// maxKeywords caps keyword entry in the interactive flow.
const maxKeywords = 10

// runInteractive drives the prompt, generate, copy loop until the user
// exits or the input closes. If deps is nil, default implementations
// are used.
func runInteractive(ctx context.Context, cmd *cobra.Command, deps *AppDeps) error {
	if deps == nil {
		deps = &AppDeps{}
	}

	cfg, err := loadAppConfig(cmd)
	if err != nil {
		return err
	}
	deps.fillDefaults(cfg)

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	r := render.New(cmd.OutOrStdout(), styledOutput(cmd.OutOrStdout()))

	r.Banner(version)

	for ctx.Err() == nil {
		res, err := interactiveGenerate(ctx, cfg, deps, p, r)
		if errors.Is(err, prompt.ErrClosed) {
			break
		}
		if err != nil {
			return err
		}
		if res == nil {
			// Round failed and was reported. Start over.
			continue
		}

		again, err := resultMenu(cfg, deps, p, r, res)
		if errors.Is(err, prompt.ErrClosed) {
			break
		}
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	r.Info("")
	r.Info("Thank you for using ForgetPass.")
	return nil
}

// interactiveGenerate walks one round of prompts and derives a
// password. A nil result with nil error means the round failed and was
// already reported to the user.
func interactiveGenerate(ctx context.Context, cfg *config.Config, deps *AppDeps, p *prompt.Prompter, r *render.Renderer) (*derive.Result, error) {
	useFingerprint, masterKey, err := promptMasterKey(p, r)
	if err != nil {
		return nil, err
	}

	keywords, err := promptKeywords(p, r)
	if err != nil {
		return nil, err
	}

	length, err := promptLength(p, r, cfg.Defaults.Length)
	if err != nil {
		return nil, err
	}

	r.Info("")
	r.Info("Generating password...")

	res, err := deps.Generator.Generate(ctx, derive.Request{
		MasterKey:      masterKey,
		Keywords:       keywords,
		Length:         length,
		UseFingerprint: useFingerprint,
	})
	if err != nil {
		errutil.LogError(slog.Default(), "password generation failed", err)
		r.Error("%s", userMessage(err))
		if _, waitErr := p.Line("Press Enter to try again..."); waitErr != nil {
			return nil, waitErr
		}
		return nil, nil
	}
	return res, nil
}

// promptMasterKey asks which secret source to use. Empty input selects
// the fingerprint; an empty manual key cancels back to the menu.
func promptMasterKey(p *prompt.Prompter, r *render.Renderer) (useFingerprint bool, masterKey string, err error) {
	r.Info("Master Key Options:")
	r.Info("1. Use hardware fingerprint (CPU + motherboard)")
	r.Info("2. Use manual master key")
	r.Info("")

	for {
		choice, err := p.Line("Choose option (1 or 2): ")
		if err != nil {
			return false, "", err
		}

		switch choice {
		case "1":
			return true, "", nil
		case "":
			r.Info("Using default option (1)")
			return true, "", nil
		case "2":
			r.Info("")
			key, err := p.Secret("Manual key (press Enter to cancel): ")
			if err != nil {
				return false, "", err
			}
			if strings.TrimSpace(key) == "" {
				r.Warn("Cancelled - going back to menu")
				continue
			}
			return false, strings.TrimSpace(key), nil
		default:
			r.Warn("Invalid choice! Enter 1 or 2, or press Enter for the default")
		}
	}
}

// promptKeywords collects 1 to maxKeywords keywords. An empty line ends
// the list once at least one keyword exists.
func promptKeywords(p *prompt.Prompter, r *render.Renderer) ([]string, error) {
	r.Info("")
	r.Info("Keywords:")
	r.Info("Enter your keywords one by one (visible)")
	r.Info("Press Enter on an empty line to finish")
	r.Info("")

	var keywords []string
	for {
		keyword, err := p.Line(fmt.Sprintf("Keyword %d: ", len(keywords)+1))
		if err != nil {
			return nil, err
		}

		if keyword == "" {
			if len(keywords) > 0 {
				break
			}
			r.Warn("Need at least one keyword! Try again or Ctrl-C to exit")
			continue
		}

		keywords = append(keywords, keyword)
		if len(keywords) == maxKeywords {
			r.Warn("Maximum %d keywords reached", maxKeywords)
			break
		}
	}

	r.Success("%d keywords ready", len(keywords))
	return keywords, nil
}

// promptLength asks for the password length. Empty input takes the
// configured default; out-of-range and non-numeric entries retry.
func promptLength(p *prompt.Prompter, r *render.Renderer, def int) (int, error) {
	r.Info("")
	r.Info("Password Length:")
	r.Info("Enter length (%d-%d) or press Enter for default (%d)", derive.MinLength, derive.MaxLength, def)

	for {
		raw, err := p.Line("Length: ")
		if err != nil {
			return 0, err
		}

		if raw == "" {
			r.Info("Using default length: %d", def)
			return def, nil
		}

		length, err := strconv.Atoi(raw)
		if err != nil {
			r.Warn("Enter a valid number, or press Enter for the default")
			continue
		}
		if length < derive.MinLength || length > derive.MaxLength {
			r.Warn("Length must be between %d and %d", derive.MinLength, derive.MaxLength)
			continue
		}
		return length, nil
	}
}

// resultMenu shows the password and handles the follow-up choice.
// again reports whether the caller should run another round.
func resultMenu(cfg *config.Config, deps *AppDeps, p *prompt.Prompter, r *render.Renderer, res *derive.Result) (again bool, err error) {
	r.Info("")
	r.Result(res)
	r.Info("")
	r.Info("Options:")
	r.Info("1. Generate new password")
	r.Info("2. Copy to clipboard")
	r.Info("3. Exit")
	r.Hint("Press Enter for option 1 (generate new)")
	r.Info("")

	for {
		choice, err := p.Line("Choose option (1-3): ")
		if err != nil {
			return false, err
		}

		switch choice {
		case "", "1":
			return true, nil
		case "2":
			// The scheduled clear dies with the process; say so.
			if _, err := deps.CopyWithClear(res.Password, cfg.ClearAfter()); err != nil {
				errutil.LogError(slog.Default(), "clipboard copy failed", err)
				r.Error("%s", userMessage(err))
				continue
			}
			if secs := cfg.Clipboard.ClearAfterSeconds; secs > 0 {
				r.Success("Copied to clipboard. Clears in %d seconds while forgetpass runs.", secs)
			} else {
				r.Success("Copied to clipboard.")
			}
		case "3":
			return false, nil
		default:
			r.Warn("Invalid choice! Enter 1-3, or press Enter for a new password")
		}
	}
}
