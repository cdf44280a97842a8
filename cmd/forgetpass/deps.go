package main

import (
	"context"
	"time"

	"github.com/forgetpass/forgetpass/internal/clipboard"
	"github.com/forgetpass/forgetpass/internal/config"
	"github.com/forgetpass/forgetpass/internal/derive"
	"github.com/forgetpass/forgetpass/internal/fingerprint"
)

// AppDeps contains injectable dependencies for the commands.
// Nil fields fall back to their default implementations.
type AppDeps struct {
	// Generator derives passwords from a secret and keywords.
	// Default: derive.NewGenerator over Secrets
	Generator PasswordGenerator

	// Secrets resolves the hardware fingerprint.
	// Default: fingerprint.NewProvider with the configured probe timeout
	Secrets SecretProvider

	// CopyWithClear copies text and schedules a background clipboard clear.
	// Default: clipboard.CopyWithClear
	CopyWithClear func(text string, after time.Duration) (func(), error)

	// CopyThenClear copies text and blocks until the clipboard is cleared.
	// Default: clipboard.CopyThenClear
	CopyThenClear func(ctx context.Context, text string, after time.Duration) error
}

// fillDefaults replaces nil fields with production implementations.
func (d *AppDeps) fillDefaults(cfg *config.Config) {
	if d.Secrets == nil {
		d.Secrets = fingerprint.NewProvider(cfg.ProbeTimeout())
	}
	if d.Generator == nil {
		d.Generator = derive.NewGenerator(d.Secrets)
	}
	if d.CopyWithClear == nil {
		d.CopyWithClear = clipboard.CopyWithClear
	}
	if d.CopyThenClear == nil {
		d.CopyThenClear = clipboard.CopyThenClear
	}
}

// PasswordGenerator wraps the methods used from derive.Generator.
type PasswordGenerator interface {
	Generate(ctx context.Context, req derive.Request) (*derive.Result, error)
}

// SecretProvider wraps the methods used from fingerprint.Provider.
type SecretProvider interface {
	Fingerprint(ctx context.Context) string
}
