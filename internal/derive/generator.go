// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package derive

import (
	"context"
	"strings"
)

// Recommended bounds for Request.Length. The mapper itself accepts any
// length >= 1; user-facing surfaces enforce this range before calling
// Generate.
const (
	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 32
)

// Secret source kinds reported in Result.Source.
const (
	SourceFingerprint = "default_fingerprint"
	SourceManualKey   = "manual_master_key"
)

// SecretProvider supplies a machine-derived secret for requests that do
// not carry a typed master key.
type SecretProvider interface {
	// Fingerprint returns a stable identifier for the current machine.
	// It never fails; providers fall back to a generic platform string.
	Fingerprint(ctx context.Context) string
}

// Request carries the inputs of one derivation.
type Request struct {
	// MasterKey is the user-typed secret. Ignored when UseFingerprint
	// is set.
	MasterKey string

	// Keywords are joined in order into the derivation input. Order
	// matters: reordering them produces a different password.
	Keywords []string

	// Length is the desired password length.
	Length int

	// UseFingerprint selects the machine fingerprint as the secret.
	UseFingerprint bool
}

// Result describes a completed derivation.
type Result struct {
	// Password is the derived password.
	Password string

	// Length is the password's character count.
	Length int

	// KeywordCount is the number of keywords consumed, blanks included.
	KeywordCount int

	// Source is the secret source kind, SourceFingerprint or
	// SourceManualKey.
	Source string
}

// Generator derives passwords from a secret and keywords.
type Generator struct {
	secrets SecretProvider
}

// NewGenerator creates a Generator. secrets may be nil when callers
// never request fingerprint-sourced derivation.
func NewGenerator(secrets SecretProvider) *Generator {
	return &Generator{secrets: secrets}
}

// Generate validates the request, selects the secret, and derives the
// password. The context reaches only the fingerprint provider;
// derivation itself is pure CPU work that runs to completion.
//
// Keywords are combined verbatim: no trimming, no escaping of the "|"
// separator. Lists whose joins collide derive the same password.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if !req.UseFingerprint && req.MasterKey == "" {
		return nil, ErrMissingSecret
	}
	if req.UseFingerprint && g.secrets == nil {
		return nil, ErrMissingSecret
	}
	if !anyKeyword(req.Keywords) {
		return nil, ErrMissingKeywords
	}

	secret, source := req.MasterKey, SourceManualKey
	if req.UseFingerprint {
		secret, source = g.secrets.Fingerprint(ctx), SourceFingerprint
	}

	km, err := KeyMaterial(secret + "|" + strings.Join(req.Keywords, "|"))
	if err != nil {
		return nil, err
	}

	password, err := MapToPassword(km, req.Length)
	if err != nil {
		return nil, err
	}

	return &Result{
		Password:     password,
		Length:       len(password),
		KeywordCount: len(req.Keywords),
		Source:       source,
	}, nil
}

// anyKeyword reports whether at least one keyword survives trimming.
func anyKeyword(keywords []string) bool {
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			return true
		}
	}
	return false
}
