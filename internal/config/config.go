// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

// Package config loads and validates forgetpass configuration.
//
// Configuration comes from a YAML file (XDG config dir by default) layered
// under explicitly set command-line flags. Files are checked against a
// generated JSON Schema before merging and carry a version field gated on
// same-major compatibility with CurrentVersion.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/forgetpass/forgetpass/internal/derive"
)

// CurrentVersion is the config format version written by new installs and
// gen-schema. Files from a different major version are rejected.
const CurrentVersion = "1.0.0"

// Error codes carried by configuration failures.
const (
	CodeRead    = "CONFIG_READ"
	CodeSchema  = "CONFIG_SCHEMA"
	CodeParse   = "CONFIG_PARSE"
	CodeVersion = "CONFIG_VERSION"
	CodeInvalid = "CONFIG_INVALID"
)

// Config is the forgetpass configuration file.
type Config struct {
	Version     string            `koanf:"version" json:"version" jsonschema:"required"`
	Defaults    DefaultsConfig    `koanf:"defaults" json:"defaults,omitempty"`
	Logging     LoggingConfig     `koanf:"logging" json:"logging,omitempty"`
	Clipboard   ClipboardConfig   `koanf:"clipboard" json:"clipboard,omitempty"`
	Fingerprint FingerprintConfig `koanf:"fingerprint" json:"fingerprint,omitempty"`
}

// DefaultsConfig holds generation defaults applied when flags and prompts
// leave a value unset.
type DefaultsConfig struct {
	Length int `koanf:"length" json:"length,omitempty" jsonschema:"minimum=8,maximum=128"`
}

// LoggingConfig selects log output format and verbosity.
type LoggingConfig struct {
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=text,enum=json"`
	Level  string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// ClipboardConfig controls the clipboard auto-clear timer.
type ClipboardConfig struct {
	ClearAfterSeconds int `koanf:"clear_after_seconds" json:"clear_after_seconds,omitempty" jsonschema:"minimum=0"`
}

// FingerprintConfig controls hardware fingerprint probing.
type FingerprintConfig struct {
	ProbeTimeoutSeconds int `koanf:"probe_timeout_seconds" json:"probe_timeout_seconds,omitempty" jsonschema:"minimum=1"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:     CurrentVersion,
		Defaults:    DefaultsConfig{Length: derive.DefaultLength},
		Logging:     LoggingConfig{Format: "text", Level: "info"},
		Clipboard:   ClipboardConfig{ClearAfterSeconds: 30},
		Fingerprint: FingerprintConfig{ProbeTimeoutSeconds: 10},
	}
}

// Load builds the effective configuration from the YAML file at path layered
// under any explicitly set flags. A missing file is not an error: defaults
// apply and flag overrides still take effect. Flags named log-format and
// log-level map onto logging.format and logging.level.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No config file. Defaults plus flags.
	case err != nil:
		return nil, oops.Code(CodeRead).With("path", path).Wrapf(err, "read config file")
	default:
		if err := ValidateSchema(data); err != nil {
			return nil, oops.Code(CodeSchema).With("path", path).Wrapf(err, "config file rejected")
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code(CodeParse).With("path", path).Wrapf(err, "load config file")
		}
		if err := checkVersion(k.String("version")); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithValue(flags, ".", k, flagKey), nil); err != nil {
			return nil, oops.Code(CodeParse).Wrapf(err, "apply flag overrides")
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code(CodeParse).Wrapf(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagKey maps command-line flag names onto their config keys.
func flagKey(key, value string) (string, any) {
	switch key {
	case "log-format":
		return "logging.format", value
	case "log-level":
		return "logging.level", value
	default:
		return key, value
	}
}

// checkVersion rejects config files from a different major version.
func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return oops.Code(CodeVersion).With("version", version).Wrapf(err, "invalid config version")
	}
	cur := semver.MustParse(CurrentVersion)
	if v.Major() != cur.Major() {
		return oops.Code(CodeVersion).With("version", version).With("supported", CurrentVersion).
			Errorf("config version %s is not compatible with %s", version, CurrentVersion)
	}
	return nil
}

// Validate checks semantic constraints after file and flag merging. The
// schema covers file content only; flags can still produce values outside
// their bounds.
func (c *Config) Validate() error {
	if c.Defaults.Length < derive.MinLength || c.Defaults.Length > derive.MaxLength {
		return oops.Code(CodeInvalid).With("length", c.Defaults.Length).
			Errorf("defaults.length must be between %d and %d", derive.MinLength, derive.MaxLength)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return oops.Code(CodeInvalid).With("format", c.Logging.Format).
			Errorf("logging.format must be text or json")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return oops.Code(CodeInvalid).With("level", c.Logging.Level).
			Errorf("logging.level must be debug, info, warn, or error")
	}
	if c.Clipboard.ClearAfterSeconds < 0 {
		return oops.Code(CodeInvalid).With("clear_after_seconds", c.Clipboard.ClearAfterSeconds).
			Errorf("clipboard.clear_after_seconds cannot be negative")
	}
	if c.Fingerprint.ProbeTimeoutSeconds < 1 {
		return oops.Code(CodeInvalid).With("probe_timeout_seconds", c.Fingerprint.ProbeTimeoutSeconds).
			Errorf("fingerprint.probe_timeout_seconds must be at least 1")
	}
	return nil
}

// ClearAfter returns the clipboard auto-clear delay.
func (c *Config) ClearAfter() time.Duration {
	return time.Duration(c.Clipboard.ClearAfterSeconds) * time.Second
}

// ProbeTimeout returns the per-probe timeout for hardware fingerprinting.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Fingerprint.ProbeTimeoutSeconds) * time.Second
}
