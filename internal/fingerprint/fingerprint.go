// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

// Package fingerprint derives a stable identifier for the current
// machine from CPU and motherboard probes.
//
// The fingerprint can stand in for a typed master key, so stability is
// the contract: the same machine must keep producing the same value.
// Identifiers prefer immutable hardware sources and degrade stepwise to
// host identity; no probe failure ever reaches the caller. Hardware
// replacement or OS reinstallation can change the fingerprint, which
// changes every password derived from it.
package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/forgetpass/forgetpass/internal/derive"
)

// DefaultProbeTimeout bounds each individual hardware probe.
const DefaultProbeTimeout = 10 * time.Second

// Provider probes hardware identifiers and condenses them into a
// 32-character hexadecimal fingerprint. Create one with NewProvider.
type Provider struct {
	goos    string
	goarch  string
	timeout time.Duration

	execOut  func(ctx context.Context, name string, args ...string) (string, error)
	readFile func(name string) ([]byte, error)
	hostname func() (string, error)
}

// NewProvider creates a Provider for the current platform. A
// non-positive timeout falls back to DefaultProbeTimeout.
func NewProvider(timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Provider{
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
		timeout:  timeout,
		execOut:  execOutput,
		readFile: os.ReadFile,
		hostname: os.Hostname,
	}
}

// Fingerprint gathers the available hardware identifiers and hashes
// them. It never fails: when nothing hardware-specific is readable it
// falls back to a generic platform description, so the result is always
// defined, just coarser.
func (p *Provider) Fingerprint(ctx context.Context) string {
	var ids []string

	if cpu := p.cpuID(ctx); cpu != "" {
		ids = append(ids, "cpu:"+cpu)
	}
	if serial := p.boardSerial(ctx); serial != "" {
		ids = append(ids, "mb:"+serial)
	}
	if len(ids) == 0 {
		ids = append(ids, "sys:"+p.platform())
	}

	// Identifier values are secret input; only the count is logged.
	slog.DebugContext(ctx, "hardware fingerprint assembled", "identifiers", len(ids))
	return Compute(ids)
}

// Compute joins identifiers with "|", hashes the join with SHA-256,
// and keeps the first 32 hex characters. Split out from probing so the
// encoding can be pinned by tests on any hardware.
func Compute(ids []string) string {
	sum := sha256.Sum256([]byte(strings.Join(ids, "|")))
	return hex.EncodeToString(sum[:])[:32]
}

// cpuID returns a processor identifier, or "" when unavailable.
func (p *Provider) cpuID(ctx context.Context) string {
	switch p.goos {
	case "windows":
		out, err := p.execProbe(ctx, "wmic", "cpu", "get", "ProcessorId", "/value")
		if err != nil {
			probeFailed(ctx, "wmic cpu", err)
			return ""
		}
		return keyedValue(out, "ProcessorId=", "=")
	case "linux":
		data, err := p.readFile("/proc/cpuinfo")
		if err != nil {
			probeFailed(ctx, "cpuinfo", err)
			return ""
		}
		return cpuinfoValue(string(data))
	case "darwin":
		out, err := p.execProbe(ctx, "sysctl", "-n", "machdep.cpu.brand_string")
		if err != nil {
			probeFailed(ctx, "sysctl", err)
			return ""
		}
		return strings.TrimSpace(out)
	}
	return ""
}

// boardSerial returns a motherboard serial, or "" when unavailable.
func (p *Provider) boardSerial(ctx context.Context) string {
	switch p.goos {
	case "windows":
		out, err := p.execProbe(ctx, "wmic", "baseboard", "get", "SerialNumber", "/value")
		if err != nil {
			probeFailed(ctx, "wmic baseboard", err)
			return ""
		}
		return keyedValue(out, "SerialNumber=", "=")
	case "linux":
		// DMI sysfs is readable without privileges on most distros.
		if data, err := p.readFile("/sys/class/dmi/id/board_serial"); err == nil {
			if serial := strings.TrimSpace(string(data)); serial != "" {
				return serial
			}
		}
		out, err := p.execProbe(ctx, "dmidecode", "-s", "baseboard-serial-number")
		if err != nil {
			probeFailed(ctx, "dmidecode", err)
			// Hostname keeps the fingerprint machine-specific when DMI
			// data is locked down.
			host, hostErr := p.hostname()
			if hostErr != nil {
				return ""
			}
			return host
		}
		return strings.TrimSpace(out)
	case "darwin":
		out, err := p.execProbe(ctx, "system_profiler", "SPHardwareDataType")
		if err != nil {
			probeFailed(ctx, "system_profiler", err)
			return ""
		}
		return keyedValue(out, "Serial Number", ":")
	}
	return ""
}

// platform builds the generic fallback identifier.
func (p *Provider) platform() string {
	host, err := p.hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return p.goos + "-" + p.goarch + "-" + host
}

// execProbe runs one probe command under the per-probe timeout.
func (p *Provider) execProbe(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.execOut(ctx, name, args...)
}

func execOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func probeFailed(ctx context.Context, probe string, err error) {
	slog.DebugContext(ctx, "hardware probe failed", "probe", probe, "error", err)
}

// keyedValue scans out line by line for the first line containing
// marker and returns the trimmed text after the first sep on it.
func keyedValue(out, marker, sep string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		parts := strings.Split(line, sep)
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// cpuinfoValue extracts the first processor field value from
// /proc/cpuinfo content.
func cpuinfoValue(cpuinfo string) string {
	for _, line := range strings.Split(cpuinfo, "\n") {
		if !strings.Contains(strings.ToLower(line), "processor") {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

var _ derive.SecretProvider = (*Provider)(nil)
