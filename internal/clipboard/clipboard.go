// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

// Package clipboard copies derived passwords to the system clipboard
// and scrubs them afterwards.
package clipboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"

	"github.com/forgetpass/forgetpass/pkg/errutil"
)

// Error codes for clipboard failures.
const (
	CodeUnavailable = "CLIPBOARD_UNAVAILABLE"
	CodeWriteFailed = "CLIPBOARD_WRITE_FAILED"
	CodeClearFailed = "CLIPBOARD_CLEAR_FAILED"
)

// Clear retry cadence. A failed clear leaves the password in the
// clipboard after the process exits, so transient errors are retried.
const (
	clearRetries = 2
	clearDelay   = 100 * time.Millisecond
	clearTimeout = 5 * time.Second
)

// Indirection over the system clipboard for tests.
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy places text on the system clipboard.
func Copy(text string) error {
	if unsupported() {
		return oops.Code(CodeUnavailable).Errorf("no clipboard available on this platform")
	}
	if err := writeAll(text); err != nil {
		return oops.Code(CodeWriteFailed).Wrap(err)
	}
	return nil
}

// Clear overwrites the clipboard with an empty string, retrying
// transient failures.
func Clear(ctx context.Context) error {
	if unsupported() {
		return oops.Code(CodeUnavailable).Errorf("no clipboard available on this platform")
	}

	backoff := retry.WithMaxRetries(clearRetries, retry.NewConstant(clearDelay))
	err := retry.Do(ctx, backoff, func(context.Context) error {
		if err := writeAll(""); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return oops.Code(CodeClearFailed).Wrap(err)
	}
	return nil
}

// CopyWithClear copies text and schedules a clear after the given
// delay. The returned stop cancels a still-pending clear; calling it
// more than once is harmless. A non-positive delay disables the
// schedule entirely.
func CopyWithClear(text string, after time.Duration) (stop func(), err error) {
	if err := Copy(text); err != nil {
		return nil, err
	}
	if after <= 0 {
		return func() {}, nil
	}

	timer := time.AfterFunc(after, func() {
		ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
		defer cancel()
		if err := Clear(ctx); err != nil {
			errutil.LogError(slog.Default(), "scheduled clipboard clear failed", err)
		}
	})
	return func() { timer.Stop() }, nil
}

// CopyThenClear copies text and blocks until the clipboard is cleared,
// after the delay or as soon as ctx is cancelled. One-shot commands use
// this so the clear cannot outlive the process. A non-positive delay
// copies without clearing.
func CopyThenClear(ctx context.Context, text string, after time.Duration) error {
	if err := Copy(text); err != nil {
		return err
	}
	if after <= 0 {
		return nil
	}

	timer := time.NewTimer(after)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	clearCtx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()
	return Clear(clearCtx)
}
