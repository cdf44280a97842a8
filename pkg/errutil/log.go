// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package errutil

import (
	"log/slog"

	"github.com/samber/oops"
)

// redactedKeys are oops context keys whose values never reach a log
// record. Everything this tool handles is secret material, so redaction
// keys on the attribute name instead of trusting each call site.
var redactedKeys = map[string]struct{}{
	"master_key":  {},
	"password":    {},
	"keyword":     {},
	"keywords":    {},
	"fingerprint": {},
}

// LogError logs an error with structured context if it's an oops error.
// For oops errors, it extracts and logs the message, code, and context,
// with sensitive context values redacted. For standard errors, it logs
// the error string.
func LogError(logger *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{
			"error", oopsErr.Error(),
		}
		if code := oopsErr.Code(); code != "" {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", redact(ctx))
		}
		logger.Error(msg, attrs...)
	} else {
		logger.Error(msg, "error", err)
	}
}

// redact replaces sensitive context values with a placeholder.
func redact(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		if _, sensitive := redactedKeys[k]; sensitive {
			out[k] = "[redacted]"
			continue
		}
		out[k] = v
	}
	return out
}
