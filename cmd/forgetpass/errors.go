// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package main

import (
	"fmt"

	"github.com/samber/oops"

	"github.com/forgetpass/forgetpass/internal/clipboard"
	"github.com/forgetpass/forgetpass/internal/derive"
)

// userMessage maps coded errors onto terminal-friendly text. Uncoded
// errors pass through unchanged.
func userMessage(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return err.Error()
	}

	switch oopsErr.Code() {
	case derive.CodeMissingSecret:
		return "a master key is required: enter one manually or use the hardware fingerprint"
	case derive.CodeMissingKeywords:
		return "at least one keyword is required"
	case derive.CodeInvalidLength:
		return fmt.Sprintf("password length must be between %d and %d", derive.MinLength, derive.MaxLength)
	case derive.CodeEncodingFailure:
		return "inputs could not be encoded; remove invalid characters and retry"
	case clipboard.CodeUnavailable:
		return "no clipboard is available on this system"
	case clipboard.CodeWriteFailed:
		return "could not write to the clipboard"
	case clipboard.CodeClearFailed:
		return "could not clear the clipboard; overwrite it manually"
	default:
		return oopsErr.Error()
	}
}
