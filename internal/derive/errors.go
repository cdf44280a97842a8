// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package derive

import "github.com/samber/oops"

// Error codes carried by failures from this package. Callers branch on
// them with oops.AsOops rather than matching message text.
const (
	CodeMissingSecret   = "DERIVE_MISSING_SECRET"
	CodeMissingKeywords = "DERIVE_MISSING_KEYWORDS"
	CodeInvalidLength   = "DERIVE_INVALID_LENGTH"
	CodeEncodingFailure = "DERIVE_ENCODING_FAILURE"
)

var (
	// ErrMissingSecret is returned when no master key was provided and
	// the fingerprint source was not selected.
	ErrMissingSecret = oops.Code(CodeMissingSecret).Errorf("master key required")

	// ErrMissingKeywords is returned when the keyword list has no entry
	// left after discarding blank ones.
	ErrMissingKeywords = oops.Code(CodeMissingKeywords).Errorf("at least one keyword required")
)
