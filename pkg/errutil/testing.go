// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode asserts that err is an oops error with the given code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

// AssertErrorContext asserts that err is an oops error carrying the
// given context key/value.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	ctx := oopsErr.Context()
	assert.Contains(t, ctx, key)
	assert.Equal(t, value, ctx[key])
}

// AssertNoSecret asserts that neither the error text nor any oops
// context value contains one of the given secrets. Errors travel into
// logs and onto the terminal, so secret material must never ride along.
func AssertNoSecret(t *testing.T, err error, secrets ...string) {
	t.Helper()
	require.Error(t, err)

	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		assert.NotContains(t, err.Error(), secret, "error text leaks a secret")

		oopsErr, ok := oops.AsOops(err)
		if !ok {
			continue
		}
		for key, value := range oopsErr.Context() {
			s, isString := value.(string)
			if !isString {
				continue
			}
			assert.NotContains(t, s, secret, "error context %q leaks a secret", key)
		}
	}
}
