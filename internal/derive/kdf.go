// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package derive

import (
	"crypto/sha256"
	"unicode/utf8"

	"github.com/samber/oops"
	"golang.org/x/crypto/pbkdf2"
)

// Derivation parameters. All three are part of the output contract:
// changing any of them changes every password this tool produces.
const (
	kdfIterations = 200_000
	kdfKeyLen     = 64
	saltSeed      = "ForgetYourpassword-v1-salt"
)

// KeyMaterial stretches the combined input into 64 bytes of key
// material with PBKDF2-HMAC-SHA256.
//
// The salt is the SHA-256 digest of a fixed public seed: derivation
// must reproduce the same password on every machine, so there is no
// per-user salt to generate or store. The iteration count alone
// carries the brute-force cost.
func KeyMaterial(combined string) ([]byte, error) {
	if !utf8.ValidString(combined) {
		return nil, oops.Code(CodeEncodingFailure).Errorf("combined input is not valid UTF-8")
	}

	salt := sha256.Sum256([]byte(saltSeed))
	return pbkdf2.Key([]byte(combined), salt[:], kdfIterations, kdfKeyLen, sha256.New), nil
}
