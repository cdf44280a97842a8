// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

// Package derive implements deterministic password derivation.
//
// A password is a pure function of three inputs: a secret (a typed
// master key or a machine fingerprint), an ordered keyword list, and a
// length. The same inputs always reproduce the same password, on any
// machine, with nothing stored anywhere.
//
// # Pipeline
//
// Derivation runs in two stages:
//
//  1. KeyMaterial stretches the combined input (secret and keywords
//     joined with "|") into 64 bytes using PBKDF2-HMAC-SHA256 with
//     200,000 iterations and a fixed public salt.
//  2. MapToPassword renders those bytes as password characters: one
//     character from each of the four classes first, then fill from the
//     combined alphabet, SHA-256 hash chaining once the key material
//     runs out, and a key-steered partial shuffle at the end.
//
// Generator composes both stages and adds input validation and secret
// selection. Every failure carries an oops error code from this
// package; callers branch on codes, never on message text.
//
// # Compatibility
//
// Byte-for-byte output stability is the contract. Any change to the
// salt, iteration count, class tables, or phase order silently
// invalidates every password users have derived before. The "|"
// separator is not escaped, so distinct keyword lists whose joins
// collide (["al","pha"] versus ["al|pha"]) derive the same password;
// that ambiguity is part of the frozen behavior.
package derive
