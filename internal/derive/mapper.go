// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

package derive

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/samber/oops"
)

// Character classes, in the fixed order selection depends on.
const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// allChars is the combined alphabet, 88 characters in class order.
// Indexing always uses this exact concatenation; its length is the
// modulus for the fill and extension phases.
const allChars = upperChars + lowerChars + digitChars + symbolChars

var classes = [...]string{upperChars, lowerChars, digitChars, symbolChars}

// MapToPassword renders key material as a password of exactly length
// characters.
//
// Construction is phased: one character from each class in order, fill
// from the combined alphabet while key material bytes remain, SHA-256
// hash-chain extension once they run out, then a key-steered partial
// shuffle. The class-cover prefix guarantees one character from each
// class for length >= 4; below that the prefix is truncated away and
// coverage cannot be guaranteed.
func MapToPassword(km []byte, length int) (string, error) {
	if length < 1 {
		return "", oops.Code(CodeInvalidLength).With("length", length).Errorf("password length must be at least 1")
	}

	buf := make([]byte, 0, max(length, len(classes)))
	next := 0

	// One character per class, consuming the first four bytes. Appended
	// even when length < 4; the final truncation trims the overshoot.
	for _, class := range classes {
		if next >= len(km) {
			break
		}
		buf = append(buf, class[int(km[next])%len(class)])
		next++
	}

	// Fill from the combined alphabet with the remaining bytes.
	for len(buf) < length && next < len(km) {
		buf = append(buf, allChars[int(km[next])%len(allChars)])
		next++
	}

	// Key material exhausted: extend by hash chaining. The counter fed
	// into each round is the buffer length at that round's start, so
	// every round depends on how much the previous rounds appended.
	for len(buf) < length {
		var counter [4]byte
		binary.BigEndian.PutUint32(counter[:], uint32(len(buf)))

		h := sha256.New()
		h.Write(km)
		h.Write(counter[:])
		for _, b := range h.Sum(nil) {
			if len(buf) >= length {
				break
			}
			buf = append(buf, allChars[int(b)%len(allChars)])
		}
	}

	// Partial deterministic shuffle. Only the first len(km) positions
	// act as swap sources; the modulus is the buffer length, which
	// exceeds length when length < 4.
	for i := 0; i < len(buf) && i < len(km); i++ {
		j := int(km[i]) % len(buf)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf[:length]), nil
}
