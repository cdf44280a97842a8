// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

//go:build integration

package cli_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

var _ = Describe("Fingerprint Command", func() {
	It("prints a labeled fingerprint by default", func() {
		stdout, stderr, err := env.runCLI("", nil, "fingerprint")
		Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)

		Expect(stdout).To(HavePrefix("Fingerprint: "))
	})

	It("emits a stable 32-character hex value with --json", func() {
		var payloads [2]struct {
			Fingerprint string `json:"fingerprint"`
		}

		for i := range payloads {
			stdout, stderr, err := env.runCLI("", nil, "fingerprint", "--json")
			Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)
			Expect(json.Unmarshal([]byte(stdout), &payloads[i])).To(Succeed())
		}

		Expect(payloads[0].Fingerprint).To(MatchRegexp("^[0-9a-f]{32}$"))
		Expect(payloads[1].Fingerprint).To(Equal(payloads[0].Fingerprint))
	})
})
