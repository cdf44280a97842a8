// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

//go:build integration

package cli_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

var _ = Describe("Root Command", func() {
	It("runs a full interactive session from scripted input", func() {
		// Default source, one keyword, default length, then exit.
		stdin := "\nvault\n\n\n3\n"

		stdout, stderr, err := env.runCLI(stdin, nil)
		Expect(err).NotTo(HaveOccurred(), "interactive session failed: %s", stderr)

		Expect(stdout).To(ContainSubstring("ForgetPass"))
		Expect(stdout).To(ContainSubstring("Password: "))
		Expect(stdout).To(ContainSubstring("Thank you for using ForgetPass."))
	})

	It("exits cleanly when input closes immediately", func() {
		stdout, stderr, err := env.runCLI("", nil)
		Expect(err).NotTo(HaveOccurred(), "session failed: %s", stderr)

		Expect(stdout).To(ContainSubstring("Thank you for using ForgetPass."))
	})

	It("prints version information", func() {
		stdout, stderr, err := env.runCLI("", nil, "--version")
		Expect(err).NotTo(HaveOccurred(), "version failed: %s", stderr)

		Expect(stdout).To(ContainSubstring("commit:"))
	})

	It("rejects unknown subcommands", func() {
		_, stderr, err := env.runCLI("", nil, "bogus")
		Expect(err).To(HaveOccurred())
		Expect(stderr).To(ContainSubstring("unknown command"))
	})
})
