// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

//go:build integration

package cli_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/forgetpass/forgetpass/internal/derive"
)

var _ = Describe("Generate Command", func() {
	const masterKeyEnv = "FORGETPASS_CLI_TEST_KEY=correct horse battery staple"

	Describe("Deterministic output", func() {
		It("prints the same password on repeated runs", func() {
			args := []string{"generate", "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--quiet", "github", "personal"}

			first, stderr, err := env.runCLI("", []string{masterKeyEnv}, args...)
			Expect(err).NotTo(HaveOccurred(), "first run failed: %s", stderr)

			second, stderr, err := env.runCLI("", []string{masterKeyEnv}, args...)
			Expect(err).NotTo(HaveOccurred(), "second run failed: %s", stderr)

			Expect(second).To(Equal(first))
			Expect(strings.TrimSuffix(first, "\n")).To(HaveLen(32))
		})

		It("matches the in-process derivation", func() {
			gen := derive.NewGenerator(nil)
			want, err := gen.Generate(context.Background(), derive.Request{
				MasterKey: "correct horse battery staple",
				Keywords:  []string{"github", "personal"},
				Length:    32,
			})
			Expect(err).NotTo(HaveOccurred())

			stdout, stderr, err := env.runCLI("", []string{masterKeyEnv},
				"generate", "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--quiet", "github", "personal")
			Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)

			Expect(strings.TrimSuffix(stdout, "\n")).To(Equal(want.Password))
		})
	})

	Describe("Password shape", func() {
		It("honors --length", func() {
			stdout, stderr, err := env.runCLI("", []string{masterKeyEnv},
				"generate", "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--quiet", "--length", "64", "vault")
			Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)

			Expect(strings.TrimSuffix(stdout, "\n")).To(HaveLen(64))
		})

		It("covers all four character classes", func() {
			stdout, stderr, err := env.runCLI("", []string{masterKeyEnv},
				"generate", "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--quiet", "vault")
			Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)

			password := strings.TrimSuffix(stdout, "\n")
			Expect(strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")).To(BeTrue(), "missing uppercase")
			Expect(strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz")).To(BeTrue(), "missing lowercase")
			Expect(strings.ContainsAny(password, "0123456789")).To(BeTrue(), "missing digit")
			Expect(strings.ContainsAny(password, "!@#$%^&*()_+-=[]{}|;:,.<>?")).To(BeTrue(), "missing symbol")
		})
	})

	Describe("JSON output", func() {
		It("emits a parseable payload with --json", func() {
			stdout, stderr, err := env.runCLI("", []string{masterKeyEnv},
				"generate", "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--json", "github", "personal")
			Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)

			var payload struct {
				Password     string `json:"password"`
				Length       int    `json:"length"`
				KeywordsUsed int    `json:"keywords_used"`
				Source       string `json:"source"`
			}
			Expect(json.Unmarshal([]byte(stdout), &payload)).To(Succeed())
			Expect(payload.Password).To(HaveLen(32))
			Expect(payload.Length).To(Equal(32))
			Expect(payload.KeywordsUsed).To(Equal(2))
			Expect(payload.Source).To(Equal("manual_master_key"))
		})
	})

	Describe("Configuration", func() {
		It("reads the default length from a config file", func() {
			configPath := filepath.Join(env.configHome, "length40.yaml")
			content := "version: \"1.0.0\"\ndefaults:\n  length: 40\n"
			Expect(os.WriteFile(configPath, []byte(content), 0o600)).To(Succeed())

			stdout, stderr, err := env.runCLI("", []string{masterKeyEnv},
				"generate", "--config", configPath, "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--quiet", "vault")
			Expect(err).NotTo(HaveOccurred(), "cli run failed: %s", stderr)

			Expect(strings.TrimSuffix(stdout, "\n")).To(HaveLen(40))
		})
	})

	Describe("Error handling", func() {
		It("fails when the master key variable is unset", func() {
			_, stderr, err := env.runCLI("", []string{"FORGETPASS_CLI_UNSET_KEY="},
				"generate", "--master-key-env", "FORGETPASS_CLI_UNSET_KEY", "vault")
			Expect(err).To(HaveOccurred())
			Expect(stderr).To(ContainSubstring("FORGETPASS_CLI_UNSET_KEY is not set or empty"))
		})

		It("rejects an out-of-range length", func() {
			_, stderr, err := env.runCLI("", []string{masterKeyEnv},
				"generate", "--master-key-env", "FORGETPASS_CLI_TEST_KEY", "--length", "4", "vault")
			Expect(err).To(HaveOccurred())
			Expect(stderr).To(ContainSubstring("length must be between 8 and 128"))
		})

		It("requires at least one keyword", func() {
			_, stderr, err := env.runCLI("", []string{masterKeyEnv}, "generate")
			Expect(err).To(HaveOccurred())
			Expect(stderr).To(ContainSubstring("requires at least 1 arg"))
		})
	})
})
