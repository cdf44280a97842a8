// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ForgetPass Contributors

//go:build integration

package integration

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/forgetpass/forgetpass/internal/derive"
)

// fixedSecrets returns a constant fingerprint so specs stay machine
// independent.
type fixedSecrets struct {
	fp string
}

func (f fixedSecrets) Fingerprint(_ context.Context) string {
	return f.fp
}

// Character classes the generator draws from, re-declared here as the
// acceptance fixture.
const (
	upperSet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerSet  = "abcdefghijklmnopqrstuvwxyz"
	digitSet  = "0123456789"
	symbolSet = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var _ = Describe("Password derivation", func() {
	var (
		ctx context.Context
		gen *derive.Generator
	)

	BeforeEach(func() {
		ctx = context.Background()
		gen = derive.NewGenerator(fixedSecrets{fp: "0123456789abcdef0123456789abcdef"})
	})

	generate := func(req derive.Request) *derive.Result {
		res, err := gen.Generate(ctx, req)
		Expect(err).NotTo(HaveOccurred())
		return res
	}

	Describe("Determinism", func() {
		It("produces identical passwords for identical inputs", func() {
			req := derive.Request{
				MasterKey: "correct horse battery staple",
				Keywords:  []string{"github", "personal"},
				Length:    32,
			}

			first := generate(req)
			second := generate(req)

			Expect(second.Password).To(Equal(first.Password))
			Expect(first.Password).To(HaveLen(32))
		})

		It("produces identical passwords for fingerprint-sourced requests", func() {
			req := derive.Request{
				Keywords:       []string{"vault"},
				Length:         32,
				UseFingerprint: true,
			}

			first := generate(req)
			second := generate(req)

			Expect(second.Password).To(Equal(first.Password))
			Expect(first.Source).To(Equal(derive.SourceFingerprint))
		})
	})

	Describe("Input sensitivity", func() {
		It("changes the password when the master key changes", func() {
			base := derive.Request{Keywords: []string{"github"}, Length: 32}

			one := base
			one.MasterKey = "first key"
			two := base
			two.MasterKey = "second key"

			Expect(generate(one).Password).NotTo(Equal(generate(two).Password))
		})

		It("changes the password when keyword order changes", func() {
			base := derive.Request{MasterKey: "hunter2", Length: 32}

			one := base
			one.Keywords = []string{"alpha", "beta"}
			two := base
			two.Keywords = []string{"beta", "alpha"}

			Expect(generate(one).Password).NotTo(Equal(generate(two).Password))
		})

		It("treats keyword lists with identical joins as identical", func() {
			// Keywords are joined verbatim with "|", so a keyword that
			// contains the separator collides with the split list.
			base := derive.Request{MasterKey: "hunter2", Length: 32}

			one := base
			one.Keywords = []string{"a|b"}
			two := base
			two.Keywords = []string{"a", "b"}

			Expect(generate(one).Password).To(Equal(generate(two).Password))
		})
	})

	Describe("Password shape", func() {
		It("respects the requested length and covers all character classes", func() {
			for _, length := range []int{8, 16, 32, 64, 128} {
				res := generate(derive.Request{
					MasterKey: "hunter2",
					Keywords:  []string{"github"},
					Length:    length,
				})

				Expect(res.Password).To(HaveLen(length), "length %d", length)
				Expect(strings.ContainsAny(res.Password, upperSet)).To(BeTrue(), "length %d missing uppercase", length)
				Expect(strings.ContainsAny(res.Password, lowerSet)).To(BeTrue(), "length %d missing lowercase", length)
				Expect(strings.ContainsAny(res.Password, digitSet)).To(BeTrue(), "length %d missing digit", length)
				Expect(strings.ContainsAny(res.Password, symbolSet)).To(BeTrue(), "length %d missing symbol", length)
			}
		})

		It("draws every character from the combined alphabet", func() {
			alphabet := upperSet + lowerSet + digitSet + symbolSet
			res := generate(derive.Request{
				MasterKey: "hunter2",
				Keywords:  []string{"github"},
				Length:    128,
			})

			for _, c := range res.Password {
				Expect(strings.ContainsRune(alphabet, c)).To(BeTrue(), "character %q outside alphabet", c)
			}
		})

		It("handles non-ASCII inputs", func() {
			res := generate(derive.Request{
				MasterKey: "héllo wörld",
				Keywords:  []string{"日本語", "règle"},
				Length:    32,
			})

			Expect(res.Password).To(HaveLen(32))
		})
	})

	Describe("Result metadata", func() {
		It("counts all keywords, blanks included", func() {
			res := generate(derive.Request{
				MasterKey: "hunter2",
				Keywords:  []string{" ", "real"},
				Length:    16,
			})

			Expect(res.KeywordCount).To(Equal(2))
			Expect(res.Length).To(Equal(16))
			Expect(res.Source).To(Equal(derive.SourceManualKey))
		})
	})
})
