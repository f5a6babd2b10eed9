package main

import (
	"os"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/testrail"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("loadConfig", func() {
	BeforeEach(func() {
		for _, name := range []string{"TESTRAIL_HOST", "TESTRAIL_USER", "TESTRAIL_API_KEY", "TESTRAIL_STATUSES_PASSED"} {
			value, ok := os.LookupEnv(name)
			Expect(os.Unsetenv(name)).To(Succeed())

			if ok {
				name := name
				DeferCleanup(os.Setenv, name, value)
			}
		}
	})

	It("reads the config file", func() {
		cfg, err := loadConfig("testdata/config.yaml")
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.Host).To(Equal("acme.testrail.io"))
		Expect(cfg.User).To(Equal("ci@acme.com"))
		Expect(cfg.APIKey).To(BeEmpty())
	})

	It("prefers environment variables", func() {
		Expect(os.Setenv("TESTRAIL_USER", "bot@acme.com")).To(Succeed())
		DeferCleanup(os.Unsetenv, "TESTRAIL_USER")
		Expect(os.Setenv("TESTRAIL_API_KEY", "secret")).To(Succeed())
		DeferCleanup(os.Unsetenv, "TESTRAIL_API_KEY")

		cfg, err := loadConfig("testdata/config.yaml")
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.User).To(Equal("bot@acme.com"))
		Expect(cfg.APIKey).To(Equal("secret"))
	})

	It("merges configured statuses with the system statuses", func() {
		Expect(os.Setenv("TESTRAIL_STATUSES_PASSED", "6")).To(Succeed())
		DeferCleanup(os.Unsetenv, "TESTRAIL_STATUSES_PASSED")

		cfg, err := loadConfig("testdata/config.yaml")
		Expect(err).ToNot(HaveOccurred())

		Expect(cfg.statuses()).To(Equal(testrail.Statuses{Passed: 6, Blocked: 2, Failed: 8}))
	})

	It("compiles the case pattern", func() {
		cfg, err := loadConfig("testdata/config.yaml")
		Expect(err).ToNot(HaveOccurred())

		re, err := cfg.casePattern()
		Expect(err).ToNot(HaveOccurred())
		Expect(re.FindStringSubmatch("# @testrail C77")).To(Equal([]string{"@testrail C77", "77"}))
	})

	It("rejects invalid case patterns", func() {
		_, err := config{CasePattern: "("}.casePattern()

		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})

	It("fails on a missing config file", func() {
		_, err := loadConfig("testdata/missing.yaml")

		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})
})
