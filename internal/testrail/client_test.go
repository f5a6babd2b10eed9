package testrail_test

import (
	"go.uber.org/zap"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/testrail"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewClient", func() {
	var cfg testrail.ClientConfig

	BeforeEach(func() {
		cfg = testrail.ClientConfig{
			APIKey: "secret",
			Host:   "acme.testrail.io",
			Log:    zap.NewNop().Sugar(),
			User:   "ci@acme.com",
		}
	})

	It("applies defaults", func() {
		client, err := testrail.NewClient(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(client.NewUUID).ToNot(BeNil())
		Expect(client.RoundTrip).ToNot(BeNil())
	})

	It("requires an API key", func() {
		cfg.APIKey = ""
		_, err := testrail.NewClient(cfg)

		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
		Expect(err).To(MatchError("missing TestRail API key"))
	})

	It("requires a user", func() {
		cfg.User = ""
		_, err := testrail.NewClient(cfg)
		Expect(err).To(MatchError("missing TestRail user"))
	})

	It("requires a host", func() {
		cfg.Host = ""
		_, err := testrail.NewClient(cfg)
		Expect(err).To(MatchError("missing TestRail host"))
	})

	It("requires a logger", func() {
		cfg.Log = nil
		_, err := testrail.NewClient(cfg)

		_, ok := errors.AsInternalError(err)
		Expect(ok).To(BeTrue())
	})
})
