package locator_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/fs"
	"github.com/rwx-research/testrail-sync/internal/locator"
	"github.com/rwx-research/testrail-sync/internal/mocks"
	"github.com/rwx-research/testrail-sync/internal/testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ScriptPath", func() {
	It("resolves scripts relative to the tests root two levels above the report", func() {
		entry := testing.TestEntry{Classname: "foo/bar", Name: "test_baz.rb"}
		Expect(locator.ScriptPath("tests/reports/junit/report.xml", entry)).
			To(Equal(filepath.Join("tests", "foo", "bar", "test_baz.rb")))
	})

	It("works with absolute report paths", func() {
		entry := testing.TestEntry{Classname: "acceptance", Name: "login_spec.rb"}
		Expect(locator.ScriptPath("/ci/tests/out/junit/report.xml", entry)).
			To(Equal(filepath.Join("/ci/tests", "acceptance", "login_spec.rb")))
	})
})

var _ = Describe("Pattern", func() {
	var (
		closedScripts []string
		fileSystem    *mocks.FileSystem
		scripts       map[string]string
		pattern       locator.Pattern
	)

	BeforeEach(func() {
		closedScripts = nil
		scripts = make(map[string]string)
		fileSystem = new(mocks.FileSystem)
		fileSystem.MockOpen = func(name string) (fs.File, error) {
			content, ok := scripts[name]
			if !ok {
				return nil, errors.WithStack(os.ErrNotExist)
			}

			file := mocks.NewFile(content)
			file.MockClose = func() error {
				closedScripts = append(closedScripts, name)
				return nil
			}

			return file, nil
		}

		var err error
		pattern, err = locator.NewPattern(fileSystem, nil)
		Expect(err).ToNot(HaveOccurred())
	})

	It("extracts the case identifier", func() {
		scripts["test_baz.rb"] = "PUPP-1234 - some test (C5678)\n"

		caseID, err := pattern.Locate("test_baz.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("5678"))
	})

	It("closes the script", func() {
		scripts["test_baz.rb"] = "PUPP-1234 - some test (C5678)\n"

		_, err := pattern.Locate("test_baz.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(closedScripts).To(Equal([]string{"test_baz.rb"}))
	})

	It("accepts a case marker glued to the ticket", func() {
		scripts["a.rb"] = "it 'PUPP-1234_C5678' do\n"

		caseID, err := pattern.Locate("a.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("5678"))
	})

	It("reads past lines longer than the default scanner buffer", func() {
		scripts["bundle.js"] = "// " + strings.Repeat("x", 70000) + "\n# PUPP-1 - covers (C100)\n"

		caseID, err := pattern.Locate("bundle.js")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("100"))
	})

	It("accepts a lowercase case marker", func() {
		scripts["test_baz.rb"] = "  it 'QA-7 logs out c42' do\n"

		caseID, err := pattern.Locate("test_baz.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("42"))
	})

	It("uses the first matching line only", func() {
		scripts["test_baz.rb"] = "require 'spec_helper'\n" +
			"# PUPP-1 - first (C100)\n" +
			"# PUPP-2 - second (C200)\n"

		caseID, err := pattern.Locate("test_baz.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("100"))
	})

	It("skips lines with a case but no ticket reference", func() {
		scripts["test_baz.rb"] = "# covers C999\n# PUPP-1 - covers (C100)\n"

		caseID, err := pattern.Locate("test_baz.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("100"))
	})

	It("fails with a structural error when no line matches", func() {
		scripts["test_baz.rb"] = "require 'spec_helper'\ndescribe 'baz' do\nend\n"

		_, err := pattern.Locate("test_baz.rb")
		Expect(err).To(HaveOccurred())

		structuralErr, ok := errors.AsStructuralError(err)
		Expect(ok).To(BeTrue())
		Expect(structuralErr.Path).To(Equal("test_baz.rb"))
		Expect(closedScripts).To(Equal([]string{"test_baz.rb"}))
	})

	It("fails with a structural error when the script is missing", func() {
		_, err := pattern.Locate("missing.rb")
		Expect(err).To(HaveOccurred())

		_, ok := errors.AsStructuralError(err)
		Expect(ok).To(BeTrue())
	})

	It("supports custom patterns", func() {
		custom, err := locator.NewPattern(fileSystem, regexp.MustCompile(`@testrail\s+C(?P<case>\d+)`))
		Expect(err).ToNot(HaveOccurred())

		scripts["test_baz.rb"] = "# @testrail C31337\n"

		caseID, err := custom.Locate("test_baz.rb")
		Expect(err).ToNot(HaveOccurred())
		Expect(caseID).To(Equal("31337"))
	})

	It("rejects patterns without a case group", func() {
		_, err := locator.NewPattern(fileSystem, regexp.MustCompile(`C(\d+)`))
		Expect(err).To(HaveOccurred())

		_, ok := errors.AsConfigurationError(err)
		Expect(ok).To(BeTrue())
	})
})
