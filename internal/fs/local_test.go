package fs_test

import (
	"io"
	"os"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/fs"
	"github.com/rwx-research/testrail-sync/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	_ fs.FileSystem = fs.Local{}
	_ fs.FileSystem = new(mocks.FileSystem)
)

var _ = Describe("fs.Local", func() {
	Describe("Open", func() {
		It("opens existing files", func() {
			file, err := fs.Local{}.Open("testdata/reports/junit.xml")
			Expect(err).ToNot(HaveOccurred())
			defer file.Close()

			content, err := io.ReadAll(file)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(content)).To(Equal("<testsuite/>\n"))
		})

		It("returns an error for missing files", func() {
			_, err := fs.Local{}.Open("testdata/reports/missing.xml")
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})

	Describe("GlobMany", func() {
		It("expands a single glob pattern", func() {
			expandedPaths, err := fs.Local{}.GlobMany([]string{"testdata/reports/*/junit.xml"})

			Expect(err).ToNot(HaveOccurred())
			Expect(expandedPaths).To(Equal([]string{
				"testdata/reports/nightly/junit.xml",
				"testdata/reports/smoke/junit.xml",
			}))
		})

		It("expands recursive glob patterns", func() {
			expandedPaths, err := fs.Local{}.GlobMany([]string{"testdata/**/*.xml"})

			Expect(err).ToNot(HaveOccurred())
			Expect(expandedPaths).To(Equal([]string{
				"testdata/reports/junit.xml",
				"testdata/reports/nightly/junit.xml",
				"testdata/reports/smoke/junit.xml",
			}))
		})

		It("expands multiple glob patterns only returning unique paths", func() {
			expandedPaths, err := fs.Local{}.GlobMany([]string{
				"testdata/reports/smoke/junit.xml",
				"testdata/reports/*/junit.xml",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(expandedPaths).To(Equal([]string{
				"testdata/reports/nightly/junit.xml",
				"testdata/reports/smoke/junit.xml",
			}))
		})

		It("returns nothing for patterns without matches", func() {
			expandedPaths, err := fs.Local{}.GlobMany([]string{"testdata/reports/*.json"})

			Expect(err).ToNot(HaveOccurred())
			Expect(expandedPaths).To(BeEmpty())
		})
	})
})
