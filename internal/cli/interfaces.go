package cli

import (
	"context"
	"io"

	"github.com/rwx-research/testrail-sync/internal/fs"
	"github.com/rwx-research/testrail-sync/internal/testing"
	"github.com/rwx-research/testrail-sync/internal/testrail"
)

// APIClient is the interface of our API layer.
type APIClient interface {
	AddResultForCase(context.Context, string, string, testrail.Result) (testrail.AddedResult, error)
}

// FileSystem is an abstraction over file-systems. This is implemented by the default `os` package and can also be used
// for mocking.
type FileSystem interface {
	Open(name string) (fs.File, error)
	GlobMany(patterns []string) ([]string, error)
}

// Parser is the interface a report parser needs to implement.
type Parser interface {
	Parse(io.Reader) (testing.Report, error)
}
