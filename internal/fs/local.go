// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"
	"sort"

	"github.com/yargevad/filepathx"

	"github.com/rwx-research/testrail-sync/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Glob expands the provided pattern. Unlike `filepath.Glob`, `**` matches any number of directories.
func (l Local) Glob(pattern string) ([]string, error) {
	paths, err := filepathx.Glob(pattern)
	if err != nil {
		return nil, errors.NewInputError("unable to expand glob %q: %s", pattern, err)
	}

	return paths, nil
}

// GlobMany expands all patterns and returns the unique, sorted list of matching paths.
func (l Local) GlobMany(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	paths := make([]string, 0)

	for _, pattern := range patterns {
		expandedPaths, err := l.Glob(pattern)
		if err != nil {
			return nil, err
		}

		for _, path := range expandedPaths {
			if _, ok := seen[path]; ok {
				continue
			}

			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}

	sort.Strings(paths)

	return paths, nil
}
