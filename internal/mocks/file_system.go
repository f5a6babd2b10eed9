package mocks

import (
	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/fs"
)

// FileSystem is a mocked implementation of 'fs.FileSystem'.
type FileSystem struct {
	MockOpen     func(name string) (fs.File, error)
	MockGlob     func(pattern string) ([]string, error)
	MockGlobMany func(patterns []string) ([]string, error)
}

// Open either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.NewConfigurationError("MockOpen was not configured")
}

// Glob either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	if f.MockGlob != nil {
		return f.MockGlob(pattern)
	}

	return nil, errors.NewConfigurationError("MockGlob was not configured")
}

// GlobMany either calls the configured mock of itself, falls back to `MockGlob` for every pattern, or returns an
// error if neither exists.
func (f *FileSystem) GlobMany(patterns []string) ([]string, error) {
	if f.MockGlobMany != nil {
		return f.MockGlobMany(patterns)
	}

	if f.MockGlob == nil {
		return nil, errors.NewConfigurationError("MockGlobMany was not configured")
	}

	paths := make([]string, 0)
	for _, pattern := range patterns {
		expanded, err := f.MockGlob(pattern)
		if err != nil {
			return nil, err
		}

		paths = append(paths, expanded...)
	}

	return paths, nil
}
