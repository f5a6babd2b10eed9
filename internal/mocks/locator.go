package mocks

import "github.com/rwx-research/testrail-sync/internal/errors"

// Locator is a mocked implementation of 'locator.Locator'.
type Locator struct {
	MockLocate func(scriptPath string) (string, error)
}

// Locate either calls the configured mock of itself or returns an error if that doesn't exist.
func (l *Locator) Locate(scriptPath string) (string, error) {
	if l.MockLocate != nil {
		return l.MockLocate(scriptPath)
	}

	return "", errors.NewConfigurationError("MockLocate was not configured")
}
