package mocks

import (
	"io"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/testing"
)

// Parser is a mocked implementation of 'cli.Parser'.
type Parser struct {
	MockParse func(io.Reader) (testing.Report, error)
}

// Parse either calls the configured mock of itself or returns an error if that doesn't exist.
func (p *Parser) Parse(reader io.Reader) (testing.Report, error) {
	if p.MockParse != nil {
		return p.MockParse(reader)
	}

	return testing.Report{}, errors.NewConfigurationError("MockParse was not configured")
}
