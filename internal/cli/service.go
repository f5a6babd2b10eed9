// Package cli holds the main business logic in our CLI. This is mainly:
// 1. Reconciling JUnit reports with TestRail, one result per test.
// 2. User-friendly logging
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/testrail-sync`.
package cli

import (
	"go.uber.org/zap"

	testrailsync "github.com/rwx-research/testrail-sync"
	"github.com/rwx-research/testrail-sync/internal/locator"
	"github.com/rwx-research/testrail-sync/internal/testrail"
)

// Service is the main CLI service.
type Service struct {
	API        APIClient
	FileSystem FileSystem
	Locator    locator.Locator
	Log        *zap.SugaredLogger
	Parser     Parser
	Statuses   testrail.Statuses
}

func (s Service) logError(err error) error {
	s.Log.Error(err.Error())
	return err
}

// PrintVersion prints the CLI version
func (s Service) PrintVersion() {
	s.Log.Infoln(testrailsync.Version)
}
