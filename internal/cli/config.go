package cli

import "github.com/rwx-research/testrail-sync/internal/errors"

// ReportConfig holds the configuration for reporting test results to TestRail (used by `ReportResults`)
type ReportConfig struct {
	// RunID is the TestRail run the results are added to
	RunID string
	// ReportPaths are paths or glob patterns of JUnit reports
	ReportPaths           []string
	DryRun                bool
	FailOnSubmissionError bool
}

// Validate checks the configuration for errors
func (rc ReportConfig) Validate() error {
	if rc.RunID == "" {
		return errors.NewConfigurationError("missing TestRail run ID")
	}

	if len(rc.ReportPaths) == 0 {
		return errors.NewConfigurationError("no JUnit report provided")
	}

	for _, reportPath := range rc.ReportPaths {
		if reportPath == "" {
			return errors.NewConfigurationError("JUnit report path cannot be empty")
		}
	}

	return nil
}
