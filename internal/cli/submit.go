package cli

import (
	"context"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/locator"
	"github.com/rwx-research/testrail-sync/internal/testing"
	"github.com/rwx-research/testrail-sync/internal/testrail"
)

const (
	failedCommentPrefix  = "Failed with message:\n"
	skippedCommentPrefix = "Skipped with message:\n"
)

// NewResult builds the TestRail result for a test entry. Skipped tests are reported as blocked.
func NewResult(entry testing.TestEntry, statuses testrail.Statuses) testrail.Result {
	result := testrail.Result{Elapsed: testrail.Elapsed(entry.Duration)}

	switch entry.Status {
	case testing.TestStatusFailed:
		result.StatusID = statuses.Failed
		result.Comment = failedCommentPrefix + entry.FailureMessage
	case testing.TestStatusSkipped:
		result.StatusID = statuses.Blocked
		result.Comment = skippedCommentPrefix + entry.SkipMessage
	default:
		result.StatusID = statuses.Passed
	}

	return result
}

// submit resolves the case of a single test entry and adds its result to the run. Only errors returned by TestRail are
// wrapped as `errors.SubmissionError`; failing to resolve the case is returned as is and must abort the reconciliation.
func (s Service) submit(
	ctx context.Context,
	cfg ReportConfig,
	statuses testrail.Statuses,
	reportPath string,
	entry testing.TestEntry,
) error {
	caseID, err := s.Locator.Locate(locator.ScriptPath(reportPath, entry))
	if err != nil {
		return errors.WithStack(err)
	}

	result := NewResult(entry, statuses)

	if cfg.DryRun {
		s.Log.Infof("Would submit %s result for %s to case C%s (elapsed %s)", entry.Status, entry.Name, caseID, result.Elapsed)
		return nil
	}

	s.Log.Infof("Submitting %s result for %s to case C%s (elapsed %s)", entry.Status, entry.Name, caseID, result.Elapsed)

	added, err := s.API.AddResultForCase(ctx, cfg.RunID, caseID, result)
	if err != nil {
		return errors.NewSubmissionError(entry.Identifier(), err)
	}

	s.Log.Debugf("TestRail stored result %d for test %d", added.ID, added.TestID)

	return nil
}
