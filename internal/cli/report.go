package cli

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/reporting"
	"github.com/rwx-research/testrail-sync/internal/testing"
)

// ReportResults is the implementation of `testrail-sync`. It parses the JUnit reports, then adds one result per test
// to the TestRail run: passed tests first, then failed ones, then skipped ones.
//
// A result TestRail rejects does not stop the reconciliation; it is recorded and listed once all tests were
// processed. Any other error, most notably a test script without a case reference, aborts immediately.
func (s Service) ReportResults(ctx context.Context, cfg ReportConfig) (reporting.Summary, error) {
	var summary reporting.Summary

	if err := cfg.Validate(); err != nil {
		return summary, s.logError(err)
	}

	reports, err := s.loadReports(cfg.ReportPaths)
	if err != nil {
		return summary, err
	}

	for _, report := range reports {
		summary.Passed += len(report.Passed)
		summary.Failed += len(report.Failed)
		summary.Skipped += len(report.Skipped)

		s.Log.Infof(
			"Found %d passing, %d failing, and %d skipped tests in %s",
			len(report.Passed), len(report.Failed), len(report.Skipped), report.Path,
		)
	}

	statuses := s.Statuses.WithDefaults()

	for _, report := range reports {
		for _, entry := range report.InSubmissionOrder() {
			if err := ctx.Err(); err != nil {
				return summary, s.logError(errors.NewSystemError("reconciliation was interrupted: %s", err))
			}

			err := s.submit(ctx, cfg, statuses, report.Path, entry)
			if err == nil {
				if !cfg.DryRun {
					summary.Submitted++
				}
				continue
			}

			submissionErr, ok := errors.AsSubmissionError(err)
			if !ok {
				return summary, s.logError(err)
			}

			s.Log.Debugf("unable to submit result for %s: %+v", submissionErr.TestName, submissionErr.E)
			summary.BadResults.Record(submissionErr.TestName, submissionErr.Error())
		}
	}

	if err := reporting.WriteTextSummary(zap.NewStdLog(s.Log.Desugar()).Writer(), summary); err != nil {
		s.Log.Warnf("unable to print summary: %s", err)
	}

	if cfg.FailOnSubmissionError && summary.BadResults.Len() > 0 {
		return summary, errors.NewExecutionError(
			2, "unable to submit %d of %d results", summary.BadResults.Len(), summary.Total(),
		)
	}

	return summary, nil
}

func (s Service) loadReports(patterns []string) ([]testing.Report, error) {
	reportPaths, err := s.FileSystem.GlobMany(patterns)
	if err != nil {
		return nil, s.logError(errors.WithStack(err))
	}

	if len(reportPaths) == 0 {
		return nil, s.logError(errors.NewInputError("no JUnit report found at %s", strings.Join(patterns, ", ")))
	}

	reports := make([]testing.Report, 0, len(reportPaths))

	for _, reportPath := range reportPaths {
		s.Log.Debugf("Attempting to parse %q", reportPath)

		report, err := s.loadReport(reportPath)
		if err != nil {
			return nil, s.logError(err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (s Service) loadReport(reportPath string) (testing.Report, error) {
	fd, err := s.FileSystem.Open(reportPath)
	if err != nil {
		return testing.Report{}, errors.NewSystemError("unable to open file: %s", err)
	}
	defer fd.Close()

	report, err := s.Parser.Parse(fd)
	if err != nil {
		return testing.Report{}, errors.Wrapf(err, "unable to parse %q", reportPath)
	}

	report.Path = reportPath

	return report, nil
}
