package reporting

import (
	"fmt"
	"io"

	"github.com/rwx-research/testrail-sync/internal/errors"
)

// Summary is the outcome of a reconciliation.
type Summary struct {
	Passed     int
	Failed     int
	Skipped    int
	Submitted  int
	BadResults BadResultLog
}

// Total returns the number of tests found in all reports
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// WriteTextSummary lists every test whose result could not be submitted, together with the error. Nothing is written
// if all submissions went through.
func WriteTextSummary(w io.Writer, summary Summary) error {
	if summary.BadResults.Len() == 0 {
		return nil
	}

	pluralizeResults := "results"
	if summary.BadResults.Len() == 1 {
		pluralizeResults = "result"
	}

	_, err := fmt.Fprintf(w, "Unable to submit %d %s:\n", summary.BadResults.Len(), pluralizeResults)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, name := range summary.BadResults.Names() {
		message, _ := summary.BadResults.Message(name)

		if _, err := fmt.Fprintf(w, "%s: %s\n", name, message); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
