package testrail

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StatusID is the numeric identifier TestRail uses for result statuses.
type StatusID int

// The system statuses every TestRail instance ships with.
const (
	StatusPassed   StatusID = 1
	StatusBlocked  StatusID = 2
	StatusUntested StatusID = 3
	StatusRetest   StatusID = 4
	StatusFailed   StatusID = 5
)

// Statuses maps test outcomes to TestRail status identifiers. Instances with custom statuses can override the
// defaults.
type Statuses struct {
	Passed  StatusID
	Blocked StatusID
	Failed  StatusID
}

// DefaultStatuses returns the system statuses of TestRail
func DefaultStatuses() Statuses {
	return Statuses{
		Passed:  StatusPassed,
		Blocked: StatusBlocked,
		Failed:  StatusFailed,
	}
}

// WithDefaults returns a copy with every unset status replaced by its system default.
func (s Statuses) WithDefaults() Statuses {
	defaults := DefaultStatuses()

	if s.Passed == 0 {
		s.Passed = defaults.Passed
	}

	if s.Blocked == 0 {
		s.Blocked = defaults.Blocked
	}

	if s.Failed == 0 {
		s.Failed = defaults.Failed
	}

	return s
}

// Result is the body of an `add_result_for_case` request.
type Result struct {
	StatusID StatusID `json:"status_id"`
	Comment  string   `json:"comment,omitempty"`
	Elapsed  string   `json:"elapsed,omitempty"`
}

// AddedResult is the part of TestRail's response we care about.
type AddedResult struct {
	ID       int      `json:"id"`
	TestID   int      `json:"test_id"`
	StatusID StatusID `json:"status_id"`
}

// maxElapsedSeconds caps timespans that would otherwise overflow TestRail's integer storage.
const maxElapsedSeconds = math.MaxInt32

// Elapsed converts a duration in fractional seconds into TestRail's timespan format. Values are rounded to the nearest
// second (halves away from zero) and never go below "1s", as TestRail rejects a zero timespan. Anything that doesn't
// parse as a number counts as zero.
func Elapsed(seconds string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(seconds), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	rounded := math.Round(value)
	if rounded < 1 {
		rounded = 1
	}

	if rounded > maxElapsedSeconds {
		rounded = maxElapsedSeconds
	}

	return fmt.Sprintf("%ds", int64(rounded))
}
