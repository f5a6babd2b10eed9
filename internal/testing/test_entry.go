// Package testing holds any domain logic and domain models related to testing.
package testing

import "path"

// TestEntry is a single test execution as recorded in a JUnit report.
type TestEntry struct {
	// Name is the file name of the test script
	Name string
	// Classname is the directory of the test script, relative to the tests root
	Classname string
	Status    TestStatus
	// Duration is the raw `time` attribute, i.e. fractional seconds
	Duration       string
	FailureMessage string
	SkipMessage    string
}

// Identifier qualifies the name with its classname, e.g. `acceptance/login/login_spec.rb`.
func (e TestEntry) Identifier() string {
	return path.Join(e.Classname, e.Name)
}

// Report holds the test entries of a single report, classified by their status. Document order is preserved
// within each status.
type Report struct {
	Path    string
	Passed  []TestEntry
	Failed  []TestEntry
	Skipped []TestEntry
}

// Add files the entry under its status
func (r *Report) Add(entry TestEntry) {
	switch entry.Status {
	case TestStatusFailed:
		r.Failed = append(r.Failed, entry)
	case TestStatusSkipped:
		r.Skipped = append(r.Skipped, entry)
	default:
		r.Passed = append(r.Passed, entry)
	}
}

// Len returns the total number of entries
func (r Report) Len() int {
	return len(r.Passed) + len(r.Failed) + len(r.Skipped)
}

// InSubmissionOrder returns all entries: passed ones first, then failed, then skipped.
func (r Report) InSubmissionOrder() []TestEntry {
	entries := make([]TestEntry, 0, r.Len())
	entries = append(entries, r.Passed...)
	entries = append(entries, r.Failed...)
	return append(entries, r.Skipped...)
}
