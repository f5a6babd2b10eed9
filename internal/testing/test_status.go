package testing

// TestStatus is the outcome of a single test entry in a report.
type TestStatus int

const (
	TestStatusPassed TestStatus = iota
	TestStatusFailed
	TestStatusSkipped
)

// String returns the string representation of a status.
func (s TestStatus) String() string {
	switch s {
	case TestStatusFailed:
		return "failed"
	case TestStatusSkipped:
		return "skipped"
	case TestStatusPassed:
		fallthrough
	default:
		return "passed"
	}
}
