// Package parsers turns test reports into the domain model of `internal/testing`.
package parsers

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/testing"
)

// JUnit is a JUnit XML parser. It accepts both a `testsuites` and a bare `testsuite` root and collects every
// `testcase` element in document order, no matter how deeply it is nested.
type JUnit struct{}

type jUnitMessage struct {
	Message  string `xml:"message,attr"`
	Contents string `xml:",chardata"`
}

type jUnitTestCase struct {
	Classname string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Error     *jUnitMessage `xml:"error"`
	Failure   *jUnitMessage `xml:"failure"`
	Skip      *jUnitMessage `xml:"skip"`
	Skipped   *jUnitMessage `xml:"skipped"`
	SystemOut *string       `xml:"system-out"`
}

// Parse attempts to parse the provided byte-stream as a JUnit report.
func (j JUnit) Parse(content io.Reader) (testing.Report, error) {
	var report testing.Report

	decoder := xml.NewDecoder(content)
	sawElement := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return testing.Report{}, errors.NewInputError("unable to parse document as XML: %s", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		if start.Name.Local != "testcase" {
			continue
		}

		var testCase jUnitTestCase
		if err := decoder.DecodeElement(&testCase, &start); err != nil {
			return testing.Report{}, errors.NewInputError("unable to parse test case: %s", err)
		}

		report.Add(testCase.entry())
	}

	if !sawElement {
		return testing.Report{}, errors.NewInputError("unable to parse document as XML: no root element")
	}

	return report, nil
}

// entry classifies the test case. A failure (or error) marker takes precedence over a skip marker, so every test case
// ends up with exactly one status.
func (tc jUnitTestCase) entry() testing.TestEntry {
	entry := testing.TestEntry{
		Name:      tc.Name,
		Classname: tc.Classname,
		Duration:  strings.TrimSpace(tc.Time),
		Status:    testing.TestStatusPassed,
	}

	failure := tc.Failure
	if failure == nil {
		failure = tc.Error
	}

	skip := tc.Skipped
	if skip == nil {
		skip = tc.Skip
	}

	switch {
	case failure != nil:
		entry.Status = testing.TestStatusFailed
		entry.FailureMessage = failure.Message
	case skip != nil:
		entry.Status = testing.TestStatusSkipped
		entry.SkipMessage = skip.Message

		if tc.SystemOut != nil && *tc.SystemOut != "" {
			entry.SkipMessage = *tc.SystemOut
		}
	}

	return entry
}
