// Package locator resolves the TestRail case a reported test belongs to. Test scripts are expected to carry an
// annotation like `PUPP-1234 - logs in with SSO (C5678)`, where `C5678` refers to the TestRail case.
package locator

import (
	"bufio"
	"path/filepath"
	"regexp"

	"github.com/rwx-research/testrail-sync/internal/errors"
	"github.com/rwx-research/testrail-sync/internal/fs"
	"github.com/rwx-research/testrail-sync/internal/testing"
)

// CaseGroup is the name of the capture group that holds the case identifier.
const CaseGroup = "case"

// DefaultPattern matches a ticket reference (word characters, a hyphen, and digits) followed, later on the same line, by
// a case reference (a `c` or `C` immediately followed by digits).
var DefaultPattern = regexp.MustCompile(`\w+-(?P<ticket>\d+).*[cC](?P<case>\d+)`)

// maxLineSize bounds a single script line. Minified sources easily exceed bufio's default token size.
const maxLineSize = 16 * 1024 * 1024

// Locator finds the case identifier annotated in a test script.
type Locator interface {
	Locate(scriptPath string) (string, error)
}

// FileSystem is the part of `fs.FileSystem` the locator needs.
type FileSystem interface {
	Open(name string) (fs.File, error)
}

// ScriptPath returns the location of the script that produced `entry`. Reports are expected to live two directories
// below the tests root, e.g. `tests/reports/junit/report.xml` for scripts in `tests/<classname>/<name>`.
func ScriptPath(reportPath string, entry testing.TestEntry) string {
	return filepath.Join(filepath.Dir(reportPath), "..", "..", filepath.FromSlash(entry.Classname), entry.Name)
}

// Pattern locates case identifiers by matching script lines against a regular expression.
type Pattern struct {
	FileSystem FileSystem
	Regexp     *regexp.Regexp
}

// NewPattern returns a Pattern locator. `re` needs a capture group named "case"; if it is nil, DefaultPattern is used.
func NewPattern(fileSystem FileSystem, re *regexp.Regexp) (Pattern, error) {
	if re == nil {
		re = DefaultPattern
	}

	if re.SubexpIndex(CaseGroup) < 0 {
		return Pattern{}, errors.NewConfigurationError("pattern %q has no capture group named %q", re, CaseGroup)
	}

	return Pattern{FileSystem: fileSystem, Regexp: re}, nil
}

// Locate returns the case identifier of the first matching line in the script.
func (p Pattern) Locate(scriptPath string) (string, error) {
	fd, err := p.FileSystem.Open(scriptPath)
	if err != nil {
		return "", errors.NewStructuralError(scriptPath, "unable to open test script %q: %s", scriptPath, err)
	}
	defer fd.Close()

	caseIndex := p.Regexp.SubexpIndex(CaseGroup)

	scanner := bufio.NewScanner(fd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		matches := p.Regexp.FindStringSubmatch(scanner.Text())
		if matches == nil || matches[caseIndex] == "" {
			continue
		}

		return matches[caseIndex], nil
	}

	if err := scanner.Err(); err != nil {
		return "", errors.NewStructuralError(scriptPath, "unable to read test script %q: %s", scriptPath, err)
	}

	return "", errors.NewStructuralError(scriptPath, "no TestRail case reference found in test script %q", scriptPath)
}
