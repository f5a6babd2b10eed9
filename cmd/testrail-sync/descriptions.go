package main

// These constants hold the "long" description of a command. These get printed when running `--help`, for example.
const (
	descriptionTestRailSync = `'testrail-sync' adds the results of a JUnit report to a TestRail run.

Every test in the report is matched to a TestRail case through an annotation in
its test script, e.g. 'PUPP-1234 - logs in with SSO (C5678)'. Scripts are looked
up relative to the tests root, which is expected two directories above the
report: 'tests/reports/junit/report.xml' resolves '<classname>/<name>' inside
'tests/'.

Passed tests are reported as passed, failed tests as failed, and skipped tests
as blocked. Results TestRail rejects are listed at the end of the run.

Credentials are read from the environment (TESTRAIL_HOST, TESTRAIL_USER,
TESTRAIL_API_KEY) or a '.testrail-sync.yaml' config file.

Example use:

	testrail-sync --run-id 42 --junit-report tests/reports/junit/report.xml

	testrail-sync --run-id 42 --junit-report 'tests/reports/**/*.xml' --dry-run`

	descriptionVersion = `'testrail-sync version' prints the version of the CLI.`
)
