// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// ConfigurationError represent a configuration error. When used, it should ideally also point towards the configuration
// value that caused this error to occur.
type ConfigurationError struct {
	E error
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(msg string, a ...any) ConfigurationError {
	return ConfigurationError{E: xerrors.Errorf(msg, a...)}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e ConfigurationError) Unwrap() error {
	return e.E
}

// ExecutionError is an error that should result in a specific exit code of the CLI. It is returned from the
// reconciliation when the user asked for submission failures to fail the process.
type ExecutionError struct {
	E    error
	Code int
}

// NewExecutionError returns a new ExecutionError
func NewExecutionError(code int, msg string, a ...any) ExecutionError {
	return ExecutionError{Code: code, E: xerrors.Errorf(msg, a...)}
}

// AsExecutionError checks whether the error is an execution error.
func AsExecutionError(err error) (ExecutionError, bool) {
	var e ExecutionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ExecutionError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e ExecutionError) Unwrap() error {
	return e.E
}

// InputError is an error caused by user input
type InputError struct {
	E error
}

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return InputError{E: xerrors.Errorf(msg, a...)}
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InputError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e InputError) Unwrap() error {
	return e.E
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it and would
// need to reach out to us for support.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InternalError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e InternalError) Unwrap() error {
	return e.E
}

// StructuralError signals that a test script and the report that references it disagree, e.g. the script is missing
// or carries no case annotation. These errors are fatal: they abort the whole reconciliation.
type StructuralError struct {
	E    error
	Path string
}

// NewStructuralError returns a new StructuralError for the script at `path`
func NewStructuralError(path string, msg string, a ...any) StructuralError {
	return StructuralError{E: xerrors.Errorf(msg, a...), Path: path}
}

// AsStructuralError checks whether the error is a structural error
func AsStructuralError(err error) (StructuralError, bool) {
	var e StructuralError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e StructuralError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e StructuralError) Unwrap() error {
	return e.E
}

// SubmissionError is returned when the remote test-management system did not accept a single result. Unlike every
// other category, it is recoverable: the reconciliation records it and moves on to the next test.
type SubmissionError struct {
	E        error
	TestName string
}

// NewSubmissionError wraps `err` as the reason why the result for `testName` could not be submitted
func NewSubmissionError(testName string, err error) SubmissionError {
	return SubmissionError{E: err, TestName: testName}
}

// AsSubmissionError checks whether the error is a submission error
func AsSubmissionError(err error) (SubmissionError, bool) {
	var e SubmissionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SubmissionError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e SubmissionError) Unwrap() error {
	return e.E
}

// SystemError is returned when the CLI encountered a system error. This is most likely either an error during file read
// or a network error.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SystemError) Error() string {
	return e.E.Error()
}

// Unwrap returns the underlying error
func (e SystemError) Unwrap() error {
	return e.E
}
