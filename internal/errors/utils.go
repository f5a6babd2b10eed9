package errors

import (
	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// As is a wrapper around the standard library `errors.As`
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is a wrapper around the standard library `errors.Is`
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New returns a plain error with a stack-trace. Prefer one of the categorised constructors where possible.
func New(msg string) error {
	return errors.New(msg)
}

// WithMessage formats a new error message. Other errors can be wrapped using the `%w` verb.
func WithMessage(msg string, a ...any) error {
	return xerrors.Errorf(msg, a...)
}

// WithStack adds a stack trace to an error without doing anything further
func WithStack(err error) error {
	return errors.WithStack(err)
}

// Wrap is similar to 'WithStack', but adds a message to the error
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is similar to 'Wrap', but formats the message
func Wrapf(err error, msg string, a ...any) error {
	return errors.Wrapf(err, msg, a...)
}

// Unwrap unwraps err one level
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
