// Package errors annotates errors with context while keeping the original cause reachable.
package errors

import (
	jujuerrors "github.com/juju/errors"
)

// New returns a plain error with message
func New(message string) error {
	return jujuerrors.New(message)
}

// Annotate wraps err with message. A nil err stays nil.
func Annotate(err error, message string) error {
	if err == nil {
		return nil
	}
	return jujuerrors.Annotate(err, message)
}

// Annotatef is Annotate with a format string
func Annotatef(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return jujuerrors.Annotatef(err, format, args...)
}

// Cause returns the error that started an annotation chain
func Cause(err error) error {
	return jujuerrors.Cause(err)
}

// Details prints every message in the chain along with where it was annotated
func Details(err error) string {
	return jujuerrors.Details(err)
}

// NotValidf builds an error reporting that the described value is not valid
func NotValidf(format string, args ...interface{}) error {
	return jujuerrors.NotValidf(format, args...)
}

// IsNotValid is true if the cause of err was built by NotValidf
func IsNotValid(err error) bool {
	return jujuerrors.IsNotValid(Cause(err))
}
