// Package errors is the single import for error handling: stdlib matching
// (Is, As, Join) plus pkg/errors wrapping, so every wrapped error carries a
// stack trace for the logs.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack returns nil when err is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf records a stack trace, unlike fmt.Errorf.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the innermost error of a pkg/errors chain, for logging the
// failure's origin type.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
