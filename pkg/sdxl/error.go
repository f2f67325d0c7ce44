package sdxl

import (
	"errors"
	"fmt"
)

// ArgumentError reports invalid command input: a missing or malformed
// prompt or body-parameter list. Callers typically print usage text when
// they see one.
type ArgumentError struct {
	Msg string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return e.Msg
}

// NewArgumentError creates an ArgumentError with a formatted message.
func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// IsArgumentError reports whether err is (or wraps) an ArgumentError.
func IsArgumentError(err error) bool {
	var e *ArgumentError
	return errors.As(err, &e)
}

// CoercionError reports a body-parameter value that could not be coerced
// to the numeric type its key requires.
type CoercionError struct {
	Key   string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("body param %q requires a numeric value, got %q", e.Key, e.Value)
}

// Unwrap returns the underlying parse error.
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// ResultError reports a response that was delivered successfully at the
// transport level but carries a non-success result value. No artifacts
// are written when this occurs.
type ResultError struct {
	Result string
}

// Error implements the error interface.
func (e *ResultError) Error() string {
	return fmt.Sprintf("model returned result %q", e.Result)
}

// AsResultError extracts a *ResultError from an error.
func AsResultError(err error) (*ResultError, bool) {
	var e *ResultError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
