// Package apperror defines the error taxonomy shared by every feature:
// validation failures, missing entities, and opaque internal errors.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing input supplied by the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that a referenced entity does not exist locally or upstream.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InternalError hides its cause from callers. The cause stays reachable through
// errors.Unwrap so it can be logged server-side.
type InternalError struct {
	cause error
}

// internalMessage is the only message an InternalError ever exposes.
const internalMessage = "internal error"

func (e *InternalError) Error() string { return internalMessage }

func (e *InternalError) Unwrap() error { return e.cause }

// Validation builds a ValidationError with a formatted message.
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// Internal wraps err as an InternalError. Validation and not-found errors pass
// through untouched, as does an error that is already internal.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) {
		return err
	}
	var ie *InternalError
	if errors.As(err, &ie) {
		return err
	}
	return &InternalError{cause: err}
}

// Mask wraps any non-nil err as an InternalError, whatever its kind. It is used
// at boundaries where callers must only learn that something failed.
func Mask(err error) error {
	if err == nil {
		return nil
	}
	var ie *InternalError
	if errors.As(err, &ie) {
		return err
	}
	return &InternalError{cause: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsInternal reports whether err is (or wraps) an InternalError. It takes
// precedence over the other predicates, since a masked error still wraps its cause.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
