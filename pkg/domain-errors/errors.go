// Package domainerrors carries machine-readable error codes across layers.
//
// Stores return sentinel errors (see pkg/platform/sentinel); services translate
// them into coded errors with New or Wrap; transports map codes to wire statuses
// without inspecting messages.
package domainerrors

import (
	"errors"
)

// Code classifies an error for callers and transports.
type Code string

const (
	CodeInternal           Code = "internal_error"
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeInvalidInput       Code = "invalid_input"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeTimeout            Code = "timeout"
	CodeInvariantViolation Code = "invariant_violation"

	// Admission outcomes. These are expected results of concurrent use and are
	// returned to the caller as typed results, not logged as failures.
	CodeOwnerCannotLeave  Code = "owner_cannot_leave"
	CodeCannotRemoveOwner Code = "cannot_remove_owner"
	CodeGroupFull         Code = "group_full"
	CodeAlreadyMember     Code = "already_member"
	CodeNotMember         Code = "not_member"
	CodeDuplicatePending  Code = "duplicate_pending"
	CodeAlreadyTerminal   Code = "already_terminal"
	CodeInvalidCapacity   Code = "invalid_capacity"
)

// Error is a coded domain error. Err, when set, is the underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a coded error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any coded error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost code in err's chain, or CodeInternal when err
// carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsBusinessOutcome reports whether err is an expected admission outcome or a
// caller error, as opposed to an infrastructure failure.
func IsBusinessOutcome(err error) bool {
	switch CodeOf(err) {
	case CodeInternal, CodeTimeout:
		return false
	default:
		return true
	}
}
