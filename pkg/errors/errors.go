// Package errors provides structured error types for stairpath.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP API and the engine
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (malformed files, bad moves,
//     broken staircase structure)
//   - UNSUPPORTED_SCALE: A path count does not fit the supported width
//   - PRECONDITION: The caller asked for something the input cannot satisfy
//   - INTERNAL_*: Unexpected internal errors
//
// None of these errors are retryable: the engine is pure, so running it
// again on the same input reproduces the same error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "move size must be positive: %d", m)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Structural errors carry the offending staircase and invariant
//	err := errors.Structural(3, errors.InvariantUnknownReturn, "returns into S%d", 9)
//	var inv *errors.InvariantError
//	if stderrors.As(err, &inv) {
//	    fmt.Println(inv.Staircase, inv.Invariant)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidStructure Code = "INVALID_STRUCTURE"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Scale and caller contract errors
	ErrCodeUnsupportedScale Code = "UNSUPPORTED_SCALE"
	ErrCodePrecondition     Code = "PRECONDITION"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Invariant names a structural rule of a staircase layout.
type Invariant string

// Structural invariants checked when a layout is built.
const (
	InvariantEmpty          Invariant = "non-empty layout"
	InvariantSpan           Invariant = "begin <= end"
	InvariantUnknownFeed    Invariant = "feeding id in range"
	InvariantUnknownReturn  Invariant = "returning id in range"
	InvariantSelfLink       Invariant = "no self link"
	InvariantSingleStart    Invariant = "exactly one staircase fed from START"
	InvariantPrimaryStart   Invariant = "staircase 1 is fed from START"
	InvariantInsidePrimary  Invariant = "span inside staircase 1"
	InvariantFeedPoint      Invariant = "feed point inside feeding span"
	InvariantReturnPoint    Invariant = "return point inside returning span"
	InvariantHandoffOrder   Invariant = "acyclic same-rank hand-offs"
	InvariantSuccessorOrder Invariant = "successors counted before predecessors"
)

// InvariantError describes which staircase broke which structural rule.
// It is carried as the Cause of an ErrCodeInvalidStructure *Error.
type InvariantError struct {
	Staircase int // 1-based staircase id, 0 when the rule concerns the whole layout
	Invariant Invariant
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	if e.Staircase > 0 {
		return fmt.Sprintf("staircase S%d violates %q", e.Staircase, e.Invariant)
	}
	return fmt.Sprintf("layout violates %q", e.Invariant)
}

// Code returns the error code for this error type.
func (e *InvariantError) Code() Code {
	return ErrCodeInvalidStructure
}

// Structural creates an ErrCodeInvalidStructure error for staircase id.
func Structural(id int, inv Invariant, format string, args ...any) *Error {
	return Wrap(ErrCodeInvalidStructure, &InvariantError{Staircase: id, Invariant: inv}, format, args...)
}
