package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Lock errors
	ErrLockHeld    ErrorCode = "LOCK_HELD"
	ErrLockIO      ErrorCode = "LOCK_IO"
	ErrLockInvalid ErrorCode = "LOCK_INVALID"

	// Command execution errors
	ErrExecStart          ErrorCode = "EXEC_START"
	ErrExecNotFound       ErrorCode = "EXEC_NOT_FOUND"
	ErrHarnessUnavailable ErrorCode = "HARNESS_UNAVAILABLE"

	// Prompt errors
	ErrPromptIO ErrorCode = "PROMPT_IO"
)

// ShkitError represents a structured error with code and details
type ShkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShkitError) Is(target error) bool {
	var targetErr *ShkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShkitError with the given code and message
func New(code ErrorCode, message string) *ShkitError {
	return &ShkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShkitError {
	return &ShkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShkitError
func Wrap(err error, code ErrorCode, message string) *ShkitError {
	if err == nil {
		return nil
	}
	return &ShkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShkitError {
	if err == nil {
		return nil
	}
	return &ShkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShkitError) WithDetail(key string, value interface{}) *ShkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shkitErr *ShkitError
	if errors.As(err, &shkitErr) {
		return shkitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShkitError
func GetErrorCode(err error) ErrorCode {
	var shkitErr *ShkitError
	if errors.As(err, &shkitErr) {
		return shkitErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ShkitError
func GetErrorDetails(err error) map[string]interface{} {
	var shkitErr *ShkitError
	if errors.As(err, &shkitErr) {
		return shkitErr.Details
	}
	return nil
}
