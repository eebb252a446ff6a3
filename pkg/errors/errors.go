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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Root container errors; these abort a run before any mutation
	ErrRootNotFound ErrorCode = "ROOT_NOT_FOUND"
	ErrRootLoad     ErrorCode = "ROOT_LOAD"
	ErrRootSave     ErrorCode = "ROOT_SAVE"

	// Resource errors
	ErrResourceLoad  ErrorCode = "RESOURCE_LOAD"
	ErrResourceParse ErrorCode = "RESOURCE_PARSE"
	ErrResourceSave  ErrorCode = "RESOURCE_SAVE"

	// Pipeline item errors; non-fatal, surfaced as warnings
	ErrItemCopy       ErrorCode = "ITEM_COPY"
	ErrCorrespondence ErrorCode = "CORRESPONDENCE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// AssortError represents a structured error with code and details
type AssortError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AssortError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AssortError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AssortError) Is(target error) bool {
	var targetErr *AssortError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AssortError with the given code and message
func New(code ErrorCode, message string) *AssortError {
	return &AssortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AssortError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AssortError {
	return &AssortError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AssortError
func Wrap(err error, code ErrorCode, message string) *AssortError {
	if err == nil {
		return nil
	}
	return &AssortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AssortError {
	if err == nil {
		return nil
	}
	return &AssortError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AssortError) WithDetail(key string, value interface{}) *AssortError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var assortErr *AssortError
	if errors.As(err, &assortErr) {
		return assortErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not an AssortError
func GetErrorCode(err error) ErrorCode {
	var assortErr *AssortError
	if errors.As(err, &assortErr) {
		return assortErr.Code
	}
	return ErrUnknown
}
