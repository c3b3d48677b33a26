// Package errors provides structured error types for mkmagnet with
// consistent categorization and one-line rendering for the CLI layer.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	// ErrorTypeValidation covers values that were text but failed a
	// format rule (hash charset/length, tracker URI shape).
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeInput covers structural problems in the YAML/JSON input
	// file (missing data, options not a mapping, trackers not a list).
	ErrorTypeInput ErrorType = "input"

	// ErrorTypeUsage covers command-line misuse, such as selecting both
	// or neither of the hash/file sources. Maps to exit status 2.
	ErrorTypeUsage ErrorType = "usage"

	// ErrorTypeIO covers failures reading the input file itself.
	ErrorTypeIO ErrorType = "io"
)

// MagnetError is a structured error with a category and stable code.
type MagnetError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *MagnetError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *MagnetError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *MagnetError) Is(target error) bool {
	var t *MagnetError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *MagnetError {
	return &MagnetError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewInputError creates an input-file error.
func NewInputError(code, message string, cause error) *MagnetError {
	return &MagnetError{
		Type:    ErrorTypeInput,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates a command-line usage error.
func NewUsageError(code, message string) *MagnetError {
	return &MagnetError{
		Type:    ErrorTypeUsage,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *MagnetError {
	return &MagnetError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err (or anything it wraps) is a MagnetError of
// the given type.
func IsType(err error, errorType ErrorType) bool {
	var e *MagnetError
	if errors.As(err, &e) {
		return e.Type == errorType
	}

	return false
}

// IsUsageError reports whether err is a usage error. The CLI maps these
// to exit status 2.
func IsUsageError(err error) bool {
	return IsType(err, ErrorTypeUsage)
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}
