package errors

import (
	"errors"
	"fmt"
)

// Exit codes for claude-builder
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitAnalyzeFailed    = 2
	ExitTemplateNotFound = 3
	ExitRenderFailed     = 4
	ExitWriteFailed      = 5
	ExitConfigError      = 6
)

// BuilderError is the base error type for claude-builder
type BuilderError struct {
	Code    int
	Message string
	Cause   error
}

func (e *BuilderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *BuilderError) ExitCode() int {
	return e.Code
}

// New creates a new BuilderError
func New(code int, message string) *BuilderError {
	return &BuilderError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BuilderError
func Wrap(code int, message string, cause error) *BuilderError {
	return &BuilderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// AnalyzeFailed returns an error for a failed project analysis
func AnalyzeFailed(path string, cause error) *BuilderError {
	return Wrap(ExitAnalyzeFailed, fmt.Sprintf("failed to analyze project: %s", path), cause)
}

// TemplateNotFound returns an error for a missing document template
func TemplateNotFound(name string) *BuilderError {
	return New(ExitTemplateNotFound, fmt.Sprintf("template not found: %s", name))
}

// RenderFailed returns an error for a failed document render
func RenderFailed(document string, cause error) *BuilderError {
	return Wrap(ExitRenderFailed, fmt.Sprintf("failed to render document: %s", document), cause)
}

// WriteFailed returns an error for a failed document write
func WriteFailed(path string, cause error) *BuilderError {
	return Wrap(ExitWriteFailed, fmt.Sprintf("failed to write document: %s", path), cause)
}

// ConfigError returns an error for invalid configuration
func ConfigError(message string, cause error) *BuilderError {
	return Wrap(ExitConfigError, message, cause)
}

// GetExitCode extracts the exit code from an error chain.
// Returns ExitSuccess for nil errors and ExitGeneralError for
// errors that are not BuilderErrors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var builderErr *BuilderError
	if errors.As(err, &builderErr) {
		return builderErr.Code
	}

	return ExitGeneralError
}
