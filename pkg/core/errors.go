package core

import (
	"errors"
	"fmt"
)

// ExecutionError represents a structured error with category and details
type ExecutionError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: adb_not_found, capture_failed, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an ExecutionError with the same code.
// Copies made by WithCause, WithMessage and WithDetails still match
// the predefined error they were derived from.
func (e *ExecutionError) Is(target error) bool {
	var t *ExecutionError
	if !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause
func (e *ExecutionError) WithCause(cause error) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *ExecutionError) WithMessage(msg string) *ExecutionError {
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details
func (e *ExecutionError) WithDetails(details map[string]interface{}) *ExecutionError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &ExecutionError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Construction errors
	ErrAdbNotFound = &ExecutionError{
		Category: ErrCategoryDevice,
		Code:     "adb_not_found",
		Message:  "ADB binary not found",
	}
	ErrTargetNotOnline = &ExecutionError{
		Category: ErrCategoryDevice,
		Code:     "target_not_online",
		Message:  "provided target is not online",
	}
	ErrNoExclusiveTargetOnline = &ExecutionError{
		Category: ErrCategoryDevice,
		Code:     "no_exclusive_target_online",
		Message:  "no exclusive target online",
	}

	// Screen errors
	ErrDisplaySize = &ExecutionError{
		Category: ErrCategoryCapture,
		Code:     "display_size_unavailable",
		Message:  "failed to get display size",
	}
	ErrCaptureScreen = &ExecutionError{
		Category: ErrCategoryCapture,
		Code:     "capture_failed",
		Message:  "failed to capture screen",
	}
	ErrScreenSum = &ExecutionError{
		Category: ErrCategoryCapture,
		Code:     "checksum_failed",
		Message:  "failed to calculate screen sum",
	}

	// Image errors
	ErrImageSave = &ExecutionError{
		Category: ErrCategoryImage,
		Code:     "image_save_failed",
		Message:  "failed to save image",
	}
	ErrImageDecode = &ExecutionError{
		Category: ErrCategoryImage,
		Code:     "image_decode_failed",
		Message:  "failed to decode image",
	}

	// Config errors
	ErrInvalidConfig = &ExecutionError{
		Category: ErrCategoryConfig,
		Code:     "invalid_config",
		Message:  "invalid configuration",
	}
	ErrMissingRequired = &ExecutionError{
		Category: ErrCategoryConfig,
		Code:     "missing_required",
		Message:  "missing required field",
	}
)

// NewExecutionError creates a new ExecutionError with the given parameters
func NewExecutionError(category ErrorCategory, code, message string) *ExecutionError {
	return &ExecutionError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}
