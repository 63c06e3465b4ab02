// Package core defines the error model shared by the bridge, OCR and toolkit packages.
package core

// ErrorCategory classifies the type of error for better debugging and reporting
type ErrorCategory int

const (
	ErrCategoryNone    ErrorCategory = iota // No error
	ErrCategoryDevice                       // Bridge binary missing, target offline or ambiguous
	ErrCategoryCapture                      // Screen capture, display size or checksum failed
	ErrCategoryImage                        // Image could not be decoded or persisted
	ErrCategoryConfig                       // Invalid configuration, missing required field
)

// String returns the string representation of ErrorCategory
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryDevice:
		return "device"
	case ErrCategoryCapture:
		return "capture"
	case ErrCategoryImage:
		return "image"
	case ErrCategoryConfig:
		return "config"
	default:
		return "unknown"
	}
}
