package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies failures raised while checksumming files and
// verifying manifests. This helps callers decide how to report or retry them.
type ErrorCategory int

const (
	// ErrorIO indicates failures opening, reading or walking inputs,
	// such as missing files, permissions or device errors.
	ErrorIO ErrorCategory = iota + 1

	// ErrorDecompression indicates a compressed input that could not be decoded.
	ErrorDecompression

	// ErrorMismatch indicates that recomputed data does not match the recorded checksum.
	ErrorMismatch

	// ErrorManifest indicates a malformed or unreadable checksum manifest.
	ErrorManifest
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorIO:
		return "io"
	case ErrorDecompression:
		return "decompression"
	case ErrorMismatch:
		return "mismatch"
	case ErrorManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// ChecksumError records which operation failed on which input.
type ChecksumError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewChecksumError creates a ChecksumError stamped with the current time.
func NewChecksumError(category ErrorCategory, operation, path string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Path:      path,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
func (e *ChecksumError) IsRetryAble() bool {
	switch e.Category {
	case ErrorIO:
		// The file may be transiently locked or on a flaky mount.
		return true
	case ErrorDecompression, ErrorMismatch, ErrorManifest:
		// The bytes themselves are wrong; reading them again changes nothing.
		return false
	default:
		return false
	}
}

// IsCategory reports whether err wraps a ChecksumError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ce *ChecksumError
	return errors.As(err, &ce) && ce.Category == category
}
