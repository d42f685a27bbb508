// internal/runtimes/errors.go
package runtimes

import "fmt"

// FormatError reports a malformed image name, size string, or manifest
// document. Resolution stops at the first one.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports a manifest that parsed cleanly but violates an
// invariant (ambiguous family default, non-positive stem cell count).
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
