package domain

import "fmt"

// VendorError is returned when the video vendor rejects a request or the
// round trip itself fails. Payload carries the vendor's error body verbatim
// when one was received.
type VendorError struct {
	Op         string
	StatusCode int
	Payload    string
	Err        error
}

func (e *VendorError) Error() string {
	if e.Payload != "" {
		return fmt.Sprintf("vendor %s failed: status %d: %s", e.Op, e.StatusCode, e.Payload)
	}
	if e.Err != nil {
		return fmt.Sprintf("vendor %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vendor %s failed: status %d", e.Op, e.StatusCode)
}

func (e *VendorError) Unwrap() error {
	return e.Err
}

// StoreError wraps persistence read/write failures.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError reports missing or malformed caller input before any
// external call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
