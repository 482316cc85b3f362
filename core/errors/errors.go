// Package errors provides standardized error types and helpers for the
// SFF codec and its surrounding packages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the codec's failure taxonomy
var (
	// ErrMalformed indicates structurally invalid markup or wrong element
	// nesting. No partial document accompanies it.
	ErrMalformed = errors.New("malformed document")
	// ErrInvalidMetadata indicates a numeric metadata field holding
	// non-numeric (or negative) text.
	ErrInvalidMetadata = errors.New("invalid metadata")
	// ErrCounterMismatch indicates stored metadata counters that disagree
	// with counts derived from the content. Warning-level: the parsed
	// document is returned alongside it.
	ErrCounterMismatch = errors.New("counter mismatch")
	// ErrUnsupported indicates an unsupported format or operation.
	ErrUnsupported = errors.New("unsupported")
)

// SyntaxError represents malformed markup or wrong element nesting
type SyntaxError struct {
	Message string // What was wrong with the structure
	Err     error  // Underlying decoder error, if any
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed document: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("malformed document: %s", e.Message)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}

// MetadataError represents a numeric metadata field that failed to parse
type MetadataError struct {
	Field string // Metadata element name (e.g. "TLLength")
	Value string // Offending text content
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid metadata: %s: not a non-negative integer: %q", e.Field, e.Value)
}

func (e *MetadataError) Unwrap() error {
	return ErrInvalidMetadata
}

// CounterError represents a stored counter that disagrees with the count
// derived from the document content
type CounterError struct {
	Field  string // Metadata element name (e.g. "BalloonCount")
	Stored int    // Value found in the metadata
	Actual int    // Value derived from the content
}

func (e *CounterError) Error() string {
	return fmt.Sprintf("counter mismatch: %s: stored %d, actual %d", e.Field, e.Stored, e.Actual)
}

func (e *CounterError) Unwrap() error {
	return ErrCounterMismatch
}

// UnsupportedError represents an unsupported format or feature
type UnsupportedError struct {
	What string // Format or feature that is unsupported
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported: %s", e.What)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewSyntax creates a SyntaxError
func NewSyntax(message string, err error) *SyntaxError {
	return &SyntaxError{Message: message, Err: err}
}

// NewMetadata creates a MetadataError
func NewMetadata(field, value string) *MetadataError {
	return &MetadataError{Field: field, Value: value}
}

// NewCounter creates a CounterError
func NewCounter(field string, stored, actual int) *CounterError {
	return &CounterError{Field: field, Stored: stored, Actual: actual}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(what string) *UnsupportedError {
	return &UnsupportedError{What: what}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
