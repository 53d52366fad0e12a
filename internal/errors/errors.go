// Package errors provides the typed error hierarchy for h2i.
// Each failure is classified by category so the CLI layer can decide how to
// report it (usage text for invocation mistakes, a single line otherwise).
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the category of a conversion failure.
type ErrorType string

// Error type constants classify every failure h2i can report.
const (
	ErrTypeUsage    ErrorType = "usage"
	ErrTypeParsing  ErrorType = "parsing"
	ErrTypeOverflow ErrorType = "overflow"
	ErrTypeOutput   ErrorType = "output"
)

// ConvertError is the base error type carrying the category, the offending
// input (if any) and an optional underlying cause.
type ConvertError struct {
	Type    ErrorType
	Input   string
	Message string
	Cause   error
}

func (e *ConvertError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s error for %q: %s", e.Type, e.Input, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ConvertError of the same category, so that
// errors.Is(err, &ConvertError{Type: ErrTypeParsing}) matches any parse error.
func (e *ConvertError) Is(target error) bool {
	t, ok := target.(*ConvertError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// UsageError reports a malformed invocation, such as a missing argument.
type UsageError struct {
	*ConvertError
}

// NewUsageError creates a usage error. Usage errors never carry an input.
func NewUsageError(message string, cause error) *UsageError {
	return &UsageError{
		ConvertError: &ConvertError{
			Type:    ErrTypeUsage,
			Message: message,
			Cause:   cause,
		},
	}
}

// ParseError reports an argument that is neither a hex literal nor a
// decimal literal.
type ParseError struct {
	*ConvertError
}

// NewParseError creates a parse error for the given input.
func NewParseError(input, message string, cause error) *ParseError {
	return &ParseError{
		ConvertError: &ConvertError{
			Type:    ErrTypeParsing,
			Input:   input,
			Message: message,
			Cause:   cause,
		},
	}
}

// OverflowError reports a well-formed literal whose value does not fit in
// 64 bits.
type OverflowError struct {
	*ConvertError
}

// NewOverflowError creates an overflow error for the given input.
func NewOverflowError(input string, cause error) *OverflowError {
	return &OverflowError{
		ConvertError: &ConvertError{
			Type:    ErrTypeOverflow,
			Input:   input,
			Message: "value exceeds 64-bit unsigned range",
			Cause:   cause,
		},
	}
}

// OutputError wraps a failure to write the converted value.
type OutputError struct {
	*ConvertError
}

// NewOutputError creates an output error. Output errors never carry an input.
func NewOutputError(message string, cause error) *OutputError {
	return &OutputError{
		ConvertError: &ConvertError{
			Type:    ErrTypeOutput,
			Message: message,
			Cause:   cause,
		},
	}
}

// IsUsage reports whether err, or any error it wraps, is a usage error.
func IsUsage(err error) bool {
	return stderrors.Is(err, &ConvertError{Type: ErrTypeUsage})
}

// IsParsing reports whether err, or any error it wraps, is a parse error.
func IsParsing(err error) bool {
	return stderrors.Is(err, &ConvertError{Type: ErrTypeParsing})
}

// IsOverflow reports whether err, or any error it wraps, is an overflow error.
func IsOverflow(err error) bool {
	return stderrors.Is(err, &ConvertError{Type: ErrTypeOverflow})
}
