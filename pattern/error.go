package pattern

import (
	"errors"
	"fmt"
)

// Common classifier errors
var (
	// ErrMalformedPattern indicates a grammar violation in the motif text
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrUnsupportedPatternLength indicates a pattern exceeds the hard width
	// limit of the engine it was handed to
	ErrUnsupportedPatternLength = errors.New("pattern length not supported by engine")

	// ErrInvalidMismatch indicates a negative mismatch budget
	ErrInvalidMismatch = errors.New("mismatch budget must not be negative")
)

// SyntaxError describes where a pattern failed to parse.
type SyntaxError struct {
	Pattern string
	Pos     int
	Msg     string
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Msg)
}

// Unwrap returns ErrMalformedPattern so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformedPattern
}

// LengthError reports a pattern that does not fit an engine.
type LengthError struct {
	Kind   Kind
	Length int
	Limit  int
}

// Error implements the error interface
func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: pattern length %d exceeds limit %d", e.Kind, e.Length, e.Limit)
}

// Unwrap returns ErrUnsupportedPatternLength.
func (e *LengthError) Unwrap() error {
	return ErrUnsupportedPatternLength
}
