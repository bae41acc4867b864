package formula

import (
	"errors"
	"fmt"
)

// ParseError reports an input that could not be resolved into a known
// species.
type ParseError struct {
	// Input is the formula as given, after normalization.
	Input string

	// Message describes what went wrong.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("formula: parse %q: %s: %v", e.Input, e.Message, e.Err)
	}
	return fmt.Sprintf("formula: parse %q: %s", e.Input, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErrorf(input string, err error, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsParseError reports whether err is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
