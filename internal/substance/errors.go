package substance

import (
	"errors"
	"fmt"
)

// ModelError represents a violation of the particle model's structural
// rules detected while constructing a species.
type ModelError struct {
	// Code identifies the violated rule.
	Code ModelErrorCode

	// Message is a human-readable description.
	Message string
}

// ModelErrorCode categorizes particle model errors.
type ModelErrorCode string

const (
	// ErrCodeCharge indicates an impossible charge: a neutral ion, a
	// charged molecule, or two ions that cannot cancel.
	ErrCodeCharge ModelErrorCode = "CHARGE"

	// ErrCodeSize indicates an unsupported species size, e.g. a Simple
	// substance built from a multi-element ion.
	ErrCodeSize ModelErrorCode = "SIZE"

	// ErrCodeClass indicates a species of the wrong substance class for
	// the requested operation.
	ErrCodeClass ModelErrorCode = "CLASS"

	// ErrCodeConversion indicates a conversion between particle
	// variants that is not defined.
	ErrCodeConversion ModelErrorCode = "CONVERSION"
)

func (e *ModelError) Error() string {
	return fmt.Sprintf("substance: %s: %s", e.Code, e.Message)
}

func modelErrorf(code ModelErrorCode, format string, args ...any) *ModelError {
	return &ModelError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsChargeError reports whether err is a ModelError with ErrCodeCharge.
// Uses errors.As to handle wrapped errors.
func IsChargeError(err error) bool {
	var me *ModelError
	return errors.As(err, &me) && me.Code == ErrCodeCharge
}

// IsSizeError reports whether err is a ModelError with ErrCodeSize.
func IsSizeError(err error) bool {
	var me *ModelError
	return errors.As(err, &me) && me.Code == ErrCodeSize
}

// IsClassError reports whether err is a ModelError with ErrCodeClass.
func IsClassError(err error) bool {
	var me *ModelError
	return errors.As(err, &me) && me.Code == ErrCodeClass
}
