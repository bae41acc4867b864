package stoich

import (
	"errors"
	"fmt"
)

// InsufficientDataError reports that the given seeds do not determine
// the moles of a substance.
type InsufficientDataError struct {
	Formula string
	Reason  string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("stoich: cannot determine moles of %s: %s", e.Formula, e.Reason)
}

// IsInsufficientData reports whether err is an InsufficientDataError.
func IsInsufficientData(err error) bool {
	var ie *InsufficientDataError
	return errors.As(err, &ie)
}

// UnitMismatchError reports a unit that is unknown or does not fit
// the requested conversion.
type UnitMismatchError struct {
	Unit   string
	Reason string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("stoich: unit %q: %s", e.Unit, e.Reason)
}

// IsUnitMismatch reports whether err is a UnitMismatchError.
func IsUnitMismatch(err error) bool {
	var ue *UnitMismatchError
	return errors.As(err, &ue)
}
