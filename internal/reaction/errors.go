package reaction

import (
	"errors"
	"fmt"
)

// SchemeError reports a scheme string that does not parse into two
// sides of substances.
type SchemeError struct {
	Scheme string
	Reason string
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("reaction: bad scheme %q: %s", e.Scheme, e.Reason)
}

// IsSchemeError reports whether err is a SchemeError.
func IsSchemeError(err error) bool {
	var se *SchemeError
	return errors.As(err, &se)
}

// NotParticipantError reports a substance that is on neither side of
// the reaction.
type NotParticipantError struct {
	Formula string
}

func (e *NotParticipantError) Error() string {
	return fmt.Sprintf("reaction: %s is not a participant", e.Formula)
}

// IsNotParticipant reports whether err is a NotParticipantError.
func IsNotParticipant(err error) bool {
	var ne *NotParticipantError
	return errors.As(err, &ne)
}
