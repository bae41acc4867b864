package mechanism

import (
	"errors"
	"fmt"
	"strings"

	"minichem/internal/substance"
)

// CannotPredictError reports that a mechanism has no products for the
// reagents it was given.
type CannotPredictError struct {
	Mechanism string
	Reagents  []string
}

func (e *CannotPredictError) Error() string {
	return fmt.Sprintf("%s: cannot predict products of %s",
		e.Mechanism, strings.Join(e.Reagents, " + "))
}

func cannotPredict(mechanism string, reagents ...substance.Particle) *CannotPredictError {
	e := &CannotPredictError{Mechanism: mechanism}
	for _, r := range reagents {
		e.Reagents = append(e.Reagents, r.Formula())
	}
	return e
}

// IsCannotPredict reports whether err is a CannotPredictError.
func IsCannotPredict(err error) bool {
	var e *CannotPredictError
	return errors.As(err, &e)
}

// ClassError reports a reagent whose school class does not fit the
// mechanism it was passed to.
type ClassError struct {
	Formula string
	Got     string
	Want    string
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("%s is a %s, want %s", e.Formula, e.Got, e.Want)
}

// IsClassError reports whether err is a ClassError.
func IsClassError(err error) bool {
	var e *ClassError
	return errors.As(err, &e)
}
