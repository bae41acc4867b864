package chemdb

import (
	"errors"
	"fmt"
)

// LookupError reports a failed lookup in one of the reference tables.
type LookupError struct {
	// Kind names the table or entity kind the lookup ran against.
	Kind LookupKind

	// Formula is the formula of the species that was looked up.
	Formula string
}

// LookupKind categorizes lookup failures.
type LookupKind string

const (
	KindSubstance    LookupKind = "substance"
	KindIon          LookupKind = "ion"
	KindAcid         LookupKind = "acid"
	KindAcidicOxide  LookupKind = "acidic oxide"
	KindBase         LookupKind = "base"
	KindMetal        LookupKind = "metal"
	KindActivity     LookupKind = "activity"
	KindHalfReaction LookupKind = "half reaction"
)

func (e *LookupError) Error() string {
	return fmt.Sprintf("chemdb: %s not found: %s", e.Kind, e.Formula)
}

func notFound(kind LookupKind, formula string) *LookupError {
	return &LookupError{Kind: kind, Formula: formula}
}

// IsNotFound reports whether err is a LookupError of any kind.
func IsNotFound(err error) bool {
	var le *LookupError
	return errors.As(err, &le)
}

// NotMetalError reports that an activity series operation received an
// element outside the metallic division.
type NotMetalError struct {
	Symbol string
}

func (e *NotMetalError) Error() string {
	return fmt.Sprintf("chemdb: %s is not a metal", e.Symbol)
}
