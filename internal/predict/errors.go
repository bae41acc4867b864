package predict

import (
	"errors"
	"fmt"
	"strings"
)

// UnclassifiableError reports a particle that has no effective class.
type UnclassifiableError struct {
	Formula string
}

func (e *UnclassifiableError) Error() string {
	return fmt.Sprintf("no effective class for %s", e.Formula)
}

// IsUnclassifiable reports whether err is an UnclassifiableError.
func IsUnclassifiable(err error) bool {
	var e *UnclassifiableError
	return errors.As(err, &e)
}

// NoRuleError reports a reagent signature no decision rule covers.
type NoRuleError struct {
	Kinds []string
}

func (e *NoRuleError) Error() string {
	return fmt.Sprintf("no decision rule for %s", strings.Join(e.Kinds, " + "))
}

// IsNoRule reports whether err is a NoRuleError.
func IsNoRule(err error) bool {
	var e *NoRuleError
	return errors.As(err, &e)
}

// BlockedError reports products vetoed by a restriction: the reaction
// is predictable but will not proceed.
type BlockedError struct {
	Restriction string
	Products    []string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("reaction towards %s is blocked by the %s restriction",
		strings.Join(e.Products, " + "), e.Restriction)
}

// IsBlocked reports whether err is a BlockedError.
func IsBlocked(err error) bool {
	var e *BlockedError
	return errors.As(err, &e)
}
