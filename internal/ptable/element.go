package ptable

import (
	"errors"
	"fmt"
)

// Element describes one entry of the periodic table.
//
// Elements are immutable and compared by atomic number. The zero value
// is not a valid element; use BySymbol or the package-level variables
// (ptable.H, ptable.Fe, ...) to obtain one.
type Element struct {
	// Symbol is the one- or two-letter symbol, e.g. "Na". Case matters.
	Symbol string

	// Name is the English element name, e.g. "Sodium".
	Name string

	// AtomicNumber is the proton count, also the position in Table.
	AtomicNumber int

	// Period is the table row, 1 through 7.
	Period int

	// Group is the table column in the "1A".."8A"/"1B".."8B" notation.
	// Lanthanides and actinides are counted as group 3B.
	Group string

	// MolarMass is the molar mass in g/mol.
	MolarMass float64

	// REN is the relative electronegativity. Elements with no tabulated
	// value carry -1.
	REN float64

	// Radioactive reports whether the element has no stable isotope.
	Radioactive bool
}

// ElementNotFoundError is returned when a symbol or table position does
// not resolve to an element.
type ElementNotFoundError struct {
	Symbol string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("ptable: element %q not found", e.Symbol)
}

// IsNotFound reports whether err is an ElementNotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var enf *ElementNotFoundError
	return errors.As(err, &enf)
}

func (e Element) String() string { return e.Symbol }

// Equal reports whether two elements are the same, by atomic number.
func (e Element) Equal(other Element) bool {
	return e.AtomicNumber == other.AtomicNumber
}

// IsMetal reports whether the element belongs to the metallic division
// of the table. Metalloids are not modeled separately; every element is
// either a metal or a nonmetal.
func (e Element) IsMetal() bool {
	_, ok := metalSet[e.AtomicNumber]
	return ok
}

// IsNonmetal reports whether the element belongs to the nonmetallic
// division of the table.
func (e Element) IsNonmetal() bool { return !e.IsMetal() }

// Oxidation states for the A and B groups. Metals keep only the
// non-negative states of their group.
var (
	groupAOxidationStates = map[string][]int{
		"1A": {-1, 1},
		"2A": {2},
		"3A": {-3, 1, 3},
		"4A": {-4, 2, 4},
		"5A": {-3, 3, 5},
		"6A": {-2, 2, 4, 6},
		"7A": {-1, 1, 3, 5, 7},
		"8A": {0},
	}
	groupBOxidationStates = map[string][]int{
		"1B": {1, 2},
		"2B": {2},
		"3B": {3},
		"4B": {2, 4},
		"5B": {3, 5},
		"6B": {2, 4, 6},
		"7B": {2, 3, 4, 6, 7},
		"8B": {2, 3, 6},
	}
)

// OxidationStates returns the oxidation states the element can take
// when building molecules, derived from its group. For metals only the
// non-negative states are returned.
func (e Element) OxidationStates() []int {
	var states []int
	if _, ok := groupBOxidationStates[e.Group]; ok {
		states = groupBOxidationStates[e.Group]
	} else {
		states = groupAOxidationStates[e.Group]
	}
	if !e.IsMetal() {
		return append([]int(nil), states...)
	}
	out := make([]int, 0, len(states))
	for _, s := range states {
		if s >= 0 {
			out = append(out, s)
		}
	}
	return out
}

// BySymbol resolves an element symbol to its Element value.
func BySymbol(symbol string) (Element, error) {
	e, ok := bySymbol[symbol]
	if !ok {
		return Element{}, &ElementNotFoundError{Symbol: symbol}
	}
	return e, nil
}

// MustBySymbol is BySymbol for symbols known to be valid, typically
// table literals. It panics on unknown symbols.
func MustBySymbol(symbol string) Element {
	e, err := BySymbol(symbol)
	if err != nil {
		panic(err)
	}
	return e
}

// Next returns the element following e in atomic-number order.
func Next(e Element) (Element, error) {
	if e.AtomicNumber >= len(Table) {
		return Element{}, &ElementNotFoundError{Symbol: fmt.Sprintf("Z=%d", e.AtomicNumber+1)}
	}
	return Table[e.AtomicNumber], nil
}

// Prev returns the element preceding e in atomic-number order.
func Prev(e Element) (Element, error) {
	if e.AtomicNumber <= 1 {
		return Element{}, &ElementNotFoundError{Symbol: fmt.Sprintf("Z=%d", e.AtomicNumber-1)}
	}
	return Table[e.AtomicNumber-2], nil
}

// groupOf returns the group tuple the element belongs to.
func groupOf(e Element) []Element {
	for _, g := range allGroups {
		for _, el := range g {
			if el.Equal(e) {
				return g
			}
		}
	}
	return nil
}

// Above returns the element directly above e in its group.
func Above(e Element) (Element, error) {
	g := groupOf(e)
	for i, el := range g {
		if el.Equal(e) {
			if i == 0 {
				return Element{}, &ElementNotFoundError{Symbol: "above " + e.Symbol}
			}
			return g[i-1], nil
		}
	}
	return Element{}, &ElementNotFoundError{Symbol: e.Symbol}
}

// Below returns the element directly below e in its group.
func Below(e Element) (Element, error) {
	g := groupOf(e)
	for i, el := range g {
		if el.Equal(e) {
			if i == len(g)-1 {
				return Element{}, &ElementNotFoundError{Symbol: "below " + e.Symbol}
			}
			return g[i+1], nil
		}
	}
	return Element{}, &ElementNotFoundError{Symbol: e.Symbol}
}
