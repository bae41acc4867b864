package substance

import (
	"strconv"

	"minichem/internal/ptable"
)

// Simple is a substance built from a single chemical element: a lone
// atom (Fe, S) or a homonuclear molecule (O2, Cl2). Simples are always
// neutral.
type Simple struct {
	element ptable.Element
	index   int
}

// NewSimple builds a Simple substance of index atoms of element.
func NewSimple(element ptable.Element, index int) Simple {
	return Simple{element: element, index: index}
}

// The seven school diatomic simples plus oxygen and nitrogen.
var (
	Hydrogen = NewSimple(ptable.H, 2)
	Fluorine = NewSimple(ptable.F, 2)
	Chlorine = NewSimple(ptable.Cl, 2)
	Bromine  = NewSimple(ptable.Br, 2)
	Iodine   = NewSimple(ptable.I, 2)
	Nitrogen = NewSimple(ptable.N, 2)
	Oxygen   = NewSimple(ptable.O, 2)
)

// Diatomics lists the elements that occur as two-atom simples.
var Diatomics = []Simple{Hydrogen, Chlorine, Nitrogen, Oxygen, Bromine, Iodine, Fluorine}

// IsDiatomicElement reports whether el forms a diatomic simple.
func IsDiatomicElement(el ptable.Element) bool {
	for _, d := range Diatomics {
		if d.element.Equal(el) {
			return true
		}
	}
	return false
}

// Element returns the single element the substance consists of.
func (s Simple) Element() ptable.Element { return s.element }

// Index returns the number of atoms per formula unit.
func (s Simple) Index() int { return s.index }

// Composition implements Particle.
func (s Simple) Composition() Composition {
	return Composition{s.element: s.index}
}

// Charge implements Particle. Simples are neutral.
func (s Simple) Charge() int { return 0 }

// MolarMass implements Particle.
func (s Simple) MolarMass() float64 {
	return s.element.MolarMass * float64(s.index)
}

// Formula implements Particle: the element symbol followed by the
// index when it is greater than one, e.g. "O2" or "Fe".
func (s Simple) Formula() string {
	if s.index == 1 {
		return s.element.Symbol
	}
	return s.element.Symbol + strconv.Itoa(s.index)
}

// Class returns "metal" or "nonmetal" depending on the element's
// division of the periodic table.
func (s Simple) Class() Class {
	if s.element.IsMetal() {
		return ClassMetal
	}
	return ClassNonmetal
}
