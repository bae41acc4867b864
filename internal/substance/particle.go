package substance

import (
	"minichem/internal/ptable"
)

// Composition maps each element of a particle to its atom count.
type Composition map[ptable.Element]int

// MolarMass returns the summed molar mass of the composition in g/mol.
func (c Composition) MolarMass() float64 {
	var m float64
	for el, n := range c {
		m += el.MolarMass * float64(n)
	}
	return m
}

// Equal reports whether two compositions contain the same atom counts.
func (c Composition) Equal(other Composition) bool {
	if len(c) != len(other) {
		return false
	}
	for el, n := range c {
		if other[el] != n {
			return false
		}
	}
	return true
}

// clone returns an independent copy of c.
func (c Composition) clone() Composition {
	out := make(Composition, len(c))
	for el, n := range c {
		out[el] = n
	}
	return out
}

// add merges other into c, scaling other's counts by factor.
func (c Composition) add(other Composition, factor int) {
	for el, n := range other {
		c[el] += n * factor
	}
}

// Particle is a chemical species taking part in a reaction: a Simple
// substance, an Ion, an IonGroup or a Molecule.
type Particle interface {
	// Composition returns the atom counts per element.
	Composition() Composition

	// Charge returns the net electric charge.
	Charge() int

	// MolarMass returns the molar mass in g/mol.
	MolarMass() float64

	// Formula returns the textual chemical formula. Charged species
	// include the charge suffix, e.g. "SO4(-2)".
	Formula() string
}

// Same reports whether two particles are the same species: equal
// composition and equal charge. Isomers are not modeled.
func Same(a, b Particle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Charge() == b.Charge() && a.Composition().Equal(b.Composition())
}

// Elements returns the distinct elements of p in no particular order.
func Elements(p Particle) []ptable.Element {
	comp := p.Composition()
	els := make([]ptable.Element, 0, len(comp))
	for el := range comp {
		els = append(els, el)
	}
	return els
}

// Size returns the number of distinct elements in p.
func Size(p Particle) int { return len(p.Composition()) }
