package substance

import (
	"strconv"
	"strings"

	"minichem/internal/ptable"
)

// ElementCount is one element of an ion's ordered composition.
type ElementCount struct {
	Element ptable.Element
	Count   int
}

// Ion is a charged particle. Cations (positive) consist of a single
// element; anions (negative) may be polyatomic, e.g. SO4(-2).
type Ion struct {
	parts  []ElementCount
	charge int
}

// NewIon builds an ion from an ordered composition and a charge.
// The element order is preserved for formula rendering.
func NewIon(parts []ElementCount, charge int) (Ion, error) {
	if charge == 0 {
		return Ion{}, modelErrorf(ErrCodeCharge, "an ion must carry a nonzero charge")
	}
	if charge > 0 && len(parts) > 1 {
		return Ion{}, modelErrorf(ErrCodeSize, "multi-element cations are not supported")
	}
	if len(parts) == 0 {
		return Ion{}, modelErrorf(ErrCodeSize, "an ion must contain at least one element")
	}
	return Ion{parts: append([]ElementCount(nil), parts...), charge: charge}, nil
}

// MustNewIon is NewIon for compositions known to be valid, typically
// package literals. It panics on invalid input.
func MustNewIon(parts []ElementCount, charge int) Ion {
	i, err := NewIon(parts, charge)
	if err != nil {
		panic(err)
	}
	return i
}

// MonatomicIon builds a single-element ion.
func MonatomicIon(el ptable.Element, count, charge int) Ion {
	return Ion{parts: []ElementCount{{Element: el, Count: count}}, charge: charge}
}

// The three ions that define molecule classes.
var (
	// Proton is H(+), the cation of every acid.
	Proton = MonatomicIon(ptable.H, 1, 1)

	// Hydroxide is OH(-), the anion of every base.
	Hydroxide = MustNewIon([]ElementCount{{Element: ptable.O, Count: 1}, {Element: ptable.H, Count: 1}}, -1)

	// OxideIon is O(-2), the anion of every oxide.
	OxideIon = MonatomicIon(ptable.O, 1, -2)

	// NitrateIon is NO3(-), decomposition of its salts is exceptional.
	NitrateIon = MustNewIon([]ElementCount{{Element: ptable.N, Count: 1}, {Element: ptable.O, Count: 3}}, -1)
)

// Parts returns the ordered composition of the ion.
func (i Ion) Parts() []ElementCount { return append([]ElementCount(nil), i.parts...) }

// Composition implements Particle.
func (i Ion) Composition() Composition {
	comp := make(Composition, len(i.parts))
	for _, p := range i.parts {
		comp[p.Element] += p.Count
	}
	return comp
}

// Charge implements Particle.
func (i Ion) Charge() int { return i.charge }

// MolarMass implements Particle.
func (i Ion) MolarMass() float64 { return i.Composition().MolarMass() }

// Formula implements Particle: the bare formula followed by the charge
// in parentheses, e.g. "SO4(-2)".
func (i Ion) Formula() string {
	return i.BareFormula() + "(" + strconv.Itoa(i.charge) + ")"
}

// BareFormula returns the formula without the charge suffix.
func (i Ion) BareFormula() string {
	var b strings.Builder
	for _, p := range i.parts {
		b.WriteString(p.Element.Symbol)
		if p.Count != 1 {
			b.WriteString(strconv.Itoa(p.Count))
		}
	}
	return b.String()
}

// IsCation reports whether the ion is positively charged.
func (i Ion) IsCation() bool { return i.charge > 0 }

// IsAnion reports whether the ion is negatively charged.
func (i Ion) IsAnion() bool { return i.charge < 0 }

// Equal reports whether two ions are the same species.
func (i Ion) Equal(other Ion) bool {
	return i.charge == other.charge && i.Composition().Equal(other.Composition())
}

// size returns the number of distinct elements.
func (i Ion) size() int { return len(i.Composition()) }
