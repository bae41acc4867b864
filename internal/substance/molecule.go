package substance

import (
	"strconv"

	"minichem/internal/ptable"
)

// Molecule is a neutral compound built from exactly two ions. The
// cation and anion indices are derived from the charges so that the
// molecule is electrically neutral: for ions X(+n) and Y(-m) the
// indices are lcm(n,m)/n and lcm(n,m)/m.
type Molecule struct {
	cation      Ion
	anion       Ion
	cationIndex int
	anionIndex  int
}

// NewMolecule builds a molecule from a cation and an anion.
func NewMolecule(cation, anion Ion) (Molecule, error) {
	if !cation.IsCation() {
		return Molecule{}, modelErrorf(ErrCodeCharge, "%s is not a cation", cation.Formula())
	}
	if !anion.IsAnion() {
		return Molecule{}, modelErrorf(ErrCodeCharge, "%s is not an anion", anion.Formula())
	}

	n := lcm(abs(cation.Charge()), abs(anion.Charge()))
	m := Molecule{
		cation:      cation,
		anion:       anion,
		cationIndex: n / abs(cation.Charge()),
		anionIndex:  n / abs(anion.Charge()),
	}
	if m.cation.Charge()*m.cationIndex+m.anion.Charge()*m.anionIndex != 0 {
		return Molecule{}, modelErrorf(ErrCodeCharge, "ions %s and %s cannot form a neutral molecule",
			cation.Formula(), anion.Formula())
	}
	return m, nil
}

// MustNewMolecule is NewMolecule for ions known to pair, typically
// package literals. It panics on invalid input.
func MustNewMolecule(cation, anion Ion) Molecule {
	m, err := NewMolecule(cation, anion)
	if err != nil {
		panic(err)
	}
	return m
}

// Water is H2O, built from the proton and hydroxide. It is special in
// several places: its formula renders as "H2O" rather than "HOH", it
// classifies as an oxide, and some mechanisms treat it as a weak acid.
var Water = MustNewMolecule(Proton, Hydroxide)

// Acid builds the acid of the given acid-rest anion: H(+) paired with it.
func Acid(anion Ion) (Molecule, error) { return NewMolecule(Proton, anion) }

// Base builds the base of the given metal cation: paired with OH(-).
func Base(cation Ion) (Molecule, error) { return NewMolecule(cation, Hydroxide) }

// Oxide builds the oxide of the given cation: paired with O(-2).
func Oxide(cation Ion) (Molecule, error) { return NewMolecule(cation, OxideIon) }

// Cation returns the positive ion of the molecule.
func (m Molecule) Cation() Ion { return m.cation }

// Anion returns the negative ion of the molecule.
func (m Molecule) Anion() Ion { return m.anion }

// CationIndex returns the number of cations per formula unit.
func (m Molecule) CationIndex() int { return m.cationIndex }

// AnionIndex returns the number of anions per formula unit.
func (m Molecule) AnionIndex() int { return m.anionIndex }

// Composition implements Particle, merging both ions' compositions
// scaled by their indices.
func (m Molecule) Composition() Composition {
	comp := make(Composition)
	comp.add(m.cation.Composition(), m.cationIndex)
	comp.add(m.anion.Composition(), m.anionIndex)
	return comp
}

// Charge implements Particle. Molecules are neutral.
func (m Molecule) Charge() int { return 0 }

// MolarMass implements Particle.
func (m Molecule) MolarMass() float64 { return m.Composition().MolarMass() }

// Formula implements Particle. Multi-element ions with an index above
// one are parenthesized, e.g. "Al2(SO4)3". Water renders as "H2O".
func (m Molecule) Formula() string {
	if m.IsWater() {
		return "H2O"
	}
	return ionTerm(m.cation, m.cationIndex) + ionTerm(m.anion, m.anionIndex)
}

// ionTerm renders one ion of a molecule or ion group formula.
func ionTerm(i Ion, index int) string {
	if index == 1 {
		return i.BareFormula()
	}
	if i.size() > 1 {
		return "(" + i.BareFormula() + ")" + strconv.Itoa(index)
	}
	return i.BareFormula() + strconv.Itoa(index)
}

// IsWater reports whether the molecule is H2O.
func (m Molecule) IsWater() bool { return Same(m, Water) }

// IsNitrate reports whether the molecule's anion is NO3(-).
func (m Molecule) IsNitrate() bool { return m.anion.Equal(NitrateIon) }

// Class returns the school class of the molecule: acid when the cation
// is the proton, base when the anion is hydroxide, oxide when the
// anion is the oxide ion, salt otherwise. Water is an oxide even
// though it also matches the acid and base conditions.
func (m Molecule) Class() Class {
	switch {
	case m.IsWater():
		return ClassOxide
	case m.cation.Equal(Proton):
		return ClassAcid
	case m.anion.Equal(Hydroxide):
		return ClassBase
	case m.anion.Equal(OxideIon):
		return ClassOxide
	default:
		return ClassSalt
	}
}

// Subclass refines Class for oxides: metal oxides with a low cation
// charge are basic, mid-charge metal oxides amphoteric, high-charge
// metal oxides and all nonmetal oxides acidic. Water counts as an
// amphoteric oxide. For non-oxides the subclass equals the class.
func (m Molecule) Subclass() Subclass {
	if m.IsWater() {
		return SubclassAmphotericOxide
	}
	if m.Class() != ClassOxide {
		return Subclass(m.Class())
	}

	cationElement := m.cation.parts[0].Element
	if !cationElement.IsMetal() {
		return SubclassAcidicOxide
	}
	switch charge := m.cation.Charge(); {
	case charge < 4:
		return SubclassBasicOxide
	case charge <= 5:
		return SubclassAmphotericOxide
	default:
		return SubclassAcidicOxide
	}
}

// CationElement returns the single element of the cation.
func (m Molecule) CationElement() ptable.Element {
	return m.cation.parts[0].Element
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
