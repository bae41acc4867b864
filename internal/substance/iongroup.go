package substance

import "strconv"

// GroupKind tells which partial-dissociation family an IonGroup
// belongs to.
type GroupKind string

const (
	// GroupAcid groups come from acids: H(+) with an acid rest,
	// e.g. HSO4(-1).
	GroupAcid GroupKind = "acid"

	// GroupBase groups come from bases: a metal cation with OH(-),
	// e.g. FeOH(+2).
	GroupBase GroupKind = "base"
)

// IonGroup is a charged cluster of a cation and an anion, produced by
// partial dissociation of an acid or a base. Only those two classes
// dissociate stepwise, so a single ion determines the group: a cation
// pairs with hydroxide, an anion with the proton.
type IonGroup struct {
	cation      Ion
	anion       Ion
	cationIndex int
	anionIndex  int
	kind        GroupKind
}

// NewIonGroup builds a group around the given ion with the given
// indices. The resulting group must carry a net charge, otherwise the
// species would be a Molecule.
func NewIonGroup(ion Ion, cationIndex, anionIndex int) (IonGroup, error) {
	if cationIndex < 1 || anionIndex < 1 {
		return IonGroup{}, modelErrorf(ErrCodeSize, "ion group indices must be positive, got %d and %d",
			cationIndex, anionIndex)
	}

	g := IonGroup{cationIndex: cationIndex, anionIndex: anionIndex}
	if ion.IsCation() {
		g.kind = GroupBase
		g.cation, g.anion = ion, Hydroxide
	} else {
		g.kind = GroupAcid
		g.cation, g.anion = Proton, ion
	}
	if g.Charge() == 0 {
		return IonGroup{}, modelErrorf(ErrCodeCharge, "%s with indices %d:%d is neutral, not an ion group",
			ion.Formula(), cationIndex, anionIndex)
	}
	return g, nil
}

// MustNewIonGroup is NewIonGroup panicking on invalid input.
func MustNewIonGroup(ion Ion, cationIndex, anionIndex int) IonGroup {
	g, err := NewIonGroup(ion, cationIndex, anionIndex)
	if err != nil {
		panic(err)
	}
	return g
}

// Kind reports whether the group descends from an acid or a base.
func (g IonGroup) Kind() GroupKind { return g.kind }

// Ion returns the defining ion of the group: the acid rest for acid
// groups, the metal cation for base groups.
func (g IonGroup) Ion() Ion {
	if g.kind == GroupAcid {
		return g.anion
	}
	return g.cation
}

// Index returns the index of the complementary ion: how many protons
// an acid group holds, or how many hydroxides a base group holds.
func (g IonGroup) Index() int {
	if g.kind == GroupAcid {
		return g.cationIndex
	}
	return g.anionIndex
}

// Cation returns the positive ion of the group.
func (g IonGroup) Cation() Ion { return g.cation }

// Anion returns the negative ion of the group.
func (g IonGroup) Anion() Ion { return g.anion }

// CationIndex returns the number of cations in the group.
func (g IonGroup) CationIndex() int { return g.cationIndex }

// AnionIndex returns the number of anions in the group.
func (g IonGroup) AnionIndex() int { return g.anionIndex }

// Charge implements Particle.
func (g IonGroup) Charge() int {
	return g.cation.Charge()*g.cationIndex + g.anion.Charge()*g.anionIndex
}

// Composition implements Particle.
func (g IonGroup) Composition() Composition {
	comp := make(Composition)
	comp.add(g.cation.Composition(), g.cationIndex)
	comp.add(g.anion.Composition(), g.anionIndex)
	return comp
}

// MolarMass implements Particle.
func (g IonGroup) MolarMass() float64 { return g.Composition().MolarMass() }

// Formula implements Particle: both ion terms followed by the net
// charge, e.g. "Fe(OH)2(1)".
func (g IonGroup) Formula() string {
	return g.BareFormula() + "(" + strconv.Itoa(g.Charge()) + ")"
}

// BareFormula returns the formula without the charge suffix.
func (g IonGroup) BareFormula() string {
	return ionTerm(g.cation, g.cationIndex) + ionTerm(g.anion, g.anionIndex)
}

// IsCation reports whether the group carries positive net charge.
func (g IonGroup) IsCation() bool { return g.Charge() > 0 }

// IsAnion reports whether the group carries negative net charge.
func (g IonGroup) IsAnion() bool { return g.Charge() < 0 }
