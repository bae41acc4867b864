package substance

import (
	"sort"

	"minichem/internal/ptable"
)

// SimpleOf returns the simple substance of the element, with index 2
// for the diatomic elements and index 1 otherwise.
func SimpleOf(el ptable.Element) Simple {
	if IsDiatomicElement(el) {
		return NewSimple(el, 2)
	}
	return NewSimple(el, 1)
}

// SimpleOfIon converts a monatomic ion to its simple substance,
// discarding the charge.
func SimpleOfIon(i Ion) (Simple, error) {
	if i.size() > 1 {
		return Simple{}, modelErrorf(ErrCodeSize, "cannot build a simple substance from polyatomic ion %s",
			i.Formula())
	}
	return SimpleOf(i.parts[0].Element), nil
}

// IonOf converts an element to a monatomic ion, picking the charge
// from the element's oxidation states. School reactions usually run
// up to the highest oxidation state, so largest selects the maximum;
// pass false for the minimum. The choice is an empirical shortcut,
// not a chemical law.
func IonOf(el ptable.Element, largest bool) (Ion, error) {
	charge, err := selectCharge(el, largest)
	if err != nil {
		return Ion{}, err
	}
	return MonatomicIon(el, 1, charge), nil
}

// IonOfSimple converts a simple substance to a monatomic ion with an
// atom count of one, picking the charge like IonOf.
func IonOfSimple(s Simple, largest bool) (Ion, error) {
	return IonOf(s.element, largest)
}

func selectCharge(el ptable.Element, largest bool) (int, error) {
	states := el.OxidationStates()
	if len(states) == 0 {
		return 0, modelErrorf(ErrCodeConversion, "element %s has no known oxidation states", el.Symbol)
	}
	sorted := append([]int(nil), states...)
	sort.Ints(sorted)
	if largest {
		return sorted[len(sorted)-1], nil
	}
	return sorted[0], nil
}

// AddGroup attaches one complementary ion to an ion or ion group: a
// proton for anions and acid groups, a hydroxide for cations and base
// groups. The result is a Molecule once the charge reaches zero, an
// IonGroup otherwise. This models one step of reverse dissociation.
func AddGroup(p Particle) (Particle, error) {
	return alterGroup(p, 1)
}

// RemoveGroup detaches one complementary ion from a molecule or ion
// group, modeling one dissociation step of an acid or a base. The
// result is a bare Ion once the complementary index reaches zero, an
// IonGroup otherwise.
func RemoveGroup(p Particle) (Particle, error) {
	return alterGroup(p, -1)
}

func alterGroup(p Particle, sign int) (Particle, error) {
	var (
		cation, anion           Ion
		cationIndex, anionIndex int
		deltaCation, deltaAnion int
		ion                     Ion
	)

	switch v := p.(type) {
	case Molecule:
		switch v.Class() {
		case ClassAcid:
			deltaCation, deltaAnion = 1, 0
			ion = v.anion
		case ClassBase:
			deltaCation, deltaAnion = 0, 1
			ion = v.cation
		default:
			return nil, modelErrorf(ErrCodeClass, "only acids and bases dissociate stepwise, %s is a %s",
				v.Formula(), v.Class())
		}
		cation, anion = v.cation, v.anion
		cationIndex, anionIndex = v.cationIndex, v.anionIndex

	case IonGroup:
		if v.IsAnion() {
			deltaCation, deltaAnion = 1, 0
		} else {
			deltaCation, deltaAnion = 0, 1
		}
		cation, anion = v.cation, v.anion
		cationIndex, anionIndex = v.cationIndex, v.anionIndex
		ion = v.Ion()

	case Ion:
		if sign < 0 {
			return nil, modelErrorf(ErrCodeConversion, "cannot remove a group from bare ion %s", v.Formula())
		}
		ion = v
		if v.IsCation() {
			cation, anion = v, Hydroxide
			cationIndex, anionIndex = 1, 0
			deltaCation, deltaAnion = 0, 1
		} else {
			cation, anion = Proton, v
			cationIndex, anionIndex = 0, 1
			deltaCation, deltaAnion = 1, 0
		}

	default:
		return nil, modelErrorf(ErrCodeConversion, "cannot alter groups of %s", p.Formula())
	}

	cationIndex += sign * deltaCation
	anionIndex += sign * deltaAnion
	charge := cationIndex*cation.Charge() + anionIndex*anion.Charge()

	switch {
	case cationIndex == 0 || anionIndex == 0:
		return ion, nil
	case charge != 0:
		return NewIonGroup(ion, cationIndex, anionIndex)
	default:
		return NewMolecule(cation, anion)
	}
}

// gaseousSimples are the simples IsGas recognizes directly.
var gaseousSimples = []Simple{Hydrogen, Chlorine, Nitrogen, Oxygen}

// IsGas guesses from the formula whether a neutral substance is a gas
// at normal conditions. The patterns cover the common school cases
// (diatomic gases, binary C/N/S compounds with H or O) and can be
// wrong outside of them.
func IsGas(p Particle) bool {
	if Size(p) > 2 {
		return false
	}
	for _, g := range gaseousSimples {
		if Same(p, g) {
			return true
		}
	}
	if Size(p) == 2 {
		comp := p.Composition()
		for _, heavy := range []ptable.Element{ptable.C, ptable.N, ptable.S} {
			for _, light := range []ptable.Element{ptable.H, ptable.O} {
				if _, ok := comp[heavy]; !ok {
					continue
				}
				if _, ok := comp[light]; ok {
					return true
				}
			}
		}
	}
	return false
}
