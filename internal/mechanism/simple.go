package mechanism

import (
	"sort"

	"minichem/internal/substance"
)

// SimpleAddition predicts Simple + Simple -> Molecule. The element
// with the lower electronegativity supplies the cation, the other the
// anion; both charges come from the ion registry. Candidate pairs are
// tried in order of decreasing charge difference, so the highest
// oxidation states combine first (Fe + O2 gives Fe2O3, not FeO).
func (s *Set) SimpleAddition(a, b substance.Simple) (substance.Molecule, error) {
	cationEl, anionEl := a.Element(), b.Element()
	if cationEl.REN > anionEl.REN {
		cationEl, anionEl = anionEl, cationEl
	}

	var cations, anions []int
	for _, c := range s.db.ChargesFor(cationEl.Symbol) {
		if c > 0 {
			cations = append(cations, c)
		}
	}
	for _, c := range s.db.ChargesFor(anionEl.Symbol) {
		if c < 0 {
			anions = append(anions, c)
		}
	}
	// ChargesFor sorts ascending, which already puts the most negative
	// anion first; the cations must be reversed.
	sort.Sort(sort.Reverse(sort.IntSlice(cations)))

	for _, cc := range cations {
		for _, ac := range anions {
			m, err := substance.NewMolecule(
				substance.MonatomicIon(cationEl, 1, cc),
				substance.MonatomicIon(anionEl, 1, ac),
			)
			if err != nil {
				continue
			}
			return m, nil
		}
	}
	return substance.Molecule{}, cannotPredict("simple addition", a, b)
}

// SimpleDecomposition predicts Molecule -> Simple + Simple for binary
// molecules: the cation's simple substance and the anion's. Water is
// special because it is modeled as H(+)-OH(-) but decomposes as H2-O2.
func SimpleDecomposition(m substance.Molecule) (substance.Simple, substance.Simple, error) {
	if m.IsWater() {
		return substance.Hydrogen, substance.Oxygen, nil
	}
	cation, err := substance.SimpleOfIon(m.Cation())
	if err != nil {
		return substance.Simple{}, substance.Simple{}, err
	}
	anion, err := substance.SimpleOfIon(m.Anion())
	if err != nil {
		return substance.Simple{}, substance.Simple{}, err
	}
	return cation, anion, nil
}

// SimpleSubstitution predicts Simple + Molecule -> Simple + Molecule:
// the simple substance takes the molecule's cation slot and the
// displaced cation leaves as a simple substance. The reagents may
// come in either order.
func SimpleSubstitution(a, b substance.Particle) (substance.Simple, substance.Molecule, error) {
	sim, simOK := a.(substance.Simple)
	mol, molOK := b.(substance.Molecule)
	if !simOK || !molOK {
		sim, simOK = b.(substance.Simple)
		mol, molOK = a.(substance.Molecule)
		if !simOK || !molOK {
			return substance.Simple{}, substance.Molecule{}, cannotPredict("simple substitution", a, b)
		}
	}

	displaced, err := substance.SimpleOfIon(mol.Cation())
	if err != nil {
		return substance.Simple{}, substance.Molecule{}, err
	}
	incoming, err := substance.IonOfSimple(sim, true)
	if err != nil {
		return substance.Simple{}, substance.Molecule{}, err
	}
	product, err := substance.NewMolecule(incoming, mol.Anion())
	if err != nil {
		return substance.Simple{}, substance.Molecule{}, err
	}
	return displaced, product, nil
}

// SimpleExchange predicts Molecule + Molecule -> Molecule + Molecule
// by swapping the anions.
func SimpleExchange(a, b substance.Molecule) (substance.Molecule, substance.Molecule, error) {
	first, err := substance.NewMolecule(a.Cation(), b.Anion())
	if err != nil {
		return substance.Molecule{}, substance.Molecule{}, err
	}
	second, err := substance.NewMolecule(b.Cation(), a.Anion())
	if err != nil {
		return substance.Molecule{}, substance.Molecule{}, err
	}
	return first, second, nil
}
