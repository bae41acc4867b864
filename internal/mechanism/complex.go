package mechanism

import (
	"minichem/internal/substance"
)

// The complex mechanisms extend the simple ones to oxides. They are
// "complex" because each delegates to a simple mechanism after
// translating oxides to their acids and bases, not because they
// handle complex substances.

// oxideToMolecule maps a basic oxide to its base and an acidic oxide
// to its acid.
func (s *Set) oxideToMolecule(m substance.Molecule) (substance.Molecule, error) {
	switch m.Subclass() {
	case substance.SubclassAcidicOxide:
		return s.acids.Acid(m)
	case substance.SubclassBasicOxide:
		return s.bases.Base(m)
	default:
		return substance.Molecule{}, &ClassError{
			Formula: m.Formula(),
			Got:     string(m.Subclass()),
			Want:    "acidic or basic oxide",
		}
	}
}

// removeWater returns whichever of the two molecules is not water.
func removeWater(a, b substance.Molecule) (substance.Molecule, error) {
	switch {
	case a.IsWater() && b.IsWater():
		return substance.Molecule{}, cannotPredict("complex addition", a, b)
	case a.IsWater():
		return b, nil
	default:
		return a, nil
	}
}

// ComplexDecomposition predicts the decomposition of a three-element
// molecule into two oxides: acids lose water and leave their acidic
// oxide, bases their basic oxide, salts split into both oxides.
func (s *Set) ComplexDecomposition(m substance.Molecule) (substance.Molecule, substance.Molecule, error) {
	switch m.Class() {
	case substance.ClassAcid:
		oxide, err := s.acids.AcidicOxide(m)
		if err != nil {
			return substance.Molecule{}, substance.Molecule{}, err
		}
		return oxide, substance.Water, nil

	case substance.ClassBase:
		oxide, err := s.bases.BasicOxide(m)
		if err != nil {
			return substance.Molecule{}, substance.Molecule{}, err
		}
		return oxide, substance.Water, nil

	case substance.ClassSalt:
		basic, err := s.bases.BasicOxide(m.Cation())
		if err != nil {
			return substance.Molecule{}, substance.Molecule{}, err
		}
		acidic, err := s.acids.AcidicOxide(m.Anion())
		if err != nil {
			return substance.Molecule{}, substance.Molecule{}, err
		}
		return basic, acidic, nil

	default:
		return substance.Molecule{}, substance.Molecule{}, &ClassError{
			Formula: m.Formula(),
			Got:     string(m.Class()),
			Want:    "acid, base or salt",
		}
	}
}

// ComplexAddition predicts the single product of two oxides reacting.
// An oxide plus water gives the oxide's acid or base directly; two
// real oxides react like their acid and base would, with the water
// dropped from the products. The arguments may come in either order.
func (s *Set) ComplexAddition(a, b substance.Molecule) (substance.Molecule, error) {
	switch {
	case a.IsWater() && b.IsWater():
		return substance.Molecule{}, cannotPredict("complex addition", a, b)
	case a.IsWater():
		return s.oxideToMolecule(b)
	case b.IsWater():
		return s.oxideToMolecule(a)
	}

	acidic, basic := a, b
	if acidic.Subclass() == substance.SubclassBasicOxide {
		acidic, basic = basic, acidic
	}
	if acidic.Subclass() != substance.SubclassAcidicOxide {
		return substance.Molecule{}, &ClassError{
			Formula: acidic.Formula(),
			Got:     string(acidic.Subclass()),
			Want:    "acidic oxide or water",
		}
	}
	if basic.Subclass() != substance.SubclassBasicOxide {
		return substance.Molecule{}, &ClassError{
			Formula: basic.Formula(),
			Got:     string(basic.Subclass()),
			Want:    "basic oxide or water",
		}
	}

	acid, err := s.acids.Acid(acidic)
	if err != nil {
		return substance.Molecule{}, err
	}
	base, err := s.bases.Base(basic)
	if err != nil {
		return substance.Molecule{}, err
	}
	salt, water, err := SimpleExchange(acid, base)
	if err != nil {
		return substance.Molecule{}, err
	}
	return removeWater(salt, water)
}

// ComplexNeutralization predicts the reaction of an acidic substance
// (acid or acidic oxide) with a basic one (base or basic oxide). The
// oxide side is translated to its acid or base and the pair runs
// through simple exchange; two oxides are routed to ComplexAddition.
// Acid plus base needs no translation and is simple exchange already.
// The arguments may come in either order.
func (s *Set) ComplexNeutralization(acidic, basic substance.Molecule) ([]substance.Molecule, error) {
	as, bs := acidic.Subclass(), basic.Subclass()

	switch {
	case as == substance.SubclassAcid && bs == substance.SubclassBasicOxide,
		as == substance.SubclassAcidicOxide && bs == substance.SubclassBase:
		acid := acidic
		if as != substance.SubclassAcid {
			var err error
			if acid, err = s.acids.Acid(acidic); err != nil {
				return nil, err
			}
		}
		base := basic
		if bs != substance.SubclassBase {
			var err error
			if base, err = s.bases.Base(basic); err != nil {
				return nil, err
			}
		}
		// base first so the salt precedes the water in the products
		salt, water, err := SimpleExchange(base, acid)
		if err != nil {
			return nil, err
		}
		return []substance.Molecule{salt, water}, nil

	case as == substance.SubclassBase && bs == substance.SubclassAcidicOxide,
		as == substance.SubclassBasicOxide && bs == substance.SubclassAcid:
		return s.ComplexNeutralization(basic, acidic)

	case as == substance.SubclassAcidicOxide && bs == substance.SubclassBasicOxide,
		as == substance.SubclassBasicOxide && bs == substance.SubclassAcidicOxide:
		salt, err := s.ComplexAddition(acidic, basic)
		if err != nil {
			return nil, err
		}
		return []substance.Molecule{salt}, nil

	default:
		if as != substance.SubclassAcid && as != substance.SubclassAcidicOxide {
			return nil, &ClassError{
				Formula: acidic.Formula(),
				Got:     string(as),
				Want:    "acid or acidic oxide",
			}
		}
		return nil, &ClassError{
			Formula: basic.Formula(),
			Got:     string(bs),
			Want:    "base or basic oxide",
		}
	}
}
