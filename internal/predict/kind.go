package predict

import (
	"minichem/internal/substance"
)

// Kind is the effective reagent class the decision rules match on. It
// refines the school classes: water and nitrates are singled out
// because their chemistry is exceptional, and acids and salts split
// by element count because binary ones decompose to simple substances
// while ternary ones decompose to oxides.
type Kind string

const (
	KindMetal           Kind = "metal"
	KindNonmetal        Kind = "nonmetal"
	KindWater           Kind = "water"
	KindNitrate         Kind = "nitrate"
	KindBinaryAcid      Kind = "binary acid"
	KindTernaryAcid     Kind = "ternary acid"
	KindBinarySalt      Kind = "binary salt"
	KindTernarySalt     Kind = "ternary salt"
	KindBase            Kind = "base"
	KindBasicOxide      Kind = "basic oxide"
	KindAmphotericOxide Kind = "amphoteric oxide"
	KindAcidicOxide     Kind = "acidic oxide"

	// KindNone marks the absent second reagent of a decomposition.
	KindNone Kind = "none"

	// Coarse kinds of the ionic algorithm.
	KindIon      Kind = "ion"
	KindIonGroup Kind = "ion group"
	KindMolecule Kind = "molecule"
)

// EffectiveClass maps a substance onto its molecular decision kind.
func EffectiveClass(p substance.Particle) (Kind, error) {
	switch v := p.(type) {
	case substance.Simple:
		if v.Class() == substance.ClassMetal {
			return KindMetal, nil
		}
		return KindNonmetal, nil

	case substance.Molecule:
		switch {
		case v.IsWater():
			return KindWater, nil
		case v.IsNitrate():
			return KindNitrate, nil
		}

		ternary := substance.Size(v) == 3
		switch v.Class() {
		case substance.ClassAcid:
			if ternary {
				return KindTernaryAcid, nil
			}
			return KindBinaryAcid, nil
		case substance.ClassSalt:
			if ternary {
				return KindTernarySalt, nil
			}
			return KindBinarySalt, nil
		case substance.ClassBase:
			return KindBase, nil
		case substance.ClassOxide:
			return Kind(v.Subclass()), nil
		}
	}
	return "", &UnclassifiableError{Formula: p.Formula()}
}

// ionicClass maps a dissolved species onto its coarse kind.
func ionicClass(p substance.Particle) (Kind, error) {
	switch p.(type) {
	case substance.Ion:
		return KindIon, nil
	case substance.IonGroup:
		return KindIonGroup, nil
	case substance.Molecule:
		return KindMolecule, nil
	}
	return "", &UnclassifiableError{Formula: p.Formula()}
}
