package mechanism

import (
	"minichem/internal/chemdb"
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

var (
	nitriteIon = substance.MustNewIon([]substance.ElementCount{
		{Element: ptable.N, Count: 1}, {Element: ptable.O, Count: 2},
	}, -1)

	nitrogenDioxide = substance.MustNewMolecule(
		substance.MonatomicIon(ptable.N, 1, 4), substance.OxideIon)
)

// NitrateDecomposition predicts the decomposition of a nitrate, which
// does not fit any regular mechanism: the products depend on the
// activity class of the metal.
//
//	active:        MeNO3 -> MeNO2 + O2
//	middle active: Me(NO3)2 -> MeO + NO2 + O2
//	inactive:      Me(NO3)2 -> Me + NO2 + O2
func (s *Set) NitrateDecomposition(m substance.Molecule) ([]substance.Particle, error) {
	if class := m.Class(); class != substance.ClassAcid && class != substance.ClassSalt {
		return nil, &ClassError{Formula: m.Formula(), Got: string(class), Want: "acid or salt"}
	}
	if !m.IsNitrate() {
		return nil, &ClassError{
			Formula: m.Formula(),
			Got:     m.Anion().Formula(),
			Want:    substance.NitrateIon.Formula(),
		}
	}

	activity, err := s.series.Activity(m.CationElement())
	if err != nil {
		return nil, err
	}

	switch activity {
	case chemdb.Active:
		nitrite, err := substance.NewMolecule(m.Cation(), nitriteIon)
		if err != nil {
			return nil, err
		}
		return []substance.Particle{nitrite, substance.Oxygen}, nil

	case chemdb.MiddleActive:
		oxide, err := substance.Oxide(m.Cation())
		if err != nil {
			return nil, err
		}
		return []substance.Particle{oxide, nitrogenDioxide, substance.Oxygen}, nil

	case chemdb.Inactive:
		return []substance.Particle{
			substance.SimpleOf(m.CationElement()), nitrogenDioxide, substance.Oxygen,
		}, nil

	default:
		return nil, cannotPredict("nitrate decomposition", m)
	}
}
