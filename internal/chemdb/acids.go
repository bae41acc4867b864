package chemdb

import (
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

// acidRow links an acid rest to the element the acid is formed by,
// in the oxidation state the element has inside the acid. Binary
// acids like HCl have no acidic oxide, their oxide element is blank.
type acidRow struct {
	rest         string
	restCharge   int
	oxideElement string
	oxideCharge  int
}

var acidRows = []acidRow{
	{"F", -1, "", 0},
	{"Cl", -1, "", 0},
	{"Br", -1, "", 0},
	{"I", -1, "", 0},
	{"S", -2, "", 0},
	{"NO3", -1, "N", 5},
	{"NO2", -1, "N", 3},
	{"SO4", -2, "S", 6},
	{"SO3", -2, "S", 4},
	{"CO3", -2, "C", 4},
	{"SiO3", -2, "Si", 4},
	{"PO4", -3, "P", 5},
	{"ClO", -1, "Cl", 1},
	{"ClO2", -1, "Cl", 3},
	{"ClO3", -1, "Cl", 5},
	{"ClO4", -1, "Cl", 7},
	{"MnO4", -1, "Mn", 7},
	{"Cr2O7", -2, "Cr", 6},
}

// AcidsTable links acids, their acid rests and their acidic oxides.
// The three lists are parallel: the entry at one index describes one
// acid family, e.g. H2SO4 / SO4(-2) / SO3.
type AcidsTable struct {
	acids  []substance.Molecule
	rests  []substance.Ion
	oxides []*substance.Molecule // nil for binary acids
}

// NewAcidsTable builds the table from the built-in rows.
func NewAcidsTable() (*AcidsTable, error) {
	t := &AcidsTable{}
	for _, row := range acidRows {
		rest, err := IonFromRecord(row.rest, row.restCharge)
		if err != nil {
			return nil, err
		}
		acid, err := substance.Acid(rest)
		if err != nil {
			return nil, err
		}

		var oxide *substance.Molecule
		if row.oxideElement != "" {
			el, err := ptable.BySymbol(row.oxideElement)
			if err != nil {
				return nil, err
			}
			ox, err := substance.Oxide(substance.MonatomicIon(el, 1, row.oxideCharge))
			if err != nil {
				return nil, err
			}
			oxide = &ox
		}

		t.rests = append(t.rests, rest)
		t.acids = append(t.acids, acid)
		t.oxides = append(t.oxides, oxide)
	}
	return t, nil
}

// index finds the family p belongs to, matching p against acids, acid
// rests and acidic oxides.
func (t *AcidsTable) index(p substance.Particle) int {
	for i := range t.acids {
		if substance.Same(p, t.acids[i]) || substance.Same(p, t.rests[i]) {
			return i
		}
		if t.oxides[i] != nil && substance.Same(p, *t.oxides[i]) {
			return i
		}
	}
	return -1
}

// Acid returns the acid of the family p belongs to. p may be an acid
// rest or an acidic oxide.
func (t *AcidsTable) Acid(p substance.Particle) (substance.Molecule, error) {
	i := t.index(p)
	if i < 0 {
		return substance.Molecule{}, notFound(KindAcid, p.Formula())
	}
	return t.acids[i], nil
}

// AcidRest returns the acid rest of the family p belongs to. p may be
// an acid or an acidic oxide.
func (t *AcidsTable) AcidRest(p substance.Particle) (substance.Ion, error) {
	i := t.index(p)
	if i < 0 {
		return substance.Ion{}, notFound(KindAcid, p.Formula())
	}
	return t.rests[i], nil
}

// AcidicOxide returns the acidic oxide of the family p belongs to.
// Binary acids have none, which reports as a lookup failure.
func (t *AcidsTable) AcidicOxide(p substance.Particle) (substance.Molecule, error) {
	i := t.index(p)
	if i < 0 {
		return substance.Molecule{}, notFound(KindAcid, p.Formula())
	}
	if t.oxides[i] == nil {
		return substance.Molecule{}, notFound(KindAcidicOxide, p.Formula())
	}
	return *t.oxides[i], nil
}

// Acids returns all known acids.
func (t *AcidsTable) Acids() []substance.Molecule {
	return append([]substance.Molecule(nil), t.acids...)
}

// AcidRests returns all known acid rests.
func (t *AcidsTable) AcidRests() []substance.Ion {
	return append([]substance.Ion(nil), t.rests...)
}
