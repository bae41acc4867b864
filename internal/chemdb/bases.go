package chemdb

import (
	"minichem/internal/substance"
)

// BasesTable links metal cations, their bases and their basic oxides.
// It is derived from the solubility table: every registered metal
// cation gets a base and an oxide. The lists are parallel, like in
// AcidsTable.
type BasesTable struct {
	cations []substance.Ion
	bases   []substance.Molecule
	oxides  []substance.Molecule
}

// NewBasesTable derives the table from the registered cations of db.
func NewBasesTable(db *DB) (*BasesTable, error) {
	t := &BasesTable{}
	cations, err := db.Cations()
	if err != nil {
		return nil, err
	}
	for _, c := range cations {
		parts := c.Parts()
		if len(parts) != 1 || !parts[0].Element.IsMetal() {
			continue
		}
		base, err := substance.Base(c)
		if err != nil {
			return nil, err
		}
		oxide, err := substance.Oxide(c)
		if err != nil {
			return nil, err
		}
		t.cations = append(t.cations, c)
		t.bases = append(t.bases, base)
		t.oxides = append(t.oxides, oxide)
	}
	return t, nil
}

func (t *BasesTable) index(p substance.Particle) int {
	for i := range t.cations {
		if substance.Same(p, t.cations[i]) || substance.Same(p, t.bases[i]) || substance.Same(p, t.oxides[i]) {
			return i
		}
	}
	return -1
}

// Base returns the base of the family p belongs to. p may be a metal
// cation or a basic oxide.
func (t *BasesTable) Base(p substance.Particle) (substance.Molecule, error) {
	i := t.index(p)
	if i < 0 {
		return substance.Molecule{}, notFound(KindBase, p.Formula())
	}
	return t.bases[i], nil
}

// BasicOxide returns the basic oxide of the family p belongs to. p
// may be a metal cation or a base.
func (t *BasesTable) BasicOxide(p substance.Particle) (substance.Molecule, error) {
	i := t.index(p)
	if i < 0 {
		return substance.Molecule{}, notFound(KindBase, p.Formula())
	}
	return t.oxides[i], nil
}

// Cation returns the metal cation of the family p belongs to. p may
// be a base or a basic oxide.
func (t *BasesTable) Cation(p substance.Particle) (substance.Ion, error) {
	i := t.index(p)
	if i < 0 {
		return substance.Ion{}, notFound(KindBase, p.Formula())
	}
	return t.cations[i], nil
}

// Cations returns all registered metal cations.
func (t *BasesTable) Cations() []substance.Ion {
	return append([]substance.Ion(nil), t.cations...)
}

// Bases returns all derivable bases.
func (t *BasesTable) Bases() []substance.Molecule {
	return append([]substance.Molecule(nil), t.bases...)
}
