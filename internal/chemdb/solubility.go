package chemdb

import (
	"sort"

	"minichem/internal/substance"
)

// Solubility is the school solubility classification of a substance
// in water.
type Solubility string

const (
	// Soluble substances dissolve readily ("SL").
	Soluble Solubility = "SL"

	// SlightlySoluble substances dissolve only partially ("SS").
	SlightlySoluble Solubility = "SS"

	// Insoluble substances precipitate ("NS").
	Insoluble Solubility = "NS"

	// ReactsWithWater marks substances that decompose in water
	// instead of dissolving ("RW").
	ReactsWithWater Solubility = "RW"

	// NoData marks substances kept only to register their ions ("ND").
	NoData Solubility = "ND"
)

// Valid reports whether s is one of the five table markers.
func (s Solubility) Valid() bool {
	switch s {
	case Soluble, SlightlySoluble, Insoluble, ReactsWithWater, NoData:
		return true
	}
	return false
}

// Precipitates reports whether a substance with this solubility leaves
// the solution as a solid.
func (s Solubility) Precipitates() bool {
	return s == Insoluble || s == SlightlySoluble
}

// Record is one row of the solubility table: a cation/anion pair with
// the solubility of the substance they form. Ion formulas are stored
// bare, without the charge suffix.
type Record struct {
	Cation       string
	CationCharge int
	Anion        string
	AnionCharge  int
	Solubility   Solubility
}

type substanceKey struct {
	cation       string
	cationCharge int
	anion        string
	anionCharge  int
}

type ionKey struct {
	formula string
	charge  int
}

func (r Record) key() substanceKey {
	return substanceKey{r.Cation, r.CationCharge, r.Anion, r.AnionCharge}
}

// DB is the in-memory reference database. It is immutable after New
// apart from Merge, which layers user records on top.
type DB struct {
	records    []Record
	substances map[substanceKey]Solubility
	ions       map[ionKey]struct{}
}

// New builds the database from the built-in data: the generated ion
// registry plus the embedded solubility grid.
func New() (*DB, error) {
	db := &DB{
		substances: make(map[substanceKey]Solubility),
		ions:       make(map[ionKey]struct{}),
	}
	for _, r := range generatedRecords() {
		db.add(r)
	}
	grid, err := parseGrid(solubilityCSV)
	if err != nil {
		return nil, err
	}
	for _, r := range grid {
		db.add(r)
	}
	return db, nil
}

// add inserts a record unless the substance is already known. The
// first writer wins, so built-in data loaded before an overlay keeps
// priority.
func (db *DB) add(r Record) {
	k := r.key()
	if _, ok := db.substances[k]; ok {
		return
	}
	db.substances[k] = r.Solubility
	db.records = append(db.records, r)
	db.ions[ionKey{r.Cation, r.CationCharge}] = struct{}{}
	db.ions[ionKey{r.Anion, r.AnionCharge}] = struct{}{}
}

// Merge layers additional records (typically from a user Store) on
// top of the built-in data. Existing substances are not overridden.
func (db *DB) Merge(records []Record) {
	for _, r := range records {
		db.add(r)
	}
}

// Records returns the table rows in load order.
func (db *DB) Records() []Record {
	return append([]Record(nil), db.records...)
}

// Len returns the number of known substances.
func (db *DB) Len() int { return len(db.records) }

// SolubilityOf returns the solubility of a molecule, or a LookupError
// when the substance is not in the table.
func (db *DB) SolubilityOf(m substance.Molecule) (Solubility, error) {
	return db.SolubilityOfIons(m.Cation(), m.Anion())
}

// SolubilityOfIons returns the solubility of the substance the two
// ions form.
func (db *DB) SolubilityOfIons(cation, anion substance.Ion) (Solubility, error) {
	k := substanceKey{
		cation:       cation.BareFormula(),
		cationCharge: cation.Charge(),
		anion:        anion.BareFormula(),
		anionCharge:  anion.Charge(),
	}
	s, ok := db.substances[k]
	if !ok {
		return "", notFound(KindSubstance, ionTermFormula(cation, anion))
	}
	return s, nil
}

// HasSubstance reports whether the molecule appears in the table.
func (db *DB) HasSubstance(m substance.Molecule) bool {
	_, err := db.SolubilityOf(m)
	return err == nil
}

// HasIon reports whether the ion is registered in the table as either
// side of some substance. Monatomic ions missing from the table still
// count as known when their charge is an oxidation state of their
// element.
func (db *DB) HasIon(i substance.Ion) bool {
	if _, ok := db.ions[ionKey{i.BareFormula(), i.Charge()}]; ok {
		return true
	}
	parts := i.Parts()
	if len(parts) == 1 && parts[0].Count == 1 {
		for _, st := range parts[0].Element.OxidationStates() {
			if st == i.Charge() {
				return true
			}
		}
	}
	return false
}

// ChargesFor returns the charges under which the bare formula is
// registered as an ion, in ascending order. The result is empty for
// unknown formulas.
func (db *DB) ChargesFor(bare string) []int {
	var charges []int
	for k := range db.ions {
		if k.formula == bare {
			charges = append(charges, k.charge)
		}
	}
	sort.Ints(charges)
	return charges
}

// Cations returns every registered cation as an ion value, in table
// load order without duplicates.
func (db *DB) Cations() ([]substance.Ion, error) {
	return db.ionsBySide(true)
}

// Anions returns every registered anion as an ion value, in table
// load order without duplicates.
func (db *DB) Anions() ([]substance.Ion, error) {
	return db.ionsBySide(false)
}

func (db *DB) ionsBySide(cation bool) ([]substance.Ion, error) {
	seen := make(map[ionKey]struct{})
	var out []substance.Ion
	for _, r := range db.records {
		formula, charge := r.Anion, r.AnionCharge
		if cation {
			formula, charge = r.Cation, r.CationCharge
		}
		k := ionKey{formula, charge}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		i, err := IonFromRecord(formula, charge)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// IonFromRecord builds an ion value from a stored bare formula and
// charge.
func IonFromRecord(bare string, charge int) (substance.Ion, error) {
	parts, err := substance.ParseParts(bare)
	if err != nil {
		return substance.Ion{}, err
	}
	return substance.NewIon(parts, charge)
}

// MoleculeFromRecord builds the molecule a table row describes.
func MoleculeFromRecord(r Record) (substance.Molecule, error) {
	cation, err := IonFromRecord(r.Cation, r.CationCharge)
	if err != nil {
		return substance.Molecule{}, err
	}
	anion, err := IonFromRecord(r.Anion, r.AnionCharge)
	if err != nil {
		return substance.Molecule{}, err
	}
	return substance.NewMolecule(cation, anion)
}

func ionTermFormula(cation, anion substance.Ion) string {
	m, err := substance.NewMolecule(cation, anion)
	if err != nil {
		return cation.Formula() + "/" + anion.Formula()
	}
	return m.Formula()
}
