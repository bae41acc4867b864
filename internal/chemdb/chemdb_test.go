package chemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/ptable"
	"minichem/internal/substance"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New()
	require.NoError(t, err)
	return db
}

func mustMolecule(t *testing.T, cation, anion substance.Ion) substance.Molecule {
	t.Helper()
	m, err := substance.NewMolecule(cation, anion)
	require.NoError(t, err)
	return m
}

func TestDB_SolubilityOf(t *testing.T) {
	db := testDB(t)

	sodium := substance.MonatomicIon(ptable.Na, 1, 1)
	silver := substance.MonatomicIon(ptable.Ag, 1, 1)
	barium := substance.MonatomicIon(ptable.Ba, 1, 2)
	chloride := substance.MonatomicIon(ptable.Cl, 1, -1)
	sulfate := substance.MustNewIon([]substance.ElementCount{{Element: ptable.S, Count: 1}, {Element: ptable.O, Count: 4}}, -2)

	tests := []struct {
		name string
		m    substance.Molecule
		want Solubility
	}{
		{"NaCl dissolves", mustMolecule(t, sodium, chloride), Soluble},
		{"AgCl precipitates", mustMolecule(t, silver, chloride), Insoluble},
		{"BaSO4 precipitates", mustMolecule(t, barium, sulfate), Insoluble},
		{"NaNO3 generated as soluble", mustMolecule(t, sodium, substance.NitrateIon), Soluble},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.SolubilityOf(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDB_SolubilityOf_Unknown(t *testing.T) {
	db := testDB(t)

	gold := substance.MonatomicIon(ptable.Au, 1, 1)
	chloride := substance.MonatomicIon(ptable.Cl, 1, -1)

	_, err := db.SolubilityOf(mustMolecule(t, gold, chloride))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDB_HasIon(t *testing.T) {
	db := testDB(t)

	sulfate := substance.MustNewIon([]substance.ElementCount{{Element: ptable.S, Count: 1}, {Element: ptable.O, Count: 4}}, -2)
	assert.True(t, db.HasIon(sulfate))
	assert.True(t, db.HasIon(substance.MonatomicIon(ptable.Fe, 1, 3)))
	assert.True(t, db.HasIon(substance.NitrateIon))

	// Monatomic fallback: charge must be an oxidation state.
	assert.True(t, db.HasIon(substance.MonatomicIon(ptable.Cu, 1, 2)))
	assert.False(t, db.HasIon(substance.MonatomicIon(ptable.Na, 1, 3)))

	bogus := substance.MustNewIon([]substance.ElementCount{{Element: ptable.S, Count: 7}, {Element: ptable.O, Count: 9}}, -4)
	assert.False(t, db.HasIon(bogus))
}

func TestDB_ChargesFor(t *testing.T) {
	db := testDB(t)

	assert.Contains(t, db.ChargesFor("Fe"), 2)
	assert.Contains(t, db.ChargesFor("Fe"), 3)
	assert.Equal(t, []int{-2}, db.ChargesFor("SO4"))
	assert.Empty(t, db.ChargesFor("Xx"))
}

// Only charges up to +4 register as bare cations: iron stops at Fe(3)
// and manganese at Mn(4), the higher group states belong to oxoanions.
func TestDB_ChargesFor_CationCap(t *testing.T) {
	db := testDB(t)

	assert.Equal(t, []int{2, 3}, db.ChargesFor("Fe"))
	assert.Equal(t, []int{2, 3, 4}, db.ChargesFor("Mn"))
	assert.Equal(t, []int{2, 4}, db.ChargesFor("Cr"))

	// Nonmetal oxide rows keep their high states (S +6, Cl +7); the
	// cap binds metals only.
	for _, r := range db.Records() {
		el, err := ptable.BySymbol(r.Cation)
		if err != nil || !el.IsMetal() {
			continue
		}
		assert.LessOrEqual(t, r.CationCharge, 4, "cation %s", r.Cation)
	}
}

func TestDB_NitriteAndNitrogenDioxide(t *testing.T) {
	db := testDB(t)

	nitrite := substance.MustNewIon([]substance.ElementCount{
		{Element: ptable.N, Count: 1}, {Element: ptable.O, Count: 2},
	}, -1)
	assert.True(t, db.HasIon(nitrite))
	assert.Contains(t, db.ChargesFor("N"), 4)
}

func TestDB_Solubility_Precipitates(t *testing.T) {
	assert.True(t, Insoluble.Precipitates())
	assert.True(t, SlightlySoluble.Precipitates())
	assert.False(t, Soluble.Precipitates())
	assert.False(t, NoData.Precipitates())
}

func TestAcidsTable(t *testing.T) {
	table, err := NewAcidsTable()
	require.NoError(t, err)

	sulfate := substance.MustNewIon([]substance.ElementCount{{Element: ptable.S, Count: 1}, {Element: ptable.O, Count: 4}}, -2)

	acid, err := table.Acid(sulfate)
	require.NoError(t, err)
	assert.Equal(t, "H2SO4", acid.Formula())

	oxide, err := table.AcidicOxide(acid)
	require.NoError(t, err)
	assert.Equal(t, "SO3", oxide.Formula())

	rest, err := table.AcidRest(oxide)
	require.NoError(t, err)
	assert.True(t, rest.Equal(sulfate))

	// Binary acids have no acidic oxide.
	chloride := substance.MonatomicIon(ptable.Cl, 1, -1)
	hcl, err := table.Acid(chloride)
	require.NoError(t, err)
	assert.Equal(t, "HCl", hcl.Formula())
	_, err = table.AcidicOxide(hcl)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestBasesTable(t *testing.T) {
	db := testDB(t)
	table, err := NewBasesTable(db)
	require.NoError(t, err)

	sodium := substance.MonatomicIon(ptable.Na, 1, 1)

	base, err := table.Base(sodium)
	require.NoError(t, err)
	assert.Equal(t, "NaOH", base.Formula())

	oxide, err := table.BasicOxide(base)
	require.NoError(t, err)
	assert.Equal(t, "Na2O", oxide.Formula())

	cation, err := table.Cation(oxide)
	require.NoError(t, err)
	assert.True(t, cation.Equal(sodium))

	// Nonmetal cations never enter the bases table.
	_, err = table.Base(substance.MonatomicIon(ptable.S, 1, 6))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestActivitySeries_Activity(t *testing.T) {
	a := NewActivitySeries()

	tests := []struct {
		el   ptable.Element
		want Activity
	}{
		{ptable.K, Active},
		{ptable.Ca, Active},
		{ptable.Zn, MiddleActive},
		{ptable.Ni, MiddleActive},
		{ptable.H, MiddleActive},
		{ptable.Cu, Inactive},
		{ptable.Au, Inactive},
	}
	for _, tt := range tests {
		t.Run(tt.el.Symbol, func(t *testing.T) {
			got, err := a.Activity(tt.el)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := a.Activity(ptable.S)
	require.Error(t, err)
	var nme *NotMetalError
	assert.ErrorAs(t, err, &nme)
}

func TestActivitySeries_Compare(t *testing.T) {
	a := NewActivitySeries()

	more, err := a.MoreActive(ptable.Zn, ptable.Cu)
	require.NoError(t, err)
	assert.Equal(t, ptable.Zn, more)

	// Zinc displaces hydrogen, copper does not.
	more, err = a.MoreActive(ptable.Zn, ptable.H)
	require.NoError(t, err)
	assert.Equal(t, ptable.Zn, more)

	more, err = a.MoreActive(ptable.Cu, ptable.H)
	require.NoError(t, err)
	assert.Equal(t, ptable.H, more)

	inert, err := a.MoreInert(ptable.K, ptable.Fe)
	require.NoError(t, err)
	assert.Equal(t, ptable.Fe, inert)
}

func TestActivitySeries_Estimate(t *testing.T) {
	a := NewActivitySeries()

	// Rubidium is active and outside the series; the estimate must be
	// a series member from group 1A.
	est, err := a.Estimate(ptable.Rb)
	require.NoError(t, err)
	assert.True(t, a.Contains(est))
	assert.Equal(t, "1A", est.Group)

	// Inactive fallbacks are fixed per region.
	est, err = a.Estimate(ptable.Pd)
	require.NoError(t, err)
	assert.Equal(t, ptable.Pt, est)

	est, err = a.Estimate(ptable.Mo)
	require.NoError(t, err)
	assert.Equal(t, ptable.W, est)
}

func TestStore_Overlay(t *testing.T) {
	ctx := context.Background()
	store, err := OpenStore(t.TempDir() + "/overlay.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	custom := Record{Cation: "Au", CationCharge: 3, Anion: "Cl", AnionCharge: -1, Solubility: Soluble}
	require.NoError(t, store.Add(ctx, custom))

	// Re-adding updates the solubility instead of duplicating.
	custom.Solubility = SlightlySoluble
	require.NoError(t, store.Add(ctx, custom))

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, SlightlySoluble, records[0].Solubility)

	db, err := NewWithStore(ctx, store)
	require.NoError(t, err)

	gold := substance.MonatomicIon(ptable.Au, 1, 3)
	chloride := substance.MonatomicIon(ptable.Cl, 1, -1)
	sol, err := db.SolubilityOfIons(gold, chloride)
	require.NoError(t, err)
	assert.Equal(t, SlightlySoluble, sol)

	require.NoError(t, store.Remove(ctx, "Au", 3, "Cl", -1))
	records, err = store.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHalfReactionTable(t *testing.T) {
	table, err := NewHalfReactionTable()
	require.NoError(t, err)
	assert.NotEmpty(t, table.Rows())

	pot, err := table.Potential("Zn(2) + e(-1) -> Zn")
	require.NoError(t, err)
	assert.InDelta(t, -0.76, pot, 1e-9)

	// Whitespace and the = separator do not matter for lookups.
	pot, err = table.Potential("Cu(2)+e(-1)=Cu")
	require.NoError(t, err)
	assert.InDelta(t, 0.34, pot, 1e-9)

	_, err = table.Potential("Xx(1) + e(-1) -> Xx")
	assert.True(t, IsNotFound(err))

	assert.True(t, table.Contains("H(1) + e(-1) -> H2"))
	assert.False(t, table.Contains("H2O -> H2 + O2"))
}

func TestHalfReactionTable_Match(t *testing.T) {
	table, err := NewHalfReactionTable()
	require.NoError(t, err)

	rows := table.Match("Fe(2)", SideAny)
	require.Len(t, rows, 2)

	rows = table.Match("Fe(2)", SideReagents)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fe(2) + e(-1) -> Fe", rows[0].Scheme)

	rows = table.Match("Fe(2)", SideProducts)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fe(3) + e(-1) -> Fe(2)", rows[0].Scheme)

	assert.Empty(t, table.Match("H2O", SideAny))
}

func TestHalfReactionTable_Extremes(t *testing.T) {
	table, err := NewHalfReactionTable()
	require.NoError(t, err)

	schemes := []string{
		"Zn(2) + e(-1) -> Zn",
		"Cu(2) + e(-1) -> Cu",
		"Ag(1) + e(-1) -> Ag",
	}

	row, err := table.MostPositive(schemes...)
	require.NoError(t, err)
	assert.Equal(t, "Ag(1) + e(-1) -> Ag", row.Scheme)

	row, err = table.MostNegative(schemes...)
	require.NoError(t, err)
	assert.Equal(t, "Zn(2) + e(-1) -> Zn", row.Scheme)

	_, err = table.MostPositive()
	assert.True(t, IsNotFound(err))
}
