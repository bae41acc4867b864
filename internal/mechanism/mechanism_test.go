package mechanism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/chemdb"
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

func testSet(t *testing.T) *Set {
	t.Helper()
	db, err := chemdb.New()
	require.NoError(t, err)
	set, err := NewSet(db)
	require.NoError(t, err)
	return set
}

var (
	sulfateIon   = substance.MustNewIon([]substance.ElementCount{{Element: ptable.S, Count: 1}, {Element: ptable.O, Count: 4}}, -2)
	carbonateIon = substance.MustNewIon([]substance.ElementCount{{Element: ptable.C, Count: 1}, {Element: ptable.O, Count: 3}}, -2)

	sodiumIon   = substance.MonatomicIon(ptable.Na, 1, 1)
	chlorideIon = substance.MonatomicIon(ptable.Cl, 1, -1)
	ironIIIIon  = substance.MonatomicIon(ptable.Fe, 1, 3)
)

func TestSimpleAddition(t *testing.T) {
	set := testSet(t)

	tests := []struct {
		a, b ptable.Element
		want string
	}{
		{ptable.Zn, ptable.S, "ZnS"},
		{ptable.Fe, ptable.O, "Fe2O3"},
		{ptable.Mn, ptable.O, "MnO2"},
		{ptable.Na, ptable.Cl, "NaCl"},
		{ptable.O, ptable.Na, "Na2O"},
	}
	for _, tt := range tests {
		m, err := set.SimpleAddition(substance.SimpleOf(tt.a), substance.SimpleOf(tt.b))
		require.NoError(t, err, tt.want)
		assert.Equal(t, tt.want, m.Formula())
	}
}

func TestSimpleDecomposition(t *testing.T) {
	cuCl2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Cu, 1, 2), chlorideIon)

	cation, anion, err := SimpleDecomposition(cuCl2)
	require.NoError(t, err)
	assert.Equal(t, "Cu", cation.Formula())
	assert.Equal(t, "Cl2", anion.Formula())
}

func TestSimpleDecomposition_Water(t *testing.T) {
	cation, anion, err := SimpleDecomposition(substance.Water)
	require.NoError(t, err)
	assert.Equal(t, "H2", cation.Formula())
	assert.Equal(t, "O2", anion.Formula())
}

func TestSimpleDecomposition_PolyatomicAnion(t *testing.T) {
	na2so4 := substance.MustNewMolecule(sodiumIon, sulfateIon)

	_, _, err := SimpleDecomposition(na2so4)
	assert.True(t, substance.IsSizeError(err))
}

func TestSimpleSubstitution(t *testing.T) {
	cuSO4 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Cu, 1, 2), sulfateIon)
	zinc := substance.SimpleOf(ptable.Zn)

	displaced, product, err := SimpleSubstitution(zinc, cuSO4)
	require.NoError(t, err)
	assert.Equal(t, "Cu", displaced.Formula())
	assert.Equal(t, "ZnSO4", product.Formula())

	// argument order does not matter
	displaced2, product2, err := SimpleSubstitution(cuSO4, zinc)
	require.NoError(t, err)
	assert.Equal(t, displaced.Formula(), displaced2.Formula())
	assert.Equal(t, product.Formula(), product2.Formula())
}

func TestSimpleSubstitution_Acid(t *testing.T) {
	hcl := substance.MustNewMolecule(substance.Proton, chlorideIon)

	displaced, product, err := SimpleSubstitution(substance.SimpleOf(ptable.Mg), hcl)
	require.NoError(t, err)
	assert.Equal(t, "H2", displaced.Formula())
	assert.Equal(t, "MgCl2", product.Formula())
}

func TestSimpleExchange(t *testing.T) {
	naOH := substance.MustNewMolecule(sodiumIon, substance.Hydroxide)
	hcl := substance.MustNewMolecule(substance.Proton, chlorideIon)

	salt, water, err := SimpleExchange(naOH, hcl)
	require.NoError(t, err)
	assert.Equal(t, "NaCl", salt.Formula())
	assert.True(t, water.IsWater())
}

func TestSimpleExchange_Salts(t *testing.T) {
	agNO3 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ag, 1, 1), substance.NitrateIon)
	naCl := substance.MustNewMolecule(sodiumIon, chlorideIon)

	first, second, err := SimpleExchange(agNO3, naCl)
	require.NoError(t, err)
	assert.Equal(t, "AgCl", first.Formula())
	assert.Equal(t, "NaNO3", second.Formula())
}

func TestComplexDecomposition(t *testing.T) {
	set := testSet(t)

	h2co3 := substance.MustNewMolecule(substance.Proton, carbonateIon)
	first, second, err := set.ComplexDecomposition(h2co3)
	require.NoError(t, err)
	assert.Equal(t, "CO2", first.Formula())
	assert.True(t, second.IsWater())

	feOH3 := substance.MustNewMolecule(ironIIIIon, substance.Hydroxide)
	first, second, err = set.ComplexDecomposition(feOH3)
	require.NoError(t, err)
	assert.Equal(t, "Fe2O3", first.Formula())
	assert.True(t, second.IsWater())

	caCO3 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ca, 1, 2), carbonateIon)
	first, second, err = set.ComplexDecomposition(caCO3)
	require.NoError(t, err)
	assert.Equal(t, "CaO", first.Formula())
	assert.Equal(t, "CO2", second.Formula())
}

func TestComplexDecomposition_BinaryAcid(t *testing.T) {
	set := testSet(t)
	hcl := substance.MustNewMolecule(substance.Proton, chlorideIon)

	_, _, err := set.ComplexDecomposition(hcl)
	assert.True(t, chemdb.IsNotFound(err))
}

func TestComplexAddition(t *testing.T) {
	set := testSet(t)

	so3 := substance.MustNewMolecule(substance.MonatomicIon(ptable.S, 1, 6), substance.OxideIon)
	na2o := substance.MustNewMolecule(sodiumIon, substance.OxideIon)
	caO := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ca, 1, 2), substance.OxideIon)
	co2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.C, 1, 4), substance.OxideIon)

	acid, err := set.ComplexAddition(so3, substance.Water)
	require.NoError(t, err)
	assert.Equal(t, "H2SO4", acid.Formula())

	base, err := set.ComplexAddition(substance.Water, na2o)
	require.NoError(t, err)
	assert.Equal(t, "NaOH", base.Formula())

	salt, err := set.ComplexAddition(so3, na2o)
	require.NoError(t, err)
	assert.Equal(t, "Na2SO4", salt.Formula())

	salt, err = set.ComplexAddition(caO, co2)
	require.NoError(t, err)
	assert.Equal(t, "CaCO3", salt.Formula())
}

func TestComplexAddition_TwoWaters(t *testing.T) {
	set := testSet(t)

	_, err := set.ComplexAddition(substance.Water, substance.Water)
	assert.True(t, IsCannotPredict(err))
}

func TestComplexNeutralization(t *testing.T) {
	set := testSet(t)

	h2so4 := substance.MustNewMolecule(substance.Proton, sulfateIon)
	na2o := substance.MustNewMolecule(sodiumIon, substance.OxideIon)
	baOH2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ba, 1, 2), substance.Hydroxide)
	co2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.C, 1, 4), substance.OxideIon)

	products, err := set.ComplexNeutralization(h2so4, na2o)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Na2SO4", products[0].Formula())
	assert.True(t, products[1].IsWater())

	// swapped argument order is accepted
	products, err = set.ComplexNeutralization(baOH2, co2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "BaCO3", products[0].Formula())
	assert.True(t, products[1].IsWater())

	// two oxides collapse to a single product
	products, err = set.ComplexNeutralization(co2, na2o)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Na2CO3", products[0].Formula())
}

func TestComplexNeutralization_WrongClasses(t *testing.T) {
	set := testSet(t)
	naCl := substance.MustNewMolecule(sodiumIon, chlorideIon)

	_, err := set.ComplexNeutralization(naCl, substance.Water)
	assert.True(t, IsClassError(err))
}

func TestNitrateDecomposition(t *testing.T) {
	set := testSet(t)

	kno3 := substance.MustNewMolecule(substance.MonatomicIon(ptable.K, 1, 1), substance.NitrateIon)
	products, err := set.NitrateDecomposition(kno3)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "KNO2", products[0].Formula())
	assert.Equal(t, "O2", products[1].Formula())

	znNO3 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Zn, 1, 2), substance.NitrateIon)
	products, err = set.NitrateDecomposition(znNO3)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "ZnO", products[0].Formula())
	assert.Equal(t, "NO2", products[1].Formula())
	assert.Equal(t, "O2", products[2].Formula())

	agNO3 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ag, 1, 1), substance.NitrateIon)
	products, err = set.NitrateDecomposition(agNO3)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Ag", products[0].Formula())
}

func TestNitrateDecomposition_NotNitrate(t *testing.T) {
	set := testSet(t)
	naCl := substance.MustNewMolecule(sodiumIon, chlorideIon)

	_, err := set.NitrateDecomposition(naCl)
	assert.True(t, IsClassError(err))
}

func TestHasWeakElectrolyte(t *testing.T) {
	set := testSet(t)

	naCl := substance.MustNewMolecule(sodiumIon, chlorideIon)
	naNO3 := substance.MustNewMolecule(sodiumIon, substance.NitrateIon)
	agCl := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ag, 1, 1), chlorideIon)

	assert.False(t, set.HasWeakElectrolyte(naCl, naNO3))
	assert.True(t, set.HasWeakElectrolyte(naCl, agCl))
	assert.True(t, set.HasWeakElectrolyte(naCl, substance.Water))
	assert.True(t, set.HasWeakElectrolyte(substance.Hydrogen, naCl))
}

func TestSubstitutionAllowed(t *testing.T) {
	set := testSet(t)

	znSO4 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Zn, 1, 2), sulfateIon)
	cuSO4 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Cu, 1, 2), sulfateIon)
	znCl2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Zn, 1, 2), chlorideIon)
	cuCl2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Cu, 1, 2), chlorideIon)

	// Zn + CuSO4 -> Cu + ZnSO4 proceeds: zinc out-ranks copper
	ok, err := set.SubstitutionAllowed(substance.SimpleOf(ptable.Cu), znSO4)
	require.NoError(t, err)
	assert.True(t, ok)

	// Cu + ZnSO4 -> Zn + CuSO4 is blocked
	ok, err = set.SubstitutionAllowed(substance.SimpleOf(ptable.Zn), cuSO4)
	require.NoError(t, err)
	assert.False(t, ok)

	// Zn + 2HCl -> H2 + ZnCl2 proceeds, Cu + HCl does not
	ok, err = set.SubstitutionAllowed(substance.Hydrogen, znCl2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = set.SubstitutionAllowed(substance.Hydrogen, cuCl2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBaseMetalIsActive(t *testing.T) {
	set := testSet(t)

	naOH := substance.MustNewMolecule(sodiumIon, substance.Hydroxide)
	feOH2 := substance.MustNewMolecule(substance.MonatomicIon(ptable.Fe, 1, 2), substance.Hydroxide)

	ok, err := set.BaseMetalIsActive(naOH, substance.Hydrogen)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = set.BaseMetalIsActive(feOH2, substance.Hydrogen)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = set.BaseMetalIsActive(substance.Hydrogen)
	assert.True(t, IsClassError(err))
}

func TestHasWeakElectrolyteIons(t *testing.T) {
	set := testSet(t)

	agCl := substance.MustNewMolecule(substance.MonatomicIon(ptable.Ag, 1, 1), chlorideIon)

	assert.True(t, set.HasWeakElectrolyteIons(substance.Water))
	assert.True(t, set.HasWeakElectrolyteIons(agCl))
	// gases do not terminate an ionic exchange
	assert.False(t, set.HasWeakElectrolyteIons(substance.Hydrogen))
}

func TestIonicDecomposition(t *testing.T) {
	h2so4 := substance.MustNewMolecule(substance.Proton, sulfateIon)

	first, second, err := IonicDecomposition(h2so4)
	require.NoError(t, err)
	assert.Equal(t, "H(1)", first.Formula())
	assert.Equal(t, "HSO4(-1)", second.Formula())

	naCl := substance.MustNewMolecule(sodiumIon, chlorideIon)
	first, second, err = IonicDecomposition(naCl)
	require.NoError(t, err)
	assert.Equal(t, "Na(1)", first.Formula())
	assert.Equal(t, "Cl(-1)", second.Formula())

	first, second, err = IonicDecomposition(substance.Water)
	require.NoError(t, err)
	assert.Equal(t, "H(1)", first.Formula())
	assert.Equal(t, "OH(-1)", second.Formula())

	feOH3 := substance.MustNewMolecule(ironIIIIon, substance.Hydroxide)
	first, second, err = IonicDecomposition(feOH3)
	require.NoError(t, err)
	assert.Equal(t, "OH(-1)", first.Formula())
	assert.Equal(t, "Fe(OH)2(1)", second.Formula())
}

func TestIonicDecomposition_Group(t *testing.T) {
	hso4 := substance.MustNewIonGroup(sulfateIon, 1, 1)

	rest, proton, err := IonicDecomposition(hso4)
	require.NoError(t, err)
	assert.Equal(t, "SO4(-2)", rest.Formula())
	assert.Equal(t, "H(1)", proton.Formula())
}

func TestIonicAddition(t *testing.T) {
	// a proton stops at an ion group on a multivalent anion
	p, err := IonicAddition(substance.Proton, sulfateIon)
	require.NoError(t, err)
	assert.Equal(t, "HSO4(-1)", p.Formula())

	// singly charged ions close straight into a molecule
	p, err = IonicAddition(sodiumIon, chlorideIon)
	require.NoError(t, err)
	assert.Equal(t, "NaCl", p.Formula())

	p, err = IonicAddition(chlorideIon, substance.Proton)
	require.NoError(t, err)
	assert.Equal(t, "HCl", p.Formula())

	// hydroxide on a multivalent cation
	p, err = IonicAddition(substance.Hydroxide, ironIIIIon)
	require.NoError(t, err)
	assert.Equal(t, "FeOH(2)", p.Formula())
}

func TestIonicAddition_Group(t *testing.T) {
	hso4 := substance.MustNewIonGroup(sulfateIon, 1, 1)

	// the group's own proton deepens it into the full acid
	p, err := IonicAddition(substance.Proton, hso4)
	require.NoError(t, err)
	assert.Equal(t, "H2SO4", p.Formula())

	// a foreign cation closes the acid group into an acid salt
	p, err = IonicAddition(sodiumIon, hso4)
	require.NoError(t, err)
	assert.Equal(t, "NaHSO4", p.Formula())
}

func TestIonicAddition_SameCharge(t *testing.T) {
	_, err := IonicAddition(sodiumIon, ironIIIIon)
	assert.True(t, IsCannotPredict(err))
}

func TestIonPicking(t *testing.T) {
	feOH3 := substance.MustNewMolecule(ironIIIIon, substance.Hydroxide)

	joined, rest, err := IonPicking(feOH3, substance.Proton)
	require.NoError(t, err)
	assert.True(t, substance.Same(joined, substance.Water))
	assert.Equal(t, "Fe(OH)2(1)", rest.Formula())
}

func TestIonicExchange(t *testing.T) {
	h2so4 := substance.MustNewMolecule(substance.Proton, sulfateIon)
	feOH2 := substance.MustNewIonGroup(ironIIIIon, 1, 2)

	acidRest, baseRest, water, err := IonicExchange(feOH2, h2so4)
	require.NoError(t, err)
	assert.Equal(t, "SO4(-2)", acidRest.Formula())
	assert.Equal(t, "Fe(3)", baseRest.Formula())
	assert.True(t, water.IsWater())
}

func TestIonicExchange_SameFamily(t *testing.T) {
	hso4 := substance.MustNewIonGroup(sulfateIon, 1, 1)
	h2so4 := substance.MustNewMolecule(substance.Proton, sulfateIon)

	_, _, _, err := IonicExchange(hso4, h2so4)
	assert.True(t, IsClassError(err))
}

func TestPickOrAdd(t *testing.T) {
	feOH2 := substance.MustNewIonGroup(ironIIIIon, 1, 2)

	// a proton picks a hydroxide out of a base group
	products, err := PickOrAdd(substance.Proton, feOH2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, substance.Same(products[0], substance.Water))
	assert.Equal(t, "FeOH(2)", products[1].Formula())

	// a plain anion just attaches
	hso4 := substance.MustNewIonGroup(sulfateIon, 1, 1)
	products, err = PickOrAdd(sodiumIon, hso4)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "NaHSO4", products[0].Formula())
}

func TestCompleteDissociation(t *testing.T) {
	h2so4 := substance.MustNewMolecule(substance.Proton, sulfateIon)
	naCl := substance.MustNewMolecule(sodiumIon, chlorideIon)

	ions, err := CompleteDissociation(h2so4, naCl)
	require.NoError(t, err)

	got := make([]string, len(ions))
	for i, ion := range ions {
		got[i] = ion.Formula()
	}
	assert.ElementsMatch(t, []string{"H(1)", "SO4(-2)", "Na(1)", "Cl(-1)"}, got)
}
