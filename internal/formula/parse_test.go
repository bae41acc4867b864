package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/chemdb"
	"minichem/internal/substance"
)

func testParser(t *testing.T) *Parser {
	t.Helper()
	db, err := chemdb.New()
	require.NoError(t, err)
	return NewParser(db)
}

func TestParse_RoundTrip(t *testing.T) {
	p := testParser(t)

	formulas := []string{
		"Fe",
		"O2",
		"H2O",
		"NaCl",
		"H2SO4",
		"Fe(OH)3",
		"Al2(SO4)3",
		"CaCO3",
		"CO2",
		"SO3",
		"Na(1)",
		"SO4(-2)",
		"OH(-1)",
		"HSO4(-1)",
		"FeOH(2)",
		"KNO2",
		"NO2",
		"NO2(-1)",
	}
	for _, f := range formulas {
		t.Run(f, func(t *testing.T) {
			got, err := p.Parse(f)
			require.NoError(t, err)
			assert.Equal(t, f, got.Formula())
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	p := testParser(t)

	got, err := p.Parse("O2")
	require.NoError(t, err)
	_, ok := got.(substance.Simple)
	assert.True(t, ok)

	got, err = p.Parse("NaCl")
	require.NoError(t, err)
	_, ok = got.(substance.Molecule)
	assert.True(t, ok)

	got, err = p.Parse("SO4(-2)")
	require.NoError(t, err)
	_, ok = got.(substance.Ion)
	assert.True(t, ok)

	got, err = p.Parse("HSO4(-1)")
	require.NoError(t, err)
	_, ok = got.(substance.IonGroup)
	assert.True(t, ok)
}

func TestParse_Water(t *testing.T) {
	p := testParser(t)

	got, err := p.Parse("H2O")
	require.NoError(t, err)
	assert.True(t, substance.Same(got, substance.Water))
}

func TestParseMolecule_PicksCationCharge(t *testing.T) {
	p := testParser(t)

	// Iron forms Fe(2) and Fe(3); the written formula decides.
	m, err := p.ParseMolecule("FeCl2")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Cation().Charge())

	m, err = p.ParseMolecule("FeCl3")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Cation().Charge())
}

func TestParse_Errors(t *testing.T) {
	p := testParser(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "?!"},
		{"unknown element", "Zx2O"},
		{"no substance renders to it", "H2O2"},
		{"ion without registered charge", "Na(3)"},
		{"salt ion group unsupported", "NaSO4(-1)"},
		{"charge out of reach", "HSO4(-3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, IsParseError(err))
		})
	}
}

func TestParseSimple_RejectsComplex(t *testing.T) {
	p := testParser(t)

	_, err := p.ParseSimple("NaCl")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestSplitIonString(t *testing.T) {
	bare, charge, err := SplitIonString("SO4(-2)")
	require.NoError(t, err)
	assert.Equal(t, "SO4", bare)
	assert.Equal(t, -2, charge)

	bare, charge, err = SplitIonString("Na(+1)")
	require.NoError(t, err)
	assert.Equal(t, "Na", bare)
	assert.Equal(t, 1, charge)

	_, _, err = SplitIonString("Na")
	require.Error(t, err)
}

func TestParse_NormalizesUnicode(t *testing.T) {
	p := testParser(t)

	// Full-width digits fold to ASCII under NFKC.
	got, err := p.Parse("H２O")
	require.NoError(t, err)
	assert.Equal(t, "H2O", got.Formula())
}
