package reaction

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/chemdb"
	"minichem/internal/formula"
	"minichem/internal/mechanism"
	"minichem/internal/predict"
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

func testParser(t *testing.T) *formula.Parser {
	t.Helper()
	db, err := chemdb.New()
	require.NoError(t, err)
	return formula.NewParser(db)
}

func TestParseScheme(t *testing.T) {
	parser := testParser(t)

	r, err := ParseScheme(parser, "Zn + HCl -> ZnCl2 + H2")
	require.NoError(t, err)
	assert.Equal(t, "Zn + HCl -> ZnCl2 + H2", r.Scheme())

	equation, err := r.Equation()
	require.NoError(t, err)
	assert.Equal(t, "Zn + 2HCl -> ZnCl2 + H2", equation)
}

func TestParseScheme_EqualsSeparator(t *testing.T) {
	parser := testParser(t)

	r, err := ParseScheme(parser, "H2 + O2 = H2O")
	require.NoError(t, err)

	equation, err := r.Equation()
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 -> 2H2O", equation)
}

func TestParseScheme_Errors(t *testing.T) {
	parser := testParser(t)

	_, err := ParseScheme(parser, "NaCl")
	assert.True(t, IsSchemeError(err))

	_, err = ParseScheme(parser, "2H2 + O2 -> H2O")
	assert.True(t, IsSchemeError(err))

	_, err = ParseScheme(parser, "H2 + -> H2O")
	assert.True(t, IsSchemeError(err))
}

func TestFromReagents(t *testing.T) {
	parser := testParser(t)
	db, err := chemdb.New()
	require.NoError(t, err)
	set, err := mechanism.NewSet(db)
	require.NoError(t, err)
	predictor := predict.New(set, predict.Molecular)

	naOH, err := parser.Parse("NaOH")
	require.NoError(t, err)
	hCl, err := parser.Parse("HCl")
	require.NoError(t, err)

	r, err := FromReagents(predictor, naOH, hCl)
	require.NoError(t, err)
	assert.Equal(t, predict.CategoryExchange, r.Category())

	equation, err := r.Equation()
	require.NoError(t, err)
	assert.Equal(t, "NaOH + HCl -> NaCl + H2O", equation)
}

func TestNew_EmptySide(t *testing.T) {
	_, err := New(nil, []substance.Particle{substance.Water})
	assert.True(t, IsSchemeError(err))
}

func TestCoefficientOf(t *testing.T) {
	parser := testParser(t)

	r, err := ParseScheme(parser, "H2 + O2 -> H2O")
	require.NoError(t, err)

	c, err := r.CoefficientOf(substance.Water)
	require.NoError(t, err)
	assert.Equal(t, 2, c)

	c, err = r.CoefficientOf(substance.SimpleOf(ptable.O))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	naCl := substance.MustNewMolecule(
		substance.MonatomicIon(ptable.Na, 1, 1),
		substance.MonatomicIon(ptable.Cl, 1, -1),
	)
	_, err = r.CoefficientOf(naCl)
	assert.True(t, IsNotParticipant(err))
}

func TestEquation_Golden(t *testing.T) {
	parser := testParser(t)

	schemes := []string{
		"Fe + O2 -> Fe2O3",
		"Al + H2SO4 -> Al2(SO4)3 + H2",
		"KNO3 -> KNO2 + O2",
		"NaOH + H2SO4 -> Na2SO4 + H2O",
		"Ag(1) + Cl(-1) -> AgCl",
	}

	var b strings.Builder
	for _, scheme := range schemes {
		r, err := ParseScheme(parser, scheme)
		require.NoError(t, err, scheme)
		equation, err := r.Equation()
		require.NoError(t, err, scheme)
		b.WriteString(equation)
		b.WriteString("\n")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "equations", []byte(b.String()))
}
