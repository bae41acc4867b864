package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/chemdb"
	"minichem/internal/substance"
)

func testHalfTable(t *testing.T) *chemdb.HalfReactionTable {
	t.Helper()
	table, err := chemdb.NewHalfReactionTable()
	require.NoError(t, err)
	return table
}

func TestParseHalfScheme(t *testing.T) {
	parser := testParser(t)

	h, err := ParseHalfScheme(parser, "Cu(2) + e(-1) -> Cu")
	require.NoError(t, err)
	assert.Equal(t, "Cu(2) + e(-1) -> Cu", h.Scheme())

	equation, err := h.Equation()
	require.NoError(t, err)
	assert.Equal(t, "Cu(2) + 2e(-1) -> Cu", equation)

	n, err := h.Electrons()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestParseHalfScheme_Diatomic(t *testing.T) {
	parser := testParser(t)

	h, err := ParseHalfScheme(parser, "Cl2 + e(-1) -> Cl(-1)")
	require.NoError(t, err)

	equation, err := h.Equation()
	require.NoError(t, err)
	assert.Equal(t, "Cl2 + 2e(-1) -> 2Cl(-1)", equation)
}

func TestParseHalfScheme_Errors(t *testing.T) {
	parser := testParser(t)

	_, err := ParseHalfScheme(parser, "Cu(2) + e(-1)")
	assert.True(t, IsSchemeError(err))

	_, err = ParseHalfScheme(parser, "2Cu(2) + e(-1) -> Cu")
	assert.True(t, IsSchemeError(err))
}

func TestHalfReaction_Reversed(t *testing.T) {
	parser := testParser(t)

	h, err := ParseHalfScheme(parser, "Zn(2) + e(-1) -> Zn")
	require.NoError(t, err)

	equation, err := h.Reversed().Equation()
	require.NoError(t, err)
	assert.Equal(t, "Zn -> Zn(2) + 2e(-1)", equation)
}

func TestSortRedox(t *testing.T) {
	parser := testParser(t)
	table := testHalfTable(t)

	copper, err := ParseHalfScheme(parser, "Cu(2) + e(-1) -> Cu")
	require.NoError(t, err)
	zinc, err := ParseHalfScheme(parser, "Zn(2) + e(-1) -> Zn")
	require.NoError(t, err)

	reduction, oxidation, err := SortRedox(table, zinc, copper)
	require.NoError(t, err)
	assert.Equal(t, "Cu(2) + e(-1) -> Cu", reduction.Scheme())
	assert.Equal(t, "Zn -> Zn(2) + e(-1)", oxidation.Scheme())
}

func TestCombine(t *testing.T) {
	parser := testParser(t)
	table := testHalfTable(t)

	copper, err := ParseHalfScheme(parser, "Cu(2) + e(-1) -> Cu")
	require.NoError(t, err)
	zinc, err := ParseHalfScheme(parser, "Zn(2) + e(-1) -> Zn")
	require.NoError(t, err)

	reduction, oxidation, err := SortRedox(table, zinc, copper)
	require.NoError(t, err)

	r, err := Combine(reduction, oxidation)
	require.NoError(t, err)

	equation, err := r.Equation()
	require.NoError(t, err)
	assert.Equal(t, "Cu(2) + Zn -> Cu + Zn(2)", equation)
}

func TestCombine_WrongSides(t *testing.T) {
	parser := testParser(t)

	copper, err := ParseHalfScheme(parser, "Cu(2) + e(-1) -> Cu")
	require.NoError(t, err)
	zinc, err := ParseHalfScheme(parser, "Zn(2) + e(-1) -> Zn")
	require.NoError(t, err)

	// Two reductions cannot pair up.
	_, err = Combine(copper, zinc)
	assert.True(t, IsSchemeError(err))
}

func TestCombine_UnequalElectrons(t *testing.T) {
	parser := testParser(t)
	table := testHalfTable(t)

	silver, err := ParseHalfScheme(parser, "Ag(1) + e(-1) -> Ag")
	require.NoError(t, err)
	iron, err := ParseHalfScheme(parser, "Fe(2) + e(-1) -> Fe")
	require.NoError(t, err)

	reduction, oxidation, err := SortRedox(table, silver, iron)
	require.NoError(t, err)

	r, err := Combine(reduction, oxidation)
	require.NoError(t, err)

	equation, err := r.Equation()
	require.NoError(t, err)
	assert.Equal(t, "2Ag(1) + Fe -> 2Ag + Fe(2)", equation)

	n, err := reduction.Electrons()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestElectronParticle(t *testing.T) {
	e := substance.Electron
	assert.Equal(t, "e(-1)", e.Formula())
	assert.Equal(t, -1, e.Charge())
	assert.Empty(t, e.Composition())
}
