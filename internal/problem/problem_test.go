package problem

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/chemdb"
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

const sampleText = `
# barium sulfate precipitation
C[ Ba(NO3)2 ; Na2SO4 ] = 0.25 M
Vsm[] = 150 mL
r: Ba(NO3)2 + Na2SO4
t: m[ BaSO4 ] = 0 g
`

func testSolver(t *testing.T) *Solver {
	t.Helper()
	db, err := chemdb.New()
	require.NoError(t, err)
	s, err := NewSolver(db)
	require.NoError(t, err)
	return s
}

func TestParseText(t *testing.T) {
	p, err := ParseText(sampleText)
	require.NoError(t, err)

	assert.Equal(t, "Ba(NO3)2 + Na2SO4", p.Reaction)
	require.Len(t, p.Givens, 2)
	assert.Equal(t, Datum{Symbol: "C", Formulas: []string{"Ba(NO3)2", "Na2SO4"}, Value: 0.25, Unit: "M"}, p.Givens[0])
	assert.Equal(t, Datum{Symbol: "Vsm", Value: 150, Unit: "mL"}, p.Givens[1])
	require.Len(t, p.Targets, 1)
	assert.Equal(t, Datum{Symbol: "m", Formulas: []string{"BaSO4"}, Value: 0, Unit: "g"}, p.Targets[0])
}

func TestParseText_Errors(t *testing.T) {
	_, err := ParseText("m[ Zn ] = 5 g")
	assert.True(t, IsGrammarError(err), "missing reaction line")

	_, err = ParseText("r: Zn + HCl\nm[ Zn = 5 g")
	assert.True(t, IsGrammarError(err), "unclosed bracket")

	_, err = ParseText("r: Zn + HCl\nm[ Zn ] = g")
	assert.True(t, IsGrammarError(err), "missing value")

	_, err = ParseText("r: Zn + HCl\nm[ Zn ] = 5")
	assert.True(t, IsGrammarError(err), "missing unit")
}

func TestSolve_MassToMass(t *testing.T) {
	s := testSolver(t)

	p, err := ParseText(`
r: Zn + HCl
m[ Zn ] = 6.5 g
t: m[ ZnCl2 ] = 0 g
`)
	require.NoError(t, err)

	answers, err := s.Solve(p)
	require.NoError(t, err)
	require.Len(t, answers, 1)

	zn := substance.SimpleOf(ptable.Zn)
	znCl2 := substance.MustNewMolecule(
		substance.MonatomicIon(ptable.Zn, 1, 2),
		substance.MonatomicIon(ptable.Cl, 1, -1),
	)
	assert.Equal(t, "ZnCl2", answers[0].Formula)
	assert.Equal(t, "g", answers[0].Unit)
	assert.InDelta(t, 6.5/zn.MolarMass()*znCl2.MolarMass(), answers[0].Value, 1e-9)
}

func TestSolve_ConcentrationAndVolume(t *testing.T) {
	s := testSolver(t)

	p, err := ParseText(`
C[ Ba(NO3)2 ] = 0.25 M
Vsm[ Ba(NO3)2 ] = 150 mL
r: Ba(NO3)2 + Na2SO4
t: m[ BaSO4 ] = 0 g
`)
	require.NoError(t, err)

	answers, err := s.Solve(p)
	require.NoError(t, err)
	require.Len(t, answers, 1)

	baSO4 := substance.MustNewMolecule(
		substance.MonatomicIon(ptable.Ba, 1, 2),
		substance.MustNewIon([]substance.ElementCount{{Element: ptable.S, Count: 1}, {Element: ptable.O, Count: 4}}, -2),
	)
	assert.InDelta(t, 0.25*0.150*baSO4.MolarMass(), answers[0].Value, 1e-9)
}

func TestSolve_LimitingReagent(t *testing.T) {
	s := testSolver(t)

	p, err := ParseText(`
n[ NaOH ] = 1 mol
n[ HCl ] = 0.5 mol
r: NaOH + HCl
t: n[ NaCl ] = 0 mol
`)
	require.NoError(t, err)

	answers, err := s.Solve(p)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.InDelta(t, 0.5, answers[0].Value, 1e-9)
}

func TestFileRoundTrip(t *testing.T) {
	p, err := ParseText(sampleText)
	require.NoError(t, err)
	p.ID = uuid.NewString()

	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, SaveFile(path, p))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestGenerator(t *testing.T) {
	g := NewGenerator(testSolver(t), 42)

	for i := 0; i < 5; i++ {
		ex, err := g.Generate()
		require.NoError(t, err)

		_, err = uuid.Parse(ex.Problem.ID)
		assert.NoError(t, err)
		require.Len(t, ex.Answers, 1)
		assert.Greater(t, ex.Answers[0].Value, 0.0)
		assert.Equal(t, ex.Answers[0].Value, ex.Problem.Targets[0].Value)
	}
}
