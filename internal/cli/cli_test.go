package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minichem/internal/problem"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPredictCommand(t *testing.T) {
	out, err := execute(t, "predict", "Zn", "HCl")
	require.NoError(t, err)
	assert.Contains(t, out, "Zn + 2HCl -> H2 + ZnCl2")
	assert.Contains(t, out, "(substitution)")
}

func TestPredictCommand_Blocked(t *testing.T) {
	out, err := execute(t, "predict", "Cu", "HCl")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "blocked")
}

func TestPredictCommand_Unchecked(t *testing.T) {
	out, err := execute(t, "predict", "Cu", "HCl", "--unchecked")
	require.NoError(t, err)
	assert.Contains(t, out, "CuCl2")
}

func TestPredictCommand_Ionic(t *testing.T) {
	out, err := execute(t, "predict", "--ionic", "Ag(1)", "Cl(-1)")
	require.NoError(t, err)
	assert.Contains(t, out, "AgCl")
}

func TestPredictCommand_JSON(t *testing.T) {
	out, err := execute(t, "predict", "--format", "json", "NaOH", "HCl")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "exchange", data["category"])
	assert.Equal(t, "NaOH + HCl -> NaCl + H2O", data["equation"])
}

func TestPredictCommand_ParseError(t *testing.T) {
	_, err := execute(t, "predict", "Xx9")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBalanceCommand(t *testing.T) {
	out, err := execute(t, "balance", "Fe + O2 -> Fe2O3")
	require.NoError(t, err)
	assert.Equal(t, "4Fe + 3O2 -> 2Fe2O3\n", out)
}

func TestBalanceCommand_JSON(t *testing.T) {
	out, err := execute(t, "balance", "--format", "json", "H2 + O2 -> H2O")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2H2 + O2 -> 2H2O", data["equation"])
}

func TestBalanceCommand_BadScheme(t *testing.T) {
	_, err := execute(t, "balance", "NaCl")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSolveCommand_Inline(t *testing.T) {
	out, err := execute(t, "solve", "m[ Zn ] = 6.5 g\nr: Zn + HCl\nt: m[ ZnCl2 ] = 0 g")
	require.NoError(t, err)
	assert.Contains(t, out, "m[ZnCl2] =")
	assert.Contains(t, out, "g")
}

func TestSolveCommand_File(t *testing.T) {
	p, err := problem.ParseText("n[ NaOH ] = 1 mol\nn[ HCl ] = 0.5 mol\nr: NaOH + HCl\nt: n[ NaCl ] = 0 mol")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, problem.SaveFile(path, p))

	out, err := execute(t, "solve", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n[NaCl] = 0.5 mol")
}

func TestSolveCommand_NoProblem(t *testing.T) {
	_, err := execute(t, "solve")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInfoCommand_Element(t *testing.T) {
	out, err := execute(t, "info", "Na")
	require.NoError(t, err)
	assert.Contains(t, out, "Sodium (Na)")
	assert.Contains(t, out, "metal")
}

func TestInfoCommand_Substance(t *testing.T) {
	out, err := execute(t, "info", "H2SO4")
	require.NoError(t, err)
	assert.Contains(t, out, "acid")
	assert.Contains(t, out, "molar mass")
}

func TestInfoCommand_JSON(t *testing.T) {
	out, err := execute(t, "info", "--format", "json", "NaCl")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "salt", data["class"])
	assert.Equal(t, "soluble", data["solubility"])
}

func TestTablesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.db")

	out, err := execute(t, "tables", "add", "Cs(1)", "Br(-1)", "SL", "--tables", path)
	require.NoError(t, err)
	assert.Contains(t, out, "added Cs(1) Br(-1)")

	out, err = execute(t, "tables", "list", "--tables", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Cs(1) Br(-1)  SL")

	out, err = execute(t, "tables", "remove", "Cs(1)", "Br(-1)", "--tables", path)
	require.NoError(t, err)

	out, err = execute(t, "tables", "list", "--tables", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no overlay substances")
}

func TestTablesCommand_NeedsPath(t *testing.T) {
	_, err := execute(t, "tables", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFormatValidation(t *testing.T) {
	_, err := execute(t, "predict", "Zn", "HCl", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestOutput_Golden(t *testing.T) {
	var b strings.Builder
	for _, args := range [][]string{
		{"predict", "Zn", "HCl"},
		{"predict", "NaOH", "HCl"},
		{"predict", "CaCO3"},
		{"balance", "H2 + O2 -> H2O"},
		{"balance", "Al + H2SO4 -> Al2(SO4)3 + H2"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err, strings.Join(args, " "))
		b.WriteString(out)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "commands", []byte(b.String()))
}
