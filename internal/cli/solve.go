package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minichem/internal/problem"
	"minichem/internal/stoich"
)

// SolveAnswer is one computed target in the solve payload.
type SolveAnswer struct {
	Symbol  string  `json:"symbol"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "solve [problem-text]",
		Short: "Solve a stoichiometry problem",
		Long: `Solve a stoichiometry problem given inline or in a YAML file.

The inline form uses the problem grammar:

  minichem solve 'm[ Zn ] = 6.5 g
  r: Zn + HCl
  t: m[ ZnCl2 ] = 0 g'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, args, file, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML problem file")

	return cmd
}

func runSolve(opts *RootOptions, args []string, file string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var (
		p   *problem.Problem
		err error
	)
	switch {
	case file != "" && len(args) > 0:
		return formatter.Error(ExitCommandError, CodeProblem, "give either a problem file or inline text, not both")
	case file != "":
		p, err = problem.LoadFile(file)
	case len(args) == 1:
		p, err = problem.ParseText(args[0])
	default:
		return formatter.Error(ExitCommandError, CodeProblem, "no problem given")
	}
	if err != nil {
		return formatter.Error(ExitCommandError, CodeProblem, err.Error())
	}

	db, err := newDB(cmd.Context(), opts)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeIO, err.Error())
	}
	solver, err := problem.NewSolver(db)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeIO, err.Error())
	}

	answers, err := solver.Solve(p)
	if err != nil {
		if stoich.IsInsufficientData(err) || stoich.IsUnitMismatch(err) {
			return formatter.Error(ExitFailure, CodeStoich, err.Error())
		}
		return formatter.Error(ExitFailure, CodeProblem, err.Error())
	}

	if formatter.JSON() {
		out := make([]SolveAnswer, len(answers))
		for i, a := range answers {
			out[i] = SolveAnswer(a)
		}
		return formatter.Success(out)
	}

	var b strings.Builder
	for i, a := range answers {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s[%s] = %.4g %s", a.Symbol, a.Formula, a.Value, a.Unit)
	}
	return formatter.Success(b.String())
}
