package cli

import (
	"github.com/spf13/cobra"

	"minichem/internal/balance"
	"minichem/internal/formula"
	"minichem/internal/reaction"
)

// BalanceResult is the payload of the balance command.
type BalanceResult struct {
	Equation     string `json:"equation"`
	Coefficients []int  `json:"coefficients"`
}

// NewBalanceCommand creates the balance command.
func NewBalanceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <scheme>",
		Short: "Balance a reaction scheme",
		Long: `Balance a reaction scheme like "Fe + O2 -> Fe2O3".

The coefficients conserve every element and the net charge, so ionic
schemes with charge suffixes balance too.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalance(rootOpts, args[0], cmd)
		},
	}
}

func runBalance(opts *RootOptions, scheme string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	db, err := newDB(cmd.Context(), opts)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeIO, err.Error())
	}

	r, err := reaction.ParseScheme(formula.NewParser(db), scheme)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeParse, err.Error())
	}

	coeffs, err := r.Coefficients()
	if balance.IsUnbalanceable(err) {
		return formatter.Error(ExitFailure, CodeBalance, err.Error())
	}
	if err != nil {
		return formatter.Error(ExitCommandError, CodeBalance, err.Error())
	}
	equation, err := r.Equation()
	if err != nil {
		return formatter.Error(ExitFailure, CodeBalance, err.Error())
	}

	if formatter.JSON() {
		return formatter.Success(BalanceResult{Equation: equation, Coefficients: coeffs})
	}
	return formatter.Success(equation)
}
