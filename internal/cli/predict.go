package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minichem/internal/formula"
	"minichem/internal/mechanism"
	"minichem/internal/predict"
	"minichem/internal/reaction"
	"minichem/internal/substance"
)

// PredictResult is the payload of the predict command.
type PredictResult struct {
	Category string   `json:"category,omitempty"`
	Scheme   string   `json:"scheme"`
	Equation string   `json:"equation,omitempty"`
	Products []string `json:"products"`
}

// NewPredictCommand creates the predict command.
func NewPredictCommand(rootOpts *RootOptions) *cobra.Command {
	var ionic, unchecked bool

	cmd := &cobra.Command{
		Use:   "predict <formula>...",
		Short: "Predict the products of a reaction",
		Long: `Predict the products of a reaction from its reagents.

Reagents are chemical formulas: molecular substances like Zn or HCl,
or dissolved species with a charge suffix like Ba(2) or SO4(-2)
together with --ionic. The predicted reaction is balanced and printed
as an equation.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(rootOpts, args, ionic, unchecked, cmd)
		},
	}

	cmd.Flags().BoolVar(&ionic, "ionic", false, "use the ionic algorithm")
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "skip the restriction check")

	return cmd
}

func runPredict(opts *RootOptions, args []string, ionic, unchecked bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	db, err := newDB(cmd.Context(), opts)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeIO, err.Error())
	}
	set, err := mechanism.NewSet(db)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeIO, err.Error())
	}

	parser := formula.NewParser(db)
	reagents := make([]substance.Particle, len(args))
	for i, arg := range args {
		p, err := parser.Parse(arg)
		if err != nil {
			return formatter.Error(ExitCommandError, CodeParse, err.Error())
		}
		reagents[i] = p
	}

	algorithm := predict.Molecular
	if ionic {
		algorithm = predict.Ionic
	}
	predictor := predict.New(set, algorithm)

	var prediction predict.Prediction
	if unchecked {
		prediction, err = predictor.PredictUnchecked(reagents...)
	} else {
		prediction, err = predictor.Predict(reagents...)
	}
	if err != nil {
		if predict.IsBlocked(err) {
			return formatter.Error(ExitFailure, CodeBlocked, err.Error())
		}
		return formatter.Error(ExitFailure, CodePredict, err.Error())
	}

	r, err := reaction.New(reagents, prediction.Products)
	if err != nil {
		return formatter.Error(ExitFailure, CodePredict, err.Error())
	}
	formatter.VerboseLog("matched the %s category", prediction.Category)

	result := PredictResult{
		Category: string(prediction.Category),
		Scheme:   r.Scheme(),
		Products: formulas(prediction.Products),
	}
	// some predicted schemes (ion picking remainders) have no integer
	// balance; the scheme is still worth printing
	if equation, err := r.Equation(); err == nil {
		result.Equation = equation
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	var b strings.Builder
	if result.Equation != "" {
		b.WriteString(result.Equation)
	} else {
		b.WriteString(result.Scheme)
	}
	if result.Category != "" {
		fmt.Fprintf(&b, "  (%s)", result.Category)
	}
	return formatter.Success(b.String())
}

func formulas(particles []substance.Particle) []string {
	out := make([]string, len(particles))
	for i, p := range particles {
		out[i] = p.Formula()
	}
	return out
}
