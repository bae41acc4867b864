package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"minichem/internal/chemdb"
)

// RootOptions holds the global flags of all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Tables  string // path to the solubility overlay database, optional
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the minichem CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "minichem",
		Short: "School chemistry toolkit",
		Long:  "Predicts reaction products, balances equations and solves stoichiometry problems.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Tables, "tables", "", "path to the solubility overlay database")

	cmd.AddCommand(NewPredictCommand(opts))
	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewTablesCommand(opts))

	return cmd
}

// isValidFormat checks whether the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newDB loads the reference tables, merging the overlay when one is
// configured.
func newDB(ctx context.Context, opts *RootOptions) (*chemdb.DB, error) {
	if opts.Tables == "" {
		return chemdb.New()
	}
	store, err := chemdb.OpenStore(opts.Tables)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return chemdb.NewWithStore(ctx, store)
}
