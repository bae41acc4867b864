package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minichem/internal/chemdb"
	"minichem/internal/formula"
)

// TableRecord is one overlay entry in the tables payload.
type TableRecord struct {
	Cation       string `json:"cation"`
	CationCharge int    `json:"cation_charge"`
	Anion        string `json:"anion"`
	AnionCharge  int    `json:"anion_charge"`
	Solubility   string `json:"solubility"`
}

// NewTablesCommand creates the tables command group.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage the solubility overlay",
		Long: `Manage user substances in the solubility overlay database.

Overlay entries are merged into the built-in solubility table after
loading, so they can add substances but never override built-in ones.
All subcommands need the --tables flag.`,
	}

	cmd.AddCommand(newTablesListCommand(rootOpts))
	cmd.AddCommand(newTablesAddCommand(rootOpts))
	cmd.AddCommand(newTablesRemoveCommand(rootOpts))

	return cmd
}

func newTablesListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List overlay substances",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			store, err := openOverlay(formatter, rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Records(cmd.Context())
			if err != nil {
				return formatter.Error(ExitCommandError, CodeIO, err.Error())
			}

			if formatter.JSON() {
				out := make([]TableRecord, len(records))
				for i, r := range records {
					out[i] = TableRecord{
						Cation:       r.Cation,
						CationCharge: r.CationCharge,
						Anion:        r.Anion,
						AnionCharge:  r.AnionCharge,
						Solubility:   string(r.Solubility),
					}
				}
				return formatter.Success(out)
			}

			if len(records) == 0 {
				return formatter.Success("no overlay substances")
			}
			var b strings.Builder
			for i, r := range records {
				if i > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "%s(%d) %s(%d)  %s", r.Cation, r.CationCharge, r.Anion, r.AnionCharge, r.Solubility)
			}
			return formatter.Success(b.String())
		},
	}
}

func newTablesAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <cation(charge)> <anion(charge)> <SL|SS|NS|RW|ND>",
		Short: "Add an overlay substance",
		Long: `Add a substance to the overlay, e.g.

  minichem tables --tables my.db add 'Ag(1)' 'Br(-1)' NS

Adding an existing cation/anion pair updates its solubility.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			record, err := parseOverlayRecord(args)
			if err != nil {
				return formatter.Error(ExitCommandError, CodeParse, err.Error())
			}

			store, err := openOverlay(formatter, rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Add(cmd.Context(), record); err != nil {
				return formatter.Error(ExitCommandError, CodeIO, err.Error())
			}
			return formatter.Success(fmt.Sprintf("added %s(%d) %s(%d) as %s",
				record.Cation, record.CationCharge, record.Anion, record.AnionCharge, record.Solubility))
		},
	}
}

func newTablesRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <cation(charge)> <anion(charge)>",
		Short:         "Remove an overlay substance",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			cation, cationCharge, err := formula.SplitIonString(args[0])
			if err != nil {
				return formatter.Error(ExitCommandError, CodeParse, err.Error())
			}
			anion, anionCharge, err := formula.SplitIonString(args[1])
			if err != nil {
				return formatter.Error(ExitCommandError, CodeParse, err.Error())
			}

			store, err := openOverlay(formatter, rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Remove(cmd.Context(), cation, cationCharge, anion, anionCharge); err != nil {
				return formatter.Error(ExitCommandError, CodeIO, err.Error())
			}
			return formatter.Success(fmt.Sprintf("removed %s(%d) %s(%d)", cation, cationCharge, anion, anionCharge))
		},
	}
}

func openOverlay(formatter *OutputFormatter, opts *RootOptions) (*chemdb.Store, error) {
	if opts.Tables == "" {
		return nil, formatter.Error(ExitCommandError, CodeIO, "the tables command needs --tables <path>")
	}
	store, err := chemdb.OpenStore(opts.Tables)
	if err != nil {
		return nil, formatter.Error(ExitCommandError, CodeIO, err.Error())
	}
	return store, nil
}

func parseOverlayRecord(args []string) (chemdb.Record, error) {
	cation, cationCharge, err := formula.SplitIonString(args[0])
	if err != nil {
		return chemdb.Record{}, err
	}
	anion, anionCharge, err := formula.SplitIonString(args[1])
	if err != nil {
		return chemdb.Record{}, err
	}
	solubility := chemdb.Solubility(args[2])
	if !solubility.Valid() {
		return chemdb.Record{}, fmt.Errorf("unknown solubility marker %q", args[2])
	}
	return chemdb.Record{
		Cation:       cation,
		CationCharge: cationCharge,
		Anion:        anion,
		AnionCharge:  anionCharge,
		Solubility:   solubility,
	}, nil
}
