package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minichem/internal/chemdb"
	"minichem/internal/formula"
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

// ElementInfo is the info payload for an element symbol.
type ElementInfo struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	AtomicNumber int     `json:"atomic_number"`
	Period       int     `json:"period"`
	Group        string  `json:"group"`
	MolarMass    float64 `json:"molar_mass"`
	REN          float64 `json:"ren,omitempty"`
	Metal        bool    `json:"metal"`
	Activity     string  `json:"activity,omitempty"`
	Radioactive  bool    `json:"radioactive,omitempty"`
}

// SubstanceInfo is the info payload for a chemical formula.
type SubstanceInfo struct {
	Formula    string  `json:"formula"`
	Class      string  `json:"class,omitempty"`
	Subclass   string  `json:"subclass,omitempty"`
	MolarMass  float64 `json:"molar_mass"`
	Charge     int     `json:"charge,omitempty"`
	Solubility string  `json:"solubility,omitempty"`
	Gas        bool    `json:"gas,omitempty"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <symbol-or-formula>",
		Short: "Show element or substance properties",
		Long: `Show the properties of an element symbol or a chemical formula.

An argument that is a bare element symbol (Na, Cl) describes the
element; anything else is parsed as a substance (H2SO4, SO4(-2)).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}
}

func runInfo(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if el, err := ptable.BySymbol(arg); err == nil {
		return elementInfo(formatter, el)
	}

	db, err := newDB(cmd.Context(), opts)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeIO, err.Error())
	}
	p, err := formula.NewParser(db).Parse(arg)
	if err != nil {
		return formatter.Error(ExitCommandError, CodeParse, err.Error())
	}
	return substanceInfo(formatter, db, p)
}

func elementInfo(formatter *OutputFormatter, el ptable.Element) error {
	info := ElementInfo{
		Symbol:       el.Symbol,
		Name:         el.Name,
		AtomicNumber: el.AtomicNumber,
		Period:       el.Period,
		Group:        el.Group,
		MolarMass:    el.MolarMass,
		Metal:        el.IsMetal(),
		Radioactive:  el.Radioactive,
	}
	if el.REN > 0 {
		info.REN = el.REN
	}
	if activity, err := chemdb.NewActivitySeries().Activity(el); err == nil {
		info.Activity = string(activity)
	}

	if formatter.JSON() {
		return formatter.Success(info)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s), element %d, period %d, group %s\n", info.Name, info.Symbol, info.AtomicNumber, info.Period, info.Group)
	fmt.Fprintf(&b, "molar mass: %g g/mol", info.MolarMass)
	if info.REN > 0 {
		fmt.Fprintf(&b, "\nelectronegativity: %g", info.REN)
	}
	if info.Metal {
		b.WriteString("\nmetal")
		if info.Activity != "" {
			fmt.Fprintf(&b, ", %s", info.Activity)
		}
	} else {
		b.WriteString("\nnonmetal")
	}
	if info.Radioactive {
		b.WriteString("\nradioactive")
	}
	return formatter.Success(b.String())
}

func substanceInfo(formatter *OutputFormatter, db *chemdb.DB, p substance.Particle) error {
	info := SubstanceInfo{
		Formula:   p.Formula(),
		MolarMass: p.MolarMass(),
		Charge:    p.Charge(),
		Gas:       substance.IsGas(p),
	}

	switch v := p.(type) {
	case substance.Simple:
		info.Class = string(v.Class())
	case substance.Molecule:
		info.Class = string(v.Class())
		info.Subclass = string(v.Subclass())
		if solubility, err := db.SolubilityOf(v); err == nil {
			info.Solubility = solubilityWord(solubility)
		}
	}

	if formatter.JSON() {
		return formatter.Success(info)
	}

	var b strings.Builder
	b.WriteString(info.Formula)
	if info.Class != "" {
		fmt.Fprintf(&b, ", %s", info.Class)
	}
	if info.Subclass != "" && info.Subclass != info.Class {
		fmt.Fprintf(&b, " (%s)", info.Subclass)
	}
	fmt.Fprintf(&b, "\nmolar mass: %g g/mol", info.MolarMass)
	if info.Charge != 0 {
		fmt.Fprintf(&b, "\ncharge: %+d", info.Charge)
	}
	if info.Solubility != "" {
		fmt.Fprintf(&b, "\nsolubility: %s", info.Solubility)
	}
	if info.Gas {
		b.WriteString("\ngas at normal conditions")
	}
	return formatter.Success(b.String())
}

func solubilityWord(s chemdb.Solubility) string {
	switch s {
	case chemdb.Soluble:
		return "soluble"
	case chemdb.SlightlySoluble:
		return "slightly soluble"
	case chemdb.Insoluble:
		return "insoluble"
	case chemdb.ReactsWithWater:
		return "reacts with water"
	}
	return "no data"
}
