package chemdb

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"minichem/internal/ptable"
)

// solubilityCSV is the grid of common school substances. The rest of
// the table is generated from periodic table patterns, see
// generatedRecords.
//
//go:embed solubility.csv
var solubilityCSV []byte

// generatedRecords derives the ion registry from the periodic table.
// The table doubles as the database of known ions, so every plausible
// monatomic ion needs at least one substance row:
//
//   - metal cations pair with nitrate, because all nitrates dissolve;
//     states above +4 are skipped, metals at those states exist only
//     inside oxoanions (MnO4, Cr2O7), never as bare cations;
//   - nonmetal cations pair with the oxide ion, solubility unknown;
//   - nonmetal anions pair with the proton: common acid formers
//     dissolve, silicon and germanium compounds react with water,
//     the rest has no data.
//
// A handful of rare polyatomic anions is appended the same way.
func generatedRecords() []Record {
	// Bare cations top out at +4; higher states occur only inside
	// oxoanions.
	const maxCationCharge = 4

	var out []Record

	for _, metal := range ptable.Metals {
		for _, st := range metal.OxidationStates() {
			if st == 0 || st > maxCationCharge {
				continue
			}
			out = append(out, Record{metal.Symbol, st, "NO3", -1, Soluble})
		}
	}
	out = append(out, Record{"H", 1, "NO3", -1, Soluble})

	for _, el := range ptable.Table {
		if el.IsMetal() {
			continue
		}
		switch {
		case el.Equal(ptable.F):
			out = append(out, Record{"H", 1, "F", -1, Soluble})
		case el.Equal(ptable.O):
			// Present on the anion side of every oxide row already.
		default:
			for _, st := range el.OxidationStates() {
				switch {
				case st > 0:
					out = append(out, Record{el.Symbol, st, "O", -2, NoData})
				case st < 0:
					out = append(out, Record{"H", 1, el.Symbol, st, anionWithHydrogen(el)})
				}
			}
		}
	}

	// Nitrogen's +4 state falls outside the group pattern, but NO2
	// is a regular nitrate decomposition product.
	out = append(out, Record{"N", 4, "O", -2, NoData})

	for _, ra := range rareAnions {
		out = append(out, Record{"H", 1, ra.formula, ra.charge, ra.solubility})
	}
	return out
}

// anionWithHydrogen classifies the compound of a nonmetal anion with
// hydrogen: halogens and the common acid formers give soluble acids,
// silicon and germanium compounds hydrolyze, the rest is unknown.
func anionWithHydrogen(el ptable.Element) Solubility {
	switch el {
	case ptable.F, ptable.Cl, ptable.Br, ptable.I, ptable.At,
		ptable.S, ptable.P, ptable.C, ptable.N:
		return Soluble
	case ptable.Si, ptable.Ge:
		return ReactsWithWater
	}
	return NoData
}

// rareAnions are polyatomic anions absent from the school grid but
// still worth registering. Their acids are soluble except for the
// silicic one.
var rareAnions = []struct {
	formula    string
	charge     int
	solubility Solubility
}{
	{"NO2", -1, Soluble},
	{"ClO", -1, Soluble},
	{"ClO2", -1, Soluble},
	{"ClO3", -1, Soluble},
	{"ClO4", -1, Soluble},
	{"BrO", -1, Soluble},
	{"BrO2", -1, Soluble},
	{"BrO3", -1, Soluble},
	{"BrO4", -1, Soluble},
	{"IO", -1, Soluble},
	{"IO2", -1, Soluble},
	{"IO3", -1, Soluble},
	{"IO4", -1, Soluble},
	{"SiO3", -2, Insoluble},
	{"HSO3", -1, Soluble},
	{"HPO4", -2, Soluble},
	{"H2PO4", -1, Soluble},
	{"C2O4", -2, Soluble},
	{"AsO4", -3, Soluble},
	{"AsO3", -3, Soluble},
	{"HAsO4", -2, Soluble},
	{"H2AsO4", -1, Soluble},
	{"SeO4", -2, Soluble},
	{"HSeO4", -1, Soluble},
	{"HPO3", -2, Soluble},
	{"P2O7", -4, Soluble},
	{"S2O7", -2, Soluble},
	{"Cr2O7", -2, Soluble},
	{"IO6", -5, Soluble},
	{"MnO4", -1, Soluble},
	{"MnO4", -2, Soluble},
}

// parseGrid decodes the embedded CSV. The header names the columns
// cation, cation_charge, anion, anion_charge, solubility.
func parseGrid(data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("chemdb: parse solubility grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("chemdb: solubility grid is empty")
	}

	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 5 {
			return nil, fmt.Errorf("chemdb: solubility grid row %v: want 5 columns", row)
		}
		cc, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("chemdb: cation charge %q: %w", row[1], err)
		}
		ac, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("chemdb: anion charge %q: %w", row[3], err)
		}
		s := Solubility(row[4])
		if !s.Valid() {
			return nil, fmt.Errorf("chemdb: unknown solubility marker %q", row[4])
		}
		out = append(out, Record{row[0], cc, row[2], ac, s})
	}
	return out, nil
}
