package chemdb

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// halfReactionsCSV holds the reduction half reactions of the school
// set with their standard electrode potentials in volts. Schemes are
// coefficient-free, balancing restores the electron count.
//
//go:embed halfreactions.csv
var halfReactionsCSV []byte

// HalfReactionRow is one reduction half reaction: the oxidized form,
// the electron, and the reduced form, with its standard potential.
type HalfReactionRow struct {
	Scheme    string
	Potential float64
}

// MatchSide selects which side of a half reaction Match inspects.
type MatchSide int

const (
	SideAny MatchSide = iota
	SideReagents
	SideProducts
)

// HalfReactionTable is the potentials-backed half reaction lookup.
// Schemes are stored as written, lookups ignore whitespace.
type HalfReactionTable struct {
	rows     []HalfReactionRow
	byScheme map[string]int
}

// NewHalfReactionTable loads the embedded potentials table.
func NewHalfReactionTable() (*HalfReactionTable, error) {
	r := csv.NewReader(bytes.NewReader(halfReactionsCSV))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("chemdb: parse half reaction table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("chemdb: half reaction table is empty")
	}

	t := &HalfReactionTable{byScheme: make(map[string]int, len(records)-1)}
	for _, rec := range records[1:] {
		if len(rec) != 2 {
			return nil, fmt.Errorf("chemdb: half reaction row %v: want 2 columns", rec)
		}
		potential, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("chemdb: half reaction %q: bad potential %q", rec[0], rec[1])
		}
		key := schemeKey(rec[0])
		if _, ok := t.byScheme[key]; ok {
			return nil, fmt.Errorf("chemdb: duplicate half reaction %q", rec[0])
		}
		t.byScheme[key] = len(t.rows)
		t.rows = append(t.rows, HalfReactionRow{Scheme: rec[0], Potential: potential})
	}
	return t, nil
}

// Rows returns every half reaction in table order.
func (t *HalfReactionTable) Rows() []HalfReactionRow {
	return append([]HalfReactionRow(nil), t.rows...)
}

// Potential returns the standard potential of the scheme in volts.
func (t *HalfReactionTable) Potential(scheme string) (float64, error) {
	i, ok := t.byScheme[schemeKey(scheme)]
	if !ok {
		return 0, notFound(KindHalfReaction, scheme)
	}
	return t.rows[i].Potential, nil
}

// Contains reports whether the scheme is in the table.
func (t *HalfReactionTable) Contains(scheme string) bool {
	_, ok := t.byScheme[schemeKey(scheme)]
	return ok
}

// Match returns the half reactions in which the formula appears as a
// standalone species on the given side.
func (t *HalfReactionTable) Match(formula string, side MatchSide) []HalfReactionRow {
	want := strings.ReplaceAll(formula, " ", "")
	var out []HalfReactionRow
	for _, row := range t.rows {
		reagents, products := schemeSides(row.Scheme)
		switch side {
		case SideReagents:
			if containsToken(reagents, want) {
				out = append(out, row)
			}
		case SideProducts:
			if containsToken(products, want) {
				out = append(out, row)
			}
		default:
			if containsToken(reagents, want) || containsToken(products, want) {
				out = append(out, row)
			}
		}
	}
	return out
}

// MostPositive returns the scheme with the highest potential among
// the given ones. Of a reduction and an oxidation pair, this is the
// one that runs as the reduction.
func (t *HalfReactionTable) MostPositive(schemes ...string) (HalfReactionRow, error) {
	return t.extreme(schemes, func(a, b float64) bool { return a > b })
}

// MostNegative returns the scheme with the lowest potential among the
// given ones.
func (t *HalfReactionTable) MostNegative(schemes ...string) (HalfReactionRow, error) {
	return t.extreme(schemes, func(a, b float64) bool { return a < b })
}

func (t *HalfReactionTable) extreme(schemes []string, better func(a, b float64) bool) (HalfReactionRow, error) {
	var best HalfReactionRow
	found := false
	for _, s := range schemes {
		i, ok := t.byScheme[schemeKey(s)]
		if !ok {
			return HalfReactionRow{}, notFound(KindHalfReaction, s)
		}
		if !found || better(t.rows[i].Potential, best.Potential) {
			best = t.rows[i]
			found = true
		}
	}
	if !found {
		return HalfReactionRow{}, notFound(KindHalfReaction, "no schemes given")
	}
	return best, nil
}

// schemeKey normalizes a scheme for lookup: whitespace is
// insignificant and "=" separates the same as "->".
func schemeKey(scheme string) string {
	s := strings.ReplaceAll(scheme, " ", "")
	return strings.ReplaceAll(s, "=", "->")
}

// schemeSides splits a scheme into reagent and product formula lists.
func schemeSides(scheme string) ([]string, []string) {
	key := schemeKey(scheme)
	lhs, rhs, _ := strings.Cut(key, "->")
	return strings.Split(lhs, "+"), strings.Split(rhs, "+")
}

func containsToken(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}
	}
	return false
}
