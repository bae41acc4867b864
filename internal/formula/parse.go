package formula

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"minichem/internal/chemdb"
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

// Parser resolves formulas against the reference database.
type Parser struct {
	db *chemdb.DB
}

// NewParser returns a parser backed by db.
func NewParser(db *chemdb.DB) *Parser {
	return &Parser{db: db}
}

// Parse resolves a formula into the particle it denotes. Formulas
// ending in a charge parenthesis are ions or ion groups, the rest are
// simples or molecules depending on their element count.
func (p *Parser) Parse(s string) (substance.Particle, error) {
	s = normalize(s)
	if s == "" {
		return nil, parseErrorf(s, nil, "empty formula")
	}
	if strings.HasSuffix(s, ")") && hasChargeSuffix(s) {
		return p.ParseIon(s)
	}

	parts, err := substance.ParseParts(s)
	if err != nil {
		return nil, parseErrorf(s, err, "invalid formula")
	}
	if len(parts) == 1 {
		return p.parseSimpleParts(s, parts)
	}
	return p.ParseMolecule(s)
}

// ParseSimple parses the formula of a simple substance like "Fe" or
// "O2".
func (p *Parser) ParseSimple(s string) (substance.Simple, error) {
	s = normalize(s)
	parts, err := substance.ParseParts(s)
	if err != nil {
		return substance.Simple{}, parseErrorf(s, err, "invalid formula")
	}
	return p.parseSimpleParts(s, parts)
}

func (p *Parser) parseSimpleParts(s string, parts []substance.ElementCount) (substance.Simple, error) {
	if len(parts) != 1 {
		return substance.Simple{}, parseErrorf(s, nil, "a simple substance consists of one element, got %d", len(parts))
	}
	return substance.NewSimple(parts[0].Element, parts[0].Count), nil
}

// ParseMolecule parses the formula of a two-ion compound. The leading
// element determines the cation candidates; the remainder is matched
// against the registered anions by element ratios. Every candidate
// pair is rendered back and compared to the input, so only the
// actually written substance is accepted.
func (p *Parser) ParseMolecule(s string) (substance.Molecule, error) {
	s = normalize(s)

	first, rest, err := splitFirstElement(s)
	if err != nil {
		return substance.Molecule{}, err
	}
	if rest == "" {
		return substance.Molecule{}, parseErrorf(s, nil, "a molecule needs at least two elements")
	}

	anion, err := p.matchAnion(s, rest)
	if err != nil {
		return substance.Molecule{}, err
	}
	cations, err := p.cationCandidates(s, first)
	if err != nil {
		return substance.Molecule{}, err
	}

	for _, cation := range cations {
		m, err := substance.NewMolecule(cation, anion)
		if err != nil {
			continue
		}
		if m.Formula() == s {
			return m, nil
		}
	}
	return substance.Molecule{}, parseErrorf(s, nil, "no registered substance renders to this formula")
}

// ParseIon parses "X(n)" notation into an Ion or, for partially
// dissociated acids and bases, an IonGroup.
func (p *Parser) ParseIon(s string) (substance.Particle, error) {
	s = normalize(s)

	bare, charge, err := SplitIonString(s)
	if err != nil {
		return nil, err
	}
	parts, err := substance.ParseParts(bare)
	if err != nil {
		return nil, parseErrorf(s, err, "invalid ion formula")
	}

	if len(parts) == 1 {
		i, err := substance.NewIon(parts, charge)
		if err != nil {
			return nil, parseErrorf(s, err, "invalid ion")
		}
		if !p.db.HasIon(i) {
			return nil, parseErrorf(s, nil, "unknown ion")
		}
		return i, nil
	}

	// Polyatomic: either a registered anion like SO4(-2), or an acid
	// or base group caught mid-dissociation.
	if g, err := p.parseIonGroup(s, bare, charge); err == nil {
		return g, nil
	}

	i, err := substance.NewIon(parts, charge)
	if err != nil {
		return nil, parseErrorf(s, err, "invalid ion")
	}
	if !p.db.HasIon(i) {
		return nil, parseErrorf(s, nil, "unknown ion; note that only acids and bases dissociate stepwise")
	}
	return i, nil
}

// parseIonGroup tries to read the bare formula as a partially
// dissociated acid (leading protons) or base (trailing hydroxides).
func (p *Parser) parseIonGroup(s, bare string, charge int) (substance.Particle, error) {
	first, rest, err := splitFirstElement(bare)
	if err != nil || rest == "" {
		return nil, parseErrorf(s, err, "not an ion group")
	}

	if first == "H" {
		anion, err := p.matchAnion(s, rest)
		if err != nil {
			return nil, err
		}
		return p.fromCharge(s, anion, charge)
	}

	anion, err := p.matchAnion(s, rest)
	if err != nil || !anion.Equal(substance.Hydroxide) {
		return nil, parseErrorf(s, err, "not an ion group")
	}
	cations, err := p.cationCandidates(s, first)
	if err != nil {
		return nil, err
	}
	// Try the candidates from the highest charge down; the rendered
	// formula check in fromCharge picks the right one.
	for i := len(cations) - 1; i >= 0; i-- {
		g, err := p.fromCharge(s, cations[i], charge)
		if err == nil {
			return g, nil
		}
	}
	return nil, parseErrorf(s, nil, "no cation charge fits this ion group")
}

// fromCharge walks an ion toward the target charge by attaching
// complementary ions one at a time, then verifies the result renders
// back to the input.
func (p *Parser) fromCharge(s string, i substance.Ion, charge int) (substance.Particle, error) {
	if charge == 0 || sign(charge) != sign(i.Charge()) || abs(charge) > abs(i.Charge()) {
		return nil, parseErrorf(s, nil, "charge %d is out of reach for %s", charge, i.Formula())
	}

	var cur substance.Particle = i
	for abs(cur.Charge()) > abs(charge) {
		next, err := substance.AddGroup(cur)
		if err != nil {
			return nil, parseErrorf(s, err, "cannot build ion group")
		}
		cur = next
	}
	if cur.Charge() != charge || cur.Formula() != s {
		return nil, parseErrorf(s, nil, "no species with charge %d renders to this formula", charge)
	}
	return cur, nil
}

// cationCandidates returns the registered cations of the element in
// ascending charge order.
func (p *Parser) cationCandidates(s, symbol string) ([]substance.Ion, error) {
	el, err := ptable.BySymbol(symbol)
	if err != nil {
		return nil, parseErrorf(s, err, "unknown element %q", symbol)
	}
	var out []substance.Ion
	for _, charge := range p.db.ChargesFor(symbol) {
		if charge > 0 {
			out = append(out, substance.MonatomicIon(el, 1, charge))
		}
	}
	if len(out) == 0 {
		return nil, parseErrorf(s, nil, "no registered cations for %s", symbol)
	}
	return out, nil
}

// matchAnion finds the registered anion whose element ratios equal
// those of the formula remainder. Ratios make the match index-blind:
// "(SO4)3" and "SO4" both resolve to the sulfate ion.
func (p *Parser) matchAnion(s, rest string) (substance.Ion, error) {
	parts, err := substance.ParseParts(rest)
	if err != nil {
		return substance.Ion{}, parseErrorf(s, err, "invalid anion part %q", rest)
	}
	want := indexRatios(parts)

	anions, err := p.db.Anions()
	if err != nil {
		return substance.Ion{}, parseErrorf(s, err, "loading anions")
	}
	for _, anion := range anions {
		if ratiosEqual(want, indexRatios(anion.Parts())) {
			return anion, nil
		}
	}
	return substance.Ion{}, parseErrorf(s, nil, "no registered anion matches %q", rest)
}

// indexRatios maps each element to its count divided by the largest
// count, rounded to two decimals.
func indexRatios(parts []substance.ElementCount) map[ptable.Element]float64 {
	maxCount := 0
	for _, p := range parts {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}
	out := make(map[ptable.Element]float64, len(parts))
	for _, p := range parts {
		out[p.Element] = math.Round(float64(p.Count)/float64(maxCount)*100) / 100
	}
	return out
}

func ratiosEqual(a, b map[ptable.Element]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for el, r := range a {
		if math.Abs(b[el]-r) > 1e-9 {
			return false
		}
	}
	return true
}

// SplitIonString splits "SO4(-2)" into "SO4" and -2. A leading plus
// sign on the charge is accepted and discarded.
func SplitIonString(s string) (string, int, error) {
	s = normalize(s)
	open := strings.LastIndex(s, "(")
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", 0, parseErrorf(s, nil, "an ion formula ends with the charge in parentheses, e.g. Na(1)")
	}
	charge, err := strconv.Atoi(strings.TrimPrefix(s[open+1:len(s)-1], "+"))
	if err != nil {
		return "", 0, parseErrorf(s, err, "invalid charge")
	}
	return s[:open], charge, nil
}

// hasChargeSuffix reports whether the trailing parenthesis holds a
// signed integer rather than a composition group.
func hasChargeSuffix(s string) bool {
	open := strings.LastIndex(s, "(")
	if open < 0 {
		return false
	}
	inner := s[open+1 : len(s)-1]
	if inner == "" {
		return false
	}
	_, err := strconv.Atoi(strings.TrimPrefix(inner, "+"))
	return err == nil
}

// splitFirstElement cuts the leading element symbol and its index off
// a bare formula, returning the symbol and the remainder.
func splitFirstElement(s string) (string, string, error) {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return "", "", parseErrorf(s, nil, "formula must start with an element symbol")
	}
	i := 1
	for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		i++
	}
	symbol := s[:i]
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if _, err := ptable.BySymbol(symbol); err != nil {
		return "", "", parseErrorf(s, err, "unknown element %q", symbol)
	}
	return symbol, s[i:], nil
}

// normalize folds the input to NFKC and strips surrounding space, so
// full-width digits and compatibility characters parse like ASCII.
func normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Sorted formats a list of particles deterministically, useful for
// stable output of sets.
func Sorted(particles []substance.Particle) []string {
	out := make([]string, len(particles))
	for i, p := range particles {
		out[i] = p.Formula()
	}
	sort.Strings(out)
	return out
}
