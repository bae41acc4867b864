package problem

import (
	"strconv"
	"strings"
)

// Datum is one data point of a problem: a variable symbol, the
// substances it applies to, a value and a unit. Empty Formulas means
// every participant of the reaction.
type Datum struct {
	Symbol   string   `yaml:"symbol"`
	Formulas []string `yaml:"formulas,omitempty"`
	Value    float64  `yaml:"value"`
	Unit     string   `yaml:"unit"`
}

// Problem is a stoichiometry exercise: a reaction (bare reagents or a
// full scheme), given data and the targets to compute. Target values
// are expected answers when present and ignored by the solver.
type Problem struct {
	ID       string  `yaml:"id,omitempty"`
	Reaction string  `yaml:"reaction"`
	Givens   []Datum `yaml:"given"`
	Targets  []Datum `yaml:"targets"`
}

// ParseText parses the textual problem grammar.
func ParseText(src string) (*Problem, error) {
	p := &Problem{}
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):

		case strings.HasPrefix(line, "r:") || strings.HasPrefix(line, "reaction:"):
			_, scheme, _ := strings.Cut(line, ":")
			scheme = strings.TrimSpace(scheme)
			if scheme == "" {
				return nil, &GrammarError{Line: line, Reason: "empty reaction"}
			}
			p.Reaction = scheme

		case strings.HasPrefix(line, "t:") || strings.HasPrefix(line, "target:"):
			_, rest, _ := strings.Cut(line, ":")
			d, err := parseDatum(rest)
			if err != nil {
				return nil, err
			}
			p.Targets = append(p.Targets, d)

		default:
			d, err := parseDatum(line)
			if err != nil {
				return nil, err
			}
			p.Givens = append(p.Givens, d)
		}
	}
	if p.Reaction == "" {
		return nil, &GrammarError{Line: src, Reason: "no reaction line"}
	}
	return p, nil
}

// parseDatum parses "C[ A; B ] = 0.25 M". Spaces are insignificant.
func parseDatum(line string) (Datum, error) {
	s := strings.ReplaceAll(line, " ", "")

	symbol, rest, found := strings.Cut(s, "[")
	if !found || symbol == "" {
		return Datum{}, &GrammarError{Line: line, Reason: "no variable symbol before ["}
	}
	inside, rest, found := strings.Cut(rest, "]")
	if !found {
		return Datum{}, &GrammarError{Line: line, Reason: "no closing ]"}
	}

	var formulas []string
	if inside != "" {
		formulas = strings.Split(inside, ";")
	}

	rest = strings.TrimPrefix(rest, "=")
	value, unitName, err := splitValueUnit(line, rest)
	if err != nil {
		return Datum{}, err
	}
	return Datum{Symbol: symbol, Formulas: formulas, Value: value, Unit: unitName}, nil
}

// splitValueUnit splits "0.25M" into the leading number and the unit
// name. Decimal commas are accepted.
func splitValueUnit(line, s string) (float64, string, error) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == ',') {
		i++
	}
	if i == 0 {
		return 0, "", &GrammarError{Line: line, Reason: "no numeric value"}
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(s[:i], ",", "."), 64)
	if err != nil {
		return 0, "", &GrammarError{Line: line, Reason: "bad numeric value"}
	}
	if i == len(s) {
		return 0, "", &GrammarError{Line: line, Reason: "no unit"}
	}
	return value, s[i:], nil
}
