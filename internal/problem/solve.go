package problem

import (
	"strings"

	"minichem/internal/chemdb"
	"minichem/internal/formula"
	"minichem/internal/mechanism"
	"minichem/internal/predict"
	"minichem/internal/reaction"
	"minichem/internal/stoich"
	"minichem/internal/substance"
)

// Solver resolves a problem into numeric answers. Single-seed and
// limiting-reagent problems go through the same path: the calculator
// caps the yield at the scarcest seed.
type Solver struct {
	parser    *formula.Parser
	predictor *predict.Predictor
}

// NewSolver builds a solver over the reference tables.
func NewSolver(db *chemdb.DB) (*Solver, error) {
	set, err := mechanism.NewSet(db)
	if err != nil {
		return nil, err
	}
	return &Solver{
		parser:    formula.NewParser(db),
		predictor: predict.New(set, predict.Molecular),
	}, nil
}

// Answer is one computed target value.
type Answer struct {
	Symbol  string
	Formula string
	Value   float64
	Unit    string
}

// Solve builds the reaction, derives the seeds from the givens and
// computes every target.
func (s *Solver) Solve(p *Problem) ([]Answer, error) {
	r, err := s.buildReaction(p.Reaction)
	if err != nil {
		return nil, err
	}
	participants := append(append([]substance.Particle{}, r.Reagents()...), r.Products()...)
	calc := stoich.NewCalculator(r)

	var seeds []stoich.Quantity
	for _, g := range p.Givens {
		targets, err := s.resolve(g.Formulas, participants)
		if err != nil {
			return nil, err
		}
		for _, part := range targets {
			q, err := stoich.NewQuantity(part, g.Value, g.Unit)
			if err != nil {
				return nil, err
			}
			seeds = append(seeds, q)
		}
	}

	var answers []Answer
	for _, t := range p.Targets {
		targets, err := s.resolve(t.Formulas, participants)
		if err != nil {
			return nil, err
		}
		for _, part := range targets {
			q, err := calc.Amount(part, t.Unit, seeds...)
			if err != nil {
				return nil, err
			}
			v, err := q.Value(t.Unit)
			if err != nil {
				return nil, err
			}
			answers = append(answers, Answer{
				Symbol:  t.Symbol,
				Formula: part.Formula(),
				Value:   v,
				Unit:    t.Unit,
			})
		}
	}
	return answers, nil
}

// buildReaction parses a full scheme, or predicts the products of
// bare reagents.
func (s *Solver) buildReaction(scheme string) (*reaction.Reaction, error) {
	if strings.Contains(scheme, "->") || strings.Contains(scheme, "=") {
		return reaction.ParseScheme(s.parser, scheme)
	}
	var reagents []substance.Particle
	for _, token := range strings.Split(scheme, "+") {
		p, err := s.parser.Parse(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		reagents = append(reagents, p)
	}
	return reaction.FromReagents(s.predictor, reagents...)
}

// resolve maps datum formulas onto particles; an empty list means
// every participant.
func (s *Solver) resolve(formulas []string, participants []substance.Particle) ([]substance.Particle, error) {
	if len(formulas) == 0 {
		return participants, nil
	}
	out := make([]substance.Particle, len(formulas))
	for i, f := range formulas {
		p, err := s.parser.Parse(f)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
