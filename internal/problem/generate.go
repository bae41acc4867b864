package problem

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// template is one exercise shape: which reagents react, which one the
// student is given and which product they must find.
type template struct {
	reaction string
	given    string
	target   string
}

var templates = []template{
	{"Zn + HCl", "Zn", "ZnCl2"},
	{"NaOH + HCl", "NaOH", "NaCl"},
	{"Fe + O2", "Fe", "Fe2O3"},
	{"AgNO3 + NaCl", "AgNO3", "AgCl"},
	{"CaCO3", "CaCO3", "CaO"},
}

// Exercise is a generated problem with its worked answers.
type Exercise struct {
	Problem *Problem
	Answers []Answer
}

// Generator produces randomized mass-to-mass exercises.
type Generator struct {
	solver *Solver
	rng    *rand.Rand
}

// NewGenerator builds a generator. The seed makes a run reproducible.
func NewGenerator(solver *Solver, seed int64) *Generator {
	return &Generator{solver: solver, rng: rand.New(rand.NewSource(seed))}
}

// Generate picks a template and a given mass, solves the problem and
// returns it with the answers. Each exercise carries a UUID.
func (g *Generator) Generate() (*Exercise, error) {
	tpl := templates[g.rng.Intn(len(templates))]
	mass := math.Round((5+g.rng.Float64()*45)*10) / 10

	p := &Problem{
		ID:       uuid.NewString(),
		Reaction: tpl.reaction,
		Givens: []Datum{
			{Symbol: "m", Formulas: []string{tpl.given}, Value: mass, Unit: "g"},
		},
		Targets: []Datum{
			{Symbol: "m", Formulas: []string{tpl.target}, Unit: "g"},
		},
	}

	answers, err := g.solver.Solve(p)
	if err != nil {
		return nil, err
	}
	for i := range p.Targets {
		p.Targets[i].Value = answers[i].Value
	}
	return &Exercise{Problem: p, Answers: answers}, nil
}
