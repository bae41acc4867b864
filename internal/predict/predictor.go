package predict

import (
	"minichem/internal/mechanism"
	"minichem/internal/substance"
)

// Category labels the reaction family a rule predicts.
type Category string

const (
	CategoryAddition       Category = "addition"
	CategoryDecomposition  Category = "decomposition"
	CategorySubstitution   Category = "substitution"
	CategoryExchange       Category = "exchange"
	CategoryNeutralization Category = "neutralization"
)

// Algorithm selects the rule list a Predictor works with.
type Algorithm string

const (
	Molecular Algorithm = "molecular"
	Ionic     Algorithm = "ionic"
)

type mechanismFunc func(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error)

type restriction struct {
	name  string
	check func(set *mechanism.Set, products []substance.Particle) (bool, error)
}

type rule struct {
	a, b     Kind
	category Category
	run      mechanismFunc
	restrict *restriction // nil means the reaction always proceeds
}

// matches reports whether the rule covers the unordered kind pair.
func (r rule) matches(a, b Kind) bool {
	return (r.a == a && r.b == b) || (r.a == b && r.b == a)
}

// Prediction is the outcome of a successful rule application.
type Prediction struct {
	Products []substance.Particle
	Category Category
}

// Predictor routes reagents through an ordered decision rule list.
type Predictor struct {
	set   *mechanism.Set
	class func(substance.Particle) (Kind, error)
	rules []rule
}

// New builds a predictor over the given mechanism set.
func New(set *mechanism.Set, algorithm Algorithm) *Predictor {
	p := &Predictor{set: set}
	switch algorithm {
	case Ionic:
		p.class = ionicClass
		p.rules = ionicRules()
	default:
		p.class = EffectiveClass
		p.rules = molecularRules()
	}
	return p
}

// Predict classifies the reagents, applies the first matching rule
// and checks its restriction. A vetoed reaction returns BlockedError
// alongside no products.
func (p *Predictor) Predict(reagents ...substance.Particle) (Prediction, error) {
	return p.predict(reagents, true)
}

// PredictUnchecked is Predict without the restriction check, for
// callers that want the hypothetical products of a blocked reaction.
func (p *Predictor) PredictUnchecked(reagents ...substance.Particle) (Prediction, error) {
	return p.predict(reagents, false)
}

func (p *Predictor) predict(reagents []substance.Particle, checked bool) (Prediction, error) {
	a, b, err := p.signature(reagents)
	if err != nil {
		return Prediction{}, err
	}

	for _, r := range p.rules {
		if !r.matches(a, b) {
			continue
		}
		products, err := r.run(p.set, reagents)
		if err != nil {
			return Prediction{}, err
		}
		if checked && r.restrict != nil {
			ok, err := r.restrict.check(p.set, products)
			if err != nil {
				return Prediction{}, err
			}
			if !ok {
				return Prediction{}, &BlockedError{
					Restriction: r.restrict.name,
					Products:    formulas(products),
				}
			}
		}
		return Prediction{Products: products, Category: r.category}, nil
	}
	return Prediction{}, &NoRuleError{Kinds: []string{string(a), string(b)}}
}

func (p *Predictor) signature(reagents []substance.Particle) (Kind, Kind, error) {
	switch len(reagents) {
	case 1:
		a, err := p.class(reagents[0])
		if err != nil {
			return "", "", err
		}
		return a, KindNone, nil
	case 2:
		a, err := p.class(reagents[0])
		if err != nil {
			return "", "", err
		}
		b, err := p.class(reagents[1])
		if err != nil {
			return "", "", err
		}
		return a, b, nil
	default:
		return "", "", &NoRuleError{Kinds: formulas(reagents)}
	}
}

func formulas(particles []substance.Particle) []string {
	out := make([]string, len(particles))
	for i, p := range particles {
		out[i] = p.Formula()
	}
	return out
}
