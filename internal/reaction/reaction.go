package reaction

import (
	"strconv"
	"strings"

	"minichem/internal/balance"
	"minichem/internal/formula"
	"minichem/internal/predict"
	"minichem/internal/substance"
)

// Reaction holds the two sides of a chemical reaction. The category
// is known when the products came from a predictor and empty
// otherwise. Coefficients are computed lazily by Coefficients.
type Reaction struct {
	reagents []substance.Particle
	products []substance.Particle
	category predict.Category

	coeffs []int
}

// New builds a reaction from explicit sides.
func New(reagents, products []substance.Particle) (*Reaction, error) {
	if len(reagents) == 0 || len(products) == 0 {
		return nil, &SchemeError{Scheme: render(reagents, nil) + " -> " + render(products, nil), Reason: "both sides need at least one substance"}
	}
	return &Reaction{
		reagents: append([]substance.Particle{}, reagents...),
		products: append([]substance.Particle{}, products...),
	}, nil
}

// FromReagents predicts the products and builds the reaction.
func FromReagents(p *predict.Predictor, reagents ...substance.Particle) (*Reaction, error) {
	prediction, err := p.Predict(reagents...)
	if err != nil {
		return nil, err
	}
	r, err := New(reagents, prediction.Products)
	if err != nil {
		return nil, err
	}
	r.category = prediction.Category
	return r, nil
}

// ParseScheme parses "A + B -> C + D" with a formula parser. The "="
// separator is accepted too. Coefficients in the input are rejected:
// a scheme names substances, balancing supplies the numbers.
func ParseScheme(parser *formula.Parser, scheme string) (*Reaction, error) {
	left, right, found := strings.Cut(scheme, "->")
	if !found {
		left, right, found = strings.Cut(scheme, "=")
	}
	if !found {
		return nil, &SchemeError{Scheme: scheme, Reason: "no -> or = separator"}
	}

	reagents, err := parseSide(parser, scheme, left)
	if err != nil {
		return nil, err
	}
	products, err := parseSide(parser, scheme, right)
	if err != nil {
		return nil, err
	}
	return New(reagents, products)
}

func parseSide(parser *formula.Parser, scheme, side string) ([]substance.Particle, error) {
	var out []substance.Particle
	for _, token := range strings.Split(side, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &SchemeError{Scheme: scheme, Reason: "empty substance"}
		}
		if token[0] >= '0' && token[0] <= '9' {
			return nil, &SchemeError{Scheme: scheme, Reason: "schemes carry no coefficients"}
		}
		p, err := parser.Parse(token)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Reagents returns the left side.
func (r *Reaction) Reagents() []substance.Particle { return r.reagents }

// Products returns the right side.
func (r *Reaction) Products() []substance.Particle { return r.products }

// Category returns the predicted reaction category, or the empty
// string when the reaction was built from explicit sides.
func (r *Reaction) Category() predict.Category { return r.category }

// Coefficients balances the reaction and returns the coefficient of
// every participant, reagents then products. The result is remembered.
func (r *Reaction) Coefficients() ([]int, error) {
	if r.coeffs == nil {
		coeffs, err := balance.Coefficients(r.reagents, r.products)
		if err != nil {
			return nil, err
		}
		r.coeffs = coeffs
	}
	return r.coeffs, nil
}

// CoefficientOf balances the reaction and returns the coefficient of
// the given participant.
func (r *Reaction) CoefficientOf(p substance.Particle) (int, error) {
	coeffs, err := r.Coefficients()
	if err != nil {
		return 0, err
	}
	for i, candidate := range append(append([]substance.Particle{}, r.reagents...), r.products...) {
		if substance.Same(candidate, p) {
			return coeffs[i], nil
		}
	}
	return 0, &NotParticipantError{Formula: p.Formula()}
}

// Scheme renders the reaction without coefficients.
func (r *Reaction) Scheme() string {
	return render(r.reagents, nil) + " -> " + render(r.products, nil)
}

// Equation balances the reaction and renders it with coefficients,
// omitting ones.
func (r *Reaction) Equation() (string, error) {
	coeffs, err := r.Coefficients()
	if err != nil {
		return "", err
	}
	return render(r.reagents, coeffs[:len(r.reagents)]) + " -> " + render(r.products, coeffs[len(r.reagents):]), nil
}

func render(side []substance.Particle, coeffs []int) string {
	var b strings.Builder
	for i, p := range side {
		if i > 0 {
			b.WriteString(" + ")
		}
		if coeffs != nil && coeffs[i] != 1 {
			b.WriteString(strconv.Itoa(coeffs[i]))
		}
		b.WriteString(p.Formula())
	}
	return b.String()
}
