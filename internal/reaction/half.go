package reaction

import (
	"strings"

	"minichem/internal/balance"
	"minichem/internal/chemdb"
	"minichem/internal/formula"
	"minichem/internal/substance"
)

// HalfReaction is one side of a redox pair: the oxidized and reduced
// forms of a species with the electrons transferred between them.
// Written as a reduction, electrons stand among the reagents.
type HalfReaction struct {
	reagents []substance.Particle
	products []substance.Particle

	coeffs []int
}

// NewHalfReaction builds a half reaction from explicit sides.
func NewHalfReaction(reagents, products []substance.Particle) (*HalfReaction, error) {
	if len(reagents) == 0 || len(products) == 0 {
		return nil, &SchemeError{
			Scheme: render(reagents, nil) + " -> " + render(products, nil),
			Reason: "both sides need at least one particle",
		}
	}
	return &HalfReaction{
		reagents: append([]substance.Particle{}, reagents...),
		products: append([]substance.Particle{}, products...),
	}, nil
}

// ParseHalfScheme parses "Zn(2) + e(-1) -> Zn". The grammar is the
// molecular scheme grammar plus the electron token e(-1); ions keep
// their charge suffixes.
func ParseHalfScheme(parser *formula.Parser, scheme string) (*HalfReaction, error) {
	left, right, found := strings.Cut(scheme, "->")
	if !found {
		left, right, found = strings.Cut(scheme, "=")
	}
	if !found {
		return nil, &SchemeError{Scheme: scheme, Reason: "no -> or = separator"}
	}

	reagents, err := parseHalfSide(parser, scheme, left)
	if err != nil {
		return nil, err
	}
	products, err := parseHalfSide(parser, scheme, right)
	if err != nil {
		return nil, err
	}
	return NewHalfReaction(reagents, products)
}

func parseHalfSide(parser *formula.Parser, scheme, side string) ([]substance.Particle, error) {
	var out []substance.Particle
	for _, token := range strings.Split(side, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &SchemeError{Scheme: scheme, Reason: "empty particle"}
		}
		if token[0] >= '0' && token[0] <= '9' {
			return nil, &SchemeError{Scheme: scheme, Reason: "schemes carry no coefficients"}
		}
		if token == substance.Electron.Formula() {
			out = append(out, substance.Electron)
			continue
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
func (h *HalfReaction) Reagents() []substance.Particle { return h.reagents }

// Products returns the right side.
func (h *HalfReaction) Products() []substance.Particle { return h.products }

// Coefficients balances the half reaction, conserving both atoms and
// charge, and returns the coefficients reagents first.
func (h *HalfReaction) Coefficients() ([]int, error) {
	if h.coeffs == nil {
		coeffs, err := balance.Coefficients(h.reagents, h.products)
		if err != nil {
			return nil, err
		}
		h.coeffs = coeffs
	}
	return h.coeffs, nil
}

// Electrons balances the half reaction and returns the number of
// electrons transferred.
func (h *HalfReaction) Electrons() (int, error) {
	coeffs, err := h.Coefficients()
	if err != nil {
		return 0, err
	}
	all := append(append([]substance.Particle{}, h.reagents...), h.products...)
	for i, p := range all {
		if substance.Same(p, substance.Electron) {
			return coeffs[i], nil
		}
	}
	return 0, &NotParticipantError{Formula: substance.Electron.Formula()}
}

// Scheme renders the half reaction without coefficients.
func (h *HalfReaction) Scheme() string {
	return render(h.reagents, nil) + " -> " + render(h.products, nil)
}

// Equation balances the half reaction and renders it with
// coefficients, omitting ones.
func (h *HalfReaction) Equation() (string, error) {
	coeffs, err := h.Coefficients()
	if err != nil {
		return "", err
	}
	return render(h.reagents, coeffs[:len(h.reagents)]) + " -> " +
		render(h.products, coeffs[len(h.reagents):]), nil
}

// Reversed returns the half reaction running the other way: a
// reduction becomes the matching oxidation.
func (h *HalfReaction) Reversed() *HalfReaction {
	return &HalfReaction{
		reagents: append([]substance.Particle{}, h.products...),
		products: append([]substance.Particle{}, h.reagents...),
	}
}

// SortRedox orders two half reactions, both written as reductions, by
// their standard potentials: the higher potential keeps running as
// the reduction, the lower one comes back reversed as the oxidation.
func SortRedox(table *chemdb.HalfReactionTable, a, b *HalfReaction) (reduction, oxidation *HalfReaction, err error) {
	pa, err := table.Potential(a.Scheme())
	if err != nil {
		return nil, nil, err
	}
	pb, err := table.Potential(b.Scheme())
	if err != nil {
		return nil, nil, err
	}
	if pa >= pb {
		return a, b.Reversed(), nil
	}
	return b, a.Reversed(), nil
}

// Combine merges a reduction and an oxidation half into one redox
// reaction. The electrons cancel; balancing the combined scheme
// restores the coefficients.
func Combine(reduction, oxidation *HalfReaction) (*Reaction, error) {
	if !containsElectron(reduction.reagents) {
		return nil, &SchemeError{Scheme: reduction.Scheme(), Reason: "a reduction takes electrons on the left"}
	}
	if !containsElectron(oxidation.products) {
		return nil, &SchemeError{Scheme: oxidation.Scheme(), Reason: "an oxidation gives electrons on the right"}
	}

	reagents := append(withoutElectron(reduction.reagents), withoutElectron(oxidation.reagents)...)
	products := append(withoutElectron(reduction.products), withoutElectron(oxidation.products)...)
	return New(reagents, products)
}

func containsElectron(side []substance.Particle) bool {
	for _, p := range side {
		if substance.Same(p, substance.Electron) {
			return true
		}
	}
	return false
}

func withoutElectron(side []substance.Particle) []substance.Particle {
	var out []substance.Particle
	for _, p := range side {
		if !substance.Same(p, substance.Electron) {
			out = append(out, p)
		}
	}
	return out
}
