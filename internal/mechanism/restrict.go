package mechanism

import (
	"minichem/internal/chemdb"
	"minichem/internal/substance"
)

// Restrictions inspect predicted products and report whether the
// reaction actually proceeds.

// HasWeakElectrolyte reports whether the products contain a weak
// electrolyte: water, a gas, or a precipitate. An ion exchange
// reaction proceeds only when one is formed, otherwise the products
// would react straight back.
func (s *Set) HasWeakElectrolyte(products ...substance.Particle) bool {
	for _, p := range products {
		if substance.Same(p, substance.Water) {
			return true
		}
		if substance.IsGas(p) {
			return true
		}
		if m, ok := p.(substance.Molecule); ok {
			if sol, err := s.db.SolubilityOf(m); err == nil && sol.Precipitates() {
				return true
			}
		}
	}
	return false
}

// SubstitutionAllowed checks the products of a substitution: the
// metal that ended up in the molecule must be more active than the
// one it displaced, otherwise the displaced metal would win the slot
// back. Comparing against hydrogen covers the metal-plus-acid case.
func (s *Set) SubstitutionAllowed(products ...substance.Particle) (bool, error) {
	var (
		sim   substance.Simple
		mol   substance.Molecule
		simOK bool
		molOK bool
	)
	for _, p := range products {
		switch v := p.(type) {
		case substance.Simple:
			sim, simOK = v, true
		case substance.Molecule:
			mol, molOK = v, true
		}
	}
	if !simOK || !molOK {
		return false, cannotPredict("metal activity restriction", products...)
	}

	inside, err := substance.SimpleOfIon(mol.Cation())
	if err != nil {
		return false, err
	}
	active, err := s.series.MoreActive(inside.Element(), sim.Element())
	if err != nil {
		return false, err
	}
	return active.Equal(inside.Element()), nil
}

// BaseMetalIsActive checks the base among the products of a reaction
// of a metal with water. Water is so weak an acid that only active
// metals displace its hydrogen.
func (s *Set) BaseMetalIsActive(products ...substance.Particle) (bool, error) {
	for _, p := range products {
		m, ok := p.(substance.Molecule)
		if !ok || m.Class() != substance.ClassBase {
			continue
		}
		activity, err := s.series.Activity(m.CationElement())
		if err != nil {
			return false, err
		}
		return activity == chemdb.Active, nil
	}
	return false, &ClassError{
		Formula: formulas(products),
		Got:     "no base",
		Want:    "base",
	}
}

// HasWeakElectrolyteIons is HasWeakElectrolyte for ionic products.
// Gases do not count: dissolved species are assumed to stay in
// solution, so only water and precipitates terminate the exchange.
func (s *Set) HasWeakElectrolyteIons(products ...substance.Particle) bool {
	for _, p := range products {
		if substance.Same(p, substance.Water) {
			return true
		}
		if m, ok := p.(substance.Molecule); ok {
			if sol, err := s.db.SolubilityOf(m); err == nil && sol.Precipitates() {
				return true
			}
		}
	}
	return false
}

func formulas(particles []substance.Particle) string {
	out := ""
	for i, p := range particles {
		if i > 0 {
			out += ", "
		}
		out += p.Formula()
	}
	return out
}
