package stoich

import (
	"github.com/ctessum/unit"

	"minichem/internal/reaction"
	"minichem/internal/substance"
)

// Calculator answers amount questions about one balanced reaction.
type Calculator struct {
	reaction *reaction.Reaction
}

// NewCalculator builds a calculator over the reaction. Balancing
// happens on first use and fails there if the scheme is unbalanceable.
func NewCalculator(r *reaction.Reaction) *Calculator {
	return &Calculator{reaction: r}
}

// seed is one participant with its derived moles and coefficient.
type seed struct {
	substance substance.Particle
	moles     float64
	coef      int
}

// Moles derives the moles of one substance from its seed quantities.
// A seed can give moles directly, a mass (divided by molar mass), a
// concentration with a volume, or a gas volume at STP.
func (c *Calculator) Moles(p substance.Particle, seeds ...Quantity) (float64, error) {
	var (
		mass, volume, concentration float64
		hasMass, hasVol, hasConc    bool
	)
	for _, q := range seeds {
		if !substance.Same(q.Substance, p) {
			continue
		}
		dims := q.Amount.Dimensions()
		switch {
		case dims.Matches(molesDims):
			return q.Amount.Value(), nil
		case dims.Matches(massDims):
			mass, hasMass = q.Amount.Value(), true
		case dims.Matches(volumeDims):
			volume, hasVol = q.Amount.Value(), true
		case dims.Matches(concentrationDims):
			concentration, hasConc = q.Amount.Value(), true
		}
	}

	switch {
	case hasMass:
		return mass / (p.MolarMass() * 1e-3), nil
	case hasConc && hasVol:
		return concentration * volume, nil
	case hasVol && substance.IsGas(p):
		return volume / molarVolumeSTP, nil
	case hasConc:
		return 0, &InsufficientDataError{Formula: p.Formula(), Reason: "a concentration needs a solution volume"}
	case hasVol:
		return 0, &InsufficientDataError{Formula: p.Formula(), Reason: "a volume alone determines moles only for gases"}
	}
	return 0, &InsufficientDataError{Formula: p.Formula(), Reason: "no usable amount given"}
}

// MolesOf propagates the seed moles to the target through the
// reaction coefficients. With seeds for several reagents the smallest
// outcome wins, which is the limiting-reagent rule.
func (c *Calculator) MolesOf(target substance.Particle, seeds ...Quantity) (float64, error) {
	known, err := c.seedMoles(seeds)
	if err != nil {
		return 0, err
	}
	if len(known) == 0 {
		return 0, &InsufficientDataError{Formula: target.Formula(), Reason: "no seed quantities"}
	}

	coefTarget, err := c.reaction.CoefficientOf(target)
	if err != nil {
		return 0, err
	}

	best := 0.0
	for i, s := range known {
		n := s.moles * float64(coefTarget) / float64(s.coef)
		if i == 0 || n < best {
			best = n
		}
	}
	return best, nil
}

// Amount computes the target's amount in the requested unit.
func (c *Calculator) Amount(target substance.Particle, unitName string, seeds ...Quantity) (Quantity, error) {
	spec, ok := unitTable[unitName]
	if !ok {
		return Quantity{}, &UnitMismatchError{Unit: unitName, Reason: "not in the unit grammar"}
	}

	n, err := c.MolesOf(target, seeds...)
	if err != nil {
		return Quantity{}, err
	}

	switch {
	case spec.dims.Matches(molesDims):
		return Moles(target, n), nil
	case spec.dims.Matches(massDims):
		return Quantity{Substance: target, Amount: unit.New(n*target.MolarMass()*1e-3, massDims)}, nil
	case spec.dims.Matches(volumeDims):
		if !substance.IsGas(target) {
			return Quantity{}, &UnitMismatchError{Unit: unitName, Reason: target.Formula() + " is not a gas at STP"}
		}
		return Quantity{Substance: target, Amount: unit.New(n*molarVolumeSTP, volumeDims)}, nil
	}
	return Quantity{}, &UnitMismatchError{Unit: unitName, Reason: "cannot express a reaction amount in it"}
}

// LimitingReagent returns the seed substance that runs out first.
func (c *Calculator) LimitingReagent(seeds ...Quantity) (substance.Particle, error) {
	known, err := c.seedMoles(seeds)
	if err != nil {
		return nil, err
	}
	if len(known) == 0 {
		return nil, &InsufficientDataError{Formula: "", Reason: "no seed quantities"}
	}

	limiting := known[0]
	for _, s := range known[1:] {
		if s.moles/float64(s.coef) < limiting.moles/float64(limiting.coef) {
			limiting = s
		}
	}
	return limiting.substance, nil
}

// Excess returns the leftover moles of every non-limiting seed
// substance.
func (c *Calculator) Excess(seeds ...Quantity) ([]Quantity, error) {
	known, err := c.seedMoles(seeds)
	if err != nil {
		return nil, err
	}
	limiting, err := c.LimitingReagent(seeds...)
	if err != nil {
		return nil, err
	}

	var limitingSeed seed
	for _, s := range known {
		if substance.Same(s.substance, limiting) {
			limitingSeed = s
		}
	}

	var out []Quantity
	for _, s := range known {
		if substance.Same(s.substance, limiting) {
			continue
		}
		spent := limitingSeed.moles / float64(limitingSeed.coef) * float64(s.coef)
		out = append(out, Moles(s.substance, s.moles-spent))
	}
	return out, nil
}

// seedMoles groups the seeds by substance and derives moles and
// coefficient for each, in first-seen order.
func (c *Calculator) seedMoles(seeds []Quantity) ([]seed, error) {
	var out []seed
	seen := make(map[string]struct{})
	for _, q := range seeds {
		key := q.Substance.Formula()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		n, err := c.Moles(q.Substance, seeds...)
		if err != nil {
			return nil, err
		}
		coef, err := c.reaction.CoefficientOf(q.Substance)
		if err != nil {
			return nil, err
		}
		out = append(out, seed{substance: q.Substance, moles: n, coef: coef})
	}
	return out, nil
}
