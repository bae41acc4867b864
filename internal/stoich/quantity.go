package stoich

import (
	"github.com/ctessum/unit"

	"minichem/internal/substance"
)

// Quantity ties a physical amount to one substance.
type Quantity struct {
	Substance substance.Particle
	Amount    *unit.Unit
}

// NewQuantity builds a quantity from a value and a unit name.
func NewQuantity(p substance.Particle, value float64, unitName string) (Quantity, error) {
	amount, err := ParseAmount(value, unitName)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Substance: p, Amount: amount}, nil
}

// Moles builds a quantity given directly in moles.
func Moles(p substance.Particle, n float64) Quantity {
	return Quantity{Substance: p, Amount: unit.New(n, molesDims)}
}

// Value expresses the amount in the named unit.
func (q Quantity) Value(unitName string) (float64, error) {
	return ConvertTo(q.Amount, unitName)
}
