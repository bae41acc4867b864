package substance

import "fmt"

// ElementaryParticle is a subatomic species taking part in a half
// reaction. It carries charge and mass but no elemental composition.
type ElementaryParticle struct {
	symbol string
	charge int
	mass   float64
}

// Electron is e(-1), the particle half reactions exchange.
var Electron = ElementaryParticle{symbol: "e", charge: -1, mass: 0.00055}

// Composition returns the empty composition.
func (p ElementaryParticle) Composition() Composition { return Composition{} }

// Charge returns the particle's charge.
func (p ElementaryParticle) Charge() int { return p.charge }

// MolarMass returns the particle's molar mass in g/mol.
func (p ElementaryParticle) MolarMass() float64 { return p.mass }

// Formula renders the particle with its charge suffix, e.g. "e(-1)".
func (p ElementaryParticle) Formula() string {
	return fmt.Sprintf("%s(%d)", p.symbol, p.charge)
}
