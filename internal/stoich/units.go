package stoich

import (
	"github.com/ctessum/unit"
)

// MoleDim is the amount-of-substance dimension. The unit library
// reserves the "mol" symbol for SI, so the dimension prints as
// "mole".
var MoleDim = unit.NewDimension("mole")

// Dimensions of the supported quantities. Values are SI: kg, m3 and
// combinations thereof.
var (
	molesDims         = unit.Dimensions{MoleDim: 1}
	massDims          = unit.Dimensions{unit.MassDim: 1}
	volumeDims        = unit.Dimensions{unit.LengthDim: 3}
	concentrationDims = unit.Dimensions{MoleDim: 1, unit.LengthDim: -3}
	molarMassDims     = unit.Dimensions{unit.MassDim: 1, MoleDim: -1}
	molarVolumeDims   = unit.Dimensions{unit.LengthDim: 3, MoleDim: -1}
)

// molarVolumeSTP is the molar volume of an ideal gas at STP, in
// m3/mole (22.4 L/mol).
const molarVolumeSTP = 0.0224

type unitSpec struct {
	factor float64 // multiplier to the SI value
	dims   unit.Dimensions
}

// unitTable is the school unit grammar. "M" is molarity, an alias of
// mol/L.
var unitTable = map[string]unitSpec{
	"mol": {1, molesDims},

	"g":  {1e-3, massDims},
	"kg": {1, massDims},
	"mg": {1e-6, massDims},

	"L":  {1e-3, volumeDims},
	"mL": {1e-6, volumeDims},

	"mol/L": {1e3, concentrationDims},
	"M":     {1e3, concentrationDims},

	"g/mol":  {1e-3, molarMassDims},
	"kg/mol": {1, molarMassDims},
	"L/mol":  {1e-3, molarVolumeDims},
}

// ParseAmount builds a unit-tagged amount from a value and a unit
// name from the grammar.
func ParseAmount(value float64, unitName string) (*unit.Unit, error) {
	spec, ok := unitTable[unitName]
	if !ok {
		return nil, &UnitMismatchError{Unit: unitName, Reason: "not in the unit grammar"}
	}
	return unit.New(value*spec.factor, spec.dims), nil
}

// ConvertTo expresses an amount in the named unit. The dimensions
// must match.
func ConvertTo(u *unit.Unit, unitName string) (float64, error) {
	spec, ok := unitTable[unitName]
	if !ok {
		return 0, &UnitMismatchError{Unit: unitName, Reason: "not in the unit grammar"}
	}
	if !u.Dimensions().Matches(spec.dims) {
		return 0, &UnitMismatchError{Unit: unitName, Reason: "dimensions do not match " + u.Dimensions().String()}
	}
	return u.Value() / spec.factor, nil
}
