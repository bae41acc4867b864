// Package stoich performs stoichiometric calculations over a balanced
// reaction.
//
// Amounts are unit-tagged values: a small grammar of school units
// (mol, g, kg, mg, L, mL, mol/L, M, g/mol, L/mol) maps onto SI-valued
// unit.Unit quantities with an extra mole dimension. A Calculator
// derives moles from whatever a seed provides (mass and molar mass,
// concentration and volume, gas volume at STP), propagates mole
// ratios through the reaction coefficients, resolves the limiting
// reagent among several seeds, and converts the target back into the
// requested unit.
package stoich
